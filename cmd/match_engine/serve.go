package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/matchforge/go-match-engine/api"
	"github.com/matchforge/go-match-engine/internal/engine"
	"github.com/matchforge/go-match-engine/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the match engine HTTP server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "", "port to run the server on (default 8080)")
	viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))
}

func serve() error {
	settings, err := getSettings()
	if err != nil {
		return err
	}

	log, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync()

	matchEngine := engine.NewEngine(settings, log)
	defer matchEngine.Close()

	if !viper.GetBool("debug") {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	api.SetupRoutes(router, matchEngine, log)

	log.Info("starting server",
		zap.String("port", settings.Port),
		zap.Float64("score_threshold", settings.ScoreThreshold),
		zap.Int("match_workers", settings.MatchWorkers),
	)
	if err := router.Run(":" + settings.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
