package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/matchforge/go-match-engine/services"
)

// maxRequestBodyBytes caps request bodies; bulk listing uploads are the
// largest expected payload.
const maxRequestBodyBytes = 10 << 20 // 10 MiB

// API holds dependencies for API handlers, primarily the source manager.
type API struct {
	engine services.SourceManager
	logger *zap.Logger
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.SourceManager, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		engine: engine,
		logger: logger,
	}
}

// SetupRoutes defines all the API routes for the match engine.
func SetupRoutes(router *gin.Engine, engine services.SourceManager, logger *zap.Logger) {
	apiHandler := NewAPI(engine, logger)

	router.Use(RequestIDMiddleware())
	router.Use(RequestSizeLimitMiddleware(maxRequestBodyBytes))
	router.Use(CORSMiddleware())
	router.Use(RequestLoggerMiddleware(apiHandler.logger))

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Match statistics route
	router.GET("/stats", apiHandler.GetStatsHandler)

	// Tag extraction route
	router.POST("/tags", apiHandler.ExtractTagsHandler)

	// Job management routes
	jobRoutes := router.Group("/jobs")
	{
		jobRoutes.GET("/:jobId", apiHandler.GetJobHandler)                // Get job status by ID
		jobRoutes.GET("/:jobId/results", apiHandler.GetJobResultsHandler) // Get async match results
		jobRoutes.GET("/metrics", apiHandler.GetJobMetricsHandler)        // Get job performance metrics
	}

	// Source management routes
	sourceRoutes := router.Group("/sources")
	{
		sourceRoutes.POST("", apiHandler.CreateSourceHandler)                       // Create a new source
		sourceRoutes.GET("", apiHandler.ListSourcesHandler)                         // List all sources
		sourceRoutes.GET("/:sourceName", apiHandler.GetSourceHandler)               // Get source details
		sourceRoutes.DELETE("/:sourceName", apiHandler.DeleteSourceHandler)         // Delete a source
		sourceRoutes.POST("/:sourceName/_refresh", apiHandler.RefreshSourceHandler) // Reload listings from a provider

		// Listing management routes per source
		listingRoutes := sourceRoutes.Group("/:sourceName/listings")
		{
			listingRoutes.PUT("", apiHandler.AddListingsHandler)                  // Add/Update listings
			listingRoutes.GET("", apiHandler.GetListingsHandler)                  // List listings with pagination
			listingRoutes.DELETE("", apiHandler.DeleteAllListingsHandler)         // Delete all listings
			listingRoutes.GET("/:listingId", apiHandler.GetListingHandler)        // Get specific listing
			listingRoutes.DELETE("/:listingId", apiHandler.DeleteListingHandler)  // Delete specific listing
		}

		// Match routes per source
		sourceRoutes.POST("/:sourceName/_match", apiHandler.MatchHandler)
		sourceRoutes.POST("/:sourceName/_match_async", apiHandler.MatchAsyncHandler)
	}
}

// HealthCheckHandler reports service liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
