package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matchforge/go-match-engine/internal/engine"
)

// GetStatsHandler returns aggregate match statistics.
func (api *API) GetStatsHandler(c *gin.Context) {
	concreteEngine, ok := api.engine.(*engine.Engine)
	if !ok {
		SendError(c, http.StatusInternalServerError, ErrorCodeInternalError, "Statistics are not supported by this engine")
		return
	}

	c.JSON(http.StatusOK, concreteEngine.Analytics().Stats())
}
