package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matchforge/go-match-engine/internal/engine"
	"github.com/matchforge/go-match-engine/services"
)

// MatchHandler runs a synchronous match query over a source.
// Request body: services.MatchQuery.
func (api *API) MatchHandler(c *gin.Context) {
	sourceName := c.Param("sourceName")

	source, err := api.engine.Source(sourceName)
	if err != nil {
		SendMappedError(c, err)
		return
	}

	var query services.MatchQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid request body: "+err.Error())
		return
	}

	if result := validateMatchQuery(query); !result.Valid {
		SendValidationError(c, result)
		return
	}

	result, err := source.Match(query)
	if err != nil {
		SendError(c, http.StatusInternalServerError, ErrorCodeMatchFailed, "Match failed: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

// MatchAsyncHandler starts a background match job and returns its ID.
// Request body: services.MatchQuery.
func (api *API) MatchAsyncHandler(c *gin.Context) {
	sourceName := c.Param("sourceName")

	var query services.MatchQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid request body: "+err.Error())
		return
	}

	if result := validateMatchQuery(query); !result.Valid {
		SendValidationError(c, result)
		return
	}

	concreteEngine, ok := api.engine.(*engine.Engine)
	if !ok {
		SendError(c, http.StatusInternalServerError, ErrorCodeInternalError, "Async operations are not supported by this engine")
		return
	}

	jobID, err := concreteEngine.MatchAsync(sourceName, query)
	if err != nil {
		SendMappedError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "accepted",
		"message": "Match started for source '" + sourceName + "'",
		"job_id":  jobID,
	})
}
