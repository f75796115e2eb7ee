package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matchforge/go-match-engine/internal/engine"
	"github.com/matchforge/go-match-engine/internal/listing"
)

type createSourceRequest struct {
	Name string `json:"name"`
}

type refreshSourceRequest struct {
	// File is a path to a JSON listings file readable by the server.
	File string `json:"file"`
}

// CreateSourceHandler handles the request to create a new listing source.
// Request body: {"name": "jobs"}
func (api *API) CreateSourceHandler(c *gin.Context) {
	var req createSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid request body: "+err.Error())
		return
	}

	if req.Name == "" {
		SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Source name is required")
		return
	}

	if err := api.engine.CreateSource(req.Name); err != nil {
		SendMappedError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Source '" + req.Name + "' created successfully"})
}

// ListSourcesHandler returns the names of all sources.
func (api *API) ListSourcesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sources": api.engine.SourceNames()})
}

// GetSourceHandler returns details for one source.
func (api *API) GetSourceHandler(c *gin.Context) {
	sourceName := c.Param("sourceName")

	source, err := api.engine.Source(sourceName)
	if err != nil {
		SendMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":     source.Name(),
		"listings": source.Count(),
	})
}

// DeleteSourceHandler deletes a source and all its listings.
func (api *API) DeleteSourceHandler(c *gin.Context) {
	sourceName := c.Param("sourceName")

	if err := api.engine.DeleteSource(sourceName); err != nil {
		SendMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Source '" + sourceName + "' deleted successfully"})
}

// RefreshSourceHandler replaces a source's listings from a JSON file in the
// background and returns a job ID.
func (api *API) RefreshSourceHandler(c *gin.Context) {
	sourceName := c.Param("sourceName")

	var req refreshSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid request body: "+err.Error())
		return
	}
	if req.File == "" {
		SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "File path is required")
		return
	}

	concreteEngine, ok := api.engine.(*engine.Engine)
	if !ok {
		SendError(c, http.StatusInternalServerError, ErrorCodeInternalError, "Async operations are not supported by this engine")
		return
	}

	jobID, err := concreteEngine.RefreshSourceAsync(sourceName, listing.NewFileSource(req.File))
	if err != nil {
		SendMappedError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "accepted",
		"message": "Refresh started for source '" + sourceName + "'",
		"job_id":  jobID,
	})
}
