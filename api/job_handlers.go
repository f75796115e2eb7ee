package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matchforge/go-match-engine/internal/engine"
)

// GetJobHandler returns the status of a background job.
func (api *API) GetJobHandler(c *gin.Context) {
	jobID := c.Param("jobId")

	concreteEngine, ok := api.engine.(*engine.Engine)
	if !ok {
		SendError(c, http.StatusInternalServerError, ErrorCodeInternalError, "Job tracking is not supported by this engine")
		return
	}

	job, err := concreteEngine.JobManager().GetJob(jobID)
	if err != nil {
		SendMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// GetJobResultsHandler returns the cached result of a completed async match
// job. Results for refresh jobs do not exist; for those this returns 404.
func (api *API) GetJobResultsHandler(c *gin.Context) {
	jobID := c.Param("jobId")

	concreteEngine, ok := api.engine.(*engine.Engine)
	if !ok {
		SendError(c, http.StatusInternalServerError, ErrorCodeInternalError, "Job tracking is not supported by this engine")
		return
	}

	job, err := concreteEngine.JobManager().GetJob(jobID)
	if err != nil {
		SendMappedError(c, err)
		return
	}

	result, ok := concreteEngine.JobResult(jobID)
	if !ok {
		SendError(c, http.StatusNotFound, ErrorCodeJobNotFound,
			"No results available for job '"+jobID+"' (status: "+string(job.Status)+")")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetJobMetricsHandler returns aggregate job performance metrics.
func (api *API) GetJobMetricsHandler(c *gin.Context) {
	concreteEngine, ok := api.engine.(*engine.Engine)
	if !ok {
		SendError(c, http.StatusInternalServerError, ErrorCodeInternalError, "Job tracking is not supported by this engine")
		return
	}

	manager := concreteEngine.JobManager()
	c.JSON(http.StatusOK, gin.H{
		"metrics":      manager.GetMetrics(),
		"success_rate": manager.GetJobSuccessRate(),
	})
}
