package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/matchforge/go-match-engine/internal/engine"
)

type extractTagsRequest struct {
	Text       string `json:"text"`
	Vocabulary string `json:"vocabulary,omitempty"` // "skills" (default) or "topics"
}

// ExtractTagsHandler returns the fixed-vocabulary keywords present in a text.
func (api *API) ExtractTagsHandler(c *gin.Context) {
	var req extractTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid request body: "+err.Error())
		return
	}

	switch strings.ToLower(req.Vocabulary) {
	case "", "skills", "topics":
	default:
		SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Vocabulary must be 'skills' or 'topics'")
		return
	}

	concreteEngine, ok := api.engine.(*engine.Engine)
	if !ok {
		SendError(c, http.StatusInternalServerError, ErrorCodeInternalError, "Tag extraction is not supported by this engine")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tags": concreteEngine.ExtractTags(req.Text, req.Vocabulary),
	})
}
