package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchforge/go-match-engine/api"
	internaltesting "github.com/matchforge/go-match-engine/internal/testing"
	"github.com/matchforge/go-match-engine/model"
	"github.com/matchforge/go-match-engine/services"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	eng := internaltesting.CreateTestEngine(t)
	internaltesting.SeedTestSource(t, eng, "jobs")

	router := gin.New()
	api.SetupRoutes(router, eng, nil)
	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthCheck(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}

func TestCreateSource(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, http.MethodPost, "/sources", gin.H{"name": "trainings"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(router, http.MethodPost, "/sources", gin.H{"name": "trainings"})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "SOURCE_ALREADY_EXISTS", decodeBody(t, w)["code"])
}

func TestCreateSource_MissingName(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, http.MethodPost, "/sources", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListSources(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, http.MethodGet, "/sources", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"jobs"}, decodeBody(t, w)["sources"])
}

func TestGetSource(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, http.MethodGet, "/sources/jobs", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "jobs", body["name"])
	assert.Equal(t, float64(3), body["listings"])
}

func TestGetSource_NotFound(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, http.MethodGet, "/sources/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "SOURCE_NOT_FOUND", decodeBody(t, w)["code"])
}

func TestDeleteSource(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, http.MethodDelete, "/sources/jobs", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodDelete, "/sources/jobs", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddListings(t *testing.T) {
	router := setupTestRouter(t)

	listings := []model.Listing{
		{ID: "extra-1", Title: "Cloud Architect", Description: "aws gcp design"},
	}
	w := performRequest(router, http.MethodPut, "/sources/jobs/listings", listings)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["count"])
	assert.Equal(t, float64(4), body["total"])
}

func TestAddListings_ValidationFailures(t *testing.T) {
	router := setupTestRouter(t)

	tests := []struct {
		name    string
		payload interface{}
	}{
		{"empty batch", []model.Listing{}},
		{"missing id", []model.Listing{{Title: "no id"}}},
		{"duplicate ids", []model.Listing{{ID: "x", Title: "a"}, {ID: "x", Title: "b"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, http.MethodPut, "/sources/jobs/listings", tt.payload)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "VALIDATION_FAILED", decodeBody(t, w)["code"])
		})
	}
}

func TestGetListings_Pagination(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, http.MethodGet, "/sources/jobs/listings?page=1&page_size=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(3), body["total"])
	assert.Len(t, body["listings"], 2)

	w = performRequest(router, http.MethodGet, "/sources/jobs/listings?page=0", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(router, http.MethodGet, "/sources/jobs/listings?page_size=9999", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAndDeleteListing(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, http.MethodGet, "/sources/jobs/listings/listing-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Senior Python Developer", decodeBody(t, w)["title"])

	w = performRequest(router, http.MethodDelete, "/sources/jobs/listings/listing-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodGet, "/sources/jobs/listings/listing-1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "LISTING_NOT_FOUND", decodeBody(t, w)["code"])
}

func TestDeleteAllListings(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, http.MethodDelete, "/sources/jobs/listings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodGet, "/sources/jobs", nil)
	assert.Equal(t, float64(0), decodeBody(t, w)["listings"])
}

func TestMatch(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, http.MethodPost, "/sources/jobs/_match", gin.H{
		"profile_text": "experienced python developer with aws and cloud skills",
		"threshold":    0.0,
		"with_tags":    true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result services.MatchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 3, result.Scanned)
	assert.NotEmpty(t, result.QueryID)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "listing-1", result.Hits[0].Listing.ID)
	assert.Contains(t, result.Hits[0].Tags, "python")
}

func TestMatch_InvalidQuery(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, http.MethodPost, "/sources/jobs/_match", gin.H{
		"profile_text": "python",
		"threshold":    1.5,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeBody(t, w)["code"])
}

func TestMatch_UnknownSource(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, http.MethodPost, "/sources/missing/_match", gin.H{
		"profile_text": "python",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestMatchAsync_FullFlow(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, http.MethodPost, "/sources/jobs/_match_async", gin.H{
		"profile_text": "experienced python developer with aws and cloud skills",
		"threshold":    0.0,
	})
	require.Equal(t, http.StatusAccepted, w.Code)

	jobID, ok := decodeBody(t, w)["job_id"].(string)
	require.True(t, ok, "expected a job_id in the response")

	// Poll the job endpoint until the job finishes.
	var status string
	for i := 0; i < 200; i++ {
		w = performRequest(router, http.MethodGet, "/jobs/"+jobID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		status, _ = decodeBody(t, w)["status"].(string)
		if status == string(model.JobStatusCompleted) || status == string(model.JobStatusFailed) {
			break
		}
		time.Sleep(25 * time.Millisecond)
	}
	require.Equal(t, string(model.JobStatusCompleted), status)

	w = performRequest(router, http.MethodGet, "/jobs/"+jobID+"/results", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result services.MatchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 3, result.Scanned)
}

func TestGetJob_NotFound(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, http.MethodGet, "/jobs/no-such-job", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "JOB_NOT_FOUND", decodeBody(t, w)["code"])
}

func TestGetJobMetrics(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, http.MethodGet, "/jobs/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Contains(t, body, "metrics")
	assert.Contains(t, body, "success_rate")
}

func TestExtractTags(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, http.MethodPost, "/tags", gin.H{
		"text": "senior python developer with aws and docker experience",
	})
	require.Equal(t, http.StatusOK, w.Code)

	tags, ok := decodeBody(t, w)["tags"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, tags, "python")
	assert.Contains(t, tags, "aws")
	assert.Contains(t, tags, "docker")
}

func TestExtractTags_InvalidVocabulary(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, http.MethodPost, "/tags", gin.H{
		"text":       "python",
		"vocabulary": "animals",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetStats(t *testing.T) {
	router := setupTestRouter(t)

	// Run one match so the stats are non-trivial.
	w := performRequest(router, http.MethodPost, "/sources/jobs/_match", gin.H{
		"profile_text": "python aws cloud",
		"threshold":    0.0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodGet, "/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["total_queries"])
}

func TestRefreshSource_RequiresFile(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, http.MethodPost, "/sources/jobs/_refresh", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestIDHeaderPropagated(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, http.MethodGet, "/health", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
