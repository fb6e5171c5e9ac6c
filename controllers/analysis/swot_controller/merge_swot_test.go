package swot_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/afrazja/bizanalysis-backend/models"
	"github.com/afrazja/bizanalysis-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/ai/suggest-swot", SuggestSWOT)
	router.POST("/api/v1/ai/suggest-swot/merge", MergeSWOT)
	return router
}

func TestMergeSWOTEndpoint(t *testing.T) {
	router := newTestRouter()

	body := `{
		"existing": {"strengths": ["Strong brand", "Low cost base"]},
		"suggested": {"strengths": ["strong brand recognition", "New market"]}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/suggest-swot/merge", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var merged models.SWOTLists
	require.NoError(t, json.Unmarshal(raw, &merged))

	assert.Equal(t, []string{"Strong brand", "Low cost base", "New market"}, merged.Strengths)
}

func TestSuggestSWOTEndpointHeuristic(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	InitSuggest(services.NewSuggestClient())
	router := newTestRouter()

	body := `{"points": [{"name": "Alpha", "rms": 1.2, "growth": 14}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/suggest-swot", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var lists models.SWOTLists
	require.NoError(t, json.Unmarshal(raw, &lists))

	assert.NotEmpty(t, lists.Strengths)
}
