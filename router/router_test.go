package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/branchops/branch-policy/classify"
	"github.com/branchops/branch-policy/handler"
	"github.com/branchops/branch-policy/pipeline"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() *gin.Engine {
	classification := classify.Classify("develop")
	statusHandler := handler.NewStatusHandler(classification, 3)
	webHookHandler := handler.NewWebHookHandler(nil, pipeline.Default(), pipeline.NopNotifier{}, 3)
	return New(zerolog.Nop(), statusHandler, webHookHandler)
}

func TestRouter_ServesStatusRoutes(t *testing.T) {
	engine := newTestRouter()

	for _, path := range []string{"/", "/health", "/info"} {
		req, err := http.NewRequest("GET", path, nil)
		require.NoError(t, err)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "path %s", path)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"), "path %s", path)
	}
}

func TestRouter_ServesMetrics(t *testing.T) {
	engine := newTestRouter()

	req, err := http.NewRequest("GET", "/metrics", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "branch_policy_request_all_counter")
}

func TestRouter_UnknownRouteIs404(t *testing.T) {
	engine := newTestRouter()

	req, err := http.NewRequest("GET", "/nope", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
