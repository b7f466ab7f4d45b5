package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handlers "github.com/minimarket/user-service/internal/interface/http"
	"github.com/minimarket/user-service/internal/router/modules"
)

func TestVersionEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	api := engine.Group("/api")
	modules.NewVersionModule(handlers.NewVersionHandler("user-service", "1.2.3")).Register(api)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "user-service", body["service"])
	assert.Equal(t, "1.2.3", body["version"])
	assert.NotEmpty(t, body["hostIp"])
}
