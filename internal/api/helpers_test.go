package api_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tastebook/backend/internal/api"
	"github.com/tastebook/backend/internal/router"
	"github.com/tastebook/backend/internal/service"
	"github.com/tastebook/backend/internal/testutil"
)

// setupRouter builds the full route tree over a fresh in-memory database,
// with rate limiting off and photo storage unconfigured.
func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	authService := testutil.NewAuthService(db)

	handlers := router.Handlers{
		Auth:       api.NewAuthHandler(authService),
		Ingredient: api.NewIngredientHandler(service.NewIngredientService(db)),
		Recipe: api.NewRecipeHandler(
			service.NewRecipeService(db),
			service.NewMarkService(db),
			service.NewImageService(nil),
		),
		Account: api.NewAccountHandler(service.NewAccountService(db)),
	}

	return router.SetupRouter(handlers, authService, nil), db
}

// doJSON performs a request with an optional bearer token and JSON body.
func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
