package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastebook/backend/internal/testutil"
)

func createRecipe(t *testing.T, engine *gin.Engine, token string, payload map[string]interface{}) string {
	t.Helper()
	w := doJSON(t, engine, "POST", "/api/v1/recipes", token, payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	recipe := decodeBody(t, w)["recipe"].(map[string]interface{})
	return recipe["id"].(string)
}

func soupPayload(isPublic bool) map[string]interface{} {
	return map[string]interface{}{
		"title":       "Soup",
		"description": "Plain old soup.",
		"steps":       []string{"Boil water", "Add things"},
		"servings":    4,
		"is_public":   isPublic,
	}
}

func TestCreateRecipeRequiresAuth(t *testing.T) {
	engine, _ := setupRouter(t)

	w := doJSON(t, engine, "POST", "/api/v1/recipes", "", soupPayload(true))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateRecipeValidation(t *testing.T) {
	engine, db := setupRouter(t)
	_, token := testutil.CreateUserAndToken(t, db, "Alice", "alice@example.com")

	// Missing steps fails binding; nothing is persisted.
	w := doJSON(t, engine, "POST", "/api/v1/recipes", token, map[string]interface{}{"title": "No Steps"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, engine, "GET", "/api/v1/recipes", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decodeBody(t, w)["total"])
}

func TestPrivateRecipeVisibilityFlip(t *testing.T) {
	engine, db := setupRouter(t)
	_, aliceToken := testutil.CreateUserAndToken(t, db, "Alice", "alice@example.com")
	_, bobToken := testutil.CreateUserAndToken(t, db, "Bob", "bob@example.com")

	id := createRecipe(t, engine, aliceToken, soupPayload(false))

	// Bob cannot see Alice's private recipe; no data leaks.
	w := doJSON(t, engine, "GET", "/api/v1/recipes/"+id, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), "Soup")

	// Alice makes it public; now Bob can read it.
	payload := soupPayload(true)
	w = doJSON(t, engine, "PUT", "/api/v1/recipes/"+id, aliceToken, payload)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, "GET", "/api/v1/recipes/"+id, bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	recipe := decodeBody(t, w)["recipe"].(map[string]interface{})
	assert.Equal(t, "Soup", recipe["title"])
}

func TestUpdateRecipeByNonOwner(t *testing.T) {
	engine, db := setupRouter(t)
	_, aliceToken := testutil.CreateUserAndToken(t, db, "Alice", "alice@example.com")
	_, bobToken := testutil.CreateUserAndToken(t, db, "Bob", "bob@example.com")

	id := createRecipe(t, engine, aliceToken, soupPayload(true))

	payload := soupPayload(true)
	payload["title"] = "Hijacked"
	w := doJSON(t, engine, "PUT", "/api/v1/recipes/"+id, bobToken, payload)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, engine, "GET", "/api/v1/recipes/"+id, aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	recipe := decodeBody(t, w)["recipe"].(map[string]interface{})
	assert.Equal(t, "Soup", recipe["title"])
}

func TestDeleteRecipeByNonOwner(t *testing.T) {
	engine, db := setupRouter(t)
	_, aliceToken := testutil.CreateUserAndToken(t, db, "Alice", "alice@example.com")
	_, bobToken := testutil.CreateUserAndToken(t, db, "Bob", "bob@example.com")

	id := createRecipe(t, engine, aliceToken, soupPayload(true))

	w := doJSON(t, engine, "DELETE", "/api/v1/recipes/"+id, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, engine, "DELETE", "/api/v1/recipes/"+id, aliceToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, "GET", "/api/v1/recipes/"+id, aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRecipeNotFound(t *testing.T) {
	engine, db := setupRouter(t)
	_, token := testutil.CreateUserAndToken(t, db, "Alice", "alice@example.com")

	w := doJSON(t, engine, "GET", "/api/v1/recipes/6ba7b810-9dad-11d1-80b4-00c04fd430c8", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, engine, "GET", "/api/v1/recipes/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRateRecipeTwiceKeepsLastScore(t *testing.T) {
	engine, db := setupRouter(t)
	_, aliceToken := testutil.CreateUserAndToken(t, db, "Alice", "alice@example.com")
	_, bobToken := testutil.CreateUserAndToken(t, db, "Bob", "bob@example.com")

	id := createRecipe(t, engine, aliceToken, soupPayload(true))

	w := doJSON(t, engine, "POST", "/api/v1/recipes/"+id+"/mark", bobToken, map[string]interface{}{"score": 4})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, engine, "POST", "/api/v1/recipes/"+id+"/mark", bobToken, map[string]interface{}{"score": 5})
	require.Equal(t, http.StatusOK, w.Code)
	mark := decodeBody(t, w)["mark"].(map[string]interface{})
	assert.EqualValues(t, 5, mark["score"])

	// The show view reflects exactly one mark with the latest score.
	w = doJSON(t, engine, "GET", "/api/v1/recipes/"+id, bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 1, body["mark_count"])
	assert.EqualValues(t, 5, body["average_score"])
	viewerMark := body["viewer_mark"].(map[string]interface{})
	assert.EqualValues(t, 5, viewerMark["score"])
}

func TestRateRecipeScoreOutOfRange(t *testing.T) {
	engine, db := setupRouter(t)
	_, token := testutil.CreateUserAndToken(t, db, "Alice", "alice@example.com")

	id := createRecipe(t, engine, token, soupPayload(true))

	w := doJSON(t, engine, "POST", "/api/v1/recipes/"+id+"/mark", token, map[string]interface{}{"score": 6})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(t, engine, "POST", "/api/v1/recipes/"+id+"/mark", token, map[string]interface{}{"score": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommunityListIsPublic(t *testing.T) {
	engine, db := setupRouter(t)
	_, token := testutil.CreateUserAndToken(t, db, "Alice", "alice@example.com")

	for i := 0; i < 11; i++ {
		payload := soupPayload(true)
		payload["title"] = fmt.Sprintf("Shared Dish %02d", i)
		createRecipe(t, engine, token, payload)
	}
	createRecipe(t, engine, token, soupPayload(false))

	// No token needed.
	w := doJSON(t, engine, "GET", "/api/v1/recipes/community", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 11, body["total"])
	assert.Len(t, body["recipes"].([]interface{}), 10)

	w = doJSON(t, engine, "GET", "/api/v1/recipes/community?page=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["recipes"].([]interface{}), 1)
}

func TestUploadImageWithoutStorage(t *testing.T) {
	engine, db := setupRouter(t)
	_, token := testutil.CreateUserAndToken(t, db, "Alice", "alice@example.com")

	id := createRecipe(t, engine, token, soupPayload(true))

	w := doJSON(t, engine, "POST", "/api/v1/recipes/"+id+"/image", token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
