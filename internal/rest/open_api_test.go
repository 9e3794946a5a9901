package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelinos/tasktrack-api/internal/rest"
)

func TestRegisterOpenAPI(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	rest.RegisterOpenAPI(router)

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/openapi3.json", nil))

	require.Equal(t, http.StatusOK, res.Code)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths      map[string]json.RawMessage `json:"paths"`
		Components struct {
			Schemas map[string]json.RawMessage `json:"schemas"`
		} `json:"components"`
	}

	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &doc))

	assert.Equal(t, "TaskTrack API", doc.Info.Title)
	assert.Contains(t, doc.Paths, "/tasks")
	assert.Contains(t, doc.Paths, "/tasks/search")
	assert.Contains(t, doc.Paths, "/categories")
	assert.Contains(t, doc.Components.Schemas, "Task")
	assert.Contains(t, doc.Components.Schemas, "Category")

	res = httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/openapi3.yaml", nil))

	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "TaskTrack API")
}
