package content_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okoval/calyna/internal/content"
)

func newTestRouter(t *testing.T) (http.Handler, string) {
	t.Helper()
	store, root := newTestStore(t)
	service := content.NewService(store, content.NewRenderer(), slog.New(slog.DiscardHandler))

	router := chi.NewRouter()
	router.Route("/content", content.NewHandler(service).RegisterRoutes)
	return router, root
}

/*
TestHandler_GetPage checks the page endpoint end to end through the router,
including the unsupported-language guard and the 404 envelope.
*/
func TestHandler_GetPage(t *testing.T) {
	router, root := newTestRouter(t)
	writeFile(t, root, "pages", "services.en.mdx", "---\ntitle: Services\n---\nbody")

	t.Run("ok", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/content/en/pages/services", nil))

		require.Equal(t, http.StatusOK, recorder.Code)

		var envelope struct {
			Data content.Page `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.Equal(t, "Services", envelope.Data.Title)
		assert.Equal(t, "Services", envelope.Data.Hero.Heading)
	})

	t.Run("unsupported_language", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/content/de/pages/services", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("not_found", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/content/en/pages/ghost", nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "NOT_FOUND")
	})
}

/*
TestHandler_ListPosts checks the listing endpoint and the empty-language case.
*/
func TestHandler_ListPosts(t *testing.T) {
	router, root := newTestRouter(t)
	writeFile(t, root, "posts", "p1.en.mdx", "---\ntitle: P1\ndate: 2024-02-01\n---\nx")
	writeFile(t, root, "posts", "p2.en.mdx", "---\ntitle: P2\ndate: 2024-05-01\n---\nx")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/content/en/posts", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data []content.PostSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 2)
	assert.Equal(t, "P2", envelope.Data[0].Title)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/content/ukr/posts", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Empty(t, envelope.Data)
}

/*
TestHandler_StaticParams checks the prebuild enumeration endpoint.
*/
func TestHandler_StaticParams(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/content/static-params", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data []content.StaticParam `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 6)
}
