package assets

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	dev, err := Build(false)
	require.NoError(t, err)
	assert.NotEmpty(t, dev.JS)
	assert.NotEmpty(t, dev.CSS)

	prod, err := Build(true)
	require.NoError(t, err)
	assert.Less(t, len(prod.JS), len(dev.JS), "minified JS should be smaller")
	assert.Less(t, len(prod.CSS), len(dev.CSS), "minified CSS should be smaller")
}

func TestHandler(t *testing.T) {
	bundle, err := Build(true)
	require.NoError(t, err)
	h := NewHandler(bundle, false)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "javascript")
	assert.Contains(t, rec.Header().Get("Cache-Control"), "immutable")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "css")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/nope.txt", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerDevNoCache(t *testing.T) {
	bundle, err := Build(false)
	require.NoError(t, err)
	h := NewHandler(bundle, true)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestHandlerUpdate(t *testing.T) {
	h := NewHandler(&Bundle{JS: "old()", CSS: "a{}"}, true)
	h.Update(&Bundle{JS: "new()", CSS: "b{}"})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	assert.Equal(t, "new()", rec.Body.String())
}
