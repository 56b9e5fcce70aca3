package prefs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	router := chi.NewRouter()
	store := sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!"))
	require.NoError(t, SetupRoutes(router, store))
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestDefaults(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/api/prefs")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var got Preferences
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "dark", got.Theme)
	assert.False(t, got.CookieConsent)
}

func TestRoundTrip(t *testing.T) {
	srv := newServer(t)

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/prefs",
		strings.NewReader(`{"theme": "light", "cookieConsent": true}`))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)

	// Read back with the session cookie attached.
	req, err = http.NewRequest(http.MethodGet, srv.URL+"/api/prefs", nil)
	require.NoError(t, err)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var got Preferences
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "light", got.Theme)
	assert.True(t, got.CookieConsent)
}

func TestRejectsUnknownTheme(t *testing.T) {
	srv := newServer(t)

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/prefs",
		strings.NewReader(`{"theme": "zebra"}`))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
