// Package prefs stores per-visitor display preferences in a cookie session.
package prefs

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "showcase-prefs"

	keyTheme   = "theme"
	keyConsent = "cookie-consent"
)

// Themes the frontend knows how to render.
var themes = map[string]bool{"dark": true, "light": true}

// Preferences is the wire shape of the prefs endpoints.
type Preferences struct {
	Theme         string `json:"theme"`
	CookieConsent bool   `json:"cookieConsent"`
}

// Handlers reads and writes visitor preferences.
type Handlers struct {
	sessionStore sessions.Store
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(sessionStore sessions.Store) *Handlers {
	return &Handlers{sessionStore: sessionStore}
}

// Get returns the visitor's stored preferences, with defaults for a fresh
// session.
func (h *Handlers) Get(w http.ResponseWriter, r *http.Request) {
	session, _ := h.sessionStore.Get(r, sessionName)

	prefs := Preferences{Theme: "dark"}
	if v, ok := session.Values[keyTheme].(string); ok && themes[v] {
		prefs.Theme = v
	}
	if v, ok := session.Values[keyConsent].(bool); ok {
		prefs.CookieConsent = v
	}
	writeJSON(w, http.StatusOK, prefs)
}

// Put replaces the visitor's stored preferences.
func (h *Handlers) Put(w http.ResponseWriter, r *http.Request) {
	var prefs Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "body is not valid JSON"})
		return
	}
	if !themes[prefs.Theme] {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown theme"})
		return
	}

	session, _ := h.sessionStore.Get(r, sessionName)
	session.Values[keyTheme] = prefs.Theme
	session.Values[keyConsent] = prefs.CookieConsent
	if err := session.Save(r, w); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
