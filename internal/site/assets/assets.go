// Package assets bundles the frontend JS and CSS with esbuild and serves
// the result from memory.
package assets

import (
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"sync"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/ticuv/showcase/web"
)

// Bundle contains the compiled JS and CSS.
type Bundle struct {
	JS  string
	CSS string
}

// Build compiles the embedded frontend sources. With minify set the output
// is production-ready; without it the bundle keeps readable whitespace for
// debugging.
func Build(minify bool) (*Bundle, error) {
	js, err := transform("src/app.js", api.LoaderJS, minify)
	if err != nil {
		return nil, err
	}
	css, err := transform("src/app.css", api.LoaderCSS, minify)
	if err != nil {
		return nil, err
	}
	return &Bundle{JS: js, CSS: css}, nil
}

func transform(path string, loader api.Loader, minify bool) (string, error) {
	src, err := fs.ReadFile(web.Sources, path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	result := api.Transform(string(src), api.TransformOptions{
		Loader:            loader,
		Target:            api.ES2020,
		MinifyWhitespace:  minify,
		MinifyIdentifiers: minify,
		MinifySyntax:      minify,
		LogLevel:          api.LogLevelWarning,
	})
	if len(result.Errors) > 0 {
		var msgs []string
		for _, e := range result.Errors {
			msgs = append(msgs, e.Text)
		}
		return "", fmt.Errorf("esbuild %s: %s", path, strings.Join(msgs, "; "))
	}
	return string(result.Code), nil
}

// Handler serves the bundle at /static/app.js and /static/app.css. The
// bundle pointer may be swapped with Update for dev rebuilds.
type Handler struct {
	mu     sync.RWMutex
	bundle *Bundle
	dev    bool
}

// NewHandler wraps a built bundle. In dev mode responses are marked
// uncacheable so rebuilds show up on refresh.
func NewHandler(bundle *Bundle, dev bool) *Handler {
	return &Handler{bundle: bundle, dev: dev}
}

// Update swaps in a freshly built bundle.
func (h *Handler) Update(bundle *Bundle) {
	h.mu.Lock()
	h.bundle = bundle
	h.mu.Unlock()
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	bundle := h.bundle
	h.mu.RUnlock()

	var body, contentType string
	switch strings.TrimPrefix(r.URL.Path, "/static/") {
	case "app.js":
		body, contentType = bundle.JS, "application/javascript; charset=utf-8"
	case "app.css":
		body, contentType = bundle.CSS, "text/css; charset=utf-8"
	default:
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", contentType)
	if h.dev {
		w.Header().Set("Cache-Control", "no-store")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	}
	_, _ = w.Write([]byte(body))
}
