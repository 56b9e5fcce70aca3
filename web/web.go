// Package web carries the frontend sources and page templates, embedded so
// the showcase binary is self-contained.
package web

import "embed"

// Sources holds the JS/CSS inputs for the asset bundler.
//
//go:embed src/*
var Sources embed.FS

// Templates holds the HTML page templates.
//
//go:embed templates/*
var Templates embed.FS
