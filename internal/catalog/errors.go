package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLoad indicates the catalog document could not be fetched.
	ErrLoad = errors.New("catalog load failed")
	// ErrParse indicates the catalog document is not valid JSON.
	ErrParse = errors.New("catalog parse failed")
	// ErrShape indicates the document lacks a "projects" array.
	ErrShape = errors.New(`catalog document has no "projects" array`)
	// ErrNotFound indicates a project identifier is unknown.
	ErrNotFound = errors.New("project not found")
)

// Issue is a single validation finding against one project record.
type Issue struct {
	Index   int    `json:"index"` // position in the projects array
	ID      string `json:"id"`    // project id if present
	Message string `json:"message"`
}

func (i Issue) String() string {
	label := i.ID
	if label == "" {
		label = fmt.Sprintf("#%d", i.Index+1)
	}
	return fmt.Sprintf("%s: %s", label, i.Message)
}

// ValidationError reports all findings from validating a catalog document.
// It blocks administrative imports rather than letting a bad document replace
// the live catalog.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 1 {
		return "catalog validation failed: " + e.Issues[0].String()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "catalog validation failed (%d issues):", len(e.Issues))
	for _, issue := range e.Issues {
		b.WriteString("\n  " + issue.String())
	}
	return b.String()
}
