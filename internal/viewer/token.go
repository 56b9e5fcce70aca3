package viewer

import "strings"

const projectTokenPrefix = "project/"

// ProjectToken encodes a project identifier as a location token. Identifiers
// are constrained to [a-z0-9-]+ so no escaping is needed.
func ProjectToken(id string) string {
	return projectTokenPrefix + id
}

// ParseProjectToken extracts the identifier from a project deep-link token.
// ok is false for section tokens and for a bare "project/".
func ParseProjectToken(token string) (id string, ok bool) {
	id, found := strings.CutPrefix(token, projectTokenPrefix)
	if !found || id == "" {
		return "", false
	}
	return id, true
}
