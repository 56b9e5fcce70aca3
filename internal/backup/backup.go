// Package backup creates timestamped copies of the catalog document and
// prunes old ones.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Keep is how many backups survive pruning.
const Keep = 10

const (
	prefix = "projects_"
	ext    = ".json"
)

// Create copies the catalog document into dir with a timestamped name,
// creating dir if needed, and prunes all but the newest Keep backups.
// It returns the path of the new backup.
func Create(catalogPath, dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	data, err := os.ReadFile(catalogPath)
	if err != nil {
		return "", fmt.Errorf("read catalog: %w", err)
	}

	name := prefix + now.UTC().Format("2006-01-02_15-04-05") + ext
	dest := filepath.Join(dir, name)
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}

	if err := prune(dir); err != nil {
		return dest, fmt.Errorf("prune backups: %w", err)
	}
	return dest, nil
}

// List returns backup file names in dir, newest first.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), prefix) && strings.HasSuffix(e.Name(), ext) {
			names = append(names, e.Name())
		}
	}
	// Timestamped names sort lexically; reverse for newest first.
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

func prune(dir string) error {
	names, err := List(dir)
	if err != nil {
		return err
	}
	for _, name := range names[min(Keep, len(names)):] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}
