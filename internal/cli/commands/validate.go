package commands

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ticuv/showcase/internal/catalog"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the projects catalog",
		Long: `Validate every record in the projects catalog.

Checks identifier format and uniqueness, category membership, year range,
required fields, tags, and URL fields. Exits non-zero when any record fails.`,
		Example: `  # Validate the configured catalog
  showcase validate

  # Validate a specific file
  showcase validate --catalog ./data/projects.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd)
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command) error {
	cc := NewCommandContextWithoutCatalog(cmd)
	w := cmd.OutOrStdout()

	raw, err := catalog.SourceFor(cc.Cfg.Catalog).Fetch(cmd.Context())
	if err != nil {
		return err
	}
	projects, err := catalog.Decode(raw)
	if err != nil {
		return err
	}

	err = catalog.Validate(projects)
	var verr *catalog.ValidationError
	if errors.As(err, &verr) {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"#", "ID", "Problem"})
		for _, issue := range verr.Issues {
			id := issue.ID
			if id == "" {
				id = "-"
			}
			t.AppendRow(table.Row{issue.Index + 1, id, issue.Message})
		}
		t.Render()
		return fmt.Errorf("%d of %d projects failed validation", failedCount(verr), len(projects))
	}
	if err != nil {
		return err
	}

	s := catalog.Summarize(projects)
	fmt.Fprintf(w, "Catalog OK: %d projects (%d featured)\n", s.Total, s.Featured)
	for _, cat := range catalog.Categories {
		if n := s.ByCategory[cat]; n > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat, n)
		}
	}
	return nil
}

// failedCount counts distinct records with at least one issue.
func failedCount(verr *catalog.ValidationError) int {
	seen := make(map[int]bool)
	for _, issue := range verr.Issues {
		seen[issue.Index] = true
	}
	return len(seen)
}
