package commands

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ticuv/showcase/internal/query"
)

// ListOptions holds options for the list command.
type ListOptions struct {
	Category string
	Sort     string
	Search   string
	JSON     bool
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	opts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog projects",
		Long: `List the projects in the catalog, with the same filtering, sorting, and
search the site offers.`,
		Example: `  # List everything
  showcase list

  # Only 3d projects, oldest first
  showcase list --category 3d --sort oldest

  # Search, as JSON
  showcase list --search shader --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Category, "category", query.FilterAll, "Category filter")
	cmd.Flags().StringVar(&opts.Sort, "sort", query.SortFeatured, "Sort order (featured|latest|oldest)")
	cmd.Flags().StringVar(&opts.Search, "search", "", "Search term")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")

	return cmd
}

func runList(cmd *cobra.Command, opts *ListOptions) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	state := query.State{
		Filter: opts.Category,
		Sort:   opts.Sort,
		Search: opts.Search,
	}
	result := query.Run(cc.Store.Snapshot(), state)

	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if len(result) == 0 {
		fmt.Fprintln(w, "(0 projects)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Title", "Category", "Year", "Featured"})
	for _, p := range result {
		featured := ""
		if p.Featured {
			featured = "yes"
		}
		t.AppendRow(table.Row{p.ID, p.Title, p.Category, p.Year, featured})
	}
	t.Render()
	fmt.Fprintf(w, "(%d projects)\n", len(result))
	return nil
}
