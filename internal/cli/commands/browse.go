package commands

import (
	"github.com/spf13/cobra"

	"github.com/ticuv/showcase/internal/tui"
)

// NewBrowseCommand creates the browse command.
func NewBrowseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog in the terminal",
		Long: `Open an interactive terminal browser over the projects catalog.

The browser offers the same search, category filters, and sort orders as the
site, plus a detail view with wrap-around previous/next navigation.`,
		Example: `  # Browse the configured catalog
  showcase browse

  # Browse a remote catalog
  showcase browse --catalog https://example.com/projects.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd)
		},
	}

	return cmd
}

func runBrowse(cmd *cobra.Command) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	return tui.Run(cc.Store.Snapshot(), cc.Cfg.Title)
}
