package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ticuv/showcase/internal/backup"
)

// NewBackupCommand creates the backup command.
func NewBackupCommand() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Back up the projects catalog",
		Long: `Copy the catalog document into the backups directory with a timestamped
name. Only the newest backups are kept; older ones are pruned.`,
		Example: `  # Create a backup
  showcase backup

  # List existing backups
  showcase backup --list`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBackup(cmd, list)
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List existing backups instead of creating one")

	return cmd
}

func runBackup(cmd *cobra.Command, list bool) error {
	cc := NewCommandContextWithoutCatalog(cmd)
	w := cmd.OutOrStdout()

	if list {
		names, err := backup.List(cc.Cfg.BackupsDir)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Fprintln(w, "(no backups)")
			return nil
		}
		for _, name := range names {
			fmt.Fprintln(w, name)
		}
		return nil
	}

	catalogPath := catalogPathForWrites(cc.Cfg)
	if catalogPath == "" {
		return fmt.Errorf("catalog %s is not a local file and cannot be backed up", cc.Cfg.Catalog)
	}

	dest, err := backup.Create(catalogPath, cc.Cfg.BackupsDir, time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Backup written to %s\n", dest)
	return nil
}
