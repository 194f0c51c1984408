package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skillcoder/minecraft-compose/internal/adapters/outbound/filesystem"
	"github.com/skillcoder/minecraft-compose/internal/config"
	"github.com/skillcoder/minecraft-compose/internal/logic/datapacks"
)

func newDatapacksCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datapacks",
		Short: "Manage the datapacks of the configured world",
		Args:  cobra.NoArgs,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "sync",
		Short: "Install configured datapacks into the world and remove the rest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(o.file)
			if err != nil {
				return err
			}

			svc := datapacks.New(o.logger, filesystem.NewOS(), cfg.DatapackSourceDir(), cfg.DatapackInstallDir())

			result, err := svc.Sync(cmd.Context(), cfg.Datapacks)
			if err != nil {
				return err
			}

			if o.quiet {
				return nil
			}

			printPacks(o, "installed", result.Installed)
			printPacks(o, "removed", result.Removed)
			printPacks(o, "skipped", result.Skipped)

			return nil
		},
	})

	return cmd
}

func printPacks(o *options, verb string, names []string) {
	if len(names) == 0 {
		return
	}

	fmt.Fprintf(o.streams.Out, "%s: %s\n", verb, strings.Join(names, ", "))
}
