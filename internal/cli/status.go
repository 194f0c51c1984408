package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillcoder/minecraft-compose/internal/logic/status"
)

var errOutputFormat = errors.New("unknown output format")

func newStatusCommand(o *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the live state of the server container",
		Args:  cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			if output != "text" && output != "json" {
				return fmt.Errorf("%w %q", errOutputFormat, output)
			}

			return nil
		},
		RunE: o.withEnvironment(func(ctx context.Context, env *environment) error {
			report, err := status.New(env.service, env.service.Identity()).Report(ctx)
			if err != nil {
				return err
			}

			if output == "json" {
				return status.RenderJSON(o.streams.Out, report)
			}

			return status.Render(o.streams.Out, report)
		}),
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or json")

	return cmd
}
