package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillcoder/minecraft-compose/internal/infra/terminal"
	"github.com/skillcoder/minecraft-compose/internal/logic/console"
)

func newConsoleCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Attach to the server console",
		Long: "Attach the terminal to the server console. The detach key sequence " +
			"(console.detach_keys, default ctrl-p,ctrl-q) leaves the server running.",
		Args: cobra.NoArgs,
		RunE: o.withEnvironment(func(ctx context.Context, env *environment) error {
			session, err := console.New(
				o.logger,
				env.service,
				terminal.New(o.streams.In, o.streams.Out),
				env.cfg.Console.DetachKeys,
			)
			if err != nil {
				return err
			}

			name := env.service.Identity().Name()
			o.logger.InfoContext(ctx, "attaching to server console", "server", name, "detach_keys", session.DetachKeys())

			result, err := session.Run(ctx)
			if err != nil {
				return err
			}

			switch result.Reason {
			case console.ReasonRemoteClosed:
				fmt.Fprintf(o.streams.Err, "\r\nconsole closed by %s, server is %s\r\n", name, result.State)
			default:
				fmt.Fprintf(o.streams.Err, "\r\ndetached from %s, server keeps running\r\n", name)
			}

			return nil
		}),
	}
}
