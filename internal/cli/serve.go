package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/skillcoder/minecraft-compose/internal/app"
)

func newServeCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve status and metrics endpoints and run scheduled restarts",
		Long: "Run until interrupted, exposing /-/healthz, /-/readyz and /-/status " +
			"on serve.http_port and /metrics on serve.metrics_port. When " +
			"schedule.restart is set the running server is restarted on that cron schedule.",
		Args: cobra.NoArgs,
		RunE: o.withEnvironment(func(ctx context.Context, env *environment) error {
			return app.New(o.logger, env.cfg, env.service).Run(ctx)
		}),
	}
}
