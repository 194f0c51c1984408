package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/skillcoder/minecraft-compose/internal/logic/lifecycle"
	"github.com/skillcoder/minecraft-compose/internal/logic/status"
)

func newUpCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Create and start the server as needed",
		Args:  cobra.NoArgs,
		RunE: o.withEnvironment(func(ctx context.Context, env *environment) error {
			state, err := env.service.UpCommand(ctx)
			if err != nil {
				return err
			}

			return o.printState(env, state)
		}),
	}
}

func newDownCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Stop and remove the server container as needed",
		Args:  cobra.NoArgs,
		RunE: o.withEnvironment(func(ctx context.Context, env *environment) error {
			state, err := env.service.DownCommand(ctx)
			if err != nil {
				return err
			}

			return o.printState(env, state)
		}),
	}
}

func newRestartCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "restart",
		Short: "Stop and start a running server",
		Args:  cobra.NoArgs,
		RunE: o.withEnvironment(func(ctx context.Context, env *environment) error {
			state, err := env.service.RestartCommand(ctx)
			if err != nil {
				return err
			}

			return o.printState(env, state)
		}),
	}
}

func newCreateCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create the server container without starting it",
		Args:  cobra.NoArgs,
		RunE: o.withEnvironment(func(ctx context.Context, env *environment) error {
			return env.service.CreateCommand(ctx)
		}),
	}
}

func newDestroyCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "destroy",
		Short: "Remove a stopped server container",
		Args:  cobra.NoArgs,
		RunE: o.withEnvironment(func(ctx context.Context, env *environment) error {
			return env.service.DestroyCommand(ctx)
		}),
	}
}

func newStartCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a created or stopped server",
		Args:  cobra.NoArgs,
		RunE: o.withEnvironment(func(ctx context.Context, env *environment) error {
			return env.service.StartCommand(ctx)
		}),
	}
}

func newStopCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop a running server, killing it after the grace period",
		Args:  cobra.NoArgs,
		RunE: o.withEnvironment(func(ctx context.Context, env *environment) error {
			return env.service.StopCommand(ctx)
		}),
	}
}

// printState prints the state a composite settled in.
func (o *options) printState(env *environment, state lifecycle.State) error {
	if o.quiet {
		return nil
	}

	identity := env.service.Identity()

	return status.Render(o.streams.Out, status.Report{
		Name:  identity.Name(),
		Host:  identity.Host(),
		Port:  identity.Port(),
		State: state,
	})
}
