package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillcoder/minecraft-compose/internal/adapters/outbound/docker"
	"github.com/skillcoder/minecraft-compose/internal/config"
	"github.com/skillcoder/minecraft-compose/internal/infra/logging"
	"github.com/skillcoder/minecraft-compose/internal/infra/shutdown"
	"github.com/skillcoder/minecraft-compose/internal/logic/lifecycle"
)

const defaultConfigFile = "mcc.toml"

var errLogFormat = errors.New("unknown log format")

// IOStreams are the process standard streams.
type IOStreams struct {
	In  *os.File
	Out io.Writer
	Err io.Writer
}

// RuntimeFactory connects to the container runtime. The closer releases the
// connection and may be nil.
type RuntimeFactory func(logger *slog.Logger, progress io.Writer) (lifecycle.Runtime, io.Closer, error)

type options struct {
	streams    IOStreams
	newRuntime RuntimeFactory
	onLogger   func(logger *slog.Logger)

	file      string
	quiet     bool
	verbose   int
	debug     bool
	logFormat string

	logger *slog.Logger
}

// Execute runs mcc with args and returns the process exit code. The first
// signal received on signals cancels the running command.
func Execute(ctx context.Context, signals <-chan os.Signal, args []string) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := &options{
		streams:    IOStreams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr},
		newRuntime: dockerRuntime,
		onLogger: func(logger *slog.Logger) {
			go shutdown.New(logger, signals).HandleSignals(ctx, cancel)
		},
	}

	return run(ctx, opts, args)
}

func run(ctx context.Context, opts *options, args []string) int {
	root := newRootCommand(opts)
	root.SetArgs(args)
	root.SetOut(opts.streams.Out)
	root.SetErr(opts.streams.Err)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	fmt.Fprintf(opts.streams.Err, "mcc: %v\n", err)

	return ExitCode(err)
}

func newRootCommand(o *options) *cobra.Command {
	root := &cobra.Command{
		Use:           "mcc",
		Short:         "Manage a containerized Minecraft server from a TOML file",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return o.setupLogging()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&o.file, "file", "f", defaultConfigFile, "path to the server config file")
	flags.BoolVarP(&o.quiet, "quiet", "q", false, "only log errors")
	flags.CountVarP(&o.verbose, "verbose", "v", "log more (repeatable)")
	flags.BoolVar(&o.debug, "debug", false, "debug logging with source locations")
	flags.StringVar(&o.logFormat, "log-format", "text", "log format: text or json")
	_ = flags.MarkHidden("debug")

	root.AddCommand(
		newUpCommand(o),
		newDownCommand(o),
		newCreateCommand(o),
		newDestroyCommand(o),
		newStartCommand(o),
		newStopCommand(o),
		newRestartCommand(o),
		newStatusCommand(o),
		newConsoleCommand(o),
		newServeCommand(o),
		newDatapacksCommand(o),
	)

	return root
}

func (o *options) setupLogging() error {
	switch o.logFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w %q", errLogFormat, o.logFormat)
	}

	o.logger = logging.New(o.streams.Err, o.logFormat, logging.Level(o.debug, o.quiet, o.verbose), o.debug)

	if o.onLogger != nil {
		o.onLogger(o.logger)
	}

	return nil
}

func dockerRuntime(logger *slog.Logger, progress io.Writer) (lifecycle.Runtime, io.Closer, error) {
	cli, err := docker.NewClient()
	if err != nil {
		return nil, nil, err
	}

	return docker.New(logger, cli, progress), cli, nil
}

// environment is what a command needs to act on the configured server.
type environment struct {
	cfg     *config.Config
	service *lifecycle.Service
	closer  io.Closer
}

func (o *options) environment() (*environment, error) {
	cfg, err := config.Load(o.file)
	if err != nil {
		return nil, err
	}

	identity, err := cfg.Identity()
	if err != nil {
		return nil, err
	}

	var progress io.Writer = io.Discard
	if !o.quiet {
		progress = o.streams.Err
	}

	runtime, closer, err := o.newRuntime(o.logger, progress)
	if err != nil {
		return nil, err
	}

	return &environment{
		cfg:     cfg,
		service: lifecycle.New(o.logger, runtime, identity, cfg.LaunchParams(), cfg.Container.StopTimeout),
		closer:  closer,
	}, nil
}

// withEnvironment loads the config and runtime for fn and releases them after.
func (o *options) withEnvironment(
	fn func(ctx context.Context, env *environment) error,
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		env, err := o.environment()
		if err != nil {
			return err
		}

		defer func() {
			if env.closer == nil {
				return
			}

			if err := env.closer.Close(); err != nil {
				o.logger.Debug("close runtime connection", "reason", err)
			}
		}()

		return fn(cmd.Context(), env)
	}
}
