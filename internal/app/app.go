package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/skillcoder/minecraft-compose/internal/config"
	"github.com/skillcoder/minecraft-compose/internal/httpserver"
	"github.com/skillcoder/minecraft-compose/internal/infra/appstate"
	"github.com/skillcoder/minecraft-compose/internal/infra/cronparser"
	"github.com/skillcoder/minecraft-compose/internal/infra/pinger"
	"github.com/skillcoder/minecraft-compose/internal/logic/lifecycle"
	"github.com/skillcoder/minecraft-compose/internal/logic/scheduler"
	"github.com/skillcoder/minecraft-compose/internal/logic/status"
)

const (
	pingInterval       = 15 * time.Second
	runtimePingTimeout = 5 * time.Second
	runtimePingerName  = "container-runtime"
)

// App is the long-running serve mode: status and metrics endpoints, a
// container state poller and the optional restart schedule.
type App struct {
	logger     *slog.Logger
	appState   appstater
	components []component
	poller     component
	pingers    []pinger.Pinger
}

// New wires the serve mode components around the lifecycle service.
func New(logger *slog.Logger, cfg *config.Config, service lifecycleService) *App {
	pingerSvc := pinger.New(logger, pingInterval)
	appState := appstate.New(logger, time.Now(), pingerSvc)
	reporter := status.New(service, service.Identity())

	components := []component{
		httpserver.NewMetricsServer(logger, nil, cfg.Serve.MetricsPort),
		httpserver.New(logger, appState, reporter, cfg.Serve.HTTPPort),
	}

	if cfg.Schedule.Restart != "" {
		components = append(components, scheduler.New(
			logger,
			service,
			cronparser.New(),
			service.Identity().Name(),
			cfg.Schedule.Restart,
			cfg.Schedule.Timezone,
		))
	}

	return &App{
		logger:     logger,
		appState:   appState,
		components: components,
		poller:     pingerSvc,
		pingers:    []pinger.Pinger{&runtimePinger{querier: service}},
	}
}

// Run starts every component, marks the application running once all are
// ready and blocks until ctx is done. Components then shut down in reverse
// start order, the poller first.
func (a *App) Run(originCtx context.Context) error {
	ctx, cancel := context.WithCancel(originCtx)
	defer cancel()

	if err := a.appState.SetStarting(ctx); err != nil {
		return fmt.Errorf("set starting: %w", err)
	}

	pingers := slices.Clone(a.pingers)
	for _, c := range a.components {
		if p, ok := c.(pinger.Pinger); ok {
			pingers = append(pingers, p)
		}
	}

	for _, p := range pingers {
		if err := a.appState.RegisterPinger(p); err != nil {
			return fmt.Errorf("register pinger: %w", err)
		}
	}

	ready := make([]<-chan struct{}, 0, len(a.components))

	for _, c := range a.components {
		if err := c.Start(ctx); err != nil {
			cancel()

			return a.abort(originCtx, fmt.Errorf("start %s: %w", c.Name(), err))
		}

		a.appState.RegisterShutdowner(c)
		ready = append(ready, c.Ready())
	}

	select {
	case <-ctx.Done():
		return a.appState.Shutdown(originCtx)
	case <-allChannelsClose(ctx, a.logger, ready...):
	}

	// The first ping round runs before the poller reports ready, so it starts
	// after the components it pings.
	if err := a.poller.Start(ctx); err != nil {
		cancel()

		return a.abort(originCtx, fmt.Errorf("start %s: %w", a.poller.Name(), err))
	}

	a.appState.RegisterShutdowner(a.poller)

	select {
	case <-ctx.Done():
		return a.appState.Shutdown(originCtx)
	case <-a.poller.Ready():
	}

	if err := a.appState.SetRunning(ctx); err != nil {
		cancel()

		return a.abort(originCtx, fmt.Errorf("set running: %w", err))
	}

	<-ctx.Done()

	a.logger.InfoContext(originCtx, "serve stopping")

	return a.appState.Shutdown(originCtx)
}

func (a *App) abort(ctx context.Context, cause error) error {
	if err := a.appState.Shutdown(ctx); err != nil {
		a.logger.ErrorContext(ctx, "shutdown after failed start", "reason", err)
	}

	return cause
}

// allChannelsClose returns a channel closed once every input channel is
// closed or ctx is done.
func allChannelsClose(ctx context.Context, logger *slog.Logger, chans ...<-chan struct{}) <-chan struct{} {
	out := make(chan struct{})

	var wg sync.WaitGroup

	for _, ch := range chans {
		wg.Add(1)

		go func() {
			defer wg.Done()

			select {
			case <-ch:
			case <-ctx.Done():
			}
		}()
	}

	go func() {
		wg.Wait()

		if ctx.Err() != nil {
			logger.DebugContext(ctx, "stopped waiting for components", "reason", ctx.Err())
		}

		close(out)
	}()

	return out
}

// runtimePinger polls the container state so readiness tracks the runtime
// and the state gauge stays current between requests.
type runtimePinger struct {
	querier interface {
		StatusQuery(ctx context.Context) (lifecycle.State, error)
	}
}

func (p *runtimePinger) Name() string { return runtimePingerName }

func (p *runtimePinger) PingerTimeout() time.Duration { return runtimePingTimeout }

func (p *runtimePinger) Ping(ctx context.Context) error {
	if _, err := p.querier.StatusQuery(ctx); err != nil {
		return fmt.Errorf("container state: %w", err)
	}

	return nil
}
