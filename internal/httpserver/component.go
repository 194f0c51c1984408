package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/skillcoder/minecraft-compose/internal/infra/shutdown"
)

const (
	readTimeout       = 3 * time.Second
	readHeaderTimeout = 3 * time.Second
	writeTimeout      = 5 * time.Second
	idleTimeout       = 60 * time.Second
	maxHeaderBytes    = 1 << 12 // 4kb
)

var errNotReady = errors.New("not ready")

// listener runs one http.Server as a serve-mode component.
type listener struct {
	name       string
	logger     *slog.Logger
	port       string
	server     *http.Server
	addr       atomic.Value
	ready      chan struct{}
	inShutdown atomic.Bool
}

func newListener(name string, logger *slog.Logger, port string) *listener {
	return &listener{
		name:   name,
		logger: logger.With("component", name),
		port:   port,
		ready:  make(chan struct{}),
	}
}

var _ shutdown.Shutdowner = (*listener)(nil)

func (l *listener) Name() string {
	return l.name
}

// Ping returns nil once the listener is open.
func (l *listener) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-l.ready:
		return nil
	default:
		return fmt.Errorf("%s: %w", l.name, errNotReady)
	}
}

// Ready returns a channel that is closed once the listener is open.
func (l *listener) Ready() <-chan struct{} {
	return l.ready
}

// Addr returns the bound address, empty before the listener opens.
func (l *listener) Addr() string {
	addr, _ := l.addr.Load().(string)

	return addr
}

// serve opens the port and serves handler in a goroutine. A listen failure
// is returned to the caller.
func (l *listener) serve(ctx context.Context, handler http.Handler) error {
	if l.inShutdown.Load() {
		l.logger.InfoContext(ctx, "shutting down, skipping start")

		return nil
	}

	addr := ":" + l.port
	l.server = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		MaxHeaderBytes:    maxHeaderBytes,
	}

	lc := &net.ListenConfig{
		KeepAliveConfig: net.KeepAliveConfig{
			Enable: true,
		},
	}

	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s tcp: %w", l.name, err)
	}

	l.addr.Store(ln.Addr().String())
	l.logger.InfoContext(ctx, "listening", "addr", ln.Addr().String())

	go func() {
		close(l.ready)

		if err := l.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.logger.ErrorContext(ctx, "serve failed", "error", err)
		}
	}()

	return nil
}

// Shutdown drains in-flight requests and closes the listener.
func (l *listener) Shutdown(ctx context.Context) error {
	if !l.inShutdown.CompareAndSwap(false, true) {
		l.logger.ErrorContext(ctx, "already shutting down, skipping shutdown")

		return nil
	}

	if l.server == nil {
		return nil
	}

	if err := l.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s shutdown: %w", l.name, err)
	}

	l.logger.InfoContext(ctx, "closed properly")

	return nil
}
