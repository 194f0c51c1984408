package pinger

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/skillcoder/minecraft-compose/internal/infra/shutdown"
)

const (
	serviceName        = "pinger-service"
	defaultPingTimeout = time.Second
)

// Status is the outcome history of one pinger.
type Status struct {
	Name        string        `json:"name"`
	LastRun     time.Time     `json:"lastRun"`
	LastLatency time.Duration `json:"lastLatency"`
	LastError   string        `json:"lastError,omitempty"`
	Successes   uint64        `json:"successes"`
	Failures    uint64        `json:"failures"`
}

// OK reports whether the last ping ran and succeeded.
func (s Status) OK() bool {
	return !s.LastRun.IsZero() && s.LastError == ""
}

type entry struct {
	pinger  Pinger
	timeout time.Duration
	status  Status
}

// Service pings registered components at an interval and keeps their last outcome.
type Service struct {
	logger     *slog.Logger
	interval   time.Duration
	mu         sync.RWMutex
	entries    map[string]*entry
	ready      chan struct{}
	inShutdown atomic.Bool
	doneCh     chan struct{}
}

func New(logger *slog.Logger, interval time.Duration) *Service {
	return &Service{
		logger:   logger.With("component", serviceName),
		interval: interval,
		entries:  make(map[string]*entry),
		ready:    make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

var _ shutdown.Shutdowner = (*Service)(nil)

func (s *Service) Name() string {
	return serviceName
}

// Register adds a pinger. Names must be unique.
func (s *Service) Register(pinger Pinger) error {
	if pinger == nil {
		return fmt.Errorf("register pinger: %w", ErrNilPinger)
	}

	name := pinger.Name()

	timeout := defaultPingTimeout
	if tp, ok := pinger.(timeoutPinger); ok && tp.PingerTimeout() > 0 {
		timeout = tp.PingerTimeout()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[name]; exists {
		return fmt.Errorf("register pinger %s: %w", name, ErrPingerAlreadyRegistered)
	}

	s.entries[name] = &entry{
		pinger:  pinger,
		timeout: timeout,
		status:  Status{Name: name},
	}

	s.logger.Debug("pinger registered", "pinger", name, "timeout", timeout)

	return nil
}

// Start runs the first round and then one round per interval until ctx is
// done. It does not block.
func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		return nil
	}

	go s.loop(ctx)

	return nil
}

// Ready is closed once every pinger has run at least once.
func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown waits for the loop started by Start to observe its context.
func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		return nil
	}

	select {
	case <-s.doneCh:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait for ping loop: %w", ctx.Err())
	}
}

// Snapshot returns a copy of every pinger status, sorted by name.
func (s *Service) Snapshot() []Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Status, 0, len(s.entries))
	for _, e := range s.entries {
		result = append(result, e.status)
	}

	slices.SortFunc(result, func(a, b Status) int {
		return cmp.Compare(a.Name, b.Name)
	})

	return result
}

// Check returns nil when every registered pinger succeeded on its last run.
func (s *Service) Check() error {
	for _, st := range s.Snapshot() {
		if st.LastRun.IsZero() {
			return fmt.Errorf("%s: %w", st.Name, ErrNotPinged)
		}

		if st.LastError != "" {
			return fmt.Errorf("%s: %s", st.Name, st.LastError)
		}
	}

	return nil
}

func (s *Service) loop(ctx context.Context) {
	defer close(s.doneCh)

	s.round(ctx)
	close(s.ready)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for !s.inShutdown.Load() {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.round(ctx)
		}
	}
}

// round pings every registered pinger concurrently, each under its own timeout.
func (s *Service) round(ctx context.Context) {
	s.mu.RLock()
	entries := make([]*entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	var wg conc.WaitGroup

	for _, e := range entries {
		wg.Go(func() {
			pingCtx, cancel := context.WithTimeout(ctx, e.timeout)
			defer cancel()

			start := time.Now()
			err := e.pinger.Ping(pingCtx)
			latency := time.Since(start)

			s.record(e, start, latency, err)

			s.logger.DebugContext(ctx, "pinged",
				"pinger", e.status.Name,
				"latency", latency,
				"error", err,
			)
		})
	}

	wg.Wait()
}

func (s *Service) record(e *entry, at time.Time, latency time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.status.LastRun = at
	e.status.LastLatency = latency

	if err != nil {
		e.status.LastError = err.Error()
		e.status.Failures++

		return
	}

	e.status.LastError = ""
	e.status.Successes++
}
