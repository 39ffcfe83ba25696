package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/motionhq/motion/api/internal/model"
)

// DefaultMonitorSchedule probes the backend once a minute
const DefaultMonitorSchedule = "@every 1m"

// HealthProber is satisfied by service.BackendClient
type HealthProber interface {
	CheckHealth(ctx context.Context) (*model.HealthCheckResult, error)
}

// BackendGauge records the probe outcome, e.g. middleware.Metrics
type BackendGauge interface {
	SetBackendUp(up bool)
}

// BackendMonitor periodically probes the AI backend's /health endpoint
// - Updates the backend_up gauge after every probe
// - Logs only when reachability changes
type BackendMonitor struct {
	prober   HealthProber
	gauge    BackendGauge
	schedule string
	timeout  time.Duration
	logger   *slog.Logger

	cron    *cron.Cron
	mu      sync.Mutex
	running bool
	// last is nil until the first probe completes
	last *bool
}

// BackendMonitorConfig holds the monitor's dependencies
type BackendMonitorConfig struct {
	Prober   HealthProber
	Gauge    BackendGauge  // optional
	Schedule string        // cron spec (default "@every 1m")
	Timeout  time.Duration // per-probe timeout (default 10s)
	Logger   *slog.Logger  // default slog.Default()
}

// NewBackendMonitor creates a monitor. The schedule is parsed eagerly so a
// bad spec fails at startup.
func NewBackendMonitor(cfg BackendMonitorConfig) (*BackendMonitor, error) {
	if cfg.Schedule == "" {
		cfg.Schedule = DefaultMonitorSchedule
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	m := &BackendMonitor{
		prober:   cfg.Prober,
		gauge:    cfg.Gauge,
		schedule: cfg.Schedule,
		timeout:  cfg.Timeout,
		logger:   cfg.Logger.With(slog.String("job", "backend_monitor")),
		cron:     cron.New(),
	}

	if _, err := m.cron.AddFunc(cfg.Schedule, m.probe); err != nil {
		return nil, fmt.Errorf("invalid backend monitor schedule %q: %w", cfg.Schedule, err)
	}
	return m, nil
}

// Start begins scheduled probing
func (m *BackendMonitor) Start() {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return
	}
	m.running = true
	m.mu.Unlock()

	m.cron.Start()
	m.logger.Info("backend monitor started", slog.String("schedule", m.schedule))
}

// Stop halts scheduling and waits for a running probe to finish
func (m *BackendMonitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	m.mu.Unlock()

	<-m.cron.Stop().Done()
	m.logger.Info("backend monitor stopped")
}

// IsRunning returns whether the monitor is scheduled
func (m *BackendMonitor) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

func (m *BackendMonitor) probe() {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	_, _ = m.RunOnce(ctx)
}

// RunOnce performs a single probe and reports whether the backend is up
func (m *BackendMonitor) RunOnce(ctx context.Context) (bool, error) {
	result, err := m.prober.CheckHealth(ctx)
	up := err == nil && result != nil && result.Success

	if m.gauge != nil {
		m.gauge.SetBackendUp(up)
	}

	m.mu.Lock()
	changed := m.last == nil || *m.last != up
	m.last = &up
	m.mu.Unlock()

	if changed {
		attrs := []any{slog.Bool("up", up)}
		if result != nil {
			attrs = append(attrs, slog.String("backend_url", result.BackendURL), slog.Int("status", result.Status))
		}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}
		if up {
			m.logger.InfoContext(ctx, "backend reachable", attrs...)
		} else {
			m.logger.WarnContext(ctx, "backend unreachable", attrs...)
		}
	}

	return up, err
}

// LastStatus returns the latest probe result and whether one has run
func (m *BackendMonitor) LastStatus() (up, known bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.last == nil {
		return false, false
	}
	return *m.last, true
}
