package session

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	DefaultSweepSpec = "@every 5m"
	DefaultIdleTTL   = 2 * time.Hour
)

// Sweeper evicts idle sessions on a cron schedule.
type Sweeper struct {
	registry *Registry
	idle     time.Duration
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewSweeper schedules registry sweeps with spec. Empty spec and non-positive
// idle fall back to the defaults.
func NewSweeper(registry *Registry, spec string, idle time.Duration) (*Sweeper, error) {
	if spec == "" {
		spec = DefaultSweepSpec
	}
	if idle <= 0 {
		idle = DefaultIdleTTL
	}
	s := &Sweeper{
		registry: registry,
		idle:     idle,
		cron:     cron.New(),
		logger:   zap.L().Named("session"),
	}
	if _, err := s.cron.AddFunc(spec, s.sweep); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", spec, err)
	}
	return s, nil
}

func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Sweeper) sweep() {
	if n := s.registry.Sweep(s.idle); n > 0 {
		s.logger.Info("swept idle sessions", zap.Int("removed", n), zap.Int("remaining", s.registry.Len()))
	}
}
