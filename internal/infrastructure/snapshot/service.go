// Package snapshot autosaves the hosted layout after structural changes.
package snapshot

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ncruces/go-sqlite3"

	"github.com/bnema/docklayout/internal/application/port"
	"github.com/bnema/docklayout/internal/application/usecase"
	"github.com/bnema/docklayout/internal/domain/entity"
	"github.com/bnema/docklayout/internal/logging"
)

const (
	defaultIntervalMs = 2000
	defaultRetries    = 2
	defaultRetryDelay = 100 * time.Millisecond
)

// Service debounces layout saves. MarkDirty encodes the layout on the
// calling goroutine, which must own the layout; only the encoded snapshot
// crosses to the timer goroutine that stores it.
type Service struct {
	layouts  *usecase.ManageLayoutsUseCase
	provider port.LayoutProvider
	interval time.Duration

	retries    int
	retryDelay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending *entity.LayoutSnapshot
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewService creates an autosave service. A non-positive interval selects
// the default.
func NewService(layouts *usecase.ManageLayoutsUseCase, provider port.LayoutProvider, intervalMs int) *Service {
	if intervalMs <= 0 {
		intervalMs = defaultIntervalMs
	}
	return &Service{
		layouts:    layouts,
		provider:   provider,
		interval:   time.Duration(intervalMs) * time.Millisecond,
		retries:    defaultRetries,
		retryDelay: defaultRetryDelay,
	}
}

// Start enables timer-driven saves until Stop.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx, s.cancel = context.WithCancel(ctx)
	logging.FromContext(ctx).Debug().Dur("interval", s.interval).Msg("layout autosave started")
}

// Stop cancels pending timers and stores the last captured snapshot.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()
	return s.SaveNow(ctx)
}

// MarkDirty captures the current layout and schedules it to be stored
// once no further change arrives for the configured interval.
func (s *Service) MarkDirty(ctx context.Context) {
	root := s.provider.CurrentLayout()
	if root == nil {
		return
	}
	snap, err := s.layouts.Capture(ctx, usecase.SaveLayoutInput{Name: s.provider.LayoutName(), Root: root})
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("failed to capture layout")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = snap
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.interval, func() {
		s.mu.Lock()
		tctx := s.ctx
		s.mu.Unlock()
		if tctx == nil || tctx.Err() != nil {
			return
		}
		if err := s.store(tctx); err != nil {
			logging.FromContext(tctx).Error().Err(err).Msg("failed to autosave layout")
		}
	})
}

// Pending reports whether a captured snapshot waits to be stored.
func (s *Service) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// SaveNow stores the pending snapshot immediately.
func (s *Service) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	return s.store(ctx)
}

func (s *Service) store(ctx context.Context) error {
	s.mu.Lock()
	snap := s.pending
	s.pending = nil
	s.mu.Unlock()
	if snap == nil {
		return nil
	}

	err := s.layouts.Store(ctx, snap)
	for attempt := 1; attempt <= s.retries && err != nil && isTransient(err); attempt++ {
		logging.FromContext(ctx).Debug().Err(err).Int("attempt", attempt).Msg("retrying layout save")
		select {
		case <-ctx.Done():
			err = ctx.Err()
		case <-time.After(s.retryDelay):
			err = s.layouts.Store(ctx, snap)
		}
	}
	if err != nil {
		s.requeue(snap)
	}
	return err
}

// requeue keeps a failed snapshot unless a newer one was captured since.
func (s *Service) requeue(snap *entity.LayoutSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		s.pending = snap
	}
}

// isTransient matches SQLite lock contention between the autosave and
// another connection holding the database.
func isTransient(err error) bool {
	return errors.Is(err, sqlite3.BUSY) || errors.Is(err, sqlite3.LOCKED)
}
