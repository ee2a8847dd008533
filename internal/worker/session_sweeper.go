package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// ExpiredSessionDeleter is the subset of the session store used by the sweeper.
type ExpiredSessionDeleter interface {
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

// SessionSweeper periodically drops expired sessions from the store.
type SessionSweeper struct {
	sessions ExpiredSessionDeleter
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewSessionSweeper constructs a sweeper ticking every interval.
func NewSessionSweeper(sessions ExpiredSessionDeleter, interval time.Duration, logger *slog.Logger) *SessionSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Start launches the background loop. Calling Start on a running sweeper is a no-op.
func (s *SessionSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(runCtx)
}

// Stop cancels the loop and waits for it to exit.
func (s *SessionSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *SessionSweeper) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SessionSweeper) sweep(ctx context.Context) {
	removed, err := s.sessions.DeleteExpired(ctx, s.now())
	if err != nil {
		s.logger.Error("sweep expired sessions failed", slog.String("error", err.Error()))
		return
	}
	if removed > 0 {
		s.logger.Debug("expired sessions removed", slog.Int("count", removed))
	}
}
