package app

import (
	"context"
	"findash/internal/domain"
	"findash/internal/logger"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Refresher interface {
	Refresh(ctx context.Context, period domain.Period) RefreshResult
}

// DashboardStore keeps the most recent refresh for readers.
type DashboardStore struct {
	mu     sync.RWMutex
	latest *RefreshResult
}

func (s *DashboardStore) Put(result RefreshResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = &result
}

func (s *DashboardStore) Latest() (*RefreshResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return nil, false
	}
	out := *s.latest
	return &out, true
}

// RefreshScheduler runs a refresh on a cron schedule and publishes the
// result to the store. A tick is skipped while the previous one runs.
type RefreshScheduler struct {
	Refresher Refresher
	Store     *DashboardStore
	Period    domain.Period

	cron *cron.Cron
	log  *zap.SugaredLogger
}

func NewRefreshScheduler(refresher Refresher, store *DashboardStore, period domain.Period) *RefreshScheduler {
	return &RefreshScheduler{
		Refresher: refresher,
		Store:     store,
		Period:    period,
		cron:      cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		log:       logger.New().With("component", "scheduler"),
	}
}

// Schedule registers the refresh job. Examples:
//   - "@every 15m"
//   - "*/5 9-17 * * MON-FRI"
func (s *RefreshScheduler) Schedule(spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.RunNow(context.Background())
	})
	if err != nil {
		return &domain.ConfigError{Source: "refreshSchedule", Err: err}
	}
	s.log.Infow("refresh job registered", "schedule", spec, "period", s.Period)
	return nil
}

// RunNow refreshes immediately, outside the schedule.
func (s *RefreshScheduler) RunNow(ctx context.Context) RefreshResult {
	ctx = logger.NewContext(ctx, s.log)
	result := s.Refresher.Refresh(ctx, s.Period)
	s.Store.Put(result)
	s.log.Debugw("published refresh", "runID", result.RunID.String(), "diagnostics", len(result.Diagnostics))
	return result
}

func (s *RefreshScheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started")
}

func (s *RefreshScheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
}
