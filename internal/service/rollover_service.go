package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kyd-academy/feedback-api/pkg/config"
)

type rolloverStore interface {
	LastAccessDate(ctx context.Context) (string, error)
	SetLastAccessDate(ctx context.Context, date string) error
	PruneOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// RolloverService watches for the calendar day to change and prunes expired
// feedback records when it does. The stored last-access marker makes the
// rollover survive restarts.
type RolloverService struct {
	records rolloverStore
	cfg     config.RecordsConfig
	logger  *zap.Logger
	now     func() time.Time
}

// NewRolloverService constructs RolloverService. A nil clock falls back to
// time.Now.
func NewRolloverService(records rolloverStore, cfg config.RecordsConfig, logger *zap.Logger, now func() time.Time) *RolloverService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &RolloverService{records: records, cfg: cfg, logger: logger, now: now}
}

// Start boots a goroutine that checks for a day change on every tick. One
// check runs immediately so a restart after midnight still prunes.
func (s *RolloverService) Start(ctx context.Context) {
	if s.cfg.RolloverInterval <= 0 {
		return
	}
	s.CheckRollover(ctx)

	ticker := time.NewTicker(s.cfg.RolloverInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.CheckRollover(ctx)
			}
		}
	}()
}

// CheckRollover compares today's date label against the stored marker and
// runs the retention prune when the day changed.
func (s *RolloverService) CheckRollover(ctx context.Context) {
	today := s.now().Format(dateLayout)

	last, err := s.records.LastAccessDate(ctx)
	if err != nil {
		s.logger.Warn("rollover marker read failed", zap.Error(err))
		return
	}
	if last == today {
		return
	}

	cutoff := s.now().AddDate(0, 0, -s.cfg.RetentionDays)
	removed, err := s.records.PruneOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Warn("record prune failed", zap.Error(err))
		return
	}

	if err := s.records.SetLastAccessDate(ctx, today); err != nil {
		s.logger.Warn("rollover marker write failed", zap.Error(err))
		return
	}

	s.logger.Info("daily rollover complete",
		zap.String("date", today),
		zap.String("previous", last),
		zap.Int("records_pruned", removed),
	)
}
