package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/kyd-academy/feedback-api/internal/models"
	apperrors "github.com/kyd-academy/feedback-api/pkg/errors"
)

const (
	recordsKey    = "feedback_records"
	lastAccessKey = "last_access_date"
)

// RecordRepository persists the feedback record history as one JSON array
// blob, plus the last-access marker the daily rollover compares against.
type RecordRepository struct {
	store  Store
	logger *zap.Logger
}

// NewRecordRepository creates a RecordRepository.
func NewRecordRepository(store Store, logger *zap.Logger) *RecordRepository {
	return &RecordRepository{store: store, logger: logger}
}

// LoadAll returns every stored record. Missing or unreadable blobs yield an
// empty history.
func (r *RecordRepository) LoadAll(ctx context.Context) ([]models.FeedbackRecord, error) {
	raw, err := r.store.Get(ctx, recordsKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrKeyMissing) {
			return []models.FeedbackRecord{}, nil
		}
		return nil, apperrors.Wrap(err, apperrors.ErrStorage.Code, apperrors.ErrStorage.Status, "load feedback records")
	}

	var records []models.FeedbackRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		r.logger.Warn("discarding corrupt feedback records blob", zap.Error(err))
		return []models.FeedbackRecord{}, nil
	}
	return records, nil
}

// SaveAll replaces the whole history.
func (r *RecordRepository) SaveAll(ctx context.Context, records []models.FeedbackRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.Status, "encode feedback records")
	}
	if err := r.store.Set(ctx, recordsKey, raw); err != nil {
		return apperrors.Wrap(err, apperrors.ErrStorage.Code, apperrors.ErrStorage.Status, "save feedback records")
	}
	return nil
}

// Append adds one record to the history.
func (r *RecordRepository) Append(ctx context.Context, record models.FeedbackRecord) error {
	records, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	return r.SaveAll(ctx, append(records, record))
}

// Delete removes the record with the given id. Deleting an unknown id
// returns ErrNotFound.
func (r *RecordRepository) Delete(ctx context.Context, id string) error {
	records, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.FeedbackRecord, 0, len(records))
	found := false
	for _, rec := range records {
		if rec.ID == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return apperrors.Clone(apperrors.ErrNotFound, "feedback record not found")
	}
	return r.SaveAll(ctx, kept)
}

// ListByDate returns the records stamped with the given YYYY-MM-DD date.
func (r *RecordRepository) ListByDate(ctx context.Context, date string) ([]models.FeedbackRecord, error) {
	records, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.FeedbackRecord, 0, len(records))
	for _, rec := range records {
		if rec.Date == date {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

// PruneOlderThan drops records whose timestamp predates the cutoff and
// returns how many were removed.
func (r *RecordRepository) PruneOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	records, err := r.LoadAll(ctx)
	if err != nil {
		return 0, err
	}

	cutoffMillis := cutoff.UnixMilli()
	kept := make([]models.FeedbackRecord, 0, len(records))
	for _, rec := range records {
		if rec.Timestamp >= cutoffMillis {
			kept = append(kept, rec)
		}
	}

	removed := len(records) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	return removed, r.SaveAll(ctx, kept)
}

// LastAccessDate returns the stored YYYY-MM-DD marker, or "" when none is
// set yet.
func (r *RecordRepository) LastAccessDate(ctx context.Context) (string, error) {
	raw, err := r.store.Get(ctx, lastAccessKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrKeyMissing) {
			return "", nil
		}
		return "", apperrors.Wrap(err, apperrors.ErrStorage.Code, apperrors.ErrStorage.Status, "load last access date")
	}
	return string(raw), nil
}

// SetLastAccessDate stores the marker.
func (r *RecordRepository) SetLastAccessDate(ctx context.Context, date string) error {
	if err := r.store.Set(ctx, lastAccessKey, []byte(date)); err != nil {
		return apperrors.Wrap(err, apperrors.ErrStorage.Code, apperrors.ErrStorage.Status, "save last access date")
	}
	return nil
}
