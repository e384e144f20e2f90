package repository

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/kyd-academy/feedback-api/internal/models"
	apperrors "github.com/kyd-academy/feedback-api/pkg/errors"
)

const settingsKey = "exam_admin_settings"

// SettingsRepository persists the AdminSettings aggregate as a single JSON
// blob under a fixed key.
type SettingsRepository struct {
	store  Store
	logger *zap.Logger
}

// NewSettingsRepository creates a SettingsRepository.
func NewSettingsRepository(store Store, logger *zap.Logger) *SettingsRepository {
	return &SettingsRepository{store: store, logger: logger}
}

// Load returns the stored aggregate. A missing key or an unreadable blob
// yields the empty skeleton rather than an error; load never fails the
// caller into an unusable state.
func (r *SettingsRepository) Load(ctx context.Context) (models.AdminSettings, error) {
	raw, err := r.store.Get(ctx, settingsKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrKeyMissing) {
			return models.EmptyAdminSettings(), nil
		}
		return models.AdminSettings{}, apperrors.Wrap(err, apperrors.ErrStorage.Code, apperrors.ErrStorage.Status, "load exam settings")
	}

	var settings models.AdminSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		r.logger.Warn("discarding corrupt exam settings blob", zap.Error(err))
		return models.EmptyAdminSettings(), nil
	}

	if settings.Middle3High1 == nil {
		settings.Middle3High1 = map[string]*models.ExamConfig{}
	}
	settings.High2 = normalizeSubjectSettings(settings.High2)
	settings.High3 = normalizeSubjectSettings(settings.High3)

	return settings, nil
}

func normalizeSubjectSettings(s models.SubjectSettings) models.SubjectSettings {
	if s.LanguageMedia == nil {
		s.LanguageMedia = map[string]*models.ExamConfig{}
	}
	if s.SpeechWriting == nil {
		s.SpeechWriting = map[string]*models.ExamConfig{}
	}
	return s
}

// Save replaces the whole aggregate.
func (r *SettingsRepository) Save(ctx context.Context, settings models.AdminSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.Status, "encode exam settings")
	}
	if err := r.store.Set(ctx, settingsKey, raw); err != nil {
		return apperrors.Wrap(err, apperrors.ErrStorage.Code, apperrors.ErrStorage.Status, "save exam settings")
	}
	return nil
}
