package repository

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/kyd-academy/feedback-api/internal/models"
	apperrors "github.com/kyd-academy/feedback-api/pkg/errors"
)

const templateKey = "message_template"

// TemplateRepository persists the editable message template. Loads run the
// stored blob through the schema migration so pre-rewrite templates keep
// working.
type TemplateRepository struct {
	store  Store
	logger *zap.Logger
}

// NewTemplateRepository creates a TemplateRepository.
func NewTemplateRepository(store Store, logger *zap.Logger) *TemplateRepository {
	return &TemplateRepository{store: store, logger: logger}
}

// Load returns the stored template, migrated to the current schema. Missing
// or unreadable blobs yield the defaults.
func (r *TemplateRepository) Load(ctx context.Context) (models.MessageTemplate, error) {
	raw, err := r.store.Get(ctx, templateKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrKeyMissing) {
			return models.DefaultMessageTemplate(), nil
		}
		return models.MessageTemplate{}, apperrors.Wrap(err, apperrors.ErrStorage.Code, apperrors.ErrStorage.Status, "load message template")
	}

	tpl, err := models.MigrateTemplate(raw)
	if err != nil {
		r.logger.Warn("discarding corrupt message template blob", zap.Error(err))
	}
	return tpl, nil
}

// Save replaces the stored template with the current-schema encoding.
func (r *TemplateRepository) Save(ctx context.Context, tpl models.MessageTemplate) error {
	raw, err := json.Marshal(tpl)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.Status, "encode message template")
	}
	if err := r.store.Set(ctx, templateKey, raw); err != nil {
		return apperrors.Wrap(err, apperrors.ErrStorage.Code, apperrors.ErrStorage.Status, "save message template")
	}
	return nil
}
