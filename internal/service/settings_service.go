package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kyd-academy/feedback-api/internal/models"
	"github.com/kyd-academy/feedback-api/internal/settings"
	appErrors "github.com/kyd-academy/feedback-api/pkg/errors"
)

type settingsStore interface {
	Load(ctx context.Context) (models.AdminSettings, error)
	Save(ctx context.Context, s models.AdminSettings) error
}

// ConfigQuery identifies one exam config slot.
type ConfigQuery struct {
	GradeLevel models.GradeLevel  `form:"gradeLevel" json:"gradeLevel" validate:"required,oneof=middle3_high1 high2 high3"`
	Week       string             `form:"week" json:"week" validate:"required"`
	Subject    models.SubjectType `form:"subject" json:"subject" validate:"omitempty,oneof=language_media speech_writing"`
}

// UpsertExplanationRequest adds or replaces one explanation.
type UpsertExplanationRequest struct {
	GradeLevel     models.GradeLevel  `json:"gradeLevel" validate:"required,oneof=middle3_high1 high2 high3"`
	Week           string             `json:"week" validate:"required"`
	Subject        models.SubjectType `json:"subject" validate:"omitempty,oneof=language_media speech_writing"`
	Area           models.Area        `json:"area" validate:"required"`
	QuestionNumber int                `json:"questionNumber" validate:"required,min=1,max=45"`
	Explanation    string             `json:"explanation" validate:"required"`
}

// DeleteExplanationRequest removes one explanation.
type DeleteExplanationRequest struct {
	GradeLevel     models.GradeLevel  `json:"gradeLevel" validate:"required,oneof=middle3_high1 high2 high3"`
	Week           string             `json:"week" validate:"required"`
	Subject        models.SubjectType `json:"subject" validate:"omitempty,oneof=language_media speech_writing"`
	Area           models.Area        `json:"area" validate:"required"`
	QuestionNumber int                `json:"questionNumber" validate:"required,min=1,max=45"`
}

// SetDifficultyRequest flips the hard-exam flag of one config.
type SetDifficultyRequest struct {
	GradeLevel models.GradeLevel  `json:"gradeLevel" validate:"required,oneof=middle3_high1 high2 high3"`
	Week       string             `json:"week" validate:"required"`
	Subject    models.SubjectType `json:"subject" validate:"omitempty,oneof=language_media speech_writing"`
	IsHard     bool               `json:"isHard"`
}

// WeekCutsRequest is the bulk weekly cutoff setup payload.
type WeekCutsRequest struct {
	Week string            `json:"week" validate:"required"`
	Cuts settings.WeekCuts `json:"cuts" validate:"required"`
}

// SettingsService orchestrates exam config reads and mutations. Every
// mutation is load, pure update, save of the whole aggregate.
type SettingsService struct {
	repo      settingsStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSettingsService constructs SettingsService.
func NewSettingsService(repo settingsStore, validate *validator.Validate, logger *zap.Logger) *SettingsService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{repo: repo, validator: validate, logger: logger}
}

func (s *SettingsService) checkQuery(level models.GradeLevel, subject models.SubjectType) error {
	if level.HasSubjects() && !subject.Valid() {
		return appErrors.Clone(appErrors.ErrValidation, "subject required for this grade level")
	}
	return nil
}

// GetConfig returns the stored config for a slot or NOT_FOUND.
func (s *SettingsService) GetConfig(ctx context.Context, q ConfigQuery) (*models.ExamConfig, error) {
	if err := s.validator.Struct(q); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid config query")
	}
	if err := s.checkQuery(q.GradeLevel, q.Subject); err != nil {
		return nil, err
	}
	stored, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	cfg, ok := settings.Resolve(stored, q.GradeLevel, q.Week, q.Subject)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "exam config not found")
	}
	return cfg, nil
}

// EditorConfig returns the stored config or a fresh default for the editing
// dialog. Nothing is persisted until the editor saves.
func (s *SettingsService) EditorConfig(ctx context.Context, q ConfigQuery) (*models.ExamConfig, error) {
	if err := s.validator.Struct(q); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid config query")
	}
	if err := s.checkQuery(q.GradeLevel, q.Subject); err != nil {
		return nil, err
	}
	stored, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if cfg, ok := settings.Resolve(stored, q.GradeLevel, q.Week, q.Subject); ok {
		return cfg, nil
	}
	return settings.DefaultConfig(q.GradeLevel, q.Week, q.Subject), nil
}

// SaveConfig commits a full-record save, syncing the shared question range
// into the sibling subject.
func (s *SettingsService) SaveConfig(ctx context.Context, cfg *models.ExamConfig) (*models.ExamConfig, error) {
	if cfg == nil || !cfg.GradeLevel.Valid() || cfg.ExamWeek == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "gradeLevel and examWeek required")
	}
	if err := s.checkQuery(cfg.GradeLevel, cfg.SubjectType); err != nil {
		return nil, err
	}
	for area := range cfg.Explanations {
		if !area.ValidForExplanations() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unknown explanation area")
		}
	}

	stored, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	updated := settings.ApplyConfig(stored, cfg)
	if err := s.repo.Save(ctx, updated); err != nil {
		return nil, err
	}

	saved, _ := settings.Resolve(updated, cfg.GradeLevel, cfg.ExamWeek, cfg.SubjectType)
	return saved, nil
}

// UpsertExplanation adds or replaces one explanation and returns the updated
// config for the named slot.
func (s *SettingsService) UpsertExplanation(ctx context.Context, req UpsertExplanationRequest) (*models.ExamConfig, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid explanation payload")
	}
	if err := s.checkQuery(req.GradeLevel, req.Subject); err != nil {
		return nil, err
	}
	if !req.Area.ValidForExplanations() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown explanation area")
	}

	stored, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	updated := settings.UpsertExplanation(stored, req.GradeLevel, req.Week, req.Subject, req.Area, req.QuestionNumber, req.Explanation)
	if err := s.repo.Save(ctx, updated); err != nil {
		return nil, err
	}

	cfg, _ := settings.Resolve(updated, req.GradeLevel, req.Week, req.Subject)
	return cfg, nil
}

// DeleteExplanation removes one explanation with the same sync rule.
func (s *SettingsService) DeleteExplanation(ctx context.Context, req DeleteExplanationRequest) (*models.ExamConfig, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid explanation payload")
	}
	if err := s.checkQuery(req.GradeLevel, req.Subject); err != nil {
		return nil, err
	}

	stored, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	updated := settings.DeleteExplanation(stored, req.GradeLevel, req.Week, req.Subject, req.Area, req.QuestionNumber)
	if err := s.repo.Save(ctx, updated); err != nil {
		return nil, err
	}

	cfg, _ := settings.Resolve(updated, req.GradeLevel, req.Week, req.Subject)
	return cfg, nil
}

// SetDifficulty flips the hard-exam flag. Difficulty never syncs across
// subjects.
func (s *SettingsService) SetDifficulty(ctx context.Context, req SetDifficultyRequest) (*models.ExamConfig, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid difficulty payload")
	}
	if err := s.checkQuery(req.GradeLevel, req.Subject); err != nil {
		return nil, err
	}

	stored, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	updated := settings.SetDifficulty(stored, req.GradeLevel, req.Week, req.Subject, req.IsHard)
	if err := s.repo.Save(ctx, updated); err != nil {
		return nil, err
	}

	cfg, _ := settings.Resolve(updated, req.GradeLevel, req.Week, req.Subject)
	return cfg, nil
}

// SetWeekCuts writes the cutoffs for all five targets of the week.
func (s *SettingsService) SetWeekCuts(ctx context.Context, req WeekCutsRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid week cuts payload")
	}

	stored, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	return s.repo.Save(ctx, settings.SetWeekCuts(stored, req.Week, req.Cuts))
}

// WeekCompleteness reports whether every target of the week has cutoffs.
func (s *SettingsService) WeekCompleteness(ctx context.Context, week string) (bool, error) {
	if week == "" {
		return false, appErrors.Clone(appErrors.ErrValidation, "week required")
	}
	stored, err := s.repo.Load(ctx)
	if err != nil {
		return false, err
	}
	return settings.WeekFullyConfigured(stored, week), nil
}
