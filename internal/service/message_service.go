package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kyd-academy/feedback-api/internal/message"
	"github.com/kyd-academy/feedback-api/internal/models"
	"github.com/kyd-academy/feedback-api/internal/settings"
	appErrors "github.com/kyd-academy/feedback-api/pkg/errors"
)

const dateLayout = "2006-01-02"

type templateStore interface {
	Load(ctx context.Context) (models.MessageTemplate, error)
	Save(ctx context.Context, tpl models.MessageTemplate) error
}

type recordStore interface {
	Append(ctx context.Context, record models.FeedbackRecord) error
	Delete(ctx context.Context, id string) error
	ListByDate(ctx context.Context, date string) ([]models.FeedbackRecord, error)
}

// ComposeRequest is the student entry a message is generated from.
type ComposeRequest struct {
	Name               string                `json:"name" validate:"required"`
	GradeLevel         models.GradeLevel     `json:"gradeLevel" validate:"required,oneof=middle3_high1 high2 high3"`
	ExamWeek           string                `json:"examWeek" validate:"required"`
	Subject            models.SubjectType    `json:"subject" validate:"omitempty,oneof=language_media speech_writing"`
	Score              float64               `json:"score" validate:"min=0,max=100"`
	MainWrongAreas     []models.Area         `json:"mainWrongAreas"`
	WrongAnswers       map[models.Area][]int `json:"wrongAnswers"`
	AdditionalFeedback string                `json:"additionalFeedback"`
}

func (r ComposeRequest) student() models.Student {
	return models.Student{
		Name:               r.Name,
		GradeLevel:         r.GradeLevel,
		ExamWeek:           r.ExamWeek,
		SubjectType:        r.Subject,
		Score:              r.Score,
		MainWrongAreas:     r.MainWrongAreas,
		WrongAnswers:       r.WrongAnswers,
		AdditionalFeedback: r.AdditionalFeedback,
	}
}

// ComposeResult carries the rendered message and, for the recording path,
// the stored record.
type ComposeResult struct {
	Message string                 `json:"message"`
	Record  *models.FeedbackRecord `json:"record,omitempty"`
}

// MessageService composes feedback messages and manages the record history.
type MessageService struct {
	settings  settingsStore
	templates templateStore
	records   recordStore
	generator *message.Generator
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewMessageService constructs MessageService. A nil clock falls back to
// time.Now.
func NewMessageService(settingsRepo settingsStore, templates templateStore, records recordStore, generator *message.Generator, validate *validator.Validate, logger *zap.Logger, now func() time.Time) *MessageService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &MessageService{
		settings:  settingsRepo,
		templates: templates,
		records:   records,
		generator: generator,
		validator: validate,
		logger:    logger,
		now:       now,
	}
}

func (s *MessageService) compose(ctx context.Context, req ComposeRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	if req.GradeLevel.HasSubjects() && !req.Subject.Valid() {
		return "", appErrors.Clone(appErrors.ErrValidation, "subject required for this grade level")
	}

	stored, err := s.settings.Load(ctx)
	if err != nil {
		return "", err
	}

	// Composing with an unconfigured week is allowed. The default config makes
	// the grade field render the cuts-needed notice and leaves feedback empty.
	cfg, ok := settings.Resolve(stored, req.GradeLevel, req.ExamWeek, req.Subject)
	if !ok {
		cfg = settings.DefaultConfig(req.GradeLevel, req.ExamWeek, req.Subject)
	}

	tpl, err := s.templates.Load(ctx)
	if err != nil {
		return "", err
	}

	return s.generator.Generate(req.student(), cfg, cfg.AllExplanations(), tpl), nil
}

// Preview renders the message without recording it.
func (s *MessageService) Preview(ctx context.Context, req ComposeRequest) (*ComposeResult, error) {
	msg, err := s.compose(ctx, req)
	if err != nil {
		return nil, err
	}
	return &ComposeResult{Message: msg}, nil
}

// ComposeAndRecord renders the message and appends a FeedbackRecord stamped
// with today's date.
func (s *MessageService) ComposeAndRecord(ctx context.Context, req ComposeRequest) (*ComposeResult, error) {
	msg, err := s.compose(ctx, req)
	if err != nil {
		return nil, err
	}

	now := s.now()
	record := models.FeedbackRecord{
		ID:          uuid.NewString(),
		StudentData: req.student(),
		Timestamp:   now.UnixMilli(),
		Date:        now.Format(dateLayout),
	}
	if err := s.records.Append(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("feedback recorded",
		zap.String("record_id", record.ID),
		zap.String("grade_level", string(req.GradeLevel)),
		zap.String("exam_week", req.ExamWeek),
	)
	return &ComposeResult{Message: msg, Record: &record}, nil
}

// TodayRecords returns the records stamped with today's date.
func (s *MessageService) TodayRecords(ctx context.Context) ([]models.FeedbackRecord, error) {
	return s.records.ListByDate(ctx, s.now().Format(dateLayout))
}

// RecordsByDate returns the records for an explicit YYYY-MM-DD date.
func (s *MessageService) RecordsByDate(ctx context.Context, date string) ([]models.FeedbackRecord, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "date must be YYYY-MM-DD")
	}
	return s.records.ListByDate(ctx, date)
}

// DeleteRecord removes one record by id.
func (s *MessageService) DeleteRecord(ctx context.Context, id string) error {
	if id == "" {
		return appErrors.Clone(appErrors.ErrValidation, "record id required")
	}
	return s.records.Delete(ctx, id)
}

// GetTemplate returns the current message template.
func (s *MessageService) GetTemplate(ctx context.Context) (models.MessageTemplate, error) {
	return s.templates.Load(ctx)
}

// SaveTemplate replaces the message template, backfilling empty closing and
// ending fields from the defaults.
func (s *MessageService) SaveTemplate(ctx context.Context, tpl models.MessageTemplate) (models.MessageTemplate, error) {
	defaults := models.DefaultMessageTemplate()
	if tpl.Closing == "" {
		tpl.Closing = defaults.Closing
	}
	if tpl.EndingMessage == "" {
		tpl.EndingMessage = defaults.EndingMessage
	}
	if err := s.templates.Save(ctx, tpl); err != nil {
		return models.MessageTemplate{}, err
	}
	return tpl, nil
}
