package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyd-academy/feedback-api/internal/models"
	"github.com/kyd-academy/feedback-api/internal/settings"
	appErrors "github.com/kyd-academy/feedback-api/pkg/errors"
)

type settingsStoreMock struct {
	current   models.AdminSettings
	loadErr   error
	saveErr   error
	saveCalls int
}

func newSettingsStoreMock() *settingsStoreMock {
	return &settingsStoreMock{current: models.EmptyAdminSettings()}
}

func (m *settingsStoreMock) Load(context.Context) (models.AdminSettings, error) {
	return m.current, m.loadErr
}

func (m *settingsStoreMock) Save(_ context.Context, s models.AdminSettings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saveCalls++
	m.current = s
	return nil
}

const svcWeek = "2025년 9월 3주차"

func TestSettingsServiceGetConfigNotFound(t *testing.T) {
	svc := NewSettingsService(newSettingsStoreMock(), nil, nil)

	_, err := svc.GetConfig(context.Background(), ConfigQuery{
		GradeLevel: models.GradeMiddle3High1,
		Week:       svcWeek,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestSettingsServiceSubjectRequired(t *testing.T) {
	svc := NewSettingsService(newSettingsStoreMock(), nil, nil)

	_, err := svc.GetConfig(context.Background(), ConfigQuery{
		GradeLevel: models.GradeHigh2,
		Week:       svcWeek,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSettingsServiceEditorConfigDefault(t *testing.T) {
	store := newSettingsStoreMock()
	svc := NewSettingsService(store, nil, nil)

	cfg, err := svc.EditorConfig(context.Background(), ConfigQuery{
		GradeLevel: models.GradeHigh3,
		Week:       svcWeek,
		Subject:    models.SubjectLanguageMedia,
	})
	require.NoError(t, err)
	assert.Equal(t, svcWeek, cfg.ExamWeek)
	assert.Contains(t, cfg.Explanations, models.AreaLanguageMedia)
	assert.Zero(t, store.saveCalls, "editor default must not be persisted")
}

func TestSettingsServiceUpsertExplanationPersistsSync(t *testing.T) {
	store := newSettingsStoreMock()
	svc := NewSettingsService(store, nil, nil)

	cfg, err := svc.UpsertExplanation(context.Background(), UpsertExplanationRequest{
		GradeLevel:     models.GradeHigh2,
		Week:           svcWeek,
		Subject:        models.SubjectLanguageMedia,
		Area:           models.AreaReading,
		QuestionNumber: 10,
		Explanation:    "지문 구조 오독",
	})
	require.NoError(t, err)
	require.Len(t, cfg.Explanations[models.AreaReading], 1)
	assert.Equal(t, 1, store.saveCalls)

	sibling, ok := settings.Resolve(store.current, models.GradeHigh2, svcWeek, models.SubjectSpeechWriting)
	require.True(t, ok)
	assert.Len(t, sibling.Explanations[models.AreaReading], 1)
}

func TestSettingsServiceUpsertExplanationRejectsBadArea(t *testing.T) {
	svc := NewSettingsService(newSettingsStoreMock(), nil, nil)

	_, err := svc.UpsertExplanation(context.Background(), UpsertExplanationRequest{
		GradeLevel:     models.GradeMiddle3High1,
		Week:           svcWeek,
		Area:           models.AreaNone,
		QuestionNumber: 3,
		Explanation:    "x",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSettingsServiceSaveConfig(t *testing.T) {
	store := newSettingsStoreMock()
	svc := NewSettingsService(store, nil, nil)

	incoming := settings.DefaultConfig(models.GradeHigh2, svcWeek, models.SubjectLanguageMedia)
	incoming.GradeCuts = models.GradeCuts{Grade1: 90, Grade2: 80, Grade3: 70, Grade4: 60}

	saved, err := svc.SaveConfig(context.Background(), incoming)
	require.NoError(t, err)
	assert.True(t, saved.GradeCuts.AllPositive())

	_, ok := settings.Resolve(store.current, models.GradeHigh2, svcWeek, models.SubjectSpeechWriting)
	assert.True(t, ok, "sibling created by full-record save")
}

func TestSettingsServiceWeekCutsAndCompleteness(t *testing.T) {
	store := newSettingsStoreMock()
	svc := NewSettingsService(store, nil, nil)
	ctx := context.Background()

	complete, err := svc.WeekCompleteness(ctx, svcWeek)
	require.NoError(t, err)
	assert.False(t, complete)

	cuts := models.GradeCuts{Grade1: 90, Grade2: 80, Grade3: 70, Grade4: 60}
	err = svc.SetWeekCuts(ctx, WeekCutsRequest{
		Week: svcWeek,
		Cuts: settings.WeekCuts{
			Middle3High1:       cuts,
			High2LanguageMedia: cuts,
			High2SpeechWriting: cuts,
			High3LanguageMedia: cuts,
			High3SpeechWriting: cuts,
		},
	})
	require.NoError(t, err)

	complete, err = svc.WeekCompleteness(ctx, svcWeek)
	require.NoError(t, err)
	assert.True(t, complete)
}

func TestSettingsServiceSetDifficulty(t *testing.T) {
	store := newSettingsStoreMock()
	svc := NewSettingsService(store, nil, nil)

	cfg, err := svc.SetDifficulty(context.Background(), SetDifficultyRequest{
		GradeLevel: models.GradeHigh3,
		Week:       svcWeek,
		Subject:    models.SubjectSpeechWriting,
		IsHard:     true,
	})
	require.NoError(t, err)
	assert.True(t, cfg.IsHard)

	_, ok := settings.Resolve(store.current, models.GradeHigh3, svcWeek, models.SubjectLanguageMedia)
	assert.False(t, ok, "difficulty must not touch the sibling")
}
