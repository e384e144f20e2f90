package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyd-academy/feedback-api/internal/message"
	"github.com/kyd-academy/feedback-api/internal/models"
	"github.com/kyd-academy/feedback-api/internal/settings"
	"github.com/kyd-academy/feedback-api/internal/week"
	appErrors "github.com/kyd-academy/feedback-api/pkg/errors"
)

type templateStoreMock struct {
	tpl models.MessageTemplate
}

func (m *templateStoreMock) Load(context.Context) (models.MessageTemplate, error) {
	return m.tpl, nil
}

func (m *templateStoreMock) Save(_ context.Context, tpl models.MessageTemplate) error {
	m.tpl = tpl
	return nil
}

type recordStoreMock struct {
	appended  []models.FeedbackRecord
	deleted   []string
	deleteErr error
}

func (m *recordStoreMock) Append(_ context.Context, record models.FeedbackRecord) error {
	m.appended = append(m.appended, record)
	return nil
}

func (m *recordStoreMock) Delete(_ context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *recordStoreMock) ListByDate(_ context.Context, date string) ([]models.FeedbackRecord, error) {
	var matched []models.FeedbackRecord
	for _, rec := range m.appended {
		if rec.Date == date {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

func testClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, 9, 17, 15, 30, 0, 0, time.Local)
	}
}

func newMessageService(settingsStore *settingsStoreMock, records *recordStoreMock) *MessageService {
	clock := testClock()
	gen := message.NewGenerator(week.NewCalculator(clock))
	templates := &templateStoreMock{tpl: models.DefaultMessageTemplate()}
	return NewMessageService(settingsStore, templates, records, gen, nil, nil, clock)
}

func composeFixture() ComposeRequest {
	return ComposeRequest{
		Name:       "김민준",
		GradeLevel: models.GradeMiddle3High1,
		ExamWeek:   svcWeek,
		Score:      85,
	}
}

func TestMessageServicePreviewDoesNotRecord(t *testing.T) {
	records := &recordStoreMock{}
	svc := newMessageService(newSettingsStoreMock(), records)

	result, err := svc.Preview(context.Background(), composeFixture())
	require.NoError(t, err)
	assert.Contains(t, result.Message, "1. 이름: 김민준")
	assert.Nil(t, result.Record)
	assert.Empty(t, records.appended)
}

func TestMessageServicePreviewUnconfiguredWeek(t *testing.T) {
	svc := newMessageService(newSettingsStoreMock(), &recordStoreMock{})

	result, err := svc.Preview(context.Background(), composeFixture())
	require.NoError(t, err)
	assert.Contains(t, result.Message, "85점 (등급컷 등록 필요)")
}

func TestMessageServiceComposeAndRecord(t *testing.T) {
	store := newSettingsStoreMock()
	store.current = settings.SetWeekCuts(store.current, svcWeek, settings.WeekCuts{
		Middle3High1: models.GradeCuts{Grade1: 90, Grade2: 80, Grade3: 70, Grade4: 60},
	})
	records := &recordStoreMock{}
	svc := newMessageService(store, records)

	result, err := svc.ComposeAndRecord(context.Background(), composeFixture())
	require.NoError(t, err)
	assert.Contains(t, result.Message, "85점 (2등급)")

	require.NotNil(t, result.Record)
	require.Len(t, records.appended, 1)
	rec := records.appended[0]
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "2025-09-17", rec.Date)
	assert.Equal(t, "김민준", rec.StudentData.Name)
	assert.Equal(t, testClock()().UnixMilli(), rec.Timestamp)
}

func TestMessageServiceSubjectRequired(t *testing.T) {
	svc := newMessageService(newSettingsStoreMock(), &recordStoreMock{})

	req := composeFixture()
	req.GradeLevel = models.GradeHigh2

	_, err := svc.Preview(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestMessageServiceTodayRecords(t *testing.T) {
	records := &recordStoreMock{appended: []models.FeedbackRecord{
		{ID: "a", Date: "2025-09-17"},
		{ID: "b", Date: "2025-09-16"},
	}}
	svc := newMessageService(newSettingsStoreMock(), records)

	today, err := svc.TodayRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, today, 1)
	assert.Equal(t, "a", today[0].ID)
}

func TestMessageServiceRecordsByDateValidation(t *testing.T) {
	svc := newMessageService(newSettingsStoreMock(), &recordStoreMock{})

	_, err := svc.RecordsByDate(context.Background(), "17-09-2025")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestMessageServiceSaveTemplateBackfills(t *testing.T) {
	svc := newMessageService(newSettingsStoreMock(), &recordStoreMock{})

	saved, err := svc.SaveTemplate(context.Background(), models.MessageTemplate{HardExamPhrase: "어려움"})
	require.NoError(t, err)

	defaults := models.DefaultMessageTemplate()
	assert.Equal(t, defaults.Closing, saved.Closing)
	assert.Equal(t, defaults.EndingMessage, saved.EndingMessage)
	assert.Equal(t, "어려움", saved.HardExamPhrase)
}
