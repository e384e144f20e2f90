package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyd-academy/feedback-api/internal/message"
	"github.com/kyd-academy/feedback-api/internal/models"
	"github.com/kyd-academy/feedback-api/internal/service"
	"github.com/kyd-academy/feedback-api/internal/week"
	appErrors "github.com/kyd-academy/feedback-api/pkg/errors"
	"github.com/kyd-academy/feedback-api/pkg/response"
)

const testWeek = "2025년 9월 3주차"

type settingsStoreFake struct {
	current models.AdminSettings
}

func (f *settingsStoreFake) Load(context.Context) (models.AdminSettings, error) {
	return f.current, nil
}

func (f *settingsStoreFake) Save(_ context.Context, s models.AdminSettings) error {
	f.current = s
	return nil
}

type templateStoreFake struct {
	tpl models.MessageTemplate
}

func (f *templateStoreFake) Load(context.Context) (models.MessageTemplate, error) {
	return f.tpl, nil
}

func (f *templateStoreFake) Save(_ context.Context, tpl models.MessageTemplate) error {
	f.tpl = tpl
	return nil
}

type recordStoreFake struct {
	records []models.FeedbackRecord
}

func (f *recordStoreFake) Append(_ context.Context, record models.FeedbackRecord) error {
	f.records = append(f.records, record)
	return nil
}

func (f *recordStoreFake) Delete(_ context.Context, id string) error {
	for i, rec := range f.records {
		if rec.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return appErrors.Clone(appErrors.ErrNotFound, "feedback record not found")
}

func (f *recordStoreFake) ListByDate(_ context.Context, date string) ([]models.FeedbackRecord, error) {
	var matched []models.FeedbackRecord
	for _, rec := range f.records {
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

type fixture struct {
	weeks    *week.Calculator
	settings *service.SettingsService
	messages *service.MessageService
	records  *recordStoreFake
}

func newFixture() *fixture {
	clock := testClock()
	weeks := week.NewCalculator(clock)
	settingsSvc := service.NewSettingsService(&settingsStoreFake{current: models.EmptyAdminSettings()}, nil, nil)
	records := &recordStoreFake{}
	messagesSvc := service.NewMessageService(
		&settingsStoreFake{current: models.EmptyAdminSettings()},
		&templateStoreFake{tpl: models.DefaultMessageTemplate()},
		records,
		message.NewGenerator(weeks),
		nil, nil, clock,
	)
	return &fixture{weeks: weeks, settings: settingsSvc, messages: messagesSvc, records: records}
}

func doJSON(t *testing.T, handle gin.HandlerFunc, method, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(method, target, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handle(c)
	return w
}

func TestWeekHandlerList(t *testing.T) {
	f := newFixture()
	h := NewWeekHandler(f.weeks, f.settings)

	w := doJSON(t, h.List, http.MethodGet, "/weeks", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data []models.WeekInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 3)
	assert.Equal(t, testWeek, envelope.Data[0].Display)
}

func TestWeekHandlerCurrent(t *testing.T) {
	f := newFixture()
	h := NewWeekHandler(f.weeks, f.settings)

	w := doJSON(t, h.Current, http.MethodGet, "/weeks/current", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "(이번주)")
}

func TestWeekHandlerCompletenessMissingWeek(t *testing.T) {
	f := newFixture()
	h := NewWeekHandler(f.weeks, f.settings)

	w := doJSON(t, h.Completeness, http.MethodGet, "/weeks/completeness", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfigHandlerGetNotFound(t *testing.T) {
	f := newFixture()
	h := NewConfigHandler(f.settings)

	w := doJSON(t, h.Get, http.MethodGet, "/configs?gradeLevel=middle3_high1&week="+url.QueryEscape(testWeek), nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, appErrors.ErrNotFound.Code, envelope.Error.Code)
}

func TestConfigHandlerUpsertExplanation(t *testing.T) {
	f := newFixture()
	h := NewConfigHandler(f.settings)

	w := doJSON(t, h.UpsertExplanation, http.MethodPost, "/configs/explanations", service.UpsertExplanationRequest{
		GradeLevel:     models.GradeHigh2,
		Week:           testWeek,
		Subject:        models.SubjectLanguageMedia,
		Area:           models.AreaReading,
		QuestionNumber: 10,
		Explanation:    "지문 구조 오독",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "지문 구조 오독")
}

func TestConfigHandlerSaveInvalidBody(t *testing.T) {
	f := newFixture()
	h := NewConfigHandler(f.settings)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPut, "/configs", bytes.NewBufferString(`{"gradeLevel":`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	h.Save(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMessageHandlerCompose(t *testing.T) {
	f := newFixture()
	h := NewMessageHandler(f.messages, nil)

	w := doJSON(t, h.Compose, http.MethodPost, "/messages", service.ComposeRequest{
		Name:       "김민준",
		GradeLevel: models.GradeMiddle3High1,
		ExamWeek:   testWeek,
		Score:      85,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "1. 이름: 김민준")
	require.Len(t, f.records.records, 1)
}

func TestMessageHandlerPreviewValidation(t *testing.T) {
	f := newFixture()
	h := NewMessageHandler(f.messages, nil)

	w := doJSON(t, h.Preview, http.MethodPost, "/messages/preview", service.ComposeRequest{
		GradeLevel: models.GradeMiddle3High1,
		ExamWeek:   testWeek,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMessageHandlerDeleteRecord(t *testing.T) {
	f := newFixture()
	f.records.records = []models.FeedbackRecord{{ID: "rec-1", Date: "2025-09-17"}}
	h := NewMessageHandler(f.messages, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodDelete, "/records/rec-1", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "rec-1"}}

	h.Delete(c)
	// Flush the status line; outside a router the recorder never sees it.
	c.Writer.WriteHeaderNow()
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, f.records.records)
}

func TestTemplateHandlerRoundTrip(t *testing.T) {
	f := newFixture()
	h := NewTemplateHandler(f.messages)

	w := doJSON(t, h.Get, http.MethodGet, "/template", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "{firstName}")

	w = doJSON(t, h.Save, http.MethodPut, "/template", models.MessageTemplate{
		Closing:       "새 총평 {firstName}(이)는 좋았습니다.",
		EndingMessage: "감사합니다.",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "새 총평")
}
