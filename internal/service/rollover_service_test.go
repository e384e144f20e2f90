package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kyd-academy/feedback-api/pkg/config"
)

type rolloverStoreMock struct {
	marker     string
	markerErr  error
	pruned     []time.Time
	prunedRows int
	setCalls   []string
}

func (m *rolloverStoreMock) LastAccessDate(context.Context) (string, error) {
	return m.marker, m.markerErr
}

func (m *rolloverStoreMock) SetLastAccessDate(_ context.Context, date string) error {
	m.setCalls = append(m.setCalls, date)
	m.marker = date
	return nil
}

func (m *rolloverStoreMock) PruneOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	m.pruned = append(m.pruned, cutoff)
	return m.prunedRows, nil
}

func rolloverConfig() config.RecordsConfig {
	return config.RecordsConfig{RetentionDays: 30, RolloverInterval: time.Minute}
}

func TestCheckRolloverSameDayNoop(t *testing.T) {
	store := &rolloverStoreMock{marker: "2025-09-17"}
	svc := NewRolloverService(store, rolloverConfig(), nil, testClock())

	svc.CheckRollover(context.Background())

	assert.Empty(t, store.pruned)
	assert.Empty(t, store.setCalls)
}

func TestCheckRolloverDayChangePrunesAndAdvances(t *testing.T) {
	store := &rolloverStoreMock{marker: "2025-09-16", prunedRows: 2}
	svc := NewRolloverService(store, rolloverConfig(), nil, testClock())

	svc.CheckRollover(context.Background())

	assert.Len(t, store.pruned, 1)
	wantCutoff := testClock()().AddDate(0, 0, -30)
	assert.Equal(t, wantCutoff, store.pruned[0])
	assert.Equal(t, []string{"2025-09-17"}, store.setCalls)

	// second check on the same day is a noop
	svc.CheckRollover(context.Background())
	assert.Len(t, store.pruned, 1)
}

func TestCheckRolloverFirstRunSetsMarker(t *testing.T) {
	store := &rolloverStoreMock{}
	svc := NewRolloverService(store, rolloverConfig(), nil, testClock())

	svc.CheckRollover(context.Background())

	assert.Equal(t, "2025-09-17", store.marker)
	assert.Len(t, store.pruned, 1)
}
