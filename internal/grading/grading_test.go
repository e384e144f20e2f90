package grading

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kyd-academy/feedback-api/internal/models"
)

func standardCuts() models.GradeCuts {
	return models.GradeCuts{Grade1: 90, Grade2: 80, Grade3: 70, Grade4: 60}
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		cuts  models.GradeCuts
		want  Outcome
	}{
		{name: "grade 1 at cutoff", score: 90, cuts: standardCuts(), want: 1},
		{name: "grade 2", score: 85, cuts: standardCuts(), want: 2},
		{name: "grade 3", score: 70, cuts: standardCuts(), want: 3},
		{name: "grade 4", score: 60, cuts: standardCuts(), want: 4},
		{name: "below ladder", score: 59.5, cuts: standardCuts(), want: NoGrade},
		{name: "all zero cuts", score: 100, cuts: models.GradeCuts{}, want: CutsNotSet},
		{name: "nan cutoffs normalize to zero", score: 100, cuts: models.GradeCuts{Grade1: math.NaN(), Grade2: math.NaN(), Grade3: math.NaN(), Grade4: math.NaN()}, want: CutsNotSet},
		{name: "partial cuts still grade", score: 50, cuts: models.GradeCuts{Grade1: 90}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Calculate(tt.score, tt.cuts))
		})
	}
}

func TestOutcomeNumeric(t *testing.T) {
	assert.False(t, CutsNotSet.Numeric())
	assert.False(t, NoGrade.Numeric())
	assert.True(t, Outcome(1).Numeric())
	assert.True(t, Outcome(4).Numeric())
	assert.False(t, Outcome(5).Numeric())
}

func TestDisplayText(t *testing.T) {
	tests := []struct {
		name    string
		score   float64
		outcome Outcome
		want    string
	}{
		{name: "graded", score: 85, outcome: 2, want: "85점 (2등급)"},
		{name: "fractional score keeps precision", score: 87.5, outcome: 2, want: "87.5점 (2등급)"},
		{name: "cuts not set", score: 85, outcome: CutsNotSet, want: "85점 (등급컷 등록 필요)"},
		{name: "below ladder shows bare score", score: 42, outcome: NoGrade, want: "42점"},
		{name: "out of range grade shows bare score", score: 42, outcome: Outcome(5), want: "42점"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayText(tt.score, tt.outcome))
		})
	}
}
