// Package grading maps a raw exam score onto the 1-4 grade ladder defined by
// per-exam cutoffs.
package grading

import (
	"fmt"
	"math"
	"strconv"

	"github.com/kyd-academy/feedback-api/internal/models"
)

// Outcome is the result of a grade calculation. Values 1 through 4 are the
// grade numbers; the two sentinels cover the unconfigured and below-ladder
// cases.
type Outcome int

const (
	// CutsNotSet means all four cutoffs are zero, i.e. nobody entered them yet.
	CutsNotSet Outcome = -1
	// NoGrade means the score fell below the grade-4 cutoff.
	NoGrade Outcome = 0
)

// Numeric reports whether the outcome is a displayable grade number.
func (o Outcome) Numeric() bool {
	return o >= 1 && o <= 4
}

func normalize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Calculate evaluates score against the cutoffs in grade order and returns
// the first grade whose cutoff the score reaches.
func Calculate(score float64, cuts models.GradeCuts) Outcome {
	g1 := normalize(cuts.Grade1)
	g2 := normalize(cuts.Grade2)
	g3 := normalize(cuts.Grade3)
	g4 := normalize(cuts.Grade4)

	if g1 == 0 && g2 == 0 && g3 == 0 && g4 == 0 {
		return CutsNotSet
	}

	switch {
	case score >= g1:
		return 1
	case score >= g2:
		return 2
	case score >= g3:
		return 3
	case score >= g4:
		return 4
	}
	return NoGrade
}

// DisplayText renders the score/grade field of the message. Grades worse
// than 4 are shown as a bare score so low scorers are not discouraged.
func DisplayText(score float64, outcome Outcome) string {
	scoreText := strconv.FormatFloat(score, 'f', -1, 64)
	switch {
	case outcome == CutsNotSet:
		return fmt.Sprintf("%s점 (등급컷 등록 필요)", scoreText)
	case !outcome.Numeric():
		return fmt.Sprintf("%s점", scoreText)
	default:
		return fmt.Sprintf("%s점 (%d등급)", scoreText, outcome)
	}
}
