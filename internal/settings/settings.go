// Package settings implements the exam configuration store: resolution and
// mutation of ExamConfig records inside the AdminSettings aggregate. Every
// mutation clones the aggregate and returns a new value, so a loaded
// aggregate is never modified in place and the whole-aggregate-replace
// persistence contract stays auditable.
package settings

import (
	"github.com/kyd-academy/feedback-api/internal/models"
)

// Resolve looks up the config for (cohort, week, subject). There is no
// implicit creation; callers that need a record use DefaultConfig first.
func Resolve(s models.AdminSettings, level models.GradeLevel, weekLabel string, subject models.SubjectType) (*models.ExamConfig, bool) {
	switch {
	case level == models.GradeMiddle3High1:
		cfg, ok := s.Middle3High1[weekLabel]
		return cfg, ok && cfg != nil
	case level.HasSubjects() && subject.Valid():
		cfg, ok := s.ForLevel(level).ForSubject(subject)[weekLabel]
		return cfg, ok && cfg != nil
	}
	return nil, false
}

// DefaultConfig builds the lazily-created empty record: zero cutoffs, normal
// difficulty, and the explanation area lists appropriate for the cohort.
func DefaultConfig(level models.GradeLevel, weekLabel string, subject models.SubjectType) *models.ExamConfig {
	cfg := &models.ExamConfig{
		GradeLevel: level,
		ExamWeek:   weekLabel,
		Explanations: map[models.Area][]models.ExplanationItem{
			models.AreaReadingTheory: {},
			models.AreaReading:       {},
			models.AreaLiterature:    {},
		},
	}

	if level == models.GradeMiddle3High1 {
		cfg.Explanations[models.AreaGrammar] = []models.ExplanationItem{}
		return cfg
	}

	cfg.SubjectType = subject
	if subject == models.SubjectSpeechWriting {
		cfg.Explanations[models.AreaSpeechWriting] = []models.ExplanationItem{}
	} else {
		cfg.Explanations[models.AreaLanguageMedia] = []models.ExplanationItem{}
	}
	return cfg
}

// weekMap returns the mutable week map inside a cloned aggregate.
func weekMap(s *models.AdminSettings, level models.GradeLevel, subject models.SubjectType) map[string]*models.ExamConfig {
	if level == models.GradeMiddle3High1 {
		return s.Middle3High1
	}
	return s.ForLevel(level).ForSubject(subject)
}

// ensure returns the config at the slot, creating the default if absent.
func ensure(s *models.AdminSettings, level models.GradeLevel, weekLabel string, subject models.SubjectType) *models.ExamConfig {
	m := weekMap(s, level, subject)
	if cfg, ok := m[weekLabel]; ok && cfg != nil {
		return cfg
	}
	cfg := DefaultConfig(level, weekLabel, subject)
	m[weekLabel] = cfg
	return cfg
}

func upsertItem(cfg *models.ExamConfig, area models.Area, questionNumber int, text string) {
	if cfg.Explanations == nil {
		cfg.Explanations = map[models.Area][]models.ExplanationItem{}
	}
	items := cfg.Explanations[area]
	for i := range items {
		if items[i].QuestionNumber == questionNumber {
			items[i].Explanation = text
			cfg.Explanations[area] = items
			return
		}
	}
	cfg.Explanations[area] = append(items, models.ExplanationItem{
		QuestionNumber: questionNumber,
		Area:           area,
		Explanation:    text,
	})
}

func deleteItem(cfg *models.ExamConfig, area models.Area, questionNumber int) {
	items := cfg.Explanations[area]
	kept := items[:0]
	for _, item := range items {
		if item.QuestionNumber != questionNumber {
			kept = append(kept, item)
		}
	}
	cfg.Explanations[area] = kept
}

func isSharedArea(area models.Area) bool {
	for _, shared := range models.SharedAreas() {
		if area == shared {
			return true
		}
	}
	return false
}

// mirrored reports whether an explanation edit must be replayed into the
// sibling subject: shared-area content in the shared question range belongs
// to both electives of a cohort.
func mirrored(level models.GradeLevel, area models.Area, questionNumber int) bool {
	return level.HasSubjects() && isSharedArea(area) && models.SharedQuestion(questionNumber)
}

// UpsertExplanation inserts or replaces one explanation, replaying
// shared-range edits into both subjects of the cohort.
func UpsertExplanation(s models.AdminSettings, level models.GradeLevel, weekLabel string, subject models.SubjectType, area models.Area, questionNumber int, text string) models.AdminSettings {
	out := s.Clone()

	if level == models.GradeMiddle3High1 {
		upsertItem(ensure(&out, level, weekLabel, ""), area, questionNumber, text)
		return out
	}

	if mirrored(level, area, questionNumber) {
		for _, sub := range []models.SubjectType{models.SubjectLanguageMedia, models.SubjectSpeechWriting} {
			upsertItem(ensure(&out, level, weekLabel, sub), area, questionNumber, text)
		}
		return out
	}

	upsertItem(ensure(&out, level, weekLabel, subject), area, questionNumber, text)
	return out
}

// DeleteExplanation removes one explanation with the same mirroring rule.
func DeleteExplanation(s models.AdminSettings, level models.GradeLevel, weekLabel string, subject models.SubjectType, area models.Area, questionNumber int) models.AdminSettings {
	out := s.Clone()

	if level == models.GradeMiddle3High1 {
		if cfg, ok := out.Middle3High1[weekLabel]; ok && cfg != nil {
			deleteItem(cfg, area, questionNumber)
		}
		return out
	}

	if mirrored(level, area, questionNumber) {
		for _, sub := range []models.SubjectType{models.SubjectLanguageMedia, models.SubjectSpeechWriting} {
			if cfg, ok := out.ForLevel(level).ForSubject(sub)[weekLabel]; ok && cfg != nil {
				deleteItem(cfg, area, questionNumber)
			}
		}
		return out
	}

	if cfg, ok := out.ForLevel(level).ForSubject(subject)[weekLabel]; ok && cfg != nil {
		deleteItem(cfg, area, questionNumber)
	}
	return out
}

// ApplyConfig commits a wholesale replacement of one config. The edited
// config is authoritative for shared-range content: per shared area the
// sibling subject's [1,34] items are overwritten with the incoming set while
// its own-subject items, cutoffs and difficulty stay untouched.
func ApplyConfig(s models.AdminSettings, cfg *models.ExamConfig) models.AdminSettings {
	out := s.Clone()

	if cfg.GradeLevel == models.GradeMiddle3High1 {
		out.Middle3High1[cfg.ExamWeek] = cloneIncoming(cfg)
		return out
	}

	weekMap(&out, cfg.GradeLevel, cfg.SubjectType)[cfg.ExamWeek] = cloneIncoming(cfg)

	sibling := ensure(&out, cfg.GradeLevel, cfg.ExamWeek, cfg.SubjectType.Sibling())
	for _, area := range models.SharedAreas() {
		incoming, present := cfg.Explanations[area]
		if !present {
			continue
		}

		var shared []models.ExplanationItem
		for _, item := range incoming {
			if models.SharedQuestion(item.QuestionNumber) {
				shared = append(shared, item)
			}
		}

		var kept []models.ExplanationItem
		for _, item := range sibling.Explanations[area] {
			if !models.SharedQuestion(item.QuestionNumber) {
				kept = append(kept, item)
			}
		}

		sibling.Explanations[area] = append(kept, shared...)
	}

	return out
}

func cloneIncoming(cfg *models.ExamConfig) *models.ExamConfig {
	copied := *cfg
	copied.Explanations = make(map[models.Area][]models.ExplanationItem, len(cfg.Explanations))
	for area, items := range cfg.Explanations {
		list := make([]models.ExplanationItem, len(items))
		copy(list, items)
		copied.Explanations[area] = list
	}
	return &copied
}

// SetDifficulty flips the hard-exam flag. Difficulty is per subject and is
// never synchronized.
func SetDifficulty(s models.AdminSettings, level models.GradeLevel, weekLabel string, subject models.SubjectType, isHard bool) models.AdminSettings {
	out := s.Clone()
	ensure(&out, level, weekLabel, subject).IsHard = isHard
	return out
}

// WeekCuts carries the cutoffs for every target of the weekly bulk setup.
type WeekCuts struct {
	Middle3High1       models.GradeCuts `json:"middle3_high1"`
	High2LanguageMedia models.GradeCuts `json:"high2_language_media"`
	High2SpeechWriting models.GradeCuts `json:"high2_speech_writing"`
	High3LanguageMedia models.GradeCuts `json:"high3_language_media"`
	High3SpeechWriting models.GradeCuts `json:"high3_speech_writing"`
}

// SetWeekCuts writes the cutoffs for all five weekly targets, creating
// default configs on demand.
func SetWeekCuts(s models.AdminSettings, weekLabel string, cuts WeekCuts) models.AdminSettings {
	out := s.Clone()

	ensure(&out, models.GradeMiddle3High1, weekLabel, "").GradeCuts = cuts.Middle3High1
	ensure(&out, models.GradeHigh2, weekLabel, models.SubjectLanguageMedia).GradeCuts = cuts.High2LanguageMedia
	ensure(&out, models.GradeHigh2, weekLabel, models.SubjectSpeechWriting).GradeCuts = cuts.High2SpeechWriting
	ensure(&out, models.GradeHigh3, weekLabel, models.SubjectLanguageMedia).GradeCuts = cuts.High3LanguageMedia
	ensure(&out, models.GradeHigh3, weekLabel, models.SubjectSpeechWriting).GradeCuts = cuts.High3SpeechWriting

	return out
}

// WeekFullyConfigured reports whether every one of the five configs for the
// week exists with all four cutoffs entered. Failing the check is not an
// error; it gates the weekly setup prompt.
func WeekFullyConfigured(s models.AdminSettings, weekLabel string) bool {
	targets := []struct {
		level   models.GradeLevel
		subject models.SubjectType
	}{
		{models.GradeMiddle3High1, ""},
		{models.GradeHigh2, models.SubjectLanguageMedia},
		{models.GradeHigh2, models.SubjectSpeechWriting},
		{models.GradeHigh3, models.SubjectLanguageMedia},
		{models.GradeHigh3, models.SubjectSpeechWriting},
	}

	for _, target := range targets {
		cfg, ok := Resolve(s, target.level, weekLabel, target.subject)
		if !ok || !cfg.GradeCuts.AllPositive() {
			return false
		}
	}
	return true
}
