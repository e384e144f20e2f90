package models

// GradeLevel identifies a student cohort.
type GradeLevel string

const (
	// GradeMiddle3High1 is the combined middle-3 / high-1 cohort.
	GradeMiddle3High1 GradeLevel = "middle3_high1"
	// GradeHigh2 is the second-year high-school cohort.
	GradeHigh2 GradeLevel = "high2"
	// GradeHigh3 is the third-year high-school cohort.
	GradeHigh3 GradeLevel = "high3"
)

// Valid reports whether the grade level is one of the known cohorts.
func (g GradeLevel) Valid() bool {
	switch g {
	case GradeMiddle3High1, GradeHigh2, GradeHigh3:
		return true
	}
	return false
}

// HasSubjects reports whether the cohort splits into elective subjects.
func (g GradeLevel) HasSubjects() bool {
	return g == GradeHigh2 || g == GradeHigh3
}

// KoreanName returns the display name used in generated messages.
func (g GradeLevel) KoreanName() string {
	switch g {
	case GradeMiddle3High1:
		return "중3/고1"
	case GradeHigh2:
		return "고2"
	case GradeHigh3:
		return "고3"
	}
	return string(g)
}

// SubjectType is one of the two elective subjects for high2/high3.
type SubjectType string

const (
	SubjectLanguageMedia SubjectType = "language_media"
	SubjectSpeechWriting SubjectType = "speech_writing"
)

// Valid reports whether the subject is one of the two electives.
func (s SubjectType) Valid() bool {
	return s == SubjectLanguageMedia || s == SubjectSpeechWriting
}

// Sibling returns the other elective subject.
func (s SubjectType) Sibling() SubjectType {
	if s == SubjectLanguageMedia {
		return SubjectSpeechWriting
	}
	return SubjectLanguageMedia
}

// KoreanName returns the display name used in generated messages.
func (s SubjectType) KoreanName() string {
	switch s {
	case SubjectLanguageMedia:
		return "언어와매체"
	case SubjectSpeechWriting:
		return "화법과작문"
	}
	return string(s)
}

// Area is a subject-matter category of exam questions.
type Area string

const (
	AreaReadingTheory Area = "reading_theory"
	AreaGrammar       Area = "grammar"
	AreaReading       Area = "reading"
	AreaLiterature    Area = "literature"
	AreaLanguageMedia Area = "language_media"
	AreaSpeechWriting Area = "speech_writing"
	AreaOverall       Area = "overall"
	AreaNone          Area = "none"
)

// KoreanName returns the area label for the given cohort. The first area
// reads "화작" for middle3/high1 but "독서론" for high2/high3, and the
// grammar label differs as well.
func (a Area) KoreanName(level GradeLevel) string {
	if level == GradeMiddle3High1 {
		switch a {
		case AreaReadingTheory:
			return "화작"
		case AreaGrammar:
			return "문법"
		case AreaReading:
			return "독서"
		case AreaLiterature:
			return "문학"
		case AreaLanguageMedia:
			return "언어와매체"
		case AreaSpeechWriting:
			return "화법과작문"
		case AreaOverall:
			return "전반적 영역"
		case AreaNone:
			return "따로없음"
		}
		return string(a)
	}

	switch a {
	case AreaReadingTheory:
		return "독서론"
	case AreaGrammar:
		return "어법"
	case AreaReading:
		return "독서"
	case AreaLiterature:
		return "문학"
	case AreaLanguageMedia:
		return "언어와매체"
	case AreaSpeechWriting:
		return "화법과작문"
	case AreaOverall:
		return "전반적 영역"
	case AreaNone:
		return "따로없음"
	}
	return string(a)
}

// ValidForExplanations reports whether explanations can be stored under the
// area. The overall/none markers are selectable as wrong areas but carry no
// question lists.
func (a Area) ValidForExplanations() bool {
	switch a {
	case AreaReadingTheory, AreaGrammar, AreaReading, AreaLiterature, AreaLanguageMedia, AreaSpeechWriting:
		return true
	}
	return false
}

// SharedAreas lists the areas whose low-numbered questions are common to both
// elective subjects of a cohort.
func SharedAreas() []Area {
	return []Area{AreaReadingTheory, AreaReading, AreaLiterature}
}

// FeedbackAreaOrder returns the fixed rendering order of wrong-answer areas
// for a student's cohort and subject.
func FeedbackAreaOrder(level GradeLevel, subject SubjectType) []Area {
	if level == GradeMiddle3High1 {
		return []Area{AreaReadingTheory, AreaGrammar, AreaReading, AreaLiterature}
	}
	if subject == SubjectSpeechWriting {
		return []Area{AreaReadingTheory, AreaReading, AreaLiterature, AreaSpeechWriting}
	}
	return []Area{AreaReadingTheory, AreaReading, AreaLiterature, AreaLanguageMedia}
}

const (
	// SharedQuestionMin and SharedQuestionMax bound the question numbers whose
	// explanations are identical across both elective subjects.
	SharedQuestionMin = 1
	SharedQuestionMax = 34
	// MaxQuestionNumber is the last question on the exam sheet.
	MaxQuestionNumber = 45
)

// SharedQuestion reports whether a question number falls in the range common
// to both elective subjects.
func SharedQuestion(n int) bool {
	return n >= SharedQuestionMin && n <= SharedQuestionMax
}

// GradeCuts holds the minimum scores for grades 1 through 4. An all-zero
// value means the cutoffs have not been entered yet.
type GradeCuts struct {
	Grade1 float64 `json:"grade1"`
	Grade2 float64 `json:"grade2"`
	Grade3 float64 `json:"grade3"`
	Grade4 float64 `json:"grade4"`
}

// AllPositive reports whether every cutoff has been entered.
func (c GradeCuts) AllPositive() bool {
	return c.Grade1 > 0 && c.Grade2 > 0 && c.Grade3 > 0 && c.Grade4 > 0
}

// ExplanationItem is one per-question explanation snippet.
type ExplanationItem struct {
	QuestionNumber int    `json:"questionNumber"`
	Area           Area   `json:"area"`
	Explanation    string `json:"explanation"`
}

// ExamConfig is the per (cohort, subject, week) exam setup.
type ExamConfig struct {
	GradeLevel   GradeLevel                 `json:"gradeLevel"`
	SubjectType  SubjectType                `json:"subjectType,omitempty"`
	ExamWeek     string                     `json:"examWeek"`
	IsHard       bool                       `json:"isHard"`
	GradeCuts    GradeCuts                  `json:"gradeCuts"`
	Explanations map[Area][]ExplanationItem `json:"explanations"`
}

// AllExplanations flattens every area list into a single slice.
func (c *ExamConfig) AllExplanations() []ExplanationItem {
	if c == nil {
		return nil
	}
	var all []ExplanationItem
	for _, items := range c.Explanations {
		all = append(all, items...)
	}
	return all
}

// SubjectSettings holds per-week configs for each elective subject.
type SubjectSettings struct {
	LanguageMedia map[string]*ExamConfig `json:"language_media"`
	SpeechWriting map[string]*ExamConfig `json:"speech_writing"`
}

// ForSubject returns the week map for the given subject.
func (s SubjectSettings) ForSubject(subject SubjectType) map[string]*ExamConfig {
	if subject == SubjectSpeechWriting {
		return s.SpeechWriting
	}
	return s.LanguageMedia
}

// AdminSettings is the root persisted aggregate: every exam config keyed by
// week label, grouped by cohort and subject.
type AdminSettings struct {
	Middle3High1 map[string]*ExamConfig `json:"middle3_high1"`
	High2        SubjectSettings        `json:"high2"`
	High3        SubjectSettings        `json:"high3"`
}

// EmptyAdminSettings returns the aggregate skeleton with all maps allocated.
func EmptyAdminSettings() AdminSettings {
	return AdminSettings{
		Middle3High1: map[string]*ExamConfig{},
		High2: SubjectSettings{
			LanguageMedia: map[string]*ExamConfig{},
			SpeechWriting: map[string]*ExamConfig{},
		},
		High3: SubjectSettings{
			LanguageMedia: map[string]*ExamConfig{},
			SpeechWriting: map[string]*ExamConfig{},
		},
	}
}

// ForLevel returns the subject settings for a cohort with electives.
func (s AdminSettings) ForLevel(level GradeLevel) SubjectSettings {
	if level == GradeHigh3 {
		return s.High3
	}
	return s.High2
}

// Clone deep-copies the aggregate so updates never mutate the loaded value.
func (s AdminSettings) Clone() AdminSettings {
	out := AdminSettings{
		Middle3High1: cloneWeekMap(s.Middle3High1),
		High2: SubjectSettings{
			LanguageMedia: cloneWeekMap(s.High2.LanguageMedia),
			SpeechWriting: cloneWeekMap(s.High2.SpeechWriting),
		},
		High3: SubjectSettings{
			LanguageMedia: cloneWeekMap(s.High3.LanguageMedia),
			SpeechWriting: cloneWeekMap(s.High3.SpeechWriting),
		},
	}
	return out
}

func cloneWeekMap(in map[string]*ExamConfig) map[string]*ExamConfig {
	out := make(map[string]*ExamConfig, len(in))
	for week, cfg := range in {
		out[week] = cloneConfig(cfg)
	}
	return out
}

func cloneConfig(in *ExamConfig) *ExamConfig {
	if in == nil {
		return nil
	}
	out := *in
	out.Explanations = make(map[Area][]ExplanationItem, len(in.Explanations))
	for area, items := range in.Explanations {
		copied := make([]ExplanationItem, len(items))
		copy(copied, items)
		out.Explanations[area] = copied
	}
	return &out
}
