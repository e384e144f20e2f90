// Package message renders the final Korean feedback message sent to parents.
package message

import (
	"fmt"
	"strings"

	"github.com/kyd-academy/feedback-api/internal/grading"
	"github.com/kyd-academy/feedback-api/internal/models"
	"github.com/kyd-academy/feedback-api/internal/week"
)

const (
	greeting         = "안녕하세요, 대치동강용덕국어논술학원입니다."
	feedbackIntro    = "오늘 피드백을 진행한 부분입니다."
	noFeedbackNeeded = "스스로 모든 오답을 정확하게 고쳐주었고, 따로 질문이 없어 피드백은 진행하지 않았습니다."
	pastWeekNotice   = "지난 모의고사이지만 오늘 피드백을 진행했습니다."
	firstNameToken   = "{firstName}"
	particleToken    = "(이)는"
)

// Hangul syllable block bounds.
const (
	hangulBase rune = 0xAC00
	hangulLast rune = 0xD7A3
)

// FirstName drops the family-name syllable from a full Korean name. Names of
// two runes or fewer are kept whole.
func FirstName(full string) string {
	runes := []rune(full)
	if len(runes) <= 2 {
		return full
	}
	return string(runes[1:])
}

// TopicParticle chooses between the 이는/는 topic particles based on whether
// the name's final syllable carries a trailing consonant. Empty or
// non-Hangul input falls back to the trailing-consonant form.
func TopicParticle(name string) string {
	runes := []rune(name)
	if len(runes) == 0 {
		return "이는"
	}
	last := runes[len(runes)-1]
	if last < hangulBase || last > hangulLast {
		return "이는"
	}
	if (last-hangulBase)%28 != 0 {
		return "이는"
	}
	return "는"
}

// Generator composes messages. The week calculator supplies the past-week
// check so tests can pin the clock.
type Generator struct {
	weeks *week.Calculator
}

// NewGenerator builds a Generator.
func NewGenerator(weeks *week.Calculator) *Generator {
	if weeks == nil {
		weeks = week.NewCalculator(nil)
	}
	return &Generator{weeks: weeks}
}

// explanationText renders one area's wrong answers. The first rendered item
// carries the area label; question numbers without a stored explanation are
// dropped silently.
func explanationText(wrongNumbers []int, area models.Area, explanations []models.ExplanationItem, level models.GradeLevel) string {
	if len(wrongNumbers) == 0 {
		return ""
	}

	var parts []string
	for _, num := range wrongNumbers {
		var found *models.ExplanationItem
		for i := range explanations {
			if explanations[i].Area == area && explanations[i].QuestionNumber == num {
				found = &explanations[i]
				break
			}
		}
		if found == nil {
			continue
		}
		if len(parts) == 0 {
			parts = append(parts, fmt.Sprintf("(%s) %d. %s", area.KoreanName(level), num, found.Explanation))
		} else {
			parts = append(parts, fmt.Sprintf("%d. %s", num, found.Explanation))
		}
	}

	return strings.Join(parts, " ")
}

// feedbackSection walks the cohort's areas in fixed order and joins every
// rendered explanation, or falls back to the no-feedback sentence.
func feedbackSection(student models.Student, explanations []models.ExplanationItem) string {
	var parts []string
	for _, area := range models.FeedbackAreaOrder(student.GradeLevel, student.SubjectType) {
		nums := student.WrongAnswers[area]
		if len(nums) == 0 {
			continue
		}
		if text := explanationText(nums, area, explanations, student.GradeLevel); text != "" {
			parts = append(parts, text)
		}
	}

	if len(parts) == 0 {
		return noFeedbackNeeded
	}
	return feedbackIntro + " " + strings.Join(parts, " ")
}

func mainWrongAreasText(areas []models.Area, level models.GradeLevel) string {
	if len(areas) == 0 || (len(areas) == 1 && areas[0] == models.AreaNone) {
		return "따로없음"
	}
	names := make([]string, 0, len(areas))
	for _, area := range areas {
		names = append(names, area.KoreanName(level))
	}
	return strings.Join(names, ", ")
}

// Generate composes the final message from the student record, the resolved
// exam config, the flattened explanation set, and the editable template.
func (g *Generator) Generate(student models.Student, cfg *models.ExamConfig, explanations []models.ExplanationItem, tpl models.MessageTemplate) string {
	firstName := FirstName(student.Name)
	particle := TopicParticle(firstName)

	examName := strings.Replace(student.ExamWeek, week.CurrentWeekSuffix, "", 1)
	examName += " " + student.GradeLevel.KoreanName() + " 문제지"
	if student.SubjectType != "" {
		examName += " (" + student.SubjectType.KoreanName() + ")"
	}

	var cuts models.GradeCuts
	isHard := false
	if cfg != nil {
		cuts = cfg.GradeCuts
		isHard = cfg.IsHard
	}
	scoreGradeText := grading.DisplayText(student.Score, grading.Calculate(student.Score, cuts))

	mainAreasText := mainWrongAreasText(student.MainWrongAreas, student.GradeLevel)
	feedbackText := feedbackSection(student, explanations)

	additionalFeedback := ""
	if student.AdditionalFeedback != "" {
		additionalFeedback = student.AdditionalFeedback + " "
	}

	difficultyPhrase := tpl.NormalExamPhrase
	if isHard {
		difficultyPhrase = tpl.HardExamPhrase
	}
	difficultyText := ""
	if difficultyPhrase != "" {
		difficultyText = difficultyPhrase + " "
	}

	pastWeekText := ""
	if g.weeks.IsPreviousWeek(student.ExamWeek) {
		pastWeekText = pastWeekNotice + " "
	}

	// The particle substitution is global: a literal "(이)는" anywhere in the
	// edited closing text is rewritten too. Long-standing behaviour the
	// admins rely on, kept as is.
	closingText := strings.ReplaceAll(tpl.Closing, firstNameToken, firstName)
	closingText = strings.ReplaceAll(closingText, particleToken, particle)

	return fmt.Sprintf(`%s
1. 이름: %s
2. 시험명: %s
3. 점수(등급): %s
4. 피드백 내용: 이번 모의고사의 주요 오답 영역은 %s입니다. %s
5. 총평: %s%s%s %s%s`,
		greeting,
		student.Name,
		examName,
		scoreGradeText,
		mainAreasText,
		feedbackText,
		pastWeekText,
		difficultyText,
		closingText,
		additionalFeedback,
		tpl.EndingMessage,
	)
}
