// Package week implements the Thursday-anchored week-of-month calendar used
// to label weekly mock exams. A week runs Monday through Sunday and belongs
// to the month containing its Thursday, so every calendar week is attributed
// to exactly one month with no gaps or overlaps.
package week

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/kyd-academy/feedback-api/internal/models"
)

// CurrentWeekSuffix marks the live current week in select options. It is
// stripped before a label is stored or compared.
const CurrentWeekSuffix = " (이번주)"

var labelPattern = regexp.MustCompile(`(\d{4})년\s+(\d{1,2})월\s+(\d{1,2})주차`)

// Calculator derives week labels from an injectable clock.
type Calculator struct {
	now func() time.Time
}

// NewCalculator builds a Calculator. A nil clock falls back to time.Now.
func NewCalculator(now func() time.Time) *Calculator {
	if now == nil {
		now = time.Now
	}
	return &Calculator{now: now}
}

// startOfWeek returns the Monday 00:00 of the week containing t.
func startOfWeek(t time.Time) time.Time {
	diff := (int(t.Weekday()) - 1 + 7) % 7
	return time.Date(t.Year(), t.Month(), t.Day()-diff, 0, 0, 0, 0, t.Location())
}

// Label renders the canonical display string for (year, month, week).
func Label(year, month, weekNum int) string {
	return fmt.Sprintf("%d년 %d월 %d주차", year, month, weekNum)
}

// monthWeek pairs a counted week with the Monday it starts on. The Monday
// cannot be reconstructed from the week index alone: when a month starts
// Friday through Sunday, the first scanned week belongs to the previous
// month and every counted Monday shifts a week later.
type monthWeek struct {
	info   models.WeekInfo
	monday time.Time
}

// scanMonth walks Mondays from the one on or before the 1st; a week counts
// when its Thursday falls inside the month.
func scanMonth(year, month int, loc *time.Location) []monthWeek {
	var result []monthWeek
	weekNum := 1

	monday := startOfWeek(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc))
	for {
		thursday := monday.AddDate(0, 0, 3)
		if int(thursday.Month()) == month && thursday.Year() == year {
			result = append(result, monthWeek{
				info: models.WeekInfo{
					Year:    year,
					Month:   month,
					Week:    weekNum,
					Display: Label(year, month, weekNum),
				},
				monday: monday,
			})
			weekNum++
		}

		monday = monday.AddDate(0, 0, 7)
		if monday.Year() > year || (monday.Year() == year && int(monday.Month()) > month) {
			break
		}
	}

	return result
}

// WeeksOfMonth returns the ordered 1-based weeks of a month.
func (c *Calculator) WeeksOfMonth(year, month int) []models.WeekInfo {
	scanned := scanMonth(year, month, time.Local)
	result := make([]models.WeekInfo, 0, len(scanned))
	for _, w := range scanned {
		result = append(result, w.info)
	}
	return result
}

// WeekOfMonth returns the 1-based index of the week containing date within
// its own month, or 0 when the date's week belongs to a neighbouring month.
func (c *Calculator) WeekOfMonth(date time.Time) int {
	monday := startOfWeek(date)
	for _, w := range scanMonth(date.Year(), int(date.Month()), date.Location()) {
		if w.monday.Equal(monday) {
			return w.info.Week
		}
	}
	return 0
}

// CurrentWeekInfo returns today's week with the live-week marker appended.
func (c *Calculator) CurrentWeekInfo() models.WeekInfo {
	now := c.now()
	year := now.Year()
	month := int(now.Month())
	weekNum := c.WeekOfMonth(now)

	return models.WeekInfo{
		Year:    year,
		Month:   month,
		Week:    weekNum,
		Display: Label(year, month, weekNum) + CurrentWeekSuffix,
	}
}

// PreviousWeekInfo returns the week n*7 days ago. Recomputing from the
// shifted date keeps month and year boundaries correct.
func (c *Calculator) PreviousWeekInfo(weeksAgo int) models.WeekInfo {
	target := c.now().AddDate(0, 0, -weeksAgo*7)

	year := target.Year()
	month := int(target.Month())
	weekNum := c.WeekOfMonth(target)

	return models.WeekInfo{
		Year:    year,
		Month:   month,
		Week:    weekNum,
		Display: Label(year, month, weekNum),
	}
}

// AvailableWeeks returns the current week and its two predecessors, most
// recent first, borrowing from the previous month when the current month has
// fewer than two earlier weeks.
func (c *Calculator) AvailableWeeks() []models.WeekInfo {
	now := c.now()
	year := now.Year()
	month := int(now.Month())

	weeks := scanMonth(year, month, now.Location())

	todayMonday := startOfWeek(now)
	thisWeekIdx := -1
	for i, w := range weeks {
		if w.monday.Equal(todayMonday) {
			thisWeekIdx = i
			break
		}
	}
	if thisWeekIdx == -1 {
		thisWeekIdx = len(weeks) - 1
	}

	if thisWeekIdx < 2 {
		prevMonth := month - 1
		prevYear := year
		if month == 1 {
			prevMonth = 12
			prevYear = year - 1
		}
		prevWeeks := scanMonth(prevYear, prevMonth, now.Location())
		need := 2 - thisWeekIdx
		if need > len(prevWeeks) {
			need = len(prevWeeks)
		}
		weeks = append(prevWeeks[len(prevWeeks)-need:], weeks...)
		thisWeekIdx += need
	}

	window := weeks[thisWeekIdx-2 : thisWeekIdx+1]
	reversed := make([]models.WeekInfo, 0, len(window))
	for i := len(window) - 1; i >= 0; i-- {
		reversed = append(reversed, window[i].info)
	}
	return reversed
}

// IsPreviousWeek reports whether a stored week label lies before the current
// week. Unparseable labels count as previous so the past-exam notice errs on
// the side of showing.
func (c *Calculator) IsPreviousWeek(label string) bool {
	m := labelPattern.FindStringSubmatch(label)
	if m == nil {
		return true
	}
	examYear, _ := strconv.Atoi(m[1])
	examMonth, _ := strconv.Atoi(m[2])
	examWeek, _ := strconv.Atoi(m[3])

	cur := c.CurrentWeekInfo()

	if examYear != cur.Year {
		return examYear < cur.Year
	}
	if examMonth != cur.Month {
		return examMonth < cur.Month
	}
	return examWeek < cur.Week
}
