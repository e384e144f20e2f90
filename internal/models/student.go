package models

// Student is the transient form state for one feedback session. It is never
// persisted directly; a FeedbackRecord snapshot survives the copy action.
type Student struct {
	Name               string         `json:"name"`
	GradeLevel         GradeLevel     `json:"gradeLevel"`
	ExamWeek           string         `json:"examWeek"`
	SubjectType        SubjectType    `json:"subjectType,omitempty"`
	Score              float64        `json:"score"`
	MainWrongAreas     []Area         `json:"mainWrongAreas"`
	WrongAnswers       map[Area][]int `json:"wrongAnswers"`
	AdditionalFeedback string         `json:"additionalFeedback"`
}

// FeedbackRecord is the snapshot appended when a message is recorded.
type FeedbackRecord struct {
	ID          string  `json:"id"`
	StudentData Student `json:"studentData"`
	// Timestamp is milliseconds since epoch, matching the stored blobs.
	Timestamp int64 `json:"timestamp"`
	// Date is the "YYYY-MM-DD" label used to scope the daily list.
	Date string `json:"date"`
}
