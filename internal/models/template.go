package models

import "encoding/json"

// MessageTemplate holds the four editable message fragments. The closing
// fragment supports the {firstName} placeholder and the "(이)는" particle
// token.
type MessageTemplate struct {
	Closing          string `json:"closing"`
	HardExamPhrase   string `json:"hardExamPhrase"`
	NormalExamPhrase string `json:"normalExamPhrase"`
	EndingMessage    string `json:"endingMessage"`
}

// DefaultMessageTemplate returns the template used before any edits.
func DefaultMessageTemplate() MessageTemplate {
	return MessageTemplate{
		Closing:          "이번 모의고사에서 {firstName}(이)는 차분하고 꼼꼼한 태도로 문제를 풀어주었습니다.",
		HardExamPhrase:   "비교적 어려운 난이도의 시험이었습니다. 절대적 점수가 낮더라도 학생이 실망하지 않도록 격려해주세요.",
		NormalExamPhrase: "",
		EndingMessage:    "앞으로도 좋은 성적을 낼 수 있도록 최선을 다해 돕겠습니다. 따뜻한 응원과 함께 지켜봐주세요. 감사합니다.",
	}
}

// legacyTemplate is the pre-rewrite schema that kept separate closing
// variants. Only generalClosing survived into the current schema.
type legacyTemplate struct {
	GeneralClosing   string `json:"generalClosing"`
	NoneClosing      string `json:"noneClosing"`
	SpecificClosing  string `json:"specificClosing"`
	Closing          string `json:"closing"`
	HardExamPhrase   string `json:"hardExamPhrase"`
	NormalExamPhrase string `json:"normalExamPhrase"`
	EndingMessage    string `json:"endingMessage"`
}

// MigrateTemplate parses a stored template blob, remapping the legacy
// multi-closing schema to the current four-field one and backfilling missing
// fields from the defaults.
func MigrateTemplate(raw []byte) (MessageTemplate, error) {
	var legacy legacyTemplate
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return DefaultMessageTemplate(), err
	}

	defaults := DefaultMessageTemplate()

	if legacy.GeneralClosing != "" || legacy.NoneClosing != "" || legacy.SpecificClosing != "" {
		tpl := MessageTemplate{
			Closing:          legacy.GeneralClosing,
			HardExamPhrase:   legacy.HardExamPhrase,
			NormalExamPhrase: legacy.NormalExamPhrase,
			EndingMessage:    legacy.EndingMessage,
		}
		if tpl.Closing == "" {
			tpl.Closing = defaults.Closing
		}
		if tpl.HardExamPhrase == "" {
			tpl.HardExamPhrase = defaults.HardExamPhrase
		}
		if tpl.EndingMessage == "" {
			tpl.EndingMessage = defaults.EndingMessage
		}
		return tpl, nil
	}

	tpl := MessageTemplate{
		Closing:          legacy.Closing,
		HardExamPhrase:   legacy.HardExamPhrase,
		NormalExamPhrase: legacy.NormalExamPhrase,
		EndingMessage:    legacy.EndingMessage,
	}
	if tpl.Closing == "" {
		tpl.Closing = defaults.Closing
	}
	if tpl.EndingMessage == "" {
		tpl.EndingMessage = defaults.EndingMessage
	}
	return tpl, nil
}
