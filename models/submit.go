package models

import (
	"time"

	"github.com/guregu/null/v6/zero"
)

type AnswerPayload struct {
	Answer string `json:"answer"`
}

// SubmitResponse is the server-side scoring feedback for an answer.
type SubmitResponse struct {
	Correct       bool   `json:"correct"`
	LengthCorrect bool   `json:"lengthCorrect"`
	FirstCorrect  bool   `json:"firstCorrect"`
	Time          int64  `json:"time"`
	GlobalPlace   int64  `json:"globalPlace"`
	GlobalScore   int64  `json:"globalScore"`
	Message       string `json:"message"`
}

// Submission is one row of local answer history, including rejected
// attempts.
type Submission struct {
	ID            uint `gorm:"primarykey"`
	Year          int  `gorm:"index:idx_submission,priority:1;not null"`
	Day           int  `gorm:"index:idx_submission,priority:2;not null"`
	Part          int  `gorm:"index:idx_submission,priority:3;not null"`
	Answer        string
	Correct       bool
	LengthCorrect bool
	FirstCorrect  bool
	TimeMS        int64
	GlobalPlace   int64
	GlobalScore   int64
	Message       zero.String
	CreatedAt     time.Time
}

// NewSubmission pairs a submitted answer with the server's verdict.
func NewSubmission(quest Quest, answer string, resp *SubmitResponse) *Submission {
	return &Submission{
		Year:          quest.Year,
		Day:           quest.Day,
		Part:          quest.Part,
		Answer:        answer,
		Correct:       resp.Correct,
		LengthCorrect: resp.LengthCorrect,
		FirstCorrect:  resp.FirstCorrect,
		TimeMS:        resp.Time,
		GlobalPlace:   resp.GlobalPlace,
		GlobalScore:   resp.GlobalScore,
		Message:       zero.StringFrom(resp.Message),
	}
}
