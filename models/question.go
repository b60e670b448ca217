package models

import "time"

// RawQuestion is an unvalidated question as returned by the LLM. Options may
// arrive as a JSON array or as a string containing one; Answer may be an
// option index or the option text itself. Normalization resolves both.
type RawQuestion struct {
	Question    string `json:"question"`
	Options     any    `json:"options"`
	Answer      any    `json:"answer"`
	Explanation string `json:"explanation,omitempty"`
	Category    string `json:"category,omitempty"`
}

// QuizQuestion is a normalized question: exactly four options, the answer
// equal to one of them. StudySetID is nil once a question has been unlinked
// from its study set.
type QuizQuestion struct {
	ID          int       `json:"id"`
	StudySetID  *int      `json:"study_set"`
	Question    string    `json:"question"`
	Options     []string  `json:"options"`
	Answer      string    `json:"answer"`
	Category    *string   `json:"category"`
	Explanation string    `json:"explanation"`
	CreatedAt   time.Time `json:"created_at"`
}

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
