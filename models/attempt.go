package models

import "time"

// QuizAttempt records one answered question during a quiz session.
type QuizAttempt struct {
	ID         int       `json:"id"`
	StudySetID int       `json:"study_set"`
	QuestionID int       `json:"question_id"`
	Selected   string    `json:"selected"`
	Correct    bool      `json:"correct"`
	AnsweredAt time.Time `json:"answered_at"`
}

type RecordAttemptRequest struct {
	StudySetID int    `json:"studySetId"`
	QuestionID int    `json:"questionId"`
	Selected   string `json:"selected"`
}

// CategoryPerformance aggregates attempts for one category of a study set.
type CategoryPerformance struct {
	Category string `json:"category"`
	Answered int    `json:"answered"`
	Correct  int    `json:"correct"`
}

type PerformanceReport struct {
	StudySetID int                   `json:"study_set"`
	Answered   int                   `json:"answered"`
	Correct    int                   `json:"correct"`
	Categories []CategoryPerformance `json:"categories"`
}
