package db

import (
	"database/sql"
	"fmt"

	"studysets/models"
)

type AttemptRepository interface {
	CreateAttempt(attempt *models.QuizAttempt) error
	GetAttemptsByStudySet(studySetID int) ([]*models.QuizAttempt, error)
}

type PostgresAttemptRepository struct {
	db *sql.DB
}

func NewPostgresAttemptRepository(db *sql.DB) *PostgresAttemptRepository {
	return &PostgresAttemptRepository{db: db}
}

func (r *PostgresAttemptRepository) CreateAttempt(attempt *models.QuizAttempt) error {
	query := `
		INSERT INTO quiz_attempts (study_set, question_id, selected, correct)
		VALUES ($1, $2, $3, $4)
		RETURNING id, answered_at`

	row := r.db.QueryRow(query, attempt.StudySetID, attempt.QuestionID, attempt.Selected, attempt.Correct)

	if err := row.Scan(&attempt.ID, &attempt.AnsweredAt); err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}

	return nil
}

func (r *PostgresAttemptRepository) GetAttemptsByStudySet(studySetID int) ([]*models.QuizAttempt, error) {
	query := `
		SELECT id, study_set, question_id, selected, correct, answered_at
		FROM quiz_attempts
		WHERE study_set = $1
		ORDER BY answered_at ASC`

	rows, err := r.db.Query(query, studySetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attempts: %w", err)
	}
	defer rows.Close()

	attempts := make([]*models.QuizAttempt, 0)
	for rows.Next() {
		attempt := &models.QuizAttempt{}
		err := rows.Scan(&attempt.ID, &attempt.StudySetID, &attempt.QuestionID,
			&attempt.Selected, &attempt.Correct, &attempt.AnsweredAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		attempts = append(attempts, attempt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over attempts: %w", err)
	}

	return attempts, nil
}
