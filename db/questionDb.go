package db

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"studysets/models"
)

type QuestionRepository interface {
	CreateQuestion(question *models.QuizQuestion) error
	GetQuestionByID(id int) (*models.QuizQuestion, error)
	GetQuestionsByStudySet(studySetID int) ([]*models.QuizQuestion, error)
	GetAllQuestions() ([]*models.QuizQuestion, error)
	UnlinkQuestionFromStudySet(id int) error
}

type PostgresQuestionRepository struct {
	db *sql.DB
}

func NewPostgresQuestionRepository(db *sql.DB) *PostgresQuestionRepository {
	return &PostgresQuestionRepository{db: db}
}

func (r *PostgresQuestionRepository) CreateQuestion(question *models.QuizQuestion) error {
	optionsJSON, err := json.Marshal(question.Options)
	if err != nil {
		return fmt.Errorf("failed to marshal options: %w", err)
	}

	query := `
		INSERT INTO quiz_questions (study_set, question, options, answer, category, explanation)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	row := r.db.QueryRow(query, question.StudySetID, question.Question, string(optionsJSON),
		question.Answer, question.Category, question.Explanation)

	if err := row.Scan(&question.ID, &question.CreatedAt); err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}

	return nil
}

func (r *PostgresQuestionRepository) GetQuestionByID(id int) (*models.QuizQuestion, error) {
	query := `
		SELECT id, study_set, question, options, answer, category, explanation, created_at
		FROM quiz_questions
		WHERE id = $1`

	question, err := scanQuestion(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("question with id %d not found", id)
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	return question, nil
}

func (r *PostgresQuestionRepository) GetQuestionsByStudySet(studySetID int) ([]*models.QuizQuestion, error) {
	query := `
		SELECT id, study_set, question, options, answer, category, explanation, created_at
		FROM quiz_questions
		WHERE study_set = $1
		ORDER BY created_at ASC`

	return r.queryQuestions(query, studySetID)
}

func (r *PostgresQuestionRepository) GetAllQuestions() ([]*models.QuizQuestion, error) {
	query := `
		SELECT id, study_set, question, options, answer, category, explanation, created_at
		FROM quiz_questions
		ORDER BY created_at DESC`

	return r.queryQuestions(query)
}

func (r *PostgresQuestionRepository) UnlinkQuestionFromStudySet(id int) error {
	query := "UPDATE quiz_questions SET study_set = NULL WHERE id = $1"

	result, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to unlink question: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("question with id %d not found", id)
	}

	return nil
}

func (r *PostgresQuestionRepository) queryQuestions(query string, args ...any) ([]*models.QuizQuestion, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := make([]*models.QuizQuestion, 0)
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, question)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over questions: %w", err)
	}

	return questions, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (*models.QuizQuestion, error) {
	question := &models.QuizQuestion{}
	var optionsJSON string

	err := row.Scan(&question.ID, &question.StudySetID, &question.Question, &optionsJSON,
		&question.Answer, &question.Category, &question.Explanation, &question.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(optionsJSON), &question.Options); err != nil {
		return nil, fmt.Errorf("failed to unmarshal options: %w", err)
	}

	return question, nil
}
