package db

import (
	"database/sql"
	"fmt"

	"studysets/models"
)

type StudySetRepository interface {
	CreateStudySet(set *models.StudySet) error
	GetStudySetByID(id int) (*models.StudySet, error)
	GetAllStudySets() ([]*models.StudySet, error)
	UpdateStudySet(id int, updates map[string]any) error
	DeleteStudySet(id int) error
}

type PostgresStudySetRepository struct {
	db *sql.DB
}

func NewPostgresStudySetRepository(db *sql.DB) *PostgresStudySetRepository {
	return &PostgresStudySetRepository{db: db}
}

func (r *PostgresStudySetRepository) CreateStudySet(set *models.StudySet) error {
	query := `
		INSERT INTO study_sets (title, description)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`

	row := r.db.QueryRow(query, set.Title, set.Description)

	if err := row.Scan(&set.ID, &set.CreatedAt, &set.UpdatedAt); err != nil {
		return fmt.Errorf("failed to create study set: %w", err)
	}

	return nil
}

func (r *PostgresStudySetRepository) GetStudySetByID(id int) (*models.StudySet, error) {
	query := `
		SELECT id, title, description, created_at, updated_at
		FROM study_sets
		WHERE id = $1`

	set := &models.StudySet{}
	row := r.db.QueryRow(query, id)

	err := row.Scan(&set.ID, &set.Title, &set.Description, &set.CreatedAt, &set.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("study set with id %d not found", id)
		}
		return nil, fmt.Errorf("failed to get study set: %w", err)
	}

	return set, nil
}

func (r *PostgresStudySetRepository) GetAllStudySets() ([]*models.StudySet, error) {
	query := `
		SELECT id, title, description, created_at, updated_at
		FROM study_sets
		ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query study sets: %w", err)
	}
	defer rows.Close()

	sets := make([]*models.StudySet, 0)
	for rows.Next() {
		set := &models.StudySet{}
		err := rows.Scan(&set.ID, &set.Title, &set.Description, &set.CreatedAt, &set.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan study set: %w", err)
		}
		sets = append(sets, set)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over study sets: %w", err)
	}

	return sets, nil
}

func (r *PostgresStudySetRepository) UpdateStudySet(id int, updates map[string]any) error {
	setClause := ""
	args := []any{}
	argIdx := 1

	for column, value := range updates {
		if setClause != "" {
			setClause += ", "
		}
		setClause += fmt.Sprintf("%s = $%d", column, argIdx)
		args = append(args, value)
		argIdx++
	}
	setClause += ", updated_at = now()"

	args = append(args, id)
	query := fmt.Sprintf("UPDATE study_sets SET %s WHERE id = $%d", setClause, argIdx)

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update study set: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("study set with id %d not found", id)
	}

	return nil
}

func (r *PostgresStudySetRepository) DeleteStudySet(id int) error {
	query := "DELETE FROM study_sets WHERE id = $1"

	result, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete study set: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("study set with id %d not found", id)
	}

	return nil
}
