package db

import (
	"database/sql"
	"fmt"

	"studysets/models"
)

type CategoryRepository interface {
	GetCategoryByName(name string) (*models.Category, error)
	CreateCategory(category *models.Category) error
	GetAllCategories() ([]*models.Category, error)
}

type PostgresCategoryRepository struct {
	db *sql.DB
}

func NewPostgresCategoryRepository(db *sql.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) GetCategoryByName(name string) (*models.Category, error) {
	query := `
		SELECT id, name, created_at
		FROM categories
		WHERE name = $1`

	category := &models.Category{}
	row := r.db.QueryRow(query, name)

	err := row.Scan(&category.ID, &category.Name, &category.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("category %q not found", name)
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return category, nil
}

func (r *PostgresCategoryRepository) CreateCategory(category *models.Category) error {
	// ON CONFLICT keeps lazy creation race-safe across concurrent requests.
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, created_at`

	row := r.db.QueryRow(query, category.Name)

	if err := row.Scan(&category.ID, &category.CreatedAt); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

func (r *PostgresCategoryRepository) GetAllCategories() ([]*models.Category, error) {
	query := `
		SELECT id, name, created_at
		FROM categories
		ORDER BY name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]*models.Category, 0)
	for rows.Next() {
		category := &models.Category{}
		if err := rows.Scan(&category.ID, &category.Name, &category.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over categories: %w", err)
	}

	return categories, nil
}
