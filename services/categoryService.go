package services

import (
	"fmt"
	"log"
	"strings"

	"studysets/db"
	"studysets/models"
)

// CategoryService creates category labels lazily the first time a question
// references them. Categories are never deleted.
type CategoryService struct {
	repo db.CategoryRepository
}

func NewCategoryService(repo db.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// GetOrCreateCategory resolves a category name to its canonical stored name,
// creating the category if it does not exist yet.
func (s *CategoryService) GetOrCreateCategory(name string) (*models.Category, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("category name cannot be empty")
	}

	category, err := s.repo.GetCategoryByName(trimmed)
	if err == nil {
		return category, nil
	}

	log.Printf("[INFO] Creating new category %q", trimmed)
	category = &models.Category{Name: trimmed}
	if err := s.repo.CreateCategory(category); err != nil {
		log.Printf("[ERROR] Failed to create category %q: %v", trimmed, err)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func (s *CategoryService) GetAllCategories() ([]*models.Category, error) {
	log.Printf("[INFO] Starting get all categories")

	categories, err := s.repo.GetAllCategories()
	if err != nil {
		log.Printf("[ERROR] Failed to get all categories: %v", err)
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	log.Printf("[INFO] Successfully retrieved %d categories", len(categories))
	return categories, nil
}
