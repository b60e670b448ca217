package services

import (
	"fmt"
	"log"
	"strings"

	"studysets/db"
	"studysets/models"
)

type StudySetService struct {
	repo db.StudySetRepository
}

func NewStudySetService(repo db.StudySetRepository) *StudySetService {
	return &StudySetService{repo: repo}
}

func (s *StudySetService) CreateStudySet(req *models.CreateStudySetRequest) (*models.StudySet, error) {
	log.Printf("[INFO] Starting study set creation")

	if req == nil || strings.TrimSpace(req.Title) == "" {
		log.Printf("[ERROR] Study set creation validation failed: title is required")
		return nil, fmt.Errorf("title is required")
	}

	set := &models.StudySet{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
	}

	if err := s.repo.CreateStudySet(set); err != nil {
		log.Printf("[ERROR] Failed to create study set in repository: %v", err)
		return nil, fmt.Errorf("failed to create study set: %w", err)
	}

	log.Printf("[INFO] Successfully created study set with ID %d", set.ID)
	return set, nil
}

func (s *StudySetService) GetStudySetByID(id int) (*models.StudySet, error) {
	log.Printf("[INFO] Starting get study set by ID %d", id)

	if id <= 0 {
		log.Printf("[ERROR] Invalid study set ID provided: %d", id)
		return nil, fmt.Errorf("invalid study set ID: %d", id)
	}

	set, err := s.repo.GetStudySetByID(id)
	if err != nil {
		log.Printf("[ERROR] Failed to get study set by ID %d: %v", id, err)
		return nil, err
	}

	log.Printf("[INFO] Successfully retrieved study set with ID %d", id)
	return set, nil
}

func (s *StudySetService) GetAllStudySets() ([]*models.StudySet, error) {
	log.Printf("[INFO] Starting get all study sets")

	sets, err := s.repo.GetAllStudySets()
	if err != nil {
		log.Printf("[ERROR] Failed to get all study sets: %v", err)
		return nil, fmt.Errorf("failed to get study sets: %w", err)
	}

	log.Printf("[INFO] Successfully retrieved %d study sets", len(sets))
	return sets, nil
}

func (s *StudySetService) UpdateStudySet(id int, req *models.UpdateStudySetRequest) (*models.StudySet, error) {
	log.Printf("[INFO] Starting update study set with ID %d", id)

	if id <= 0 {
		log.Printf("[ERROR] Invalid study set ID provided for update: %d", id)
		return nil, fmt.Errorf("invalid study set ID: %d", id)
	}

	updates := make(map[string]any)

	if req.Title != nil {
		trimmedTitle := strings.TrimSpace(*req.Title)
		if trimmedTitle == "" {
			log.Printf("[ERROR] Empty title provided for study set ID %d", id)
			return nil, fmt.Errorf("title cannot be empty")
		}
		updates["title"] = trimmedTitle
	}

	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}

	if len(updates) == 0 {
		log.Printf("[ERROR] No valid updates provided for study set ID %d", id)
		return nil, fmt.Errorf("no valid updates provided")
	}

	if err := s.repo.UpdateStudySet(id, updates); err != nil {
		log.Printf("[ERROR] Failed to update study set ID %d in repository: %v", id, err)
		return nil, err
	}

	log.Printf("[INFO] Successfully updated study set with ID %d", id)
	return s.repo.GetStudySetByID(id)
}

func (s *StudySetService) DeleteStudySet(id int) error {
	log.Printf("[INFO] Starting delete study set with ID %d", id)

	if id <= 0 {
		log.Printf("[ERROR] Invalid study set ID provided for deletion: %d", id)
		return fmt.Errorf("invalid study set ID: %d", id)
	}

	if err := s.repo.DeleteStudySet(id); err != nil {
		log.Printf("[ERROR] Failed to delete study set ID %d: %v", id, err)
		return err
	}

	log.Printf("[INFO] Successfully deleted study set with ID %d", id)
	return nil
}
