package services

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"studysets/db"
	"studysets/models"
)

// AttemptService records quiz answers and aggregates per-category
// performance for a study set.
type AttemptService struct {
	repo      db.AttemptRepository
	questions *QuestionStoreService
}

func NewAttemptService(repo db.AttemptRepository, questions *QuestionStoreService) *AttemptService {
	return &AttemptService{repo: repo, questions: questions}
}

// RecordAttempt stores one answered question. Correctness is computed against
// the stored answer text, tolerating surrounding whitespace.
func (s *AttemptService) RecordAttempt(req *models.RecordAttemptRequest) (*models.QuizAttempt, error) {
	log.Printf("[INFO] Starting attempt recording for question %d", req.QuestionID)

	if req.StudySetID <= 0 {
		log.Printf("[ERROR] Invalid study set ID provided for attempt: %d", req.StudySetID)
		return nil, fmt.Errorf("invalid study set ID: %d", req.StudySetID)
	}
	if req.QuestionID <= 0 {
		log.Printf("[ERROR] Invalid question ID provided for attempt: %d", req.QuestionID)
		return nil, fmt.Errorf("invalid question ID: %d", req.QuestionID)
	}

	question, err := s.questions.GetQuestionByID(req.QuestionID)
	if err != nil {
		log.Printf("[ERROR] Failed to load question %d for attempt: %v", req.QuestionID, err)
		return nil, err
	}

	attempt := &models.QuizAttempt{
		StudySetID: req.StudySetID,
		QuestionID: req.QuestionID,
		Selected:   strings.TrimSpace(req.Selected),
		Correct:    strings.TrimSpace(req.Selected) == question.Answer,
	}

	if err := s.repo.CreateAttempt(attempt); err != nil {
		log.Printf("[ERROR] Failed to record attempt for question %d: %v", req.QuestionID, err)
		return nil, fmt.Errorf("failed to record attempt: %w", err)
	}

	log.Printf("[INFO] Successfully recorded attempt %d (correct: %v)", attempt.ID, attempt.Correct)
	return attempt, nil
}

// GetPerformance aggregates all attempts for a study set into totals and
// per-category counts.
func (s *AttemptService) GetPerformance(studySetID int) (*models.PerformanceReport, error) {
	log.Printf("[INFO] Starting performance report for study set %d", studySetID)

	if studySetID <= 0 {
		log.Printf("[ERROR] Invalid study set ID provided for performance: %d", studySetID)
		return nil, fmt.Errorf("invalid study set ID: %d", studySetID)
	}

	attempts, err := s.repo.GetAttemptsByStudySet(studySetID)
	if err != nil {
		log.Printf("[ERROR] Failed to get attempts for study set %d: %v", studySetID, err)
		return nil, fmt.Errorf("failed to get attempts: %w", err)
	}

	report := &models.PerformanceReport{
		StudySetID: studySetID,
		Categories: []models.CategoryPerformance{},
	}

	byCategory := make(map[string]*models.CategoryPerformance)
	for _, attempt := range attempts {
		report.Answered++
		if attempt.Correct {
			report.Correct++
		}

		name := "Uncategorized"
		if question, err := s.questions.GetQuestionByID(attempt.QuestionID); err == nil && question.Category != nil {
			name = *question.Category
		}

		entry, ok := byCategory[name]
		if !ok {
			entry = &models.CategoryPerformance{Category: name}
			byCategory[name] = entry
		}
		entry.Answered++
		if attempt.Correct {
			entry.Correct++
		}
	}

	for _, entry := range byCategory {
		report.Categories = append(report.Categories, *entry)
	}
	sort.Slice(report.Categories, func(i, j int) bool {
		return report.Categories[i].Category < report.Categories[j].Category
	})

	log.Printf("[INFO] Performance report for study set %d: %d answered, %d correct",
		studySetID, report.Answered, report.Correct)
	return report, nil
}
