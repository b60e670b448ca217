package services

import (
	"fmt"
	"log"
	"strings"

	"studysets/db"
	"studysets/models"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// QuestionStoreService persists normalized questions and serves the read
// paths used by the quiz, flashcard, and search screens.
type QuestionStoreService struct {
	repo db.QuestionRepository
}

func NewQuestionStoreService(repo db.QuestionRepository) *QuestionStoreService {
	return &QuestionStoreService{repo: repo}
}

// SaveQuestions inserts questions one at a time so a single failed insert
// does not block the rest of the batch. It returns the number actually saved.
func (s *QuestionStoreService) SaveQuestions(studySetID int, questions []*models.QuizQuestion) int {
	log.Printf("[INFO] Starting save of %d questions for study set %d", len(questions), studySetID)

	saved := 0
	for _, question := range questions {
		question.StudySetID = &studySetID
		if err := s.repo.CreateQuestion(question); err != nil {
			log.Printf("[ERROR] Failed to save question %q: %v", question.Question, err)
			continue
		}
		saved++
	}

	log.Printf("[INFO] Saved %d of %d questions for study set %d", saved, len(questions), studySetID)
	return saved
}

func (s *QuestionStoreService) GetQuestionsByStudySet(studySetID int) ([]*models.QuizQuestion, error) {
	log.Printf("[INFO] Starting get questions for study set %d", studySetID)

	if studySetID <= 0 {
		log.Printf("[ERROR] Invalid study set ID provided: %d", studySetID)
		return nil, fmt.Errorf("invalid study set ID: %d", studySetID)
	}

	questions, err := s.repo.GetQuestionsByStudySet(studySetID)
	if err != nil {
		log.Printf("[ERROR] Failed to get questions for study set %d: %v", studySetID, err)
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}

	log.Printf("[INFO] Successfully retrieved %d questions for study set %d", len(questions), studySetID)
	return questions, nil
}

func (s *QuestionStoreService) GetQuestionByID(id int) (*models.QuizQuestion, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid question ID: %d", id)
	}

	return s.repo.GetQuestionByID(id)
}

// UnlinkQuestion detaches a question from its study set without deleting the
// row. This is the only mutation a persisted question supports.
func (s *QuestionStoreService) UnlinkQuestion(id int) error {
	log.Printf("[INFO] Starting unlink of question %d", id)

	if id <= 0 {
		log.Printf("[ERROR] Invalid question ID provided for unlink: %d", id)
		return fmt.Errorf("invalid question ID: %d", id)
	}

	if err := s.repo.UnlinkQuestionFromStudySet(id); err != nil {
		log.Printf("[ERROR] Failed to unlink question %d: %v", id, err)
		return err
	}

	log.Printf("[INFO] Successfully unlinked question %d", id)
	return nil
}

// SearchQuestions performs a fuzzy content search across all questions.
func (s *QuestionStoreService) SearchQuestions(query string) ([]*models.QuizQuestion, error) {
	log.Printf("[INFO] Starting question search for %q", query)

	terms := strings.Fields(strings.ToLower(strings.TrimSpace(query)))
	if len(terms) == 0 {
		return nil, fmt.Errorf("search query cannot be empty")
	}

	questions, err := s.repo.GetAllQuestions()
	if err != nil {
		log.Printf("[ERROR] Failed to load questions for search: %v", err)
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}

	matching := lo.Filter(questions, func(question *models.QuizQuestion, index int) bool {
		return s.questionMatchesSearch(question, terms)
	})

	log.Printf("[INFO] Question search for %q matched %d of %d questions", query, len(matching), len(questions))
	return matching, nil
}

func (s *QuestionStoreService) questionMatchesSearch(question *models.QuizQuestion, searchTerms []string) bool {
	content := question.Question + " " + strings.Join(question.Options, " ")
	words := strings.Fields(strings.ToLower(content))

	cleanWords := make([]string, 0, len(words))
	for _, word := range words {
		cleanWord := strings.Trim(word, ".,!?;:()[]{}\"'")
		if len(cleanWord) > 0 {
			cleanWords = append(cleanWords, cleanWord)
		}
	}

	for _, term := range searchTerms {
		// Exact or substring match first
		if strings.Contains(strings.ToLower(content), term) {
			return true
		}

		// Fuzzy match against individual words tolerates typos
		if matches := fuzzy.Find(term, cleanWords); len(matches) > 0 {
			return true
		}
	}

	return false
}
