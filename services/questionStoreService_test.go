package services

import (
	"fmt"
	"testing"

	"studysets/models"
)

type stubQuestionRepo struct {
	questions []*models.QuizQuestion
	failAll   bool
}

func (s *stubQuestionRepo) CreateQuestion(question *models.QuizQuestion) error {
	if s.failAll {
		return fmt.Errorf("insert failed")
	}
	question.ID = len(s.questions) + 1
	s.questions = append(s.questions, question)
	return nil
}

func (s *stubQuestionRepo) GetQuestionByID(id int) (*models.QuizQuestion, error) {
	for _, question := range s.questions {
		if question.ID == id {
			return question, nil
		}
	}
	return nil, fmt.Errorf("question with id %d not found", id)
}

func (s *stubQuestionRepo) GetQuestionsByStudySet(studySetID int) ([]*models.QuizQuestion, error) {
	matching := []*models.QuizQuestion{}
	for _, question := range s.questions {
		if question.StudySetID != nil && *question.StudySetID == studySetID {
			matching = append(matching, question)
		}
	}
	return matching, nil
}

func (s *stubQuestionRepo) GetAllQuestions() ([]*models.QuizQuestion, error) {
	return s.questions, nil
}

func (s *stubQuestionRepo) UnlinkQuestionFromStudySet(id int) error {
	for _, question := range s.questions {
		if question.ID == id {
			question.StudySetID = nil
			return nil
		}
	}
	return fmt.Errorf("question with id %d not found", id)
}

func TestSaveQuestionsReportsActualCount(t *testing.T) {
	repo := &stubQuestionRepo{}
	service := NewQuestionStoreService(repo)

	questions := []*models.QuizQuestion{
		{Question: "Q1", Options: []string{"A", "B", "C", "D"}, Answer: "A"},
		{Question: "Q2", Options: []string{"A", "B", "C", "D"}, Answer: "B"},
	}

	saved := service.SaveQuestions(7, questions)
	if saved != 2 {
		t.Errorf("expected 2 saved, got %d", saved)
	}
	for _, question := range repo.questions {
		if question.StudySetID == nil || *question.StudySetID != 7 {
			t.Errorf("expected question linked to study set 7, got %v", question.StudySetID)
		}
	}

	failing := NewQuestionStoreService(&stubQuestionRepo{failAll: true})
	if saved := failing.SaveQuestions(7, questions); saved != 0 {
		t.Errorf("expected 0 saved when every insert fails, got %d", saved)
	}
}

func TestUnlinkQuestionKeepsRow(t *testing.T) {
	studySetID := 7
	repo := &stubQuestionRepo{questions: []*models.QuizQuestion{
		{ID: 1, StudySetID: &studySetID, Question: "Q1"},
	}}
	service := NewQuestionStoreService(repo)

	if err := service.UnlinkQuestion(1); err != nil {
		t.Fatalf("UnlinkQuestion returned unexpected error: %v", err)
	}

	if len(repo.questions) != 1 {
		t.Fatalf("expected the question row to survive unlinking")
	}
	if repo.questions[0].StudySetID != nil {
		t.Errorf("expected study set link cleared, got %v", *repo.questions[0].StudySetID)
	}

	if err := service.UnlinkQuestion(99); err == nil {
		t.Error("expected an error for a missing question")
	}
}

func TestSearchQuestions(t *testing.T) {
	repo := &stubQuestionRepo{questions: []*models.QuizQuestion{
		{ID: 1, Question: "What improves database scalability?", Options: []string{"Sharding", "Polling", "Caching", "Retries"}},
		{ID: 2, Question: "Which framework renders the frontend?", Options: []string{"React", "Postgres", "Redis", "Kafka"}},
		{ID: 3, Question: "What describes microservices architecture?", Options: []string{"Small services", "One binary", "Shared state", "Manual deploys"}},
	}}
	service := NewQuestionStoreService(repo)

	tests := []struct {
		name        string
		query       string
		expectedIDs []int
	}{
		{
			name:        "exact term",
			query:       "database",
			expectedIDs: []int{1},
		},
		{
			name:        "term with typo",
			query:       "databse",
			expectedIDs: []int{1},
		},
		{
			name:        "matches option text",
			query:       "react",
			expectedIDs: []int{2},
		},
		{
			name:        "no matches",
			query:       "blockchain",
			expectedIDs: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := service.SearchQuestions(tt.query)
			if err != nil {
				t.Fatalf("SearchQuestions(%q) returned unexpected error: %v", tt.query, err)
			}

			if len(results) != len(tt.expectedIDs) {
				t.Fatalf("SearchQuestions(%q) returned %d results, expected %d",
					tt.query, len(results), len(tt.expectedIDs))
			}

			for i, expectedID := range tt.expectedIDs {
				if results[i].ID != expectedID {
					t.Errorf("SearchQuestions(%q) result %d has ID %d, expected %d",
						tt.query, i, results[i].ID, expectedID)
				}
			}
		})
	}

	if _, err := service.SearchQuestions("   "); err == nil {
		t.Error("expected an error for an empty query")
	}
}
