package services

import (
	"fmt"
	"testing"

	"studysets/models"
)

type stubAttemptRepo struct {
	attempts []*models.QuizAttempt
	failAll  bool
}

func (s *stubAttemptRepo) CreateAttempt(attempt *models.QuizAttempt) error {
	if s.failAll {
		return fmt.Errorf("insert failed")
	}
	attempt.ID = len(s.attempts) + 1
	s.attempts = append(s.attempts, attempt)
	return nil
}

func (s *stubAttemptRepo) GetAttemptsByStudySet(studySetID int) ([]*models.QuizAttempt, error) {
	matching := []*models.QuizAttempt{}
	for _, attempt := range s.attempts {
		if attempt.StudySetID == studySetID {
			matching = append(matching, attempt)
		}
	}
	return matching, nil
}

func attemptTestQuestions() *stubQuestionRepo {
	studySetID := 1
	geography := "Geography"
	biology := "Biology"
	return &stubQuestionRepo{questions: []*models.QuizQuestion{
		{ID: 1, StudySetID: &studySetID, Question: "Capital of France?",
			Options: []string{"Paris", "London", "Berlin", "Madrid"}, Answer: "Paris", Category: &geography},
		{ID: 2, StudySetID: &studySetID, Question: "Powerhouse of the cell?",
			Options: []string{"Mitochondria", "Nucleus", "Ribosome", "Golgi"}, Answer: "Mitochondria", Category: &biology},
		{ID: 3, StudySetID: &studySetID, Question: "Largest ocean?",
			Options: []string{"Pacific", "Atlantic", "Indian", "Arctic"}, Answer: "Pacific", Category: &geography},
	}}
}

func TestRecordAttemptComputesCorrectness(t *testing.T) {
	repo := &stubAttemptRepo{}
	service := NewAttemptService(repo, NewQuestionStoreService(attemptTestQuestions()))

	tests := []struct {
		name       string
		questionID int
		selected   string
		expected   bool
	}{
		{"correct answer", 1, "Paris", true},
		{"correct answer with whitespace", 2, "  Mitochondria ", true},
		{"wrong answer", 1, "London", false},
		{"case mismatch is wrong", 3, "pacific", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attempt, err := service.RecordAttempt(&models.RecordAttemptRequest{
				StudySetID: 1,
				QuestionID: tt.questionID,
				Selected:   tt.selected,
			})
			if err != nil {
				t.Fatalf("RecordAttempt returned unexpected error: %v", err)
			}
			if attempt.Correct != tt.expected {
				t.Errorf("expected correct=%v for selected %q, got %v", tt.expected, tt.selected, attempt.Correct)
			}
		})
	}

	if _, err := service.RecordAttempt(&models.RecordAttemptRequest{StudySetID: 1, QuestionID: 99, Selected: "Paris"}); err == nil {
		t.Error("expected an error for a missing question")
	}
}

func TestGetPerformanceAggregatesByCategory(t *testing.T) {
	repo := &stubAttemptRepo{}
	service := NewAttemptService(repo, NewQuestionStoreService(attemptTestQuestions()))

	answers := []struct {
		questionID int
		selected   string
	}{
		{1, "Paris"},   // Geography, correct
		{3, "Indian"},  // Geography, wrong
		{3, "Pacific"}, // Geography, correct
		{2, "Nucleus"}, // Biology, wrong
	}
	for _, answer := range answers {
		if _, err := service.RecordAttempt(&models.RecordAttemptRequest{
			StudySetID: 1,
			QuestionID: answer.questionID,
			Selected:   answer.selected,
		}); err != nil {
			t.Fatalf("RecordAttempt returned unexpected error: %v", err)
		}
	}

	report, err := service.GetPerformance(1)
	if err != nil {
		t.Fatalf("GetPerformance returned unexpected error: %v", err)
	}

	if report.Answered != 4 || report.Correct != 2 {
		t.Errorf("expected 4 answered / 2 correct, got %d / %d", report.Answered, report.Correct)
	}

	if len(report.Categories) != 2 {
		t.Fatalf("expected 2 category entries, got %d", len(report.Categories))
	}

	// Categories are sorted by name.
	biology := report.Categories[0]
	geography := report.Categories[1]

	if biology.Category != "Biology" || biology.Answered != 1 || biology.Correct != 0 {
		t.Errorf("unexpected biology entry: %+v", biology)
	}
	if geography.Category != "Geography" || geography.Answered != 3 || geography.Correct != 2 {
		t.Errorf("unexpected geography entry: %+v", geography)
	}
}
