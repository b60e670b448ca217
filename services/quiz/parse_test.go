package quiz

import "testing"

func TestParseQuestionBatch(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		expectedCount int
		expectError   bool
	}{
		{
			name:          "quiz_questions wrapper",
			content:       `{"quiz_questions": [{"question": "Q1"}, {"question": "Q2"}]}`,
			expectedCount: 2,
		},
		{
			name:          "bare array",
			content:       `[{"question": "Q1"}, {"question": "Q2"}, {"question": "Q3"}]`,
			expectedCount: 3,
		},
		{
			name:          "legacy questions wrapper",
			content:       `{"questions": [{"question": "Q1"}]}`,
			expectedCount: 1,
		},
		{
			name: "markdown fenced response",
			content: "```json\n" +
				`{"quiz_questions": [{"question": "Q1"}]}` +
				"\n```",
			expectedCount: 1,
		},
		{
			name:          "surrounding prose",
			content:       `Here are your questions: [{"question": "Q1"}] Hope they help!`,
			expectedCount: 1,
		},
		{
			name:          "empty list",
			content:       `{"quiz_questions": []}`,
			expectedCount: 0,
		},
		{
			name:        "object without a question list",
			content:     `{"message": "I could not generate questions"}`,
			expectError: true,
		},
		{
			name:        "scalar response",
			content:     `42`,
			expectError: true,
		},
		{
			name:        "no JSON at all",
			content:     "Sorry, something went wrong.",
			expectError: true,
		},
		{
			name:        "malformed JSON",
			content:     `{"quiz_questions": [{"question": }]}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := parseQuestionBatch(tt.content)
			if tt.expectError {
				if err == nil {
					t.Errorf("parseQuestionBatch(%q) expected an error, got %d entries", tt.content, len(entries))
				}
				return
			}
			if err != nil {
				t.Fatalf("parseQuestionBatch(%q) returned unexpected error: %v", tt.content, err)
			}
			if len(entries) != tt.expectedCount {
				t.Errorf("parseQuestionBatch(%q) returned %d entries, expected %d",
					tt.content, len(entries), tt.expectedCount)
			}
		})
	}
}
