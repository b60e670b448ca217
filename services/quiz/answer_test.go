package quiz

import "testing"

func TestResolveAnswer(t *testing.T) {
	options := []string{"A", "B", "C", "D"}

	tests := []struct {
		name          string
		rawAnswer     any
		expectedIndex int
		expectedText  string
	}{
		{
			name:          "numeric index",
			rawAnswer:     float64(2),
			expectedIndex: 2,
			expectedText:  "C",
		},
		{
			name:          "integer index",
			rawAnswer:     1,
			expectedIndex: 1,
			expectedText:  "B",
		},
		{
			name:          "exact text match",
			rawAnswer:     "D",
			expectedIndex: 3,
			expectedText:  "D",
		},
		{
			name:          "text match with whitespace and case",
			rawAnswer:     " c ",
			expectedIndex: 2,
			expectedText:  "C",
		},
		{
			name:          "out of range index defaults to first option",
			rawAnswer:     float64(7),
			expectedIndex: 0,
			expectedText:  "A",
		},
		{
			name:          "negative index defaults to first option",
			rawAnswer:     float64(-1),
			expectedIndex: 0,
			expectedText:  "A",
		},
		{
			name:          "unmatched text defaults to first option",
			rawAnswer:     "E",
			expectedIndex: 0,
			expectedText:  "A",
		},
		{
			name:          "missing answer defaults to first option",
			rawAnswer:     nil,
			expectedIndex: 0,
			expectedText:  "A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, text := resolveAnswer(tt.rawAnswer, options)
			if index != tt.expectedIndex || text != tt.expectedText {
				t.Errorf("resolveAnswer(%v) = (%d, %q), expected (%d, %q)",
					tt.rawAnswer, index, text, tt.expectedIndex, tt.expectedText)
			}
		})
	}
}

func TestResolveAnswerAlwaysReturnsAnOption(t *testing.T) {
	options := []string{"Paris", "London", "Berlin", "Madrid"}
	rawAnswers := []any{float64(0), float64(3), float64(99), "London", "  berlin ", "nonsense", nil, true}

	for _, raw := range rawAnswers {
		_, text := resolveAnswer(raw, options)

		found := false
		for _, option := range options {
			if option == text {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("resolveAnswer(%v) returned %q, which is not one of the options", raw, text)
		}
	}
}
