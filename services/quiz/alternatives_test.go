package quiz

import (
	"strings"
	"testing"
)

func TestGenerateAlternative(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		hint     string
		expected string
	}{
		{
			name:     "first candidate when nothing clashes",
			existing: []string{"Paris", "London", "Berlin"},
			hint:     "geography",
			expected: "A different aspect of geography",
		},
		{
			name:     "skips clashing first candidate",
			existing: []string{"A different aspect of geography", "London", "Berlin"},
			hint:     "geography",
			expected: "Unrelated concept to geography",
		},
		{
			name: "falls back to numbered alternative",
			existing: []string{
				"A different aspect of geography",
				"Unrelated concept to geography",
				"Opposite of the correct answer",
				"Common misconception about geography",
			},
			hint:     "geography",
			expected: "Alternative 5: geography",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := generateAlternative(tt.existing, tt.hint)
			if result != tt.expected {
				t.Errorf("generateAlternative(%v, %q) = %q, expected %q",
					tt.existing, tt.hint, result, tt.expected)
			}
		})
	}
}

func TestGenerateAlternativeIsDistinct(t *testing.T) {
	existing := []string{"The water cycle includes evaporation", "Condensation forms clouds", "Rainfall"}
	result := generateAlternative(existing, "the water cycle")

	for _, option := range existing {
		if isTooSimilar(result, option) {
			t.Errorf("generateAlternative returned %q, too similar to existing option %q", result, option)
		}
	}

	if strings.TrimSpace(result) == "" {
		t.Error("generateAlternative returned an empty option")
	}
}
