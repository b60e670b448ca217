package quiz

import "fmt"

// generateAlternative produces a decoy option that is distinct from every
// existing option, templated from a topic hint. Deterministic given inputs.
func generateAlternative(existingOptions []string, topicHint string) string {
	candidates := []string{
		fmt.Sprintf("A different aspect of %s", topicHint),
		fmt.Sprintf("Unrelated concept to %s", topicHint),
		"Opposite of the correct answer",
		fmt.Sprintf("Common misconception about %s", topicHint),
	}

	for _, candidate := range candidates {
		distinct := true
		for _, existing := range existingOptions {
			if isTooSimilar(candidate, existing) {
				distinct = false
				break
			}
		}
		if distinct {
			return candidate
		}
	}

	return fmt.Sprintf("Alternative %d: %s", len(existingOptions)+1, topicHint)
}
