package quiz

import (
	"log"
	"strings"
)

// resolveAnswer maps a raw answer field to the canonical correct option. The
// raw value is either an option index or the option text; text matching
// tolerates surrounding whitespace and case differences. The result is
// always a member of options: an unresolvable answer falls back to the first
// option with a logged mismatch.
func resolveAnswer(rawAnswer any, options []string) (int, string) {
	if len(options) == 0 {
		return 0, ""
	}

	switch answer := rawAnswer.(type) {
	case float64:
		idx := int(answer)
		if idx >= 0 && idx < len(options) {
			return idx, options[idx]
		}
	case int:
		if answer >= 0 && answer < len(options) {
			return answer, options[answer]
		}
	case string:
		trimmed := strings.TrimSpace(answer)

		for i, option := range options {
			if strings.TrimSpace(option) == trimmed {
				return i, option
			}
		}

		for i, option := range options {
			if strings.EqualFold(strings.TrimSpace(option), trimmed) {
				return i, option
			}
		}

		log.Printf("[ERROR] Answer %q did not match any option, defaulting to first option", answer)
	}

	return 0, options[0]
}
