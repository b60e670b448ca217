package quiz

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseQuestionBatch decodes an LLM completion into the list of raw question
// entries. Exactly three response shapes are accepted: a {"quiz_questions":
// [...]} wrapper, a bare array, and the legacy {"questions": [...]} wrapper.
// Anything else is a parse failure. Entries are returned undecoded so the
// normalizer can reject malformed ones individually.
func parseQuestionBatch(content string) ([]any, error) {
	payload := extractJSON(content)
	if payload == "" {
		return nil, fmt.Errorf("response contains no JSON payload")
	}

	var decoded any
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response JSON: %w", err)
	}

	switch value := decoded.(type) {
	case []any:
		return value, nil
	case map[string]any:
		if entries, ok := value["quiz_questions"].([]any); ok {
			return entries, nil
		}
		if entries, ok := value["questions"].([]any); ok {
			return entries, nil
		}
		return nil, fmt.Errorf("response object has no recognized question list")
	default:
		return nil, fmt.Errorf("response is neither an object nor an array")
	}
}

// extractJSON strips markdown code fences and surrounding prose, leaving the
// outermost JSON object or array.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		start := 3
		if newlineIdx := strings.Index(content[start:], "\n"); newlineIdx != -1 {
			start += newlineIdx + 1
		}
		if endIdx := strings.Index(content[start:], "```"); endIdx != -1 {
			content = content[start : start+endIdx]
		} else {
			content = content[start:]
		}
		content = strings.TrimSpace(content)
	}

	objStart := strings.Index(content, "{")
	arrStart := strings.Index(content, "[")

	start := objStart
	closer := "}"
	if arrStart != -1 && (objStart == -1 || arrStart < objStart) {
		start = arrStart
		closer = "]"
	}
	if start == -1 {
		return ""
	}

	end := strings.LastIndex(content, closer)
	if end <= start {
		return ""
	}

	return strings.TrimSpace(content[start : end+1])
}
