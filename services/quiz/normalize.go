package quiz

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"studysets/models"
)

const optionCount = 4

// CategoryResolver resolves a category label to its canonical stored name,
// creating it if needed. Satisfied by services.CategoryService.
type CategoryResolver interface {
	GetOrCreateCategory(name string) (*models.Category, error)
}

// Normalizer turns raw LLM question entries into persistable questions:
// exactly four pairwise-distinct options with an answer equal to one of them.
type Normalizer struct {
	categories CategoryResolver
}

func NewNormalizer(categories CategoryResolver) *Normalizer {
	return &Normalizer{categories: categories}
}

type NormalizeResult struct {
	Questions []*models.QuizQuestion
	Skipped   int
}

// Normalize processes entries one at a time; a malformed entry is counted as
// skipped without aborting the batch. Duplicate question texts are dropped on
// the exact raw string, deliberately without case or whitespace folding.
func (n *Normalizer) Normalize(entries []any) *NormalizeResult {
	result := &NormalizeResult{Questions: []*models.QuizQuestion{}}
	seen := make(map[string]bool)

	for _, entry := range entries {
		question, ok := n.normalizeEntry(entry, seen)
		if !ok {
			result.Skipped++
			continue
		}
		result.Questions = append(result.Questions, question)
	}

	log.Printf("[INFO] Normalized %d questions, skipped %d", len(result.Questions), result.Skipped)
	return result
}

func (n *Normalizer) normalizeEntry(entry any, seen map[string]bool) (*models.QuizQuestion, bool) {
	fields, ok := entry.(map[string]any)
	if !ok {
		log.Printf("[ERROR] Skipping question entry: not an object")
		return nil, false
	}

	questionText, ok := fields["question"].(string)
	if !ok || questionText == "" {
		log.Printf("[ERROR] Skipping question entry: missing question text")
		return nil, false
	}

	raw := models.RawQuestion{
		Question: questionText,
		Options:  fields["options"],
		Answer:   fields["answer"],
	}
	raw.Explanation, _ = fields["explanation"].(string)
	raw.Category, _ = fields["category"].(string)

	if seen[raw.Question] {
		log.Printf("[INFO] Skipping duplicate question %q", raw.Question)
		return nil, false
	}

	options := coerceOptions(raw.Options)
	if len(options) == 0 {
		log.Printf("[ERROR] Skipping question %q: no usable options", raw.Question)
		return nil, false
	}

	for len(options) < optionCount {
		options = append(options, fmt.Sprintf("Option %d", len(options)+1))
	}
	// More than four options pass through untouched.

	hint := topicHint(raw.Question, raw.Category)

	for j := 1; j < len(options); j++ {
		for i := 0; i < j; i++ {
			if isTooSimilar(options[i], options[j]) {
				replacement := generateAlternative(options[:j], hint)
				log.Printf("[INFO] Replacing near-duplicate option %q with %q", options[j], replacement)
				options[j] = replacement
				break
			}
		}
	}

	_, answerText := resolveAnswer(raw.Answer, options)

	seen[raw.Question] = true

	return &models.QuizQuestion{
		Question:    raw.Question,
		Options:     options,
		Answer:      answerText,
		Category:    n.resolveCategory(raw.Category),
		Explanation: raw.Explanation,
	}, true
}

// coerceOptions accepts an array of strings as-is, attempts to JSON-parse a
// string into one, and treats everything else as empty.
func coerceOptions(raw any) []string {
	switch value := raw.(type) {
	case []any:
		options := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				options = append(options, s)
			}
		}
		return options
	case []string:
		return value
	case string:
		var parsed []string
		if err := json.Unmarshal([]byte(value), &parsed); err == nil {
			return parsed
		}
		return nil
	default:
		return nil
	}
}

// topicHint derives the decoy template hint: the category when present,
// otherwise the first three words of the question.
func topicHint(question string, category string) string {
	if strings.TrimSpace(category) != "" {
		return strings.TrimSpace(category)
	}

	words := strings.Fields(question)
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.Join(words, " ")
}

// resolveCategory is best-effort: a lookup or create failure leaves the
// question uncategorized rather than failing it.
func (n *Normalizer) resolveCategory(name string) *string {
	if strings.TrimSpace(name) == "" || n.categories == nil {
		return nil
	}

	category, err := n.categories.GetOrCreateCategory(name)
	if err != nil {
		log.Printf("[ERROR] Failed to resolve category %q, leaving question uncategorized: %v", name, err)
		return nil
	}

	return &category.Name
}
