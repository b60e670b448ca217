package quiz

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// GeneratedQuestion is the structured format requested from the model.
type GeneratedQuestion struct {
	Question    string   `json:"question" jsonschema:"description=The question text"`
	Options     []string `json:"options" jsonschema:"minItems=4,maxItems=4,description=Exactly four answer options"`
	Answer      string   `json:"answer" jsonschema:"description=The exact text of the correct option"`
	Explanation string   `json:"explanation" jsonschema:"description=Why the answer is correct"`
	Category    string   `json:"category" jsonschema:"description=Short topic label"`
}

// GeneratedQuiz wraps the question batch; the model responds with this shape.
type GeneratedQuiz struct {
	QuizQuestions []GeneratedQuestion `json:"quiz_questions" jsonschema:"description=The generated questions"`
}

// questionBatchSchema reflects the response schema from GeneratedQuiz. It
// returns the schema as a JSON string for text prompts and as a generic map
// for tool input schemas.
func questionBatchSchema() (string, map[string]any, error) {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
		Anonymous:      true,
	}

	schema := reflector.Reflect(&GeneratedQuiz{})

	raw, err := json.Marshal(schema)
	if err != nil {
		return "", nil, fmt.Errorf("failed to marshal question schema: %w", err)
	}

	var asMap map[string]any
	if err := json.Unmarshal(raw, &asMap); err != nil {
		return "", nil, fmt.Errorf("failed to decode question schema: %w", err)
	}

	return string(raw), asMap, nil
}
