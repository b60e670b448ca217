package quiz

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
)

const submitQuestionsTool = "submit_quiz_questions"

// generateFromImage produces questions from an image of study material using
// the Anthropic vision model. The question batch schema is supplied as the
// tool input schema and the tool call is forced, so the response arrives
// already structured.
func (s *Service) generateFromImage(ctx context.Context, imageURL string, numQuestions int) ([]any, error) {
	if s.anthropic == nil {
		return nil, fmt.Errorf("image-based generation is not configured")
	}

	mediaType, encoded, err := fetchImage(ctx, imageURL)
	if err != nil {
		return nil, err
	}

	tool := anthropic.ToolParam{
		Name:        submitQuestionsTool,
		Description: anthropic.String("Submit the generated quiz questions"),
		InputSchema: anthropic.ToolInputSchemaParam{
			Properties: s.schemaMap["properties"],
		},
	}

	log.Printf("[INFO] Calling Anthropic for image-based quiz generation")
	response, err := s.anthropic.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.ModelClaude4Sonnet20250514,
		MaxTokens: 4096,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewImageBlockBase64(mediaType, encoded),
				anthropic.NewTextBlock(fmt.Sprintf(IMAGE_GENERATION_PROMPT, numQuestions)),
			),
		},
		Tools: []anthropic.ToolUnionParam{
			{OfTool: &tool},
		},
		ToolChoice: anthropic.ToolChoiceUnionParam{
			OfTool: &anthropic.ToolChoiceToolParam{Name: submitQuestionsTool},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call Anthropic API: %w", err)
	}

	for _, block := range response.Content {
		switch block := block.AsAny().(type) {
		case anthropic.ToolUseBlock:
			if block.Name != submitQuestionsTool {
				continue
			}
			inputJSON, err := json.Marshal(block.Input)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal tool input: %w", err)
			}
			return parseQuestionBatch(string(inputJSON))
		}
	}

	return nil, fmt.Errorf("response contains no %s tool call", submitQuestionsTool)
}

// fetchImage downloads the image and returns its media type and base64 data.
func fetchImage(ctx context.Context, imageURL string) (string, string, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to build image request: %w", err)
	}

	response, err := http.DefaultClient.Do(request)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch image: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("failed to fetch image: status %d", response.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(response.Body, 20<<20))
	if err != nil {
		return "", "", fmt.Errorf("failed to read image: %w", err)
	}

	mediaType := response.Header.Get("Content-Type")
	if idx := strings.Index(mediaType, ";"); idx != -1 {
		mediaType = mediaType[:idx]
	}
	if !strings.HasPrefix(mediaType, "image/") {
		mediaType = "image/png"
	}

	return mediaType, base64.StdEncoding.EncodeToString(data), nil
}
