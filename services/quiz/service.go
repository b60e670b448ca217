package quiz

import (
	"fmt"
	"time"

	"studysets/config"
	"studysets/services"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Service drives quiz generation: it calls the LLM with a size-bounded
// prompt, normalizes the response, and hands accepted questions to the
// question store. Image inputs go through the Anthropic vision client when
// one is configured.
type Service struct {
	llm        llms.Model
	anthropic  *anthropic.Client
	store      *services.QuestionStoreService
	normalizer *Normalizer
	timeout    time.Duration
	schemaJSON string
	schemaMap  map[string]any
}

func NewService(store *services.QuestionStoreService, categories CategoryResolver, cfg config.Config) (*Service, error) {
	llm, err := openai.New(
		openai.WithModel(cfg.OpenAIModel),
		openai.WithToken(cfg.OpenAIAPIKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	var anthropicClient *anthropic.Client
	if cfg.AnthropicAPIKey != "" {
		client := anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey))
		anthropicClient = &client
	}

	schemaJSON, schemaMap, err := questionBatchSchema()
	if err != nil {
		return nil, err
	}

	return &Service{
		llm:        llm,
		anthropic:  anthropicClient,
		store:      store,
		normalizer: NewNormalizer(categories),
		timeout:    cfg.GenerationTimeout,
		schemaJSON: schemaJSON,
		schemaMap:  schemaMap,
	}, nil
}
