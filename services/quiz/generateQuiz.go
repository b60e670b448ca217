package quiz

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/tmc/langchaingo/llms"
)

// attemptWindows is the shrinking content budget, in characters, for each
// generation attempt. Its length is the attempt budget.
var attemptWindows = [...]int{12000, 8000, 4000}

type generationState int

const (
	stateIdle generationState = iota
	stateAttempting
	stateSuccess
)

type batchDecision int

const (
	decisionRetry batchDecision = iota
	decisionAccept
	decisionAcceptPartial
)

type GenerateRequest struct {
	StudySetID   int
	Content      string
	ImageURL     string
	NumQuestions int
	JobID        string
}

type GenerateResult struct {
	Requested int    `json:"requested"`
	Saved     int    `json:"saved"`
	Message   string `json:"message"`
	JobID     string `json:"jobId"`
}

// GenerateQuiz runs the bounded retry loop: each attempt truncates the source
// content to its window, issues one LLM request, and evaluates the returned
// question count. Accepted questions are normalized and persisted; only
// exhausting every attempt is a failure.
func (s *Service) GenerateQuiz(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	start := time.Now()
	state := stateIdle

	var accepted []any
	degraded := false

	for attempt := 0; attempt < len(attemptWindows); attempt++ {
		state = stateAttempting
		finalAttempt := attempt == len(attemptWindows)-1
		window := attemptWindows[attempt]

		log.Printf("[INFO] Generation job %s attempt %d/%d with content window %d",
			req.JobID, attempt+1, len(attemptWindows), window)

		entries, err := s.requestQuestions(ctx, req, window)
		if err != nil {
			log.Printf("[ERROR] Generation job %s attempt %d failed: %v", req.JobID, attempt+1, err)
			s.checkSoftBudget(req.JobID, start)
			continue
		}

		switch decideBatch(len(entries), req.NumQuestions, finalAttempt) {
		case decisionAccept:
			if len(entries) > req.NumQuestions {
				log.Printf("[INFO] Generation job %s returned %d questions, truncating to %d",
					req.JobID, len(entries), req.NumQuestions)
				entries = entries[:req.NumQuestions]
			}
			accepted = entries
			state = stateSuccess
		case decisionAcceptPartial:
			log.Printf("[INFO] Generation job %s accepting partial batch of %d (requested %d)",
				req.JobID, len(entries), req.NumQuestions)
			accepted = entries
			degraded = true
			state = stateSuccess
		case decisionRetry:
			log.Printf("[INFO] Generation job %s attempt %d returned %d questions, retrying",
				req.JobID, attempt+1, len(entries))
			s.checkSoftBudget(req.JobID, start)
		}

		if state == stateSuccess {
			break
		}
	}

	if state != stateSuccess {
		log.Printf("[ERROR] Generation job %s exhausted all %d attempts", req.JobID, len(attemptWindows))
		return nil, fmt.Errorf("quiz generation failed after %d attempts", len(attemptWindows))
	}

	normalized := s.normalizer.Normalize(accepted)
	saved := s.store.SaveQuestions(req.StudySetID, normalized.Questions)

	message := fmt.Sprintf("Generated and saved %d questions", saved)
	if degraded {
		message = fmt.Sprintf("Generated and saved %d of %d requested questions", saved, req.NumQuestions)
	}

	log.Printf("[INFO] Generation job %s finished: %s", req.JobID, message)
	return &GenerateResult{
		Requested: req.NumQuestions,
		Saved:     saved,
		Message:   message,
		JobID:     req.JobID,
	}, nil
}

// decideBatch applies the count rules for one attempt: an empty batch
// retries, a full or oversized batch is accepted, and a partial batch is
// accepted only once no attempts remain.
func decideBatch(count, requested int, finalAttempt bool) batchDecision {
	switch {
	case count == 0:
		return decisionRetry
	case count >= requested:
		return decisionAccept
	case finalAttempt:
		return decisionAcceptPartial
	default:
		return decisionRetry
	}
}

func (s *Service) requestQuestions(ctx context.Context, req GenerateRequest, window int) ([]any, error) {
	if req.ImageURL != "" {
		return s.generateFromImage(ctx, req.ImageURL, req.NumQuestions)
	}

	content := truncateContent(req.Content, window)
	prompt := fmt.Sprintf(QUIZ_GENERATION_PROMPT, req.NumQuestions, s.schemaJSON, content)

	completion, err := llms.GenerateFromSinglePrompt(ctx, s.llm, prompt, llms.WithTemperature(0.7))
	if err != nil {
		return nil, fmt.Errorf("failed to generate LLM response: %w", err)
	}

	return parseQuestionBatch(completion)
}

// checkSoftBudget reports when the wall-clock budget is exceeded. It never
// cancels the in-flight request; the retry loop runs to its attempt budget.
func (s *Service) checkSoftBudget(jobID string, start time.Time) {
	if s.timeout > 0 && time.Since(start) > s.timeout {
		log.Printf("[ERROR] Generation job %s exceeded soft time budget of %s", jobID, s.timeout)
	}
}

func truncateContent(content string, window int) string {
	if len(content) <= window {
		return content
	}
	return content[:window]
}
