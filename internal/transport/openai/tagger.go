// Package openai implements part-of-speech tagging over an
// OpenAI-compatible chat completion API.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/majorsys/mnemo/internal/domain"
	"github.com/majorsys/mnemo/internal/metrics"
)

const systemPrompt = `You are a part-of-speech tagger. For every word in the user message,
reply with a single JSON object mapping the word to exactly one of:
"adjective", "noun", "verb", "filler", "unknown".
Use "filler" only for articles and prepositions. Use "unknown" when unsure.
Reply with the JSON object only.`

// Tagger assigns parts of speech using an OpenAI-compatible API.
type Tagger struct {
	client   *openai.Client
	model    string
	user     string
	provider string
	logger   *zap.Logger
}

// Config holds the tagging provider settings.
type Config struct {
	APIKey   string
	BaseURL  string
	Model    string
	User     string
	Provider string
	Logger   *zap.Logger
}

// NewTagger creates an OpenAI-compatible tagging provider.
func NewTagger(cfg *Config) *Tagger {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Tagger{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    cfg.Model,
		user:     cfg.User,
		provider: cfg.Provider,
		logger:   cfg.Logger,
	}
}

// Tag implements domain.Tagger. Words the model marks "unknown" (or tags
// with something unparseable) are absent from the result.
func (t *Tagger) Tag(ctx context.Context, words []string) (map[string]domain.PartOfSpeech, error) {
	if len(words) == 0 {
		return map[string]domain.PartOfSpeech{}, nil
	}

	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: strings.Join(words, "\n")},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		User: t.user,
	}

	start := time.Now()
	resp, err := t.client.CreateChatCompletion(ctx, req)
	duration := time.Since(start)

	if err != nil {
		metrics.TagRequestsTotal.WithLabelValues(t.provider, t.model, "error").Inc()
		metrics.TagErrorsTotal.WithLabelValues(t.provider, t.model, "api_error").Inc()
		return nil, parseAPIError(err)
	}

	if len(resp.Choices) == 0 {
		metrics.TagRequestsTotal.WithLabelValues(t.provider, t.model, "error").Inc()
		metrics.TagErrorsTotal.WithLabelValues(t.provider, t.model, "empty_response").Inc()
		return nil, fmt.Errorf("empty tagging response: %w", domain.ErrTaggerProviderError)
	}

	tags, err := parseTags(resp.Choices[0].Message.Content, words)
	if err != nil {
		metrics.TagRequestsTotal.WithLabelValues(t.provider, t.model, "error").Inc()
		metrics.TagErrorsTotal.WithLabelValues(t.provider, t.model, "bad_payload").Inc()
		return nil, fmt.Errorf("parse tagging response: %v: %w", err, domain.ErrTaggerProviderError)
	}

	metrics.TagRequestsTotal.WithLabelValues(t.provider, t.model, "success").Inc()
	metrics.TagRequestDuration.WithLabelValues(t.provider, t.model).Observe(duration.Seconds())
	metrics.TagWordsTotal.WithLabelValues(t.provider, t.model).Add(float64(len(words)))

	return tags, nil
}

// parseTags decodes the model's JSON object, keeping only requested words
// with a recognized part of speech.
func parseTags(content string, words []string) (map[string]domain.PartOfSpeech, error) {
	var raw map[string]string
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	requested := make(map[string]bool, len(words))
	for _, w := range words {
		requested[w] = true
	}

	tags := make(map[string]domain.PartOfSpeech, len(raw))
	for word, tag := range raw {
		word = strings.ToLower(strings.TrimSpace(word))
		if !requested[word] {
			continue
		}
		pos, err := domain.ParsePartOfSpeech(strings.ToLower(strings.TrimSpace(tag)))
		if err != nil {
			// "unknown" and anything else unparseable: drop the word
			continue
		}
		tags[word] = pos
	}
	return tags, nil
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (t *Tagger) HealthCheck(ctx context.Context) error {
	if _, err := t.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

// parseAPIError extracts a human-readable error from the API response.
// All errors are wrapped with domain.ErrTaggerProviderError for correct 502 mapping.
func parseAPIError(err error) error {
	wrap := domain.ErrTaggerProviderError

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("tagging API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("tagging API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("tagging request failed: %w", wrap)
}
