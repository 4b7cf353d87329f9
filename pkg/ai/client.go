package ai

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"golang.org/x/time/rate"

	"github.com/smartecommerce/insight-api/pkg/global"
)

// defaultBaseURL is Gemini's OpenAI-compatible endpoint.
const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

const defaultModel = "gemini-2.0-flash"

// Config holds everything the LLM client needs. It is passed explicitly
// to NewClient; nothing is read from the environment after construction.
type Config struct {
	APIKey         string
	BaseURL        string
	Model          string
	MaxAttempts    int
	InitialBackoff time.Duration
}

// ConfigFromEnv builds a Config from environment variables.
func ConfigFromEnv() Config {
	return Config{
		APIKey:  global.GetEnvOrDefault("GEMINI_API_KEY", ""),
		BaseURL: global.GetEnvOrDefault("LLM_BASE_URL", defaultBaseURL),
		Model:   global.GetEnvOrDefault("LLM_MODEL", defaultModel),
	}
}

// Client wraps the generative-language API with rate limiting and a
// bounded retry policy for transient failures.
type Client struct {
	api            openai.Client
	model          string
	maxAttempts    int
	initialBackoff time.Duration
	limiter        *rate.Limiter
}

// NewClient validates the configuration and builds a Client. A missing
// API key fails construction with ErrMissingAPIKey.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = 500 * time.Millisecond
	}

	api := openai.NewClient(
		option.WithBaseURL(cfg.BaseURL),
		option.WithAPIKey(cfg.APIKey),
		// Retries are handled here so that backoff and error
		// classification stay in one place.
		option.WithMaxRetries(0),
	)

	return &Client{
		api:            api,
		model:          cfg.Model,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		// Gemini's free tier allows a handful of requests per minute;
		// the burst keeps interactive use responsive.
		limiter: rate.NewLimiter(rate.Limit(2), 5),
	}, nil
}

// Complete sends a system + user message pair to the model and returns
// the raw completion text. Transient failures are retried with
// exponential backoff and jitter, up to MaxAttempts.
func (c *Client) Complete(ctx context.Context, systemMessage, userMessage string) (string, error) {
	var lastErr *ServiceError

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", classify(err)
		}

		text, err := c.complete(ctx, systemMessage, userMessage)
		if err == nil {
			return text, nil
		}

		svcErr := classify(err)
		if !svcErr.Retryable {
			return "", svcErr
		}
		lastErr = svcErr

		if attempt < c.maxAttempts {
			delay := backoff(c.initialBackoff, attempt)
			log.Printf("[AI] transient failure (attempt %d/%d), retrying in %v: %v", attempt, c.maxAttempts, delay, svcErr)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", classify(ctx.Err())
			}
		}
	}

	log.Printf("[AI] all %d attempts failed: %v", c.maxAttempts, lastErr)
	return "", lastErr
}

func (c *Client) complete(ctx context.Context, systemMessage, userMessage string) (string, error) {
	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(systemMessage),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(userMessage),
					},
				},
			},
		},
		MaxTokens:   openai.Int(1500),
		Temperature: openai.Float(0.7),
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &ServiceError{Message: "LLM returned an empty response", Retryable: false}
	}

	return resp.Choices[0].Message.Content, nil
}

// backoff returns the delay before the given retry attempt: exponential
// growth from the initial delay plus up to 50% random jitter.
func backoff(initial time.Duration, attempt int) time.Duration {
	delay := initial << (attempt - 1)
	jitter := time.Duration(rand.Int63n(int64(delay)/2 + 1))
	return delay + jitter
}
