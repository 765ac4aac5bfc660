package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"google.golang.org/genai"
)

// ModelInvoker is the single seam between the pipeline and the external
// model: prompt in, raw response text out. Tests replace it with a stub.
type ModelInvoker interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

type geminiInvoker struct {
	client      *genai.Client
	modelName   string
	temperature float32
}

func NewGeminiInvoker(ctx context.Context, apiKey, modelName string) (ModelInvoker, error) {
	if apiKey == "" {
		return nil, &InvocationError{
			Kind: InvocationCredential,
			Err:  errors.New("GEMINI_API_KEY is not set"),
		}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &InvocationError{
			Kind: InvocationCredential,
			Err:  fmt.Errorf("failed to create gemini client: %w", err),
		}
	}

	return &geminiInvoker{
		client:      client,
		modelName:   modelName,
		// Low temperature keeps extraction output consistent across runs.
		temperature: 0.2,
	}, nil
}

// Invoke implements ModelInvoker. It performs exactly one model call; retry
// policy lives in RetryInvoker, not here. Timeouts come in via ctx.
func (g *geminiInvoker) Invoke(ctx context.Context, prompt string) (string, error) {
	temperature := g.temperature
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 8192,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", &InvocationError{
			Kind: InvocationTransport,
			Err:  fmt.Errorf("failed to generate text: %w", err),
		}
	}

	if resp == nil {
		return "", &InvocationError{
			Kind: InvocationEmpty,
			Err:  errors.New("nil response from model"),
		}
	}

	text := resp.Text()
	if text == "" {
		return "", &InvocationError{
			Kind: InvocationEmpty,
			Err:  errors.New("no text content in response"),
		}
	}

	return text, nil
}

// RetryInvoker decorates a ModelInvoker with a bounded retry loop. The
// pipeline itself never retries; wiring opts in via RETRY_MAX_ATTEMPTS.
type RetryInvoker struct {
	inner       ModelInvoker
	maxAttempts int
}

// NewRetryInvoker returns inner unchanged when maxAttempts <= 1.
func NewRetryInvoker(inner ModelInvoker, maxAttempts int) ModelInvoker {
	if maxAttempts <= 1 {
		return inner
	}
	return &RetryInvoker{inner: inner, maxAttempts: maxAttempts}
}

func (r *RetryInvoker) Invoke(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		result, err := r.inner.Invoke(ctx, prompt)
		if err == nil {
			return result, nil
		}

		lastErr = err

		select {
		case <-ctx.Done():
			return "", &InvocationError{
				Kind: InvocationTransport,
				Err:  fmt.Errorf("context cancelled: %w", ctx.Err()),
			}
		default:
		}

		if attempt < r.maxAttempts {
			log.Printf("⚠️  Model call attempt %d failed: %v. Retrying...\n", attempt, err)
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", r.maxAttempts, lastErr)
}
