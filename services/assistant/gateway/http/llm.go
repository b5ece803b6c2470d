package http

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/contaflux/contaflux/internal/pkg/circuitbreaker"
	"github.com/contaflux/contaflux/internal/pkg/http"
	"github.com/contaflux/contaflux/internal/pkg/logger"
	"github.com/contaflux/contaflux/internal/pkg/models"
)

// LLMGateway is a client for an OpenAI-compatible chat completion API
type LLMGateway struct {
	client  *http.Client
	breaker *circuitbreaker.CircuitBreaker
}

// NewLLMGateway creates the gateway from config. The hosted API authenticates
// with a bearer key, and upstream outages trip a circuit breaker so chat
// requests fail fast instead of piling up on a dead provider.
func NewLLMGateway(cfg *models.Config, log *logger.ZapLogger) *LLMGateway {
	client := http.NewClient(http.Config{
		BaseURL:    cfg.Assistant.BaseURL,
		Timeout:    time.Duration(cfg.Assistant.Timeout) * time.Second,
		AuthHeader: "Authorization",
		AuthToken:  "Bearer " + cfg.Assistant.APIKey,
	})

	breakerConfig := circuitbreaker.DefaultConfig("assistant-llm")
	breakerConfig.IsFailure = func(err error) bool {
		if err == nil {
			return false
		}
		// Client-side rejections (bad payloads) must not trip the breaker
		var statusErr *http.StatusError
		if errors.As(err, &statusErr) {
			return statusErr.StatusCode >= 500
		}
		return true
	}

	return &LLMGateway{
		client:  client,
		breaker: circuitbreaker.New(breakerConfig, log),
	}
}

type completionRequest struct {
	Model    string               `json:"model"`
	Messages []models.ChatMessage `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message models.ChatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends the conversation and returns the assistant's reply
func (g *LLMGateway) Complete(ctx context.Context, model string, messages []models.ChatMessage) (*models.ChatMessage, error) {
	body := completionRequest{
		Model:    model,
		Messages: messages,
	}

	var completion completionResponse
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.client.PostJSON(ctx, "/chat/completions", body, &completion)
	})
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("completion response carried no choices")
	}

	return &completion.Choices[0].Message, nil
}
