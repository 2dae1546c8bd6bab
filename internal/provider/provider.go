// Package provider implements the single backend operation the agent needs:
// send the conversation and tool catalog, receive one assistant message.
package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/petasbytes/tool-loop/internal/config"
	"github.com/petasbytes/tool-loop/memory"
	"github.com/petasbytes/tool-loop/tools"
)

// ErrNoChoices is returned when a chat completion carries no message.
var ErrNoChoices = errors.New("backend returned no choices")

// Request is everything sent on one round trip.
type Request struct {
	Model    string
	Messages []memory.Message
	Tools    []tools.Definition
}

// Backend performs one synchronous completion. Implementations do not retry.
type Backend interface {
	Complete(ctx context.Context, req Request) (memory.Assistant, error)
}

// New builds the backend selected by cfg.Provider. cfg must be finalized.
func New(cfg config.Config) (Backend, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAI(cfg.APIKey, cfg.BaseURL), nil
	case config.ProviderAnthropic:
		return NewAnthropic(NewAnthropicClient(cfg.APIKey, cfg.BaseURL), cfg.MaxTokens), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
