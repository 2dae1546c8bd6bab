package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/petasbytes/tool-loop/internal/metrics"
	"github.com/petasbytes/tool-loop/internal/provider"
	"github.com/petasbytes/tool-loop/internal/telemetry"
	"github.com/petasbytes/tool-loop/memory"
	"github.com/petasbytes/tool-loop/tools"
)

// State is a step of the agent loop.
type State int

const (
	AwaitingModel State = iota
	HasAssistantReply
	DispatchingTools
	Done
)

func (s State) String() string {
	switch s {
	case AwaitingModel:
		return "awaiting_model"
	case HasAssistantReply:
		return "has_assistant_reply"
	case DispatchingTools:
		return "dispatching_tools"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Dispatcher executes a single tool call. *tools.Dispatcher satisfies it.
type Dispatcher interface {
	Dispatch(ctx context.Context, call tools.Call) (tools.Result, error)
}

type Runner struct {
	Backend    provider.Backend
	Dispatcher Dispatcher
	Model      string

	logger *slog.Logger
}

type Option func(*Runner)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

func New(backend provider.Backend, dispatcher Dispatcher, model string, opts ...Option) *Runner {
	r := &Runner{
		Backend:    backend,
		Dispatcher: dispatcher,
		Model:      model,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run loops until the model replies without tool calls and returns that
// reply's content, which is empty when the model sent none. Backend failures,
// undecodable tool arguments and broken call/result pairing end the run with
// an error; the conversation keeps whatever was appended before it.
func (r *Runner) Run(ctx context.Context, conv *memory.Conversation) (string, error) {
	turnID, ok := telemetry.TurnIDFromContext(ctx)
	if !ok {
		turnID = telemetry.NewTurnID()
		ctx = telemetry.WithTurnID(ctx, turnID)
	}
	log := r.logger.With("turn_id", turnID)

	state := AwaitingModel
	var reply memory.Assistant
	round := 1
	for {
		log.DebugContext(ctx, "state", "state", state, "round", round)

		switch state {
		case AwaitingModel:
			var err error
			reply, err = r.complete(ctx, conv, round)
			if err != nil {
				return "", fmt.Errorf("model call (round %d): %w", round, err)
			}
			state = HasAssistantReply

		case HasAssistantReply:
			if err := conv.Append(reply); err != nil {
				return "", err
			}
			if reply.HasToolCalls() {
				state = DispatchingTools
			} else {
				state = Done
			}

		case DispatchingTools:
			for _, call := range reply.ToolCalls {
				res, err := r.Dispatcher.Dispatch(ctx, call)
				if err != nil {
					return "", err
				}
				if err := conv.Append(memory.Tool{ToolCallID: call.ID, Content: res.Text()}); err != nil {
					return "", err
				}
			}
			if pending := conv.Pending(); len(pending) > 0 {
				return "", fmt.Errorf("%w: unanswered calls %v", memory.ErrUnpairedToolResult, pending)
			}
			round++
			state = AwaitingModel

		case Done:
			log.InfoContext(ctx, "run finished", "rounds", round, "messages", conv.Len())
			return reply.Content, nil
		}
	}
}

func (r *Runner) complete(ctx context.Context, conv *memory.Conversation, round int) (memory.Assistant, error) {
	turnID, _ := telemetry.TurnIDFromContext(ctx)
	req := provider.Request{
		Model:    r.Model,
		Messages: conv.Messages(),
		Tools:    conv.Tools(),
	}

	start := time.Now()
	reply, err := r.Backend.Complete(ctx, req)
	elapsed := time.Since(start)

	fields := map[string]any{
		"turn_id":     turnID,
		"model":       r.Model,
		"round":       round,
		"messages":    len(req.Messages),
		"tools":       len(req.Tools),
		"duration_ms": elapsed.Milliseconds(),
	}
	if err != nil {
		fields["error"] = "backend error"
		telemetry.Emit("model_call", fields)
		return memory.Assistant{}, err
	}
	content := metrics.CountFeatures(reply.Content)
	fields["error"] = nil
	fields["content_bytes"] = content.Bytes
	fields["tool_calls"] = len(reply.ToolCalls)
	telemetry.Emit("model_call", fields)

	r.logger.DebugContext(ctx, "model replied",
		"round", round,
		"duration", elapsed,
		"tool_calls", len(reply.ToolCalls),
	)
	return reply, nil
}
