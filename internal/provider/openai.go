package provider

import (
	"context"

	"github.com/sashabaranov/go-openai"

	"github.com/petasbytes/tool-loop/memory"
	"github.com/petasbytes/tool-loop/tools"
)

// OpenAI talks to any OpenAI-compatible chat completions endpoint
// (OpenRouter by default).
type OpenAI struct {
	client *openai.Client
}

var _ Backend = (*OpenAI)(nil)

func NewOpenAI(apiKey, baseURL string) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAI{client: openai.NewClientWithConfig(cfg)}
}

// Complete sends the request and returns the first choice's message.
func (o *OpenAI) Complete(ctx context.Context, req Request) (memory.Assistant, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    req.Model,
		Messages: openAIMessages(req.Messages),
		Tools:    openAITools(req.Tools),
	})
	if err != nil {
		return memory.Assistant{}, err
	}
	if len(resp.Choices) == 0 {
		return memory.Assistant{}, ErrNoChoices
	}

	msg := resp.Choices[0].Message
	out := memory.Assistant{Content: msg.Content}
	for _, tc := range msg.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, tools.Call{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	return out, nil
}

func openAIMessages(msgs []memory.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(msgs))
	for _, m := range msgs {
		switch m := m.(type) {
		case memory.User:
			out = append(out, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: m.Content})
		case memory.Assistant:
			am := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: m.Content}
			for _, c := range m.ToolCalls {
				am.ToolCalls = append(am.ToolCalls, openai.ToolCall{
					ID:   c.ID,
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{
						Name:      c.Name,
						Arguments: c.Arguments,
					},
				})
			}
			out = append(out, am)
		case memory.Tool:
			out = append(out, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    m.Content,
				ToolCallID: m.ToolCallID,
			})
		}
	}
	return out
}

func openAITools(defs []tools.Definition) []openai.Tool {
	if len(defs) == 0 {
		return nil
	}
	out := make([]openai.Tool, 0, len(defs))
	for _, d := range defs {
		out = append(out, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        string(d.Name),
				Description: d.Description,
				Parameters:  d.Parameters,
			},
		})
	}
	return out
}
