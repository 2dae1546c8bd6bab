package provider

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/petasbytes/tool-loop/memory"
	"github.com/petasbytes/tool-loop/tools"
)

// NewAnthropicClient returns a Messages API client with SDK retries disabled;
// a failed round trip ends the run.
func NewAnthropicClient(apiKey, baseURL string, opts ...option.RequestOption) *anthropic.Client {
	base := []option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}
	if baseURL != "" {
		base = append(base, option.WithBaseURL(baseURL))
	}
	c := anthropic.NewClient(append(base, opts...)...)
	return &c
}

// Anthropic adapts the Messages API to Backend. Tool calls travel as
// tool_use blocks and results as tool_result blocks in a user turn.
type Anthropic struct {
	Client    *anthropic.Client
	MaxTokens int64
}

var _ Backend = (*Anthropic)(nil)

func NewAnthropic(client *anthropic.Client, maxTokens int64) *Anthropic {
	return &Anthropic{Client: client, MaxTokens: maxTokens}
}

func (a *Anthropic) Complete(ctx context.Context, req Request) (memory.Assistant, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: a.MaxTokens,
		Messages:  anthropicMessages(req.Messages),
		Tools:     anthropicTools(req.Tools),
	}
	msg, err := a.Client.Messages.New(ctx, params)
	if err != nil {
		return memory.Assistant{}, err
	}

	var out memory.Assistant
	var text []string
	for _, block := range msg.Content {
		switch v := block.AsAny().(type) {
		case anthropic.TextBlock:
			if v.Text != "" {
				text = append(text, v.Text)
			}
		case anthropic.ToolUseBlock:
			out.ToolCalls = append(out.ToolCalls, tools.Call{
				ID:        v.ID,
				Name:      v.Name,
				Arguments: v.JSON.Input.Raw(),
			})
		}
	}
	out.Content = strings.Join(text, "\n")
	return out, nil
}

// anthropicMessages folds each run of Tool messages into one user message so
// every tool_use is answered in the turn that immediately follows it.
func anthropicMessages(msgs []memory.Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(msgs))
	var results []anthropic.ContentBlockParamUnion
	flush := func() {
		if len(results) > 0 {
			out = append(out, anthropic.NewUserMessage(results...))
			results = nil
		}
	}

	for _, m := range msgs {
		if tm, ok := m.(memory.Tool); ok {
			results = append(results, anthropic.NewToolResultBlock(tm.ToolCallID, tm.Content, false))
			continue
		}
		flush()
		switch m := m.(type) {
		case memory.User:
			out = append(out, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		case memory.Assistant:
			blocks := make([]anthropic.ContentBlockParamUnion, 0, len(m.ToolCalls)+1)
			if m.Content != "" {
				blocks = append(blocks, anthropic.NewTextBlock(m.Content))
			}
			for _, c := range m.ToolCalls {
				input := c.Arguments
				if strings.TrimSpace(input) == "" {
					input = "{}"
				}
				blocks = append(blocks, anthropic.ContentBlockParamUnion{OfToolUse: &anthropic.ToolUseBlockParam{
					Type:  "tool_use",
					ID:    c.ID,
					Name:  c.Name,
					Input: json.RawMessage(input),
				}})
			}
			out = append(out, anthropic.NewAssistantMessage(blocks...))
		}
	}
	flush()
	return out
}

func anthropicTools(defs []tools.Definition) []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, 0, len(defs))
	for _, d := range defs {
		schema := anthropic.ToolInputSchemaParam{}
		if d.Parameters != nil {
			schema.Properties = d.Parameters.Properties
			schema.Required = d.Parameters.Required
		}
		out = append(out, anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
			Name:        string(d.Name),
			Description: anthropic.String(d.Description),
			InputSchema: schema,
		}})
	}
	return out
}
