package memory

import (
	"errors"
	"fmt"
	"slices"

	"github.com/petasbytes/tool-loop/tools"
)

// ErrUnpairedToolResult is returned by Append for a Tool message that does not
// answer an outstanding call of the latest Assistant message.
var ErrUnpairedToolResult = errors.New("tool result without matching tool call")

// Conversation is the ordered message log plus the advertised tool catalog.
// It has a single owner and is not safe for concurrent use.
type Conversation struct {
	messages []Message
	tools    []tools.Definition
}

// New starts a conversation with one user message and the given catalog.
func New(prompt string, defs []tools.Definition) *Conversation {
	return &Conversation{
		messages: []Message{User{Content: prompt}},
		tools:    slices.Clone(defs),
	}
}

// Append pushes msg to the end of the log. Tool messages must answer a call
// id from the most recent Assistant message that has not been answered yet.
func (c *Conversation) Append(msg Message) error {
	if tm, ok := msg.(Tool); ok {
		if !slices.Contains(c.Pending(), tm.ToolCallID) {
			return fmt.Errorf("%w: id %q", ErrUnpairedToolResult, tm.ToolCallID)
		}
	}
	if a, ok := msg.(Assistant); ok {
		a.ToolCalls = slices.Clone(a.ToolCalls)
		msg = a
	}
	c.messages = append(c.messages, msg)
	return nil
}

// Messages returns a copy of the log, oldest first.
func (c *Conversation) Messages() []Message {
	return slices.Clone(c.messages)
}

// Tools returns the advertised catalog.
func (c *Conversation) Tools() []tools.Definition {
	return slices.Clone(c.tools)
}

func (c *Conversation) Len() int { return len(c.messages) }

// Last returns the newest message, or nil for an empty log.
func (c *Conversation) Last() Message {
	if len(c.messages) == 0 {
		return nil
	}
	return c.messages[len(c.messages)-1]
}

// Pending lists call ids of the latest Assistant message that have no Tool
// message yet, in request order. Only Tool messages may follow that Assistant
// message for its calls to count as pending. Ids are counted, not deduplicated:
// an id issued N times needs N results.
func (c *Conversation) Pending() []string {
	answered := map[string]int{}
	for i := len(c.messages) - 1; i >= 0; i-- {
		switch m := c.messages[i].(type) {
		case Tool:
			answered[m.ToolCallID]++
		case Assistant:
			var ids []string
			for _, call := range m.ToolCalls {
				if answered[call.ID] > 0 {
					answered[call.ID]--
					continue
				}
				ids = append(ids, call.ID)
			}
			return ids
		default:
			return nil
		}
	}
	return nil
}
