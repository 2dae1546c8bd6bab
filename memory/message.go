package memory

import "github.com/petasbytes/tool-loop/tools"

// Role names match the wire roles used by chat backends.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is one entry of the conversation log. Implementations are limited
// to User, Assistant and Tool.
type Message interface {
	Role() Role
	message()
}

type User struct {
	Content string
}

// Assistant is a model reply. An empty Content means the reply carried no text.
type Assistant struct {
	Content   string
	ToolCalls []tools.Call
}

// Tool carries the folded result of one tool call.
type Tool struct {
	ToolCallID string
	Content    string
}

func (User) Role() Role      { return RoleUser }
func (Assistant) Role() Role { return RoleAssistant }
func (Tool) Role() Role      { return RoleTool }

func (User) message()      {}
func (Assistant) message() {}
func (Tool) message()      {}

// HasToolCalls reports whether the reply requests any tool executions.
func (a Assistant) HasToolCalls() bool { return len(a.ToolCalls) > 0 }
