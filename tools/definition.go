package tools

import (
	"fmt"

	"github.com/invopop/jsonschema"
)

// Name identifies one of the registered tools. The set is closed.
type Name string

const (
	Bash  Name = "Bash"
	Read  Name = "Read"
	Write Name = "Write"
)

// Lookup resolves a model-supplied tool name against the closed set.
func Lookup(s string) (Name, bool) {
	switch n := Name(s); n {
	case Bash, Read, Write:
		return n, true
	}
	return "", false
}

// Definition is what gets advertised to the backend for one tool.
type Definition struct {
	Name        Name
	Description string
	Parameters  *jsonschema.Schema
}

// Call is a tool-call request as received from the backend. Arguments is the
// raw JSON text and has not been validated against any schema.
type Call struct {
	ID        string
	Name      string
	Arguments string
}

// Result is the outcome of one tool execution. Both variants fold to the
// same text payload; the model only sees the message text.
type Result struct {
	text   string
	failed bool
}

func Ok(text string) Result  { return Result{text: text} }
func Err(text string) Result { return Result{text: text, failed: true} }

func Errf(format string, args ...any) Result {
	return Err(fmt.Sprintf(format, args...))
}

// Text returns the payload stored as the tool message content.
func (r Result) Text() string { return r.text }

// IsError reports whether the result came from the Err variant.
func (r Result) IsError() bool { return r.failed }

// GenerateSchema derives an object schema from T's json tags. Fields without
// omitempty are listed as required. $schema and $id are left out of the
// advertised object.
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	schema.Version = ""
	schema.ID = ""
	return schema
}
