package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ErrMalformedArguments marks an argument payload that is not valid JSON.
// It is the only dispatch failure that is not reported back to the model.
var ErrMalformedArguments = errors.New("malformed tool arguments")

// Arguments is a decoded, still untyped argument payload.
type Arguments map[string]any

func decodeArguments(raw string) (Arguments, error) {
	if strings.TrimSpace(raw) == "" {
		return Arguments{}, nil
	}
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedArguments, err)
	}
	// Valid JSON that is not an object carries no named arguments; the
	// required-argument check reports it.
	obj, ok := v.(map[string]any)
	if !ok {
		return Arguments{}, nil
	}
	return Arguments(obj), nil
}

type missingArgumentError string

func (e missingArgumentError) Error() string {
	return fmt.Sprintf("Missing %s argument", string(e))
}

// bind requires each key in order to hold a string, then decodes args into
// the typed input struct pointed to by out. Unknown keys are ignored.
func bind(args Arguments, out any, required ...string) error {
	for _, key := range required {
		if _, ok := args[key].(string); !ok {
			return missingArgumentError(key)
		}
	}
	return mapstructure.Decode(map[string]any(args), out)
}
