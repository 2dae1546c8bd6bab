// Package safety holds the deny-list applied to file tools and the typed
// error they surface back to the model.
package safety

import (
	"fmt"
	"path/filepath"
)

// Error codes carried by ToolError.
const (
	CodeNotFound  = "ERR_NOT_FOUND"
	CodeNotAFile  = "ERR_NOT_A_FILE"
	CodeDeniedEnv = "ERR_DENIED_ENV"
)

// deniedBase is the only file name the file tools refuse to touch.
const deniedBase = ".env"

// ToolError is a policy or precondition failure that is reported to the model
// as plain text. Code is for callers that need to branch on the failure kind.
type ToolError struct {
	Code    string
	Message string
}

// Error returns the model-facing message verbatim.
func (e ToolError) Error() string {
	return e.Message
}

// NotFound reports a path that does not exist.
func NotFound(path string) ToolError {
	return ToolError{Code: CodeNotFound, Message: fmt.Sprintf("File not found: %s", path)}
}

// NotAFile reports a path that exists but is not a regular file.
func NotAFile(path string) ToolError {
	return ToolError{Code: CodeNotAFile, Message: fmt.Sprintf("Path is not a file: %s", path)}
}

// ErrEnvDenied is returned for any access to a file named .env.
var ErrEnvDenied = ToolError{Code: CodeDeniedEnv, Message: "Access to .env file is forbidden"}

// CheckBaseName rejects paths whose final element is exactly ".env",
// regardless of directory or whether the file exists.
func CheckBaseName(path string) error {
	if filepath.Base(path) == deniedBase {
		return ErrEnvDenied
	}
	return nil
}
