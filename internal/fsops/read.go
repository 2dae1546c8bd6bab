package fsops

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/petasbytes/tool-loop/internal/safety"
)

// ReadFile returns the full contents of the file at path as text.
// Checks run in a fixed order: existence, regular file, then the .env deny-list.
// Precondition failures are safety.ToolError values; I/O failures are returned as-is.
func ReadFile(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", safety.NotFound(path)
	}
	if !fi.Mode().IsRegular() {
		return "", safety.NotAFile(path)
	}
	if err := safety.CheckBaseName(path); err != nil {
		return "", err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%s: file does not contain valid UTF-8", path)
	}
	return string(b), nil
}
