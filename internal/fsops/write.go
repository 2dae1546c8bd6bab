package fsops

import (
	"os"

	"github.com/petasbytes/tool-loop/internal/safety"
)

// WriteFile creates or truncates the file at path and writes content to it.
// The .env deny-list is checked before touching the filesystem. Existing files
// are overwritten; missing parent directories are an error, not created.
func WriteFile(path, content string) error {
	if err := safety.CheckBaseName(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
