package tools

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

type BashInput struct {
	Command string `json:"command" mapstructure:"command" jsonschema_description:"The shell command to execute."`
}

// DefaultShell runs commands when the dispatcher has no shell configured.
const DefaultShell = "sh"

var BashDefinition = Definition{
	Name:        Bash,
	Description: "Execute a shell command and return its standard output. A non-zero exit status returns the standard error instead.",
	Parameters:  BashInputSchema,
}

var BashInputSchema = GenerateSchema[BashInput]()

// RunBash runs in.Command through `shell -c`. Stdout and stderr are captured
// separately: success yields stdout, a non-zero exit yields stderr.
func RunBash(ctx context.Context, shell string, in BashInput) Result {
	if shell == "" {
		shell = DefaultShell
	}
	cmd := exec.CommandContext(ctx, shell, "-c", in.Command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Err("Command failed: " + stderr.String())
		}
		// shell could not be started
		return Err(err.Error())
	}
	return Ok(stdout.String())
}
