package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/petasbytes/tool-loop/internal/metrics"
	"github.com/petasbytes/tool-loop/internal/telemetry"
)

// Dispatcher resolves tool calls to executors. It never runs more than one
// executor per call and never retries.
type Dispatcher struct {
	// Shell is the binary used by the Bash tool; DefaultShell when empty.
	Shell  string
	Logger *slog.Logger
}

func NewDispatcher(shell string, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{Shell: shell, Logger: logger}
}

// Dispatch runs call and returns its result. Unknown names, missing arguments
// and executor failures come back as Err results with a nil error. The error
// return is reserved for payloads that cannot be decoded at all.
func (d *Dispatcher) Dispatch(ctx context.Context, call Call) (Result, error) {
	start := time.Now()

	name, ok := Lookup(call.Name)
	if !ok {
		res := Errf("Tool %s not found", call.Name)
		d.observe(ctx, call, res, time.Since(start), "tool not found")
		return res, nil
	}

	args, err := decodeArguments(call.Arguments)
	if err != nil {
		d.observe(ctx, call, Result{}, time.Since(start), "malformed arguments")
		return Result{}, fmt.Errorf("tool call %s (%s): %w", call.ID, call.Name, err)
	}

	res := d.invoke(ctx, name, args)
	errStr := ""
	if res.IsError() {
		errStr = "tool error"
	}
	d.observe(ctx, call, res, time.Since(start), errStr)
	return res, nil
}

func (d *Dispatcher) invoke(ctx context.Context, name Name, args Arguments) Result {
	switch name {
	case Bash:
		var in BashInput
		if err := bind(args, &in, "command"); err != nil {
			return Err(err.Error())
		}
		return RunBash(ctx, d.Shell, in)
	case Read:
		var in ReadInput
		if err := bind(args, &in, "file_path"); err != nil {
			return Err(err.Error())
		}
		return ReadFile(in)
	case Write:
		var in WriteInput
		if err := bind(args, &in, "file_path", "content"); err != nil {
			return Err(err.Error())
		}
		return WriteFile(in)
	default:
		return Errf("Tool %s not found", name)
	}
}

// observe logs the call and emits a tool_exec event. Raw arguments and
// outputs are never recorded, only their sizes.
func (d *Dispatcher) observe(ctx context.Context, call Call, res Result, elapsed time.Duration, errStr string) {
	turnID, _ := telemetry.TurnIDFromContext(ctx)
	out := metrics.CountFeatures(res.Text())

	d.logger().DebugContext(ctx, "tool executed",
		"tool", call.Name,
		"call_id", call.ID,
		"duration", elapsed,
		"is_error", errStr != "",
	)

	fields := map[string]any{
		"tool_name":    call.Name,
		"call_id":      call.ID,
		"duration_ms":  elapsed.Milliseconds(),
		"input_size":   len(call.Arguments),
		"output_size":  out.Bytes,
		"output_lines": out.Lines,
		"output_words": out.Words,
		"turn_id":      turnID,
	}
	if errStr != "" {
		fields["error"] = errStr
	} else {
		fields["error"] = nil
	}
	telemetry.Emit("tool_exec", fields)
}

func (d *Dispatcher) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}
