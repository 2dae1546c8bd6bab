package telemetry

import (
	"context"

	"github.com/petasbytes/tool-loop/internal/metrics"
)

// EmitPromptFeatures records size features of the initial prompt, not its text.
func EmitPromptFeatures(ctx context.Context, prompt string) {
	if !ObserveEnabled() {
		return
	}
	turnID, _ := TurnIDFromContext(ctx)
	f := metrics.CountFeatures(prompt)
	Emit("local_features", map[string]any{
		"turn_id":          turnID,
		"features_version": "1",
		"prompt": map[string]any{
			"bytes": f.Bytes,
			"runes": f.Runes,
			"words": f.Words,
			"lines": f.Lines,
		},
	})
}
