package telemetry

import (
	"os"
)

const defaultArtifactsDir = ".agent"

var observeEnabled bool

func init() {
	// Read once at process start; ObserveEnabled still honours a later explicit "1".
	observeEnabled = os.Getenv("AGT_OBSERVE_JSON") == "1"
}

// ObserveEnabled reports whether JSONL emission is enabled.
func ObserveEnabled() bool {
	// Preserve startup-evaluated default, but allow tests to enable mid-run via env override.
	if v, ok := os.LookupEnv("AGT_OBSERVE_JSON"); ok {
		return v == "1"
	}
	return observeEnabled
}

// ArtifactsDir is where events.jsonl is written: AGT_ARTIFACTS_DIR, else .agent.
func ArtifactsDir() string {
	if d := os.Getenv("AGT_ARTIFACTS_DIR"); d != "" {
		return d
	}
	return defaultArtifactsDir
}
