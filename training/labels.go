package training

import (
	"runtime"
	"strings"
)

// Version is stamped onto submitted jobs for traceability.
const Version = "0.4.0"

func runtimeLabels() map[string]string {
	return map[string]string{
		"conduit_version": strings.ReplaceAll(Version, ".", "_"),
		"go_version":      strings.ReplaceAll(strings.TrimPrefix(runtime.Version(), "go"), ".", "_"),
	}
}

// mergeLabels overlays caller labels on the runtime defaults. Caller
// labels win on conflict.
func mergeLabels(base, overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(overrides))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
