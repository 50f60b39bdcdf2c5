//go:build !amd64 && !arm64

package fpc

func detectCPUFeatures() {
	// Other architectures report no special support. The hardware path
	// still works there; the standard library falls back to its own
	// software routines.
	hasFMA = false
	hasRound = false
}
