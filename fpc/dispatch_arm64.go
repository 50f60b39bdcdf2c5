//go:build arm64

package fpc

import "golang.org/x/sys/cpu"

func detectCPUFeatures() {
	// FMADD and FRINTZ/FRINTM/FRINTP are part of the ARMv8-A base
	// architecture. We still consult the cpu package so a future
	// no-FP build reports correctly.
	hasFMA = cpu.ARM64.HasFP
	hasRound = cpu.ARM64.HasFP
}
