package fpc

import (
	"os"
	"strconv"
	"sync/atomic"
)

// Path selects how the math façade evaluates an operation.
type Path int32

const (
	// PathSoftware evaluates with the pure-Go bit-level routines of this
	// module. Results are identical on every platform.
	PathSoftware Path = iota

	// PathHardware evaluates with the standard library (and math32 for
	// float32), which the compiler lowers to FPU instructions where they
	// exist: SQRTSD, ROUNDSD, VFMADD and their arm64 counterparts.
	PathHardware
)

// String returns a human-readable name for the path.
func (p Path) String() string {
	switch p {
	case PathSoftware:
		return "software"
	case PathHardware:
		return "hardware"
	default:
		return "unknown"
	}
}

// currentPath is the evaluation path in effect.
// Set by init() and SetPath.
var currentPath atomic.Int32

// CPU feature flags, set by init() in dispatch_*.go files.
var (
	// hasFMA indicates a fused multiply-add instruction.
	hasFMA bool

	// hasRound indicates single-instruction floor/ceil/trunc (SSE4.1 on amd64).
	hasRound bool
)

func init() {
	detectCPUFeatures()
	if SoftFloatEnv() {
		currentPath.Store(int32(PathSoftware))
		return
	}
	currentPath.Store(int32(PathHardware))
}

// CurrentPath returns the evaluation path in effect.
func CurrentPath() Path {
	return Path(currentPath.Load())
}

// SetPath switches the evaluation path and returns the previous one.
//
// It is meant for process start-up and tests; flipping the path while other
// goroutines are computing is safe but they may observe either path.
func SetPath(p Path) Path {
	return Path(currentPath.Swap(int32(p)))
}

// UseSoftware reports whether the software path is in effect.
func UseSoftware() bool {
	return CurrentPath() == PathSoftware
}

// HasFMA reports whether the CPU has a fused multiply-add instruction.
// The hardware path is exact either way; without the instruction the
// standard library emulates it.
func HasFMA() bool {
	return hasFMA
}

// HasRoundInstructions reports whether Trunc/Floor/Ceil lower to a single
// instruction on this CPU.
func HasRoundInstructions() bool {
	return hasRound
}

// SoftFloatEnv checks if the FPC_SOFT_FLOAT environment variable is set.
// When set, the math façade uses the software path regardless of CPU
// capabilities. This is useful for testing and debugging.
func SoftFloatEnv() bool {
	val := os.Getenv("FPC_SOFT_FLOAT")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
