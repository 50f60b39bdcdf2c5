package math

import (
	"testing"

	"github.com/ajroetker/go-fpcore/fpc"
)

var paths = []fpc.Path{fpc.PathSoftware, fpc.PathHardware}

// forEachPath runs fn once per evaluation path.
func forEachPath(t *testing.T, fn func(t *testing.T)) {
	t.Helper()
	for _, p := range paths {
		t.Run(p.String(), func(t *testing.T) {
			prev := fpc.SetPath(p)
			defer fpc.SetPath(prev)
			fn(t)
		})
	}
}

// onPath evaluates fn with p in effect.
func onPath[R any](p fpc.Path, fn func() R) R {
	prev := fpc.SetPath(p)
	defer fpc.SetPath(prev)
	return fn()
}

func sameBits[T fpc.Floats](a, b T) bool {
	return fpc.ToBits(a) == fpc.ToBits(b)
}
