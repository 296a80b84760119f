package thinfilm

import (
	"math"
	"testing"
)

func TestIsFinite(t *testing.T) {
	if !isFinite(1.5) || isFinite(math.Inf(1)) || isFinite(math.Inf(-1)) || isFinite(math.NaN()) {
		t.Fatal("isFinite misclassifies")
	}
}

func TestAbsSq(t *testing.T) {
	if got := absSq(complex(3, 4)); got != 25 {
		t.Fatalf("absSq(3+4i) = %g, want 25", got)
	}
}
