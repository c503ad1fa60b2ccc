package partition

import (
	"math/rand"
	"reflect"
)

// Generate implements testing/quick's Generator interface so property-based
// harnesses can draw arbitrary valid regions. Center coordinates are bounded
// by size and the width by (0, size], so subdividing a generated region
// never overflows the child-center arithmetic. The width is resampled until
// strictly positive to respect the construction invariant.
func (NCube[P, S]) Generate(rand *rand.Rand, size int) reflect.Value {
	span := S(size)
	if span <= 0 {
		span = 1
	}

	var center P
	for i := 0; i < center.Dim(); i++ {
		center = center.With(i, span-2*span*S(rand.Float64()))
	}

	var width S
	for width <= 0 {
		width = span * S(rand.Float64())
	}

	c, err := New(center, width)
	if err != nil {
		panic(err)
	}
	return reflect.ValueOf(c)
}
