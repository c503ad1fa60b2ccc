package partition

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
)

// N-cube Spatial Partition
//
// An axis-aligned hypercube given by a center point and an edge width,
// partitioning space into 2^N equal sub-cubes. The particularities are:
//   - each axis interval is open at the minimum and closed at the maximum, so
//     a point sitting exactly on a boundary hyperplane is claimed by exactly
//     one of the adjacent sub-cubes.
//   - Dispatch and Subdivide share the same little-endian axis-bit ordering:
//     Subdivide()[n] is the sub-cube whose interior Dispatch maps to index n.

// ErrTypeInvalidWidth is the error type returned when constructing an N-cube
// with a non-positive width.
const ErrTypeInvalidWidth = "ncube_invalid_width"

// NCube is an immutable axis-aligned hypercube region. The dimensionality
// comes from the point type P. A valid NCube always has a strictly positive
// width; the zero value is not valid, use New.
type NCube[P Point[P, S], S Scalar] struct {
	center P
	width  S
}

// New returns an N-cube with the given center and edge width. Returns an
// error of type ErrTypeInvalidWidth when width is not strictly positive.
func New[P Point[P, S], S Scalar](center P, width S) (NCube[P, S], error) {
	if width <= 0 {
		return NCube[P, S]{}, errors.New("ncube width must be strictly positive").
			WithType(ErrTypeInvalidWidth).
			WithTag("width", width)
	}

	return NCube[P, S]{center: center, width: width}, nil
}

// Must panics when err is not nil. It allows static construction sites to
// wrap New:
//
//	c := partition.Must(partition.New(center, width))
func Must[P Point[P, S], S Scalar](c NCube[P, S], err error) NCube[P, S] {
	if err != nil {
		panic(err)
	}
	return c
}

// Center returns a copy of the center point.
func (c NCube[P, S]) Center() P { return c.center }

// Width returns the edge width.
func (c NCube[P, S]) Width() S { return c.width }

// Contains reports whether elem lies inside the region. On every axis i the
// region spans (center_i - width/2, center_i + width/2], so sibling regions
// sharing a boundary hyperplane never both claim a point on it.
func (c NCube[P, S]) Contains(elem P) bool {
	for i := 0; i < c.center.Dim(); i++ {
		off := (c.center.At(i) - elem.At(i)) * 2
		if off < -c.width || off >= c.width {
			return false
		}
	}
	return true
}

// Dispatch returns the index in [0, 2^N) of the sub-cube that owns elem: bit
// i of the index is set iff elem_i >= center_i, so a point exactly on a
// center hyperplane projects to the upper half. Dispatch does not require
// that elem is contained in the region; it predicts which child of a future
// Subdivide would claim it.
func (c NCube[P, S]) Dispatch(elem P) int {
	var n int
	for i := 0; i < c.center.Dim(); i++ {
		if elem.At(i) >= c.center.At(i) {
			n |= axisMask(i)
		}
	}
	return n
}

// Subdivide returns the 2^N sub-cubes of half width, ordered so that
// Subdivide()[n] is the region Dispatch assigns index n to, for any point in
// that region's interior.
func (c NCube[P, S]) Subdivide() []NCube[P, S] {
	dim := c.center.Dim()
	width := c.width / 2
	offset := width / 2

	children := make([]NCube[P, S], 1<<dim)
	for n := range children {
		center := c.center
		for i := 0; i < dim; i++ {
			if upperHalf(n, i) {
				center = center.With(i, center.At(i)+offset)
			} else {
				center = center.With(i, center.At(i)-offset)
			}
		}
		children[n] = NCube[P, S]{center: center, width: width}
	}
	return children
}

// Child indices carry one bit per axis, little-endian. Dispatch encodes with
// axisMask, Subdivide decodes with upperHalf, so both sides of the
// index-alignment contract use the same convention.

func axisMask(i int) int { return 1 << i }

// upperHalf reports whether child index n takes the half of axis i at or
// above the parent center.
func upperHalf(n, i int) bool { return n&axisMask(i) != 0 }
