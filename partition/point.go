package partition

// Scalar is the set of coordinate types a point can be made of.
type Scalar interface {
	~float32 | ~float64
}

// Point describes a point in N-dimensional space. The dimensionality is a
// static property of the implementing type, not of any particular value.
//
// With returns a copy with coordinate i replaced. Implementations must not
// mutate the receiver.
type Point[P any, S Scalar] interface {
	// Returns the number of coordinates. Always >= 1.
	Dim() int

	// Returns coordinate i.
	At(i int) S

	// Returns a copy of the point with coordinate i set to v.
	With(i int, v S) P
}

// Point2 is a 2-dimensional point.
type Point2[S Scalar] [2]S

func (p Point2[S]) Dim() int { return 2 }

func (p Point2[S]) At(i int) S { return p[i] }

func (p Point2[S]) With(i int, v S) Point2[S] {
	p[i] = v
	return p
}

// Point3 is a 3-dimensional point.
type Point3[S Scalar] [3]S

func (p Point3[S]) Dim() int { return 3 }

func (p Point3[S]) At(i int) S { return p[i] }

func (p Point3[S]) With(i int, v S) Point3[S] {
	p[i] = v
	return p
}
