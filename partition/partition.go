package partition

// Partition is the contract a spatial-tree builder uses to route elements:
// Contains validates that an element belongs to a region, Dispatch picks the
// sub-region index the element goes to.
type Partition[P any] interface {
	Contains(elem P) bool
	Dispatch(elem P) int
}

// Subdivider is a Partition that can split itself into its sub-regions.
// Subdivide()[Dispatch(p)] must be the sub-region containing p, for every p
// in that sub-region's interior.
type Subdivider[R, P any] interface {
	Partition[P]
	Subdivide() []R
}

var _ Subdivider[NCube[Point3[float32], float32], Point3[float32]] = NCube[Point3[float32], float32]{}
