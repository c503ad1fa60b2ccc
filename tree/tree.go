package tree

import (
	"github.com/aukilabs/eihwaz/partition"
	"github.com/aukilabs/go-tooling/pkg/errors"
)

// ErrTypeOutOfBounds is the error type returned when inserting an element
// that lies outside the tree's root region.
const ErrTypeOutOfBounds = "tree_element_out_of_bounds"

const (
	DefaultCapacity = 8
	DefaultMaxDepth = 16
)

// Tree is a bucketed spatial tree over any region type satisfying the
// partition contracts: a quadtree for 2-dimensional regions, an octree for
// 3-dimensional ones, and their generalization above that. Elements live in
// leaf buckets; a leaf that exceeds its capacity is split with Subdivide and
// its bucket redistributed with Dispatch.
//
// Not safe for concurrent mutation.
type Tree[R partition.Subdivider[R, P], P, E any] struct {
	position func(E) P
	capacity int
	maxDepth int
	root     node[R, P, E]
	len      int
}

type node[R partition.Subdivider[R, P], P, E any] struct {
	region   R
	elems    []E
	children []node[R, P, E] // nil until the node splits
}

type options struct {
	capacity int
	maxDepth int
}

type Option func(*options)

// WithCapacity sets how many elements a leaf holds before it splits.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithMaxDepth caps the subdivision depth. Leaves at the cap grow past their
// capacity instead of splitting, which keeps co-located elements from
// subdividing forever.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxDepth = n
		}
	}
}

// New returns a tree covering the given root region. position maps an
// element to the point it is stored under.
func New[R partition.Subdivider[R, P], P, E any](region R, position func(E) P, opts ...Option) *Tree[R, P, E] {
	o := options{
		capacity: DefaultCapacity,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Tree[R, P, E]{
		position: position,
		capacity: o.capacity,
		maxDepth: o.maxDepth,
		root:     node[R, P, E]{region: region},
	}
}

// Insert stores e in the leaf owning its position. Returns an error of type
// ErrTypeOutOfBounds when the position is not contained in the root region.
func (t *Tree[R, P, E]) Insert(e E) error {
	p := t.position(e)
	if !t.root.region.Contains(p) {
		return errors.New("element position is outside the tree region").
			WithType(ErrTypeOutOfBounds)
	}

	t.root.insert(t, p, e, 0)
	t.len++
	return nil
}

// Len returns the number of stored elements.
func (t *Tree[R, P, E]) Len() int { return t.len }

// Depth returns the depth of the deepest leaf. A tree that never split has
// depth 0.
func (t *Tree[R, P, E]) Depth() int { return t.root.depth() }

// Nodes returns the total node count, the root included.
func (t *Tree[R, P, E]) Nodes() int { return t.root.count() }

// Locate returns a copy of the bucket of the leaf owning p, or nil when p is
// outside the root region.
func (t *Tree[R, P, E]) Locate(p P) []E {
	if !t.root.region.Contains(p) {
		return nil
	}

	n := &t.root
	for n.children != nil {
		n = &n.children[n.region.Dispatch(p)]
	}

	elems := make([]E, len(n.elems))
	copy(elems, n.elems)
	return elems
}

// Walk visits every stored element until visit returns false.
func (t *Tree[R, P, E]) Walk(visit func(E) bool) {
	t.root.walk(visit)
}

func (n *node[R, P, E]) insert(t *Tree[R, P, E], p P, e E, depth int) {
	for n.children != nil {
		n = &n.children[n.region.Dispatch(p)]
		depth++
	}

	if len(n.elems) < t.capacity || depth >= t.maxDepth {
		n.elems = append(n.elems, e)
		return
	}

	n.split(t)
	n.children[n.region.Dispatch(p)].insert(t, p, e, depth+1)
}

// split turns a leaf into an interior node, moving its bucket into the
// children designated by Dispatch.
func (n *node[R, P, E]) split(t *Tree[R, P, E]) {
	regions := n.region.Subdivide()

	children := make([]node[R, P, E], len(regions))
	for i, r := range regions {
		children[i] = node[R, P, E]{region: r}
	}

	for _, e := range n.elems {
		c := &children[n.region.Dispatch(t.position(e))]
		c.elems = append(c.elems, e)
	}

	n.elems = nil
	n.children = children
}

func (n *node[R, P, E]) depth() int {
	if n.children == nil {
		return 0
	}

	max := 0
	for i := range n.children {
		if d := n.children[i].depth(); d > max {
			max = d
		}
	}
	return max + 1
}

func (n *node[R, P, E]) count() int {
	c := 1
	for i := range n.children {
		c += n.children[i].count()
	}
	return c
}

func (n *node[R, P, E]) walk(visit func(E) bool) bool {
	for _, e := range n.elems {
		if !visit(e) {
			return false
		}
	}
	for i := range n.children {
		if !n.children[i].walk(visit) {
			return false
		}
	}
	return true
}
