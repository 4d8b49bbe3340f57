package rbt

// Color of a tree node. Absent children are treated as Black for
// every invariant computation.
type Color byte

const (
	// Red colored node.
	Red Color = iota
	// Black colored node.
	Black
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	}
	panic("unreachable code")
}

// KeyColor is a single token of the pre-order bulk-load sequence,
// either a {key,color} entry or an absent-child marker (Leaf true).
type KeyColor struct {
	Key   int64
	Color Color
	Leaf  bool
}

// node in the tree. The parent link is a non-owning back-reference
// used only while rebalancing, ownership is root-downward.
type node struct {
	key    int64
	color  Color
	parent *node
	left   *node
	right  *node
}

// new nodes start as Red, rebalancing settles the final color.
func newnode(key int64) *node {
	return &node{key: key, color: Red}
}

// isred is nil-safe, absent children count as Black.
func isred(nd *node) bool {
	return nd != nil && nd.color == Red
}

func isblack(nd *node) bool {
	return !isred(nd)
}

// isonleft shall be called only on nodes that have a parent.
func (nd *node) isonleft() bool {
	return nd == nd.parent.left
}

func (nd *node) sibling() *node {
	if nd.parent == nil {
		return nil
	}
	if nd.isonleft() {
		return nd.parent.right
	}
	return nd.parent.left
}

func (nd *node) hasredchild() bool {
	return isred(nd.left) || isred(nd.right)
}

// min return the left-most node under nd, nd shall not be nil.
func (nd *node) min() *node {
	for nd.left != nil {
		nd = nd.left
	}
	return nd
}
