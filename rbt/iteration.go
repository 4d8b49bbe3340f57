package rbt

import "fmt"
import "io"

// Inorder return all keys in sorted order.
func (t *RBT) Inorder() []int64 {
	keys := make([]int64, 0, t.n_count)
	return inorder(t.root, keys)
}

func inorder(nd *node, keys []int64) []int64 {
	if nd == nil {
		return keys
	}
	keys = inorder(nd.left, keys)
	keys = append(keys, nd.key)
	return inorder(nd.right, keys)
}

// Levelorder return all keys top-down, left to right within a level.
func (t *RBT) Levelorder() []int64 {
	keys := make([]int64, 0, t.n_count)
	if t.root == nil {
		return keys
	}
	queue := []*node{t.root}
	for len(queue) > 0 {
		nd := queue[0]
		queue = queue[1:]
		keys = append(keys, nd.key)
		if nd.left != nil {
			queue = append(queue, nd.left)
		}
		if nd.right != nil {
			queue = append(queue, nd.right)
		}
	}
	return keys
}

// Height return the number of nodes on the longest root-to-leaf
// path, 0 for an empty index.
func (t *RBT) Height() int64 {
	return height(t.root)
}

func height(nd *node) int64 {
	if nd == nil {
		return 0
	}
	lh, rh := height(nd.left), height(nd.right)
	if lh > rh {
		return lh + 1
	}
	return rh + 1
}

// PrintTree render the tree skeleton on w, for human inspection.
func (t *RBT) PrintTree(w io.Writer) {
	if t.root != nil {
		printtree(w, t.root, "", true)
	}
}

func printtree(w io.Writer, nd *node, indent string, last bool) {
	if nd == nil {
		return
	}
	connector := "L----"
	if last {
		connector = "R----"
	}
	fmt.Fprintf(w, "%s%s%d(%s)\n", indent, connector, nd.key, nd.color)
	if last {
		indent += "    "
	} else {
		indent += "|   "
	}
	printtree(w, nd.left, indent, false)
	printtree(w, nd.right, indent, true)
}
