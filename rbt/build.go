package rbt

import "fmt"
import "strings"

import "github.com/bnclabs/golog"

// Build bulk-load the index from a pre-order sequence of {key,color}
// entries, honoring the supplied colors without re-deriving them.
// Input is trusted to describe a valid red-black tree, absent-child
// markers are skipped since BST descent alone recovers the shape.
// Shall be called once, on an empty index, before any concurrent
// access begins.
func (t *RBT) Build(pairs []KeyColor) {
	for _, p := range pairs {
		if p.Leaf {
			continue
		}
		nd := newnode(p.Key)
		nd.color = p.Color
		if t.root == nil {
			t.root = nd
		} else {
			t.buildinsert(t.root, nd)
		}
		t.n_count++
	}
	log.Infof("%v built with %v entries\n", t.logprefix, t.n_count)
}

func (t *RBT) buildinsert(root, nd *node) {
	if nd.key > root.key {
		if root.right == nil {
			root.right = nd
			nd.parent = root
			return
		}
		t.buildinsert(root.right, nd)
		return
	}
	if root.left == nil {
		root.left = nd
		nd.parent = root
		return
	}
	t.buildinsert(root.left, nd)
}

// Serialize the index as a comma separated pre-order sequence of
// <key><color-letter> tokens, with an `f` token for every absent
// child. Build accepts this form back, round-tripping the tree.
func (t *RBT) Serialize() string {
	if t.root == nil {
		return ""
	}
	toks := preorder(t.root, make([]string, 0, t.n_count*2))
	return strings.Join(toks, ",")
}

func preorder(nd *node, toks []string) []string {
	if nd == nil {
		return append(toks, "f")
	}
	c := "r"
	if nd.color == Black {
		c = "b"
	}
	toks = append(toks, fmt.Sprintf("%d%s", nd.key, c))
	toks = preorder(nd.left, toks)
	return preorder(nd.right, toks)
}
