// Package rbt implement an in-memory ordered index of int64 keys as
// a red-black tree. Mutations rebalance the tree in place, insertion
// via the red-uncle color-flip walk and deletion via double-black
// deficiency repair.
//
// RBT instances are not thread-safe, callers shall arbitrate
// concurrent access, refer to the monitor package.
package rbt

import "fmt"

import s "github.com/bnclabs/gosettings"
import "github.com/bnclabs/golog"

import "github.com/lorenzoz23/concurrent-rbtree/lib"

// RBT manage a single instance of in-memory ordered index using a
// red-black tree.
type RBT struct {
	rbtstats

	name string
	root *node

	// settings
	maxentries int64
	setts      s.Settings
	logprefix  string
}

// NewRBT a new instance of in-memory ordered index.
func NewRBT(name string, setts s.Settings) *RBT {
	t := &RBT{name: name}
	t.logprefix = fmt.Sprintf("RBT [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	t.readsettings(setts)
	t.setts = setts
	t.h_insertdepth = &lib.AverageInt64{}

	log.Infof("%v started ...\n", t.logprefix)
	return t
}

// ID return index name.
func (t *RBT) ID() string {
	return t.name
}

// Count return number of entries in the index.
func (t *RBT) Count() int64 {
	return t.n_count
}

// Destroy this instance, index shall not be used after this call.
func (t *RBT) Destroy() {
	t.root = nil
	t.n_count = 0
	log.Infof("%v destroyed\n", t.logprefix)
}

// Search return true if key is present in the index. Read-only,
// O(height).
func (t *RBT) Search(key int64) bool {
	t.n_searches++
	return t.searchnode(key) != nil
}

func (t *RBT) searchnode(key int64) *node {
	nd := t.root
	for nd != nil {
		if key < nd.key {
			nd = nd.left
		} else if key > nd.key {
			nd = nd.right
		} else {
			return nd
		}
	}
	return nil
}

// Insert a key into the index. Inserting a key that is already
// present leaves the tree untouched.
func (t *RBT) Insert(key int64) {
	if t.searchnode(key) != nil {
		return
	}
	if t.n_count >= t.maxentries {
		panic(fmt.Errorf("%v exceeds maxentries %v", t.logprefix, t.maxentries))
	}

	nd, depth := newnode(key), int64(1)
	t.root = t.insert(t.root, nd, &depth)
	t.h_insertdepth.Add(depth)
	t.fixinsert(nd)
	t.n_count++
	t.n_inserts++
}

// BST descent to the insertion point, linking parent references on
// the way back up.
func (t *RBT) insert(root, nd *node, depth *int64) *node {
	if root == nil {
		return nd
	}
	*depth++
	if nd.key < root.key {
		root.left = t.insert(root.left, nd, depth)
		root.left.parent = root
	} else if nd.key > root.key {
		root.right = t.insert(root.right, nd, depth)
		root.right.parent = root
	}
	return root
}

// walk upward repairing red-red violations introduced by the fresh
// Red node: red uncle flips colors and moves the violation to the
// grandparent, black uncle resolves with one or two rotations.
func (t *RBT) fixinsert(nd *node) {
	for nd != t.root && isred(nd) && isred(nd.parent) {
		parent, grandparent := nd.parent, nd.parent.parent
		if parent == grandparent.left {
			uncle := grandparent.right
			if isred(uncle) {
				grandparent.color = Red
				parent.color = Black
				uncle.color = Black
				nd = grandparent
			} else {
				if nd == parent.right { // straighten the zig-zag
					t.rotateleft(parent)
					nd = parent
					parent = nd.parent
				}
				t.rotateright(grandparent)
				parent.color = Black
				grandparent.color = Red
				nd = parent
			}
		} else {
			uncle := grandparent.left
			if isred(uncle) {
				grandparent.color = Red
				parent.color = Black
				uncle.color = Black
				nd = grandparent
			} else {
				if nd == parent.left {
					t.rotateright(parent)
					nd = parent
					parent = nd.parent
				}
				t.rotateleft(grandparent)
				parent.color = Black
				grandparent.color = Red
				nd = parent
			}
		}
	}
	// color-flip case can leak Red to the top.
	t.root.color = Black
}

func (t *RBT) rotateleft(nd *node) {
	right := nd.right
	nd.right = right.left
	if nd.right != nil {
		nd.right.parent = nd
	}
	right.parent = nd.parent
	if nd.parent == nil {
		t.root = right
	} else if nd == nd.parent.left {
		nd.parent.left = right
	} else {
		nd.parent.right = right
	}
	right.left = nd
	nd.parent = right
	t.n_rotations++
}

func (t *RBT) rotateright(nd *node) {
	left := nd.left
	nd.left = left.right
	if nd.left != nil {
		nd.left.parent = nd
	}
	left.parent = nd.parent
	if nd.parent == nil {
		t.root = left
	} else if nd == nd.parent.left {
		nd.parent.left = left
	} else {
		nd.parent.right = left
	}
	left.right = nd
	nd.parent = left
	t.n_rotations++
}
