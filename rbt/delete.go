package rbt

import "github.com/bnclabs/golog"

import "github.com/lorenzoz23/concurrent-rbtree/api"

// Delete a key from the index, returns api.ErrorKeyMissing when the
// key is not present and leaves the tree unmodified. Deleting from
// an empty index is a silent no-op.
func (t *RBT) Delete(key int64) error {
	if t.root == nil {
		return nil
	}
	nd := t.searchnode(key)
	if nd == nil {
		log.Errorf("%v cannot find %v to delete\n", t.logprefix, key)
		return api.ErrorKeyMissing
	}
	t.deletenode(nd)
	t.n_count--
	t.n_deletes++
	return nil
}

// replacementof return the node that takes nd's place: the BST
// successor when nd has two children, the single child when it has
// one, nil when it is a leaf.
func replacementof(nd *node) *node {
	if nd.left != nil && nd.right != nil {
		return nd.right.min()
	}
	if nd.left == nil && nd.right == nil {
		return nil
	}
	if nd.left != nil {
		return nd.left
	}
	return nd.right
}

func (t *RBT) deletenode(nd *node) {
	m := replacementof(nd)
	// removing a Black node without a Red replacement loses one
	// Black on that path, the deficiency must be repaired.
	doubleblack := isblack(m) && isblack(nd)
	parent := nd.parent

	if m == nil { // nd is a leaf
		if nd == t.root {
			t.root = nil
			return
		}
		if doubleblack {
			// repair before detaching, the walk needs nd's links.
			t.fixdoubleblack(nd)
		} else if sib := nd.sibling(); sib != nil {
			sib.color = Red
		}
		if nd.isonleft() {
			parent.left = nil
		} else {
			parent.right = nil
		}
		return
	}

	if nd.left == nil || nd.right == nil { // exactly one child
		if nd == t.root {
			// a balanced root with one child has exactly one
			// descendant, absorb its key.
			nd.key = m.key
			nd.left, nd.right = nil, nil
			return
		}
		if nd.isonleft() {
			parent.left = m
		} else {
			parent.right = m
		}
		m.parent = parent
		if doubleblack {
			t.fixdoubleblack(m)
		} else {
			m.color = Black
		}
		return
	}

	// two children, swap keys with the successor and reduce the
	// deletion to a <=1 child case. Each step strictly descends, so
	// recursion depth is bounded by tree height.
	nd.key, m.key = m.key, nd.key
	t.deletenode(m)
}

// fixdoubleblack repair a black-height deficiency at nd, walking
// upward until the deficiency is absorbed or reaches the root.
func (t *RBT) fixdoubleblack(nd *node) {
	if nd == t.root {
		return
	}

	sib, parent := nd.sibling(), nd.parent
	if sib == nil {
		// nothing to absorb the deficiency, push it up.
		t.fixdoubleblack(parent)
		return
	}

	if isred(sib) {
		// normalize shape so the sibling becomes Black, then retry.
		parent.color = Red
		sib.color = Black
		if sib.isonleft() {
			t.rotateright(parent)
		} else {
			t.rotateleft(parent)
		}
		t.fixdoubleblack(nd)
		return
	}

	if sib.hasredchild() {
		// four terminating sub-cases keyed on sibling side and
		// which of its children is Red.
		if isred(sib.left) {
			if sib.isonleft() { // left-left
				sib.left.color = sib.color
				sib.color = parent.color
				t.rotateright(parent)
			} else { // right-left
				sib.left.color = parent.color
				t.rotateright(sib)
				t.rotateleft(parent)
			}
		} else {
			if sib.isonleft() { // left-right
				sib.right.color = parent.color
				t.rotateleft(sib)
				t.rotateright(parent)
			} else { // right-right
				sib.right.color = sib.color
				sib.color = parent.color
				t.rotateleft(parent)
			}
		}
		parent.color = Black
		return
	}

	// sibling Black with two Black children, recolor and either
	// absorb the deficiency at a Red parent or propagate it.
	sib.color = Red
	if isblack(parent) {
		t.fixdoubleblack(parent)
	} else {
		parent.color = Black
	}
}
