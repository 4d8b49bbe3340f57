package rbt

import "errors"
import "fmt"
import "math"

import "github.com/lorenzoz23/concurrent-rbtree/lib"

// height of the tree cannot exceed a certain limit. For n entries a
// red-black tree is at most 2*log2(n+1) deep, maxheight gives some
// breathing space on top of that.
func maxheight(entries int64) float64 {
	if entries < 5 {
		return 3 * (math.Log2(float64(entries)) + 1)
	}
	return 2 * (math.Log2(float64(entries)) + 1)
}

var errRedAfterRed = errors.New("consecutive red spotted")

func unbalancedblacks(lblacks, rblacks int64) error {
	return fmt.Errorf("unbalancedblacks {%v,%v}", lblacks, rblacks)
}

// Validate walk the full tree checking red-black invariants, BST
// ordering, parent back-references and the entry count, panics on
// the first breach. A breach is a programming defect, never an
// operational error.
func (t *RBT) Validate() {
	if t.root == nil {
		return
	}
	if isred(t.root) {
		panic(fmt.Errorf("validate(): root %v is red", t.root.key))
	}
	if t.root.parent != nil {
		panic(fmt.Errorf("validate(): root %v has a parent", t.root.key))
	}

	h := &lib.AverageInt64{}
	_, count := t.validatetree(t.root, false /*fromred*/, 0 /*blcks*/, 1 /*depth*/, h)
	if count != t.n_count {
		fmsg := "validate(): n_count:%v != actual:%v"
		panic(fmt.Errorf(fmsg, t.n_count, count))
	}
	if count > 8 {
		if x := float64(h.Max()); x > maxheight(count) {
			fmsg := "validate(): height %v exceeds limit for %v entries"
			panic(fmt.Errorf(fmsg, x, count))
		}
	}
}

func (t *RBT) validatetree(
	nd *node, fromred bool, blacks, depth int64,
	h *lib.AverageInt64) (nblacks, count int64) {

	if nd == nil {
		return blacks, 0
	}
	h.Add(depth)

	if fromred && isred(nd) {
		panic(errRedAfterRed)
	}
	if isblack(nd) {
		blacks++
	}
	if nd.left != nil && nd.left.parent != nd {
		fmsg := "validate(): dangling parent link under %v"
		panic(fmt.Errorf(fmsg, nd.key))
	}
	if nd.right != nil && nd.right.parent != nd {
		fmsg := "validate(): dangling parent link under %v"
		panic(fmt.Errorf(fmsg, nd.key))
	}
	if nd.left != nil && nd.left.key >= nd.key {
		fmsg := "validate(): sort order, left node %v is >= node %v"
		panic(fmt.Errorf(fmsg, nd.left.key, nd.key))
	}
	if nd.right != nil && nd.right.key <= nd.key {
		fmsg := "validate(): sort order, right node %v is <= node %v"
		panic(fmt.Errorf(fmsg, nd.right.key, nd.key))
	}

	lblacks, lcount := t.validatetree(nd.left, isred(nd), blacks, depth+1, h)
	rblacks, rcount := t.validatetree(nd.right, isred(nd), blacks, depth+1, h)
	if lblacks != rblacks {
		panic(unbalancedblacks(lblacks, rblacks))
	}
	return lblacks, lcount + rcount + 1
}
