package rbt

import "math/rand"
import "sort"
import "testing"

func TestRBTEmpty(t *testing.T) {
	tree := NewRBT("empty", Defaultsettings())
	defer tree.Destroy()

	if tree.ID() != "empty" {
		t.Errorf("unexpected %v", tree.ID())
	}
	if tree.Count() != 0 {
		t.Errorf("unexpected %v", tree.Count())
	}
	if tree.Search(10) {
		t.Errorf("unexpected found in empty tree")
	}
	if s := tree.Serialize(); s != "" {
		t.Errorf("unexpected %q", s)
	}
	if h := tree.Height(); h != 0 {
		t.Errorf("unexpected %v", h)
	}
	tree.Validate()
}

func TestInsertAscending(t *testing.T) {
	tree := NewRBT("ascending", Defaultsettings())
	defer tree.Destroy()

	for key := int64(1); key <= 7; key++ {
		tree.Insert(key)
		tree.Validate()
	}

	if tree.Count() != 7 {
		t.Errorf("unexpected %v", tree.Count())
	}
	// ascending inserts of 1..7 settle with 2 as the black root.
	if keys := tree.Levelorder(); keys[0] != 2 {
		t.Errorf("expected root 2, got %v", keys[0])
	}
	if s, ref := tree.Serialize(), "2b,1b,f,f,4r,3b,f,f,6b,5r,f,f,7r,f,f"; s != ref {
		t.Errorf("expected %q, got %q", ref, s)
	}
	ref := []int64{1, 2, 3, 4, 5, 6, 7}
	inorder := tree.Inorder()
	for i, key := range ref {
		if inorder[i] != key {
			t.Errorf("expected %v, got %v", ref, inorder)
			break
		}
	}
}

func TestInsertRandom(t *testing.T) {
	tree := NewRBT("random", Defaultsettings())
	defer tree.Destroy()

	rnd := rand.New(rand.NewSource(42))
	keys := map[int64]bool{}
	for i := 0; i < 1000; i++ {
		key := rnd.Int63n(10000)
		tree.Insert(key)
		keys[key] = true
		tree.Validate()
	}

	if x, y := int64(len(keys)), tree.Count(); x != y {
		t.Errorf("expected %v, got %v", x, y)
	}
	inorder := tree.Inorder()
	if int64(len(inorder)) != tree.Count() {
		t.Errorf("unexpected %v", len(inorder))
	}
	if sort.SliceIsSorted(inorder, func(i, j int) bool { return inorder[i] < inorder[j] }) == false {
		t.Errorf("in-order traversal is not sorted")
	}
	for _, key := range inorder {
		if keys[key] == false {
			t.Errorf("unexpected key %v", key)
		}
		if tree.Search(key) == false {
			t.Errorf("missing key %v", key)
		}
	}
}

func TestInsertIdempotent(t *testing.T) {
	tree := NewRBT("idempotent", Defaultsettings())
	defer tree.Destroy()

	for key := int64(1); key <= 100; key++ {
		tree.Insert(key)
	}
	count, rotations := tree.Count(), tree.n_rotations
	inorder := tree.Inorder()

	for key := int64(1); key <= 100; key++ {
		tree.Insert(key)
	}
	if x := tree.Count(); x != count {
		t.Errorf("expected %v, got %v", count, x)
	}
	if x := tree.n_rotations; x != rotations {
		t.Errorf("duplicate insert rotated, %v != %v", rotations, x)
	}
	for i, key := range tree.Inorder() {
		if inorder[i] != key {
			t.Errorf("expected %v, got %v", inorder[i], key)
		}
	}
	tree.Validate()
}

func TestSearch(t *testing.T) {
	tree := NewRBT("search", Defaultsettings())
	defer tree.Destroy()

	for key := int64(0); key < 100; key += 2 {
		tree.Insert(key)
	}
	for key := int64(0); key < 100; key++ {
		if found := tree.Search(key); found != (key%2 == 0) {
			t.Errorf("search(%v) unexpected %v", key, found)
		}
	}
}

func TestStats(t *testing.T) {
	tree := NewRBT("stats", Defaultsettings())
	defer tree.Destroy()

	for key := int64(1); key <= 10; key++ {
		tree.Insert(key)
	}
	tree.Search(1)
	if err := tree.Delete(1); err != nil {
		t.Errorf("unexpected %v", err)
	}

	stats := tree.Stats()
	if x := stats["n_count"].(int64); x != 9 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_inserts"].(int64); x != 10 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_deletes"].(int64); x != 1 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_searches"].(int64); x < 1 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["height"].(int64); x < 1 {
		t.Errorf("unexpected %v", x)
	}
	tree.Log()
}
