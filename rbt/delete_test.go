package rbt

import "math/rand"
import "testing"

import "github.com/lorenzoz23/concurrent-rbtree/api"

func TestDeleteTwoNode(t *testing.T) {
	pairs := []KeyColor{
		{Key: 10, Color: Black},
		{Key: 5, Color: Red},
		{Leaf: true}, {Leaf: true},
		{Key: 15, Color: Red},
		{Leaf: true}, {Leaf: true},
	}
	tree := NewRBT("twonode", Defaultsettings())
	defer tree.Destroy()
	tree.Build(pairs)
	tree.Validate()

	if s := tree.Serialize(); s != "10b,5r,f,f,15r,f,f" {
		t.Errorf("unexpected %q", s)
	}

	if err := tree.Delete(10); err != nil {
		t.Errorf("unexpected %v", err)
	}
	tree.Validate()
	if tree.Count() != 2 {
		t.Errorf("unexpected %v", tree.Count())
	}
	inorder := tree.Inorder()
	if inorder[0] != 5 || inorder[1] != 15 {
		t.Errorf("unexpected %v", inorder)
	}
	if root := tree.Levelorder()[0]; root != 5 && root != 15 {
		t.Errorf("unexpected root %v", root)
	}
}

func TestDeleteMissing(t *testing.T) {
	tree := NewRBT("missing", Defaultsettings())
	defer tree.Destroy()

	// empty tree, silent no-op.
	if err := tree.Delete(10); err != nil {
		t.Errorf("unexpected %v", err)
	}

	tree.Insert(10)
	before := tree.Serialize()
	if err := tree.Delete(20); err != api.ErrorKeyMissing {
		t.Errorf("expected %v, got %v", api.ErrorKeyMissing, err)
	}
	if after := tree.Serialize(); after != before {
		t.Errorf("expected %q, got %q", before, after)
	}
	tree.Validate()
}

func TestDeleteRoot(t *testing.T) {
	tree := NewRBT("delroot", Defaultsettings())
	defer tree.Destroy()

	// lone root.
	tree.Insert(10)
	if err := tree.Delete(10); err != nil {
		t.Errorf("unexpected %v", err)
	}
	if tree.Count() != 0 || tree.Serialize() != "" {
		t.Errorf("expected empty tree")
	}
	tree.Validate()

	// root with a single child.
	tree.Insert(10)
	tree.Insert(5)
	if err := tree.Delete(10); err != nil {
		t.Errorf("unexpected %v", err)
	}
	tree.Validate()
	if keys := tree.Inorder(); len(keys) != 1 || keys[0] != 5 {
		t.Errorf("unexpected %v", keys)
	}
}

func TestDeleteRandom(t *testing.T) {
	tree := NewRBT("delrandom", Defaultsettings())
	defer tree.Destroy()

	rnd := rand.New(rand.NewSource(37))
	keys := make([]int64, 0, 1000)
	present := map[int64]bool{}
	for len(keys) < 1000 {
		key := rnd.Int63n(100000)
		if present[key] {
			continue
		}
		present[key] = true
		keys = append(keys, key)
		tree.Insert(key)
	}
	tree.Validate()

	rnd.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	for i, key := range keys {
		if err := tree.Delete(key); err != nil {
			t.Fatalf("delete(%v): %v", key, err)
		}
		delete(present, key)
		tree.Validate()
		if x, y := int64(len(present)), tree.Count(); x != y {
			t.Fatalf("expected %v, got %v", x, y)
		}
		// spot-check the surviving key set.
		if i%100 == 0 {
			for _, survivor := range tree.Inorder() {
				if present[survivor] == false {
					t.Fatalf("unexpected key %v", survivor)
				}
			}
		}
	}
	if tree.Count() != 0 {
		t.Errorf("unexpected %v", tree.Count())
	}
}

func TestDeleteInsertChurn(t *testing.T) {
	tree := NewRBT("churn", Defaultsettings())
	defer tree.Destroy()

	rnd := rand.New(rand.NewSource(91))
	present := map[int64]bool{}
	for i := 0; i < 5000; i++ {
		key := rnd.Int63n(500)
		if rnd.Intn(3) == 0 {
			err := tree.Delete(key)
			if present[key] && err != nil {
				t.Fatalf("delete(%v): %v", key, err)
			} else if !present[key] && tree.Count() > 0 && err != api.ErrorKeyMissing {
				t.Fatalf("delete(%v): expected keymissing, got %v", key, err)
			}
			delete(present, key)
		} else {
			tree.Insert(key)
			present[key] = true
		}
		tree.Validate()
	}
	if x, y := int64(len(present)), tree.Count(); x != y {
		t.Errorf("expected %v, got %v", x, y)
	}
}
