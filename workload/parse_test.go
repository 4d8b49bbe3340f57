package workload

import "testing"

import "github.com/kylelemons/godebug/pretty"

import "github.com/lorenzoz23/concurrent-rbtree/api"
import "github.com/lorenzoz23/concurrent-rbtree/rbt"

var sampleinput = `10b,5r,f,f,15r,f,f

Search threads: 3
Modify threads: 2

search(5) | search(15) | search(40)
insert(40) | delete(5)
`

func TestParse(t *testing.T) {
	w, err := Parse(sampleinput)
	if err != nil {
		t.Fatalf("unexpected %v", err)
	}
	ref := &Workload{
		Pairs: []rbt.KeyColor{
			{Key: 10, Color: rbt.Black},
			{Key: 5, Color: rbt.Red},
			{Leaf: true, Color: rbt.Black},
			{Leaf: true, Color: rbt.Black},
			{Key: 15, Color: rbt.Red},
			{Leaf: true, Color: rbt.Black},
			{Leaf: true, Color: rbt.Black},
		},
		Readers: 3,
		Writers: 2,
		Searches: []Op{
			{Kind: OpSearch, Key: 5},
			{Kind: OpSearch, Key: 15},
			{Kind: OpSearch, Key: 40},
		},
		Mutations: []Op{
			{Kind: OpInsert, Key: 40},
			{Kind: OpDelete, Key: 5},
		},
	}
	if diff := pretty.Compare(w, ref); diff != "" {
		t.Errorf("parse mismatch:\n%v", diff)
	}
}

func TestParseBuild(t *testing.T) {
	w, err := Parse(sampleinput)
	if err != nil {
		t.Fatalf("unexpected %v", err)
	}
	tree := rbt.NewRBT("parsebuild", nil)
	defer tree.Destroy()
	tree.Build(w.Pairs)
	tree.Validate()

	if s := tree.Serialize(); s != "10b,5r,f,f,15r,f,f" {
		t.Errorf("unexpected %q", s)
	}
}

func TestParseTree(t *testing.T) {
	// the input format suppresses the trailing marker of the last
	// node, parsing shall accept it either way.
	for _, line := range []string{"10b,5r,f,f,15r,f,f", "10b,5r,f,f,15r,f,f,f"} {
		pairs, err := ParseTree(line)
		if err != nil {
			t.Fatalf("unexpected %v", err)
		}
		keys := 0
		for _, p := range pairs {
			if p.Leaf == false {
				keys++
			}
		}
		if keys != 3 {
			t.Errorf("unexpected %v", keys)
		}
	}

	for _, line := range []string{"10x", "xb", "10", "b"} {
		if _, err := ParseTree(line); err != api.ErrorInvalidInput {
			t.Errorf("%q: expected %v, got %v", line, api.ErrorInvalidInput, err)
		}
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"10b,5r,f,f",
		"10b\n\nSearch threads: 1",
		"10b\n\nSearch frobs\n\nsearch(1)",
		"10b\n\nSearch threads: x\n\nsearch(1)",
		"10b\n\nSearch threads: 1\nModify threads: 1\n\nfrob(1)",
	}
	for _, input := range inputs {
		if _, err := Parse(input); err != api.ErrorInvalidInput {
			t.Errorf("%q: expected %v, got %v", input, api.ErrorInvalidInput, err)
		}
	}
}
