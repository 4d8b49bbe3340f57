// Command genload generate random workload files. Operation kinds
// are drawn from a monster grammar, keys and the initial tree from
// the seeded rand source.
package main

import "flag"
import "fmt"
import "log"
import "math/rand"
import "os"
import "strings"

import parsec "github.com/prataprc/goparsec"
import "github.com/prataprc/monster"
import mcommon "github.com/prataprc/monster/common"

import "github.com/lorenzoz23/concurrent-rbtree/rbt"

var options struct {
	n        int
	initial  int
	keymax   int
	readers  int
	writers  int
	perline  int
	seed     int
	prodfile string
	outfile  string
}

func argparse() {
	flag.IntVar(&options.n, "n", 20,
		"number of operations to generate")
	flag.IntVar(&options.initial, "initial", 10,
		"number of entries in the initial tree")
	flag.IntVar(&options.keymax, "keymax", 100,
		"keys are drawn from [1,keymax]")
	flag.IntVar(&options.readers, "readers", 5,
		"number of reader tasks")
	flag.IntVar(&options.writers, "writers", 3,
		"number of writer tasks")
	flag.IntVar(&options.perline, "perline", 4,
		"operations per invocation line")
	flag.IntVar(&options.seed, "seed", 1,
		"random seed")
	flag.StringVar(&options.prodfile, "prodfile", "ops.prod",
		"monster production file for operation kinds")
	flag.StringVar(&options.outfile, "o", "in.txt",
		"file to write the workload into")
	flag.Parse()
}

func main() {
	argparse()
	rnd := rand.New(rand.NewSource(int64(options.seed)))

	// initial tree: random inserts into a scratch index, then its
	// pre-order serialization becomes the first section.
	tree := rbt.NewRBT("genload", nil)
	for tree.Count() < int64(options.initial) {
		tree.Insert(rnd.Int63n(int64(options.keymax)) + 1)
	}
	tree.Validate()

	ops := generate(options.n, options.prodfile, rnd)

	var buf strings.Builder
	fmt.Fprintf(&buf, "%s\n\n", tree.Serialize())
	fmt.Fprintf(&buf, "Search threads: %d\n", options.readers)
	fmt.Fprintf(&buf, "Modify threads: %d\n\n", options.writers)
	for i := 0; i < len(ops); i += options.perline {
		j := i + options.perline
		if j > len(ops) {
			j = len(ops)
		}
		fmt.Fprintf(&buf, "%s\n", strings.Join(ops[i:j], " | "))
	}

	if err := os.WriteFile(options.outfile, []byte(buf.String()), 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%v operations written to %v\n", len(ops), options.outfile)
}

//--------
// monster
//--------

func generate(repeat int, prodfile string, rnd *rand.Rand) []string {
	text, err := os.ReadFile(prodfile)
	if err != nil {
		log.Fatal(err)
	}
	root := compile(parsec.NewScanner(text)).(mcommon.Scope)
	scope := monster.BuildContext(root, uint64(options.seed), "", prodfile)
	nterms := scope["_nonterminals"].(mcommon.NTForms)

	ops := make([]string, 0, repeat)
	for i := 0; i < repeat; i++ {
		scope = scope.RebuildContext()
		kind := evaluate("root", scope, nterms["s"]).(string)
		key := rnd.Int63n(int64(options.keymax)) + 1
		ops = append(ops, fmt.Sprintf("%s(%d)", kind, key))
	}
	return ops
}

func compile(s parsec.Scanner) parsec.ParsecNode {
	defer func() {
		if r := recover(); r != nil {
			log.Fatalf("%v at %v", r, s.GetCursor())
		}
	}()
	root, _ := monster.Y(s)
	return root
}

func evaluate(
	name string, scope mcommon.Scope, forms []*mcommon.Form) interface{} {

	defer func() {
		if r := recover(); r != nil {
			log.Fatalf("%v", r)
		}
	}()
	return monster.EvalForms(name, scope, forms)
}
