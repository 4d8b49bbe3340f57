package workload

import "os"
import "strconv"
import "strings"

import "github.com/bnclabs/golog"
import parsec "github.com/prataprc/goparsec"

import "github.com/lorenzoz23/concurrent-rbtree/api"
import "github.com/lorenzoz23/concurrent-rbtree/lib"
import "github.com/lorenzoz23/concurrent-rbtree/rbt"

// ParseFile read and parse an input file, refer to Parse for the
// expected layout.
func ParseFile(path string) (*Workload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// Parse an input description made of three blank-line separated
// sections: the initial tree in pre-order csv form, the task count
// lines, and the pipe separated invocation lines.
//
//	10b,5r,f,f,15r,f,f
//
//	Search threads: 3
//	Modify threads: 2
//
//	search(5) | search(15) | search(40)
//	insert(40) | delete(5)
func Parse(text string) (*Workload, error) {
	sections := make([][]string, 1)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			if len(sections[len(sections)-1]) > 0 {
				sections = append(sections, nil)
			}
			continue
		}
		sections[len(sections)-1] = append(sections[len(sections)-1], line)
	}
	if len(sections[len(sections)-1]) == 0 {
		sections = sections[:len(sections)-1]
	}
	if len(sections) != 3 {
		log.Errorf("workload: expected 3 sections, found %v\n", len(sections))
		return nil, api.ErrorInvalidInput
	}

	w := &Workload{}

	pairs, err := ParseTree(strings.Join(sections[0], ","))
	if err != nil {
		return nil, err
	}
	w.Pairs = pairs

	if err := w.parsetasklines(sections[1]); err != nil {
		return nil, err
	}

	parser := invocationparser()
	for _, line := range sections[2] {
		ops, err := parseinvocations(parser, line)
		if err != nil {
			return nil, err
		}
		for _, op := range ops {
			if op.Kind == OpSearch {
				w.Searches = append(w.Searches, op)
			} else {
				w.Mutations = append(w.Mutations, op)
			}
		}
	}
	return w, nil
}

// ParseTree parse a pre-order csv of <key><color-letter> tokens and
// `f` absent-child markers into bulk-load pairs.
func ParseTree(line string) ([]rbt.KeyColor, error) {
	toks := lib.Parsecsv(line)
	pairs := make([]rbt.KeyColor, 0, len(toks))
	for _, tok := range toks {
		if tok == "f" {
			pairs = append(pairs, rbt.KeyColor{Leaf: true, Color: rbt.Black})
			continue
		}
		var color rbt.Color
		switch tok[len(tok)-1] {
		case 'b':
			color = rbt.Black
		case 'r':
			color = rbt.Red
		default:
			log.Errorf("workload: bad tree token %q\n", tok)
			return nil, api.ErrorInvalidInput
		}
		key, err := strconv.ParseInt(tok[:len(tok)-1], 10, 64)
		if err != nil {
			log.Errorf("workload: bad tree token %q\n", tok)
			return nil, api.ErrorInvalidInput
		}
		pairs = append(pairs, rbt.KeyColor{Key: key, Color: color})
	}
	return pairs, nil
}

// task count lines look like `Search threads: 3`, `Modify
// threads: 2`, in any order and case.
func (w *Workload) parsetasklines(lines []string) error {
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			log.Errorf("workload: bad task line %q\n", line)
			return api.ErrorInvalidInput
		}
		count, err := strconv.ParseInt(fields[len(fields)-1], 10, 64)
		if err != nil || count < 0 {
			log.Errorf("workload: bad task count in %q\n", line)
			return api.ErrorInvalidInput
		}
		switch strings.ToLower(fields[0]) {
		case "search":
			w.Readers = count
		case "modify":
			w.Writers = count
		default:
			log.Errorf("workload: bad task line %q\n", line)
			return api.ErrorInvalidInput
		}
	}
	return nil
}

// invocationparser build a goparsec parser for one invocation line:
// pipe separated `<op>(<key>)` calls.
func invocationparser() parsec.Parser {
	opname := parsec.Token(`(search|insert|delete)`, "OPNAME")
	openp := parsec.Token(`\(`, "OPENP")
	closep := parsec.Token(`\)`, "CLOSEP")
	pipe := parsec.Token(`\|`, "PIPE")
	op := parsec.And(collectop, opname, openp, parsec.Int(), closep)
	return parsec.Kleene(collectops, op, pipe)
}

func collectop(ns []parsec.ParsecNode) parsec.ParsecNode {
	key, err := strconv.ParseInt(ns[2].(*parsec.Terminal).Value, 10, 64)
	if err != nil {
		panic(err) // Int() token cannot fail to parse
	}
	op := Op{Key: key}
	switch ns[0].(*parsec.Terminal).Value {
	case "search":
		op.Kind = OpSearch
	case "insert":
		op.Kind = OpInsert
	case "delete":
		op.Kind = OpDelete
	}
	return op
}

func collectops(ns []parsec.ParsecNode) parsec.ParsecNode {
	ops := make([]Op, 0, len(ns))
	for _, n := range ns {
		ops = append(ops, n.(Op))
	}
	return ops
}

func parseinvocations(parser parsec.Parser, line string) ([]Op, error) {
	node, _ := parser(parsec.NewScanner([]byte(line)))
	if node == nil {
		log.Errorf("workload: bad invocation line %q\n", line)
		return nil, api.ErrorInvalidInput
	}
	ops := node.([]Op)
	if len(ops) == 0 {
		log.Errorf("workload: bad invocation line %q\n", line)
		return nil, api.ErrorInvalidInput
	}
	return ops, nil
}
