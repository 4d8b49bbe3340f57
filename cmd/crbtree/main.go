// Command crbtree run a workload file against a concurrent
// red-black tree index and write the results report.
package main

import "os"

import "github.com/bnclabs/golog"
import s "github.com/bnclabs/gosettings"
import flag "github.com/spf13/pflag"

import "github.com/lorenzoz23/concurrent-rbtree/monitor"
import "github.com/lorenzoz23/concurrent-rbtree/rbt"
import "github.com/lorenzoz23/concurrent-rbtree/runner"
import "github.com/lorenzoz23/concurrent-rbtree/workload"

var options struct {
	input     string
	output    string
	admission string
	validate  bool
	loglevel  string
	logfile   string
}

func argparse() {
	flag.StringVar(&options.input, "input", "",
		"workload file to execute")
	flag.StringVar(&options.output, "output", "out.txt",
		"file to write the results report into")
	flag.StringVar(&options.admission, "admission", monitor.AdmitWriters,
		"monitor admission policy, writers | readers")
	flag.BoolVar(&options.validate, "validate", true,
		"validate tree invariants before and after the run")
	flag.StringVar(&options.loglevel, "log.level", "info",
		"log level, ignore | fatal | error | warn | info | debug")
	flag.StringVar(&options.logfile, "log.file", "",
		"log to file instead of stdout")
	flag.Parse()
}

func main() {
	argparse()
	log.SetLogger(nil, map[string]interface{}{
		"log.level": options.loglevel, "log.file": options.logfile,
	})
	if options.input == "" {
		log.Fatalf("crbtree: please specify an input file\n")
		os.Exit(1)
	}

	w, err := workload.ParseFile(options.input)
	if err != nil {
		log.Fatalf("crbtree: parsing %v: %v\n", options.input, err)
		os.Exit(1)
	}
	fmsg := "crbtree: %v initial entries, %v readers, %v writers, " +
		"%v searches, %v mutations\n"
	log.Infof(fmsg, countentries(w.Pairs), w.Readers, w.Writers,
		len(w.Searches), len(w.Mutations))

	tree := rbt.NewRBT("crbtree", nil)
	tree.Build(w.Pairs)
	if options.validate {
		tree.Validate()
	}

	mon := monitor.NewRWMonitor("crbtree", s.Settings{
		"admission": options.admission,
	})
	r := runner.NewRunner("crbtree", tree, mon, nil)
	res := r.Run(w)
	r.Close()

	if options.validate {
		tree.Validate()
	}
	tree.Log()

	fd, err := os.Create(options.output)
	if err != nil {
		log.Fatalf("crbtree: %v\n", err)
		os.Exit(1)
	}
	workload.WriteReport(fd, &workload.Report{
		Elapsed:   res.Elapsed,
		Searches:  res.Outcomes(),
		FinalTree: res.FinalTree,
	})
	if err := fd.Close(); err != nil {
		log.Fatalf("crbtree: %v\n", err)
		os.Exit(1)
	}
	log.Infof("crbtree: report written to %v\n", options.output)
}

func countentries(pairs []rbt.KeyColor) (count int64) {
	for _, p := range pairs {
		if p.Leaf == false {
			count++
		}
	}
	return count
}
