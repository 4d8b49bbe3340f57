package workload

import "fmt"
import "io"
import "time"

import "github.com/lorenzoz23/concurrent-rbtree/api"

// Report carry everything the rendered output needs: wall time of
// the run, per-search outcomes in schedule order, and the final
// serialized tree.
type Report struct {
	Elapsed   time.Duration
	Searches  []api.SearchOutcome
	FinalTree string
}

// WriteReport render the report on w.
func WriteReport(w io.Writer, rep *Report) {
	fmt.Fprintf(w, "Execution time:\n%v seconds\n\n", rep.Elapsed.Seconds())
	fmt.Fprintf(w, "Search output:\n")
	for _, so := range rep.Searches {
		fmt.Fprintf(w, "search(%d)->%v, performed by task: %d\n",
			so.Key, so.Found, so.Task)
	}
	fmt.Fprintf(w, "\nFinal Red-Black Tree:\n%s\n", rep.FinalTree)
}
