package runner

import "sync"
import "time"

import "github.com/lorenzoz23/concurrent-rbtree/api"

// Results aggregate the outcome of one orchestrated run. AddSearch
// is safe for concurrent reader tasks, the remaining fields are
// written once after every task has finished.
type Results struct {
	mu        sync.Mutex
	found     map[int64]bool
	taskorder []int64
	outcomes  []api.SearchOutcome

	// written after all tasks complete, no further concurrency.
	FinalTree string
	Elapsed   time.Duration
}

func newresults(nsearches int) *Results {
	return &Results{
		found:     make(map[int64]bool),
		taskorder: make([]int64, 0, nsearches),
		outcomes:  make([]api.SearchOutcome, nsearches),
	}
}

// AddSearch record the outcome of one search task: idx is the
// position of the search in the input schedule, task the executing
// task's identifier. Task order is recorded in completion order.
func (r *Results) AddSearch(idx int, key int64, found bool, task int64) {
	r.mu.Lock()
	if found {
		r.found[key] = true
	}
	r.taskorder = append(r.taskorder, task)
	r.outcomes[idx] = api.SearchOutcome{Key: key, Found: found, Task: task}
	r.mu.Unlock()
}

// Found return true if any search for key returned found.
func (r *Results) Found(key int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.found[key]
}

// TaskOrder return executing task identifiers in the order their
// searches completed.
func (r *Results) TaskOrder() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	order := make([]int64, len(r.taskorder))
	copy(order, r.taskorder)
	return order
}

// Outcomes return per-search outcomes indexed by the search's
// position in the input schedule.
func (r *Results) Outcomes() []api.SearchOutcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	outcomes := make([]api.SearchOutcome, len(r.outcomes))
	copy(outcomes, r.outcomes)
	return outcomes
}
