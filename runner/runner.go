// Package runner orchestrate one run of concurrent search tasks and
// strictly serialized mutation tasks over a shared index, guarded by
// an admission monitor. Mutations flow through a single writer
// routine, one driven to completion before the next is issued, in
// schedule order.
package runner

import "fmt"
import "sync"
import "time"

import s "github.com/bnclabs/gosettings"
import "github.com/bnclabs/golog"

import "github.com/lorenzoz23/concurrent-rbtree/api"
import "github.com/lorenzoz23/concurrent-rbtree/lib"
import "github.com/lorenzoz23/concurrent-rbtree/workload"

const (
	cmdRunnerInsert byte = iota + 1
	cmdRunnerDelete
	cmdRunnerClose
)

// Runner drive the tasks of one workload against a shared index.
type Runner struct {
	name  string
	tree  api.Index
	mon   api.RWMonitor
	reqch chan []interface{}
	finch chan struct{}

	// settings
	setts     s.Settings
	logprefix string
}

// NewRunner a new orchestrator around index and monitor, spawns the
// writer routine.
func NewRunner(name string, tree api.Index, mon api.RWMonitor, setts s.Settings) *Runner {
	r := &Runner{name: name, tree: tree, mon: mon}
	r.logprefix = fmt.Sprintf("RUNR [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	r.setts = setts
	r.reqch = make(chan []interface{}, setts.Int64("writer.chansize"))
	r.finch = make(chan struct{})

	go r.runwriter()
	log.Infof("%v started ...\n", r.logprefix)
	return r
}

// Defaultsettings for runner instance.
//
// "writer.chansize" (int64, default: 64)
//      Buffered channel's size for the writer routine. Mutations
//      are driven one at a time, the buffer only decouples posting
//      from scheduling.
//
func Defaultsettings() s.Settings {
	return s.Settings{
		"writer.chansize": int64(64),
	}
}

// Run the workload to completion: search tasks are launched
// together, one task per scheduled search up to the reader task
// count, and awaited. Then each mutation is executed under write
// admission, strictly one at a time in schedule order. After the
// last writer the final tree is serialized unguarded.
func (r *Runner) Run(w *workload.Workload) *Results {
	start := time.Now()

	searches := w.Searches
	if int64(len(searches)) > w.Readers {
		searches = searches[:w.Readers]
	}
	res := newresults(len(searches))

	var wg sync.WaitGroup
	for i, op := range searches {
		wg.Add(1)
		go func(idx int, key, task int64) {
			defer wg.Done()
			r.mon.BeginRead()
			found := r.tree.Search(key)
			// append while still admitted, the tree state the
			// outcome describes is stable for this window.
			res.AddSearch(idx, key, found, task)
			r.mon.EndRead()
		}(i, op.Key, int64(i))
	}
	wg.Wait()

	mutations := w.Mutations
	if int64(len(mutations)) > w.Writers {
		mutations = mutations[:w.Writers]
	}
	task := int64(len(searches))
	for _, op := range mutations {
		cmd := cmdRunnerInsert
		if op.Kind == workload.OpDelete {
			cmd = cmdRunnerDelete
		}
		respch := make(chan []interface{}, 1)
		msg := []interface{}{cmd, op.Key, respch}
		resp, err := lib.FailsafeRequest(r.reqch, respch, msg, r.finch)
		if err != nil {
			log.Errorf("%v %v\n", r.logprefix, api.ErrorClosed)
			break
		}
		if err := lib.ResponseError(nil, resp, 0); err != nil {
			fmsg := "%v task %v %v(%v): %v\n"
			log.Errorf(fmsg, r.logprefix, task, op.Kind, op.Key, err)
		}
		task++
	}

	res.FinalTree = r.tree.Serialize()
	res.Elapsed = time.Since(start)
	return res
}

// Close shut down the writer routine, the runner shall not be used
// after this call.
func (r *Runner) Close() {
	if err := lib.FailsafePost(r.reqch, []interface{}{cmdRunnerClose}, r.finch); err != nil {
		return // already closed
	}
	<-r.finch
	log.Infof("%v stopped\n", r.logprefix)
}

// single writer routine, every mutation acquires write admission
// for exactly the duration of its operation.
func (r *Runner) runwriter() {
	for msg := range r.reqch {
		cmd := msg[0].(byte)
		if cmd == cmdRunnerClose {
			close(r.finch)
			return
		}
		key, respch := msg[1].(int64), msg[2].(chan []interface{})
		var err error
		r.mon.BeginWrite()
		switch cmd {
		case cmdRunnerInsert:
			r.tree.Insert(key)
		case cmdRunnerDelete:
			err = r.tree.Delete(key)
		default:
			panic(fmt.Errorf("%v unknown command %v", r.logprefix, cmd))
		}
		r.mon.EndWrite()
		respch <- []interface{}{err}
	}
}
