// Package monitor implement admission control for one shared index
// instance: many concurrent readers or exactly one writer, never
// both. It is a condition-variable monitor with an explicit policy,
// not a wrapper around sync.RWMutex, because the admission rules
// are part of the contract and are configurable.
package monitor

import "fmt"
import "sync"

import s "github.com/bnclabs/gosettings"
import "github.com/bnclabs/golog"

// admission policies.
const (
	// AdmitWriters make new readers wait while a writer is waiting.
	// A steady stream of readers cannot starve writers.
	AdmitWriters = "writers"
	// AdmitReaders admit new readers whenever no writer is active,
	// even if writers are queued. Writers can starve under a steady
	// reader stream.
	AdmitReaders = "readers"
)

// RWMonitor arbitrate between reader and writer tasks sharing one
// index. Admission is not reentrant, a task holding read or write
// access shall not request it again.
type RWMonitor struct {
	mu       sync.Mutex
	canread  *sync.Cond
	canwrite *sync.Cond

	nreaders    int64 // active readers
	nwriters    int64 // active writers, 0 or 1
	readerswait int64
	writerswait int64

	// stats
	n_reads    int64
	n_writes   int64
	maxreaders int64

	// settings
	admission string
	logprefix string
}

// NewRWMonitor a new monitor instance.
func NewRWMonitor(name string, setts s.Settings) *RWMonitor {
	m := &RWMonitor{}
	m.logprefix = fmt.Sprintf("MTOR [%s]", name)
	m.canread = sync.NewCond(&m.mu)
	m.canwrite = sync.NewCond(&m.mu)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	m.readsettings(setts)

	log.Infof("%v started with %q admission ...\n", m.logprefix, m.admission)
	return m
}

// Defaultsettings for monitor instance.
//
// "admission" (string, default: "writers")
//      Either "writers" or "readers". With "writers" a new reader
//      waits while any writer is active OR waiting, with "readers"
//      a new reader waits only while a writer is active.
//
func Defaultsettings() s.Settings {
	return s.Settings{
		"admission": AdmitWriters,
	}
}

func (m *RWMonitor) readsettings(setts s.Settings) {
	m.admission = setts.String("admission")
	switch m.admission {
	case AdmitWriters, AdmitReaders:
	default:
		panic(fmt.Errorf("invalid admission settings %q", m.admission))
	}
}

// BeginRead block until read access is admitted.
func (m *RWMonitor) BeginRead() {
	m.mu.Lock()
	for m.blockreader() {
		m.readerswait++
		m.canread.Wait()
		m.readerswait--
	}
	m.nreaders++
	m.n_reads++
	if m.nreaders > m.maxreaders {
		m.maxreaders = m.nreaders
	}
	m.mu.Unlock()
}

func (m *RWMonitor) blockreader() bool {
	if m.nwriters > 0 {
		return true
	}
	return m.admission == AdmitWriters && m.writerswait > 0
}

// EndRead release read access. The writer wake fires exactly when
// the active-reader count transitions to zero.
func (m *RWMonitor) EndRead() {
	m.mu.Lock()
	if m.nreaders == 0 {
		m.mu.Unlock()
		panic(fmt.Errorf("%v EndRead without BeginRead", m.logprefix))
	}
	m.nreaders--
	if m.nreaders == 0 && m.writerswait > 0 {
		m.canwrite.Signal()
	}
	m.mu.Unlock()
}

// BeginWrite block until exclusive write access is admitted.
func (m *RWMonitor) BeginWrite() {
	m.mu.Lock()
	for m.nwriters > 0 || m.nreaders > 0 {
		m.writerswait++
		m.canwrite.Wait()
		m.writerswait--
	}
	m.nwriters = 1
	m.n_writes++
	m.mu.Unlock()
}

// EndWrite release write access. Wake order follows the admission
// policy: with writer-preference the next waiting writer goes first
// and readers are released only once no writer is queued, with
// reader-preference all waiting readers go first.
func (m *RWMonitor) EndWrite() {
	m.mu.Lock()
	if m.nwriters != 1 {
		m.mu.Unlock()
		panic(fmt.Errorf("%v EndWrite without BeginWrite", m.logprefix))
	}
	m.nwriters = 0
	switch {
	case m.admission == AdmitWriters && m.writerswait > 0:
		m.canwrite.Signal()
	case m.readerswait > 0:
		m.canread.Broadcast()
	case m.writerswait > 0:
		m.canwrite.Signal()
	}
	m.mu.Unlock()
}

// Stats return a consistent snapshot of admission counters:
// "nreaders", "nwriters", "readerswait", "writerswait", "n_reads",
// "n_writes", "maxreaders".
func (m *RWMonitor) Stats() map[string]interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return map[string]interface{}{
		"nreaders":    m.nreaders,
		"nwriters":    m.nwriters,
		"readerswait": m.readerswait,
		"writerswait": m.writerswait,
		"n_reads":     m.n_reads,
		"n_writes":    m.n_writes,
		"maxreaders":  m.maxreaders,
	}
}
