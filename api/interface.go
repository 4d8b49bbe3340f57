package api

// Index defines the minimal interface expected out of an ordered
// in-memory index instance. Implementations are not thread-safe by
// themselves, mutual exclusion between concurrent accessors is the
// caller's responsibility, typically via an RWMonitor.
type Index interface {
	// ID return index name.
	ID() string

	// Count return number of entries in the index.
	Count() int64

	// Insert a key into the index. Inserting a key that is already
	// present is a no-op.
	Insert(key int64)

	// Delete a key from the index, returns ErrorKeyMissing if key
	// is not present. Deleting from an empty index is a no-op.
	Delete(key int64) error

	// Search return true if key is present in the index.
	Search(key int64) bool

	// Serialize the index as pre-order list of {key,color} tokens,
	// with marker tokens for absent children.
	Serialize() string

	// Validate walks the entire index checking every structural
	// invariant, panics on the first breach.
	Validate()

	// Destroy this instance, index shall not be used after this call.
	Destroy()
}

// RWMonitor defines admission control over a shared index: either
// many concurrent readers or exactly one writer, never both.
type RWMonitor interface {
	// BeginRead block until read access is admitted.
	BeginRead()

	// EndRead release read access, shall be called exactly once
	// for every BeginRead.
	EndRead()

	// BeginWrite block until exclusive write access is admitted.
	BeginWrite()

	// EndWrite release write access, shall be called exactly once
	// for every BeginWrite.
	EndWrite()

	// Stats return a consistent snapshot of admission counters.
	Stats() map[string]interface{}
}

// SearchOutcome is the per-search result handed back to report
// generation: the key searched for, whether it was found, and the
// identifier of the task that executed the search.
type SearchOutcome struct {
	Key   int64
	Found bool
	Task  int64
}
