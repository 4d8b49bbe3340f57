package rbt

import "unsafe"

import humanize "github.com/dustin/go-humanize"
import "github.com/bnclabs/golog"

import "github.com/lorenzoz23/concurrent-rbtree/lib"

type rbtstats struct {
	n_count       int64
	n_inserts     int64
	n_deletes     int64
	n_searches    int64
	n_rotations   int64
	h_insertdepth *lib.AverageInt64
}

// Stats return a map of index statistics:
// "n_count", "n_inserts", "n_deletes", "n_searches", "n_rotations",
// "height" and the "h_insertdepth" distribution.
func (t *RBT) Stats() map[string]interface{} {
	stats := map[string]interface{}{
		"n_count":     t.n_count,
		"n_inserts":   t.n_inserts,
		"n_deletes":   t.n_deletes,
		"n_searches":  t.n_searches,
		"n_rotations": t.n_rotations,
		"height":      t.Height(),
	}
	stats["h_insertdepth"] = t.h_insertdepth.Stats()
	return stats
}

// Log index statistics via the configured logger.
func (t *RBT) Log() {
	nodemem := uint64(t.n_count) * uint64(unsafe.Sizeof(node{}))
	fmsg := "%v entries: %v, height: %v, memory: %v\n"
	log.Infof(fmsg, t.logprefix,
		humanize.Comma(t.n_count), t.Height(), humanize.Bytes(nodemem))
	fmsg = "%v inserts: %v, deletes: %v, searches: %v, rotations: %v\n"
	log.Infof(fmsg, t.logprefix,
		humanize.Comma(t.n_inserts), humanize.Comma(t.n_deletes),
		humanize.Comma(t.n_searches), humanize.Comma(t.n_rotations))
}
