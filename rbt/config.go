package rbt

import "fmt"
import "unsafe"

import s "github.com/bnclabs/gosettings"
import sigar "github.com/cloudfoundry/gosigar"

// Defaultsettings for rbt instance.
//
// "maxentries" (int64, default: computed),
//      Maximum number of entries allowed into the index. Default
//      is derived from free system memory over twice the per-node
//      overhead.
//
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	nodesize := uint64(unsafe.Sizeof(node{}))
	setts := s.Settings{
		"maxentries": int64(free / (nodesize * 2)),
	}
	return setts
}

func (t *RBT) readsettings(setts s.Settings) {
	t.maxentries = setts.Int64("maxentries")
	if t.maxentries <= 0 {
		panic(fmt.Errorf("maxentries settings cannot be ZERO"))
	}
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
