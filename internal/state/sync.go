package state

import "sync/atomic"

// OpType names a collaborative edit.
type OpType string

const (
	OpInsertStroke OpType = "insert_stroke"
	OpClear        OpType = "clear"
)

// Op is one Lamport-stamped edit exchanged between boards. Site
// identifies the originating session so relays can drop echoes.
type Op struct {
	Type    OpType  `json:"type"`
	Stroke  *Stroke `json:"stroke,omitempty"`
	Owner   string  `json:"owner,omitempty"`
	Lamport uint64  `json:"lamport"`
	Site    string  `json:"site"`
}

// Clock is a logical clock for ordering collaborative ops.
type Clock struct {
	counter atomic.Uint64
}

// Tick advances the clock and returns the new value.
func (c *Clock) Tick() uint64 {
	return c.counter.Add(1)
}

// Observe folds a remote timestamp into the clock so later local ops
// sort after everything this session has seen.
func (c *Clock) Observe(remote uint64) {
	for {
		cur := c.counter.Load()
		if remote <= cur || c.counter.CompareAndSwap(cur, remote) {
			return
		}
	}
}

// Now returns the current clock value without advancing it.
func (c *Clock) Now() uint64 {
	return c.counter.Load()
}
