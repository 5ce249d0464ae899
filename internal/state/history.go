package state

// Record is one entry on the undo stack: the strokes removed by a
// single undoable step. A plain undo removes one stroke; Clear removes
// the whole canvas in one batch and marks the record FromClear so a
// single Undo (or Redo) can restore all of it at once.
type Record struct {
	Strokes   []Stroke `json:"strokes"`
	FromClear bool     `json:"from_clear,omitempty"`
}

// Append returns a new History with s pushed onto the end of Strokes.
// Clearing the redo future on a fresh edit is the controller's contract,
// not this store's; see Board.invalidateRedo.
func Append(h History, s Stroke) History {
	strokes := make([]Stroke, len(h.Strokes), len(h.Strokes)+1)
	copy(strokes, h.Strokes)
	h.Strokes = append(strokes, s)
	return h
}

// Undo moves the most recent stroke from h onto the undo stack. On an
// empty canvas it restores a whole cleared batch if one is on top of
// the stack, and is a no-op otherwise. Inputs are returned unchanged
// (same backing arrays) when nothing happens.
func Undo(h History, undo []Record) (History, []Record) {
	if n := len(h.Strokes); n > 0 {
		last := h.Strokes[n-1]
		h.Strokes = h.Strokes[:n-1:n-1]
		next := make([]Record, len(undo), len(undo)+1)
		copy(next, undo)
		return h, append(next, Record{Strokes: []Stroke{last}})
	}
	if n := len(undo); n > 0 && undo[n-1].FromClear {
		h.Strokes = undo[n-1].Strokes
		return h, undo[:n-1:n-1]
	}
	return h, undo
}

// Redo pops the top record and appends its strokes back to h. A no-op
// when the stack is empty.
func Redo(h History, undo []Record) (History, []Record) {
	n := len(undo)
	if n == 0 {
		return h, undo
	}
	top := undo[n-1]
	strokes := make([]Stroke, len(h.Strokes), len(h.Strokes)+len(top.Strokes))
	copy(strokes, h.Strokes)
	h.Strokes = append(strokes, top.Strokes...)
	return h, undo[:n-1:n-1]
}

// Clear moves every stroke into a single FromClear record, preserving
// order, and empties the canvas. A no-op when there is nothing to clear.
func Clear(h History, undo []Record) (History, []Record) {
	if len(h.Strokes) == 0 {
		return h, undo
	}
	batch := make([]Stroke, len(h.Strokes))
	copy(batch, h.Strokes)
	next := make([]Record, len(undo), len(undo)+1)
	copy(next, undo)
	h.Strokes = nil
	return h, append(next, Record{Strokes: batch, FromClear: true})
}

// WithBackgroundColor returns h with the background color replaced.
func WithBackgroundColor(h History, color string) History {
	h.BackgroundColor = color
	return h
}

// WithBackgroundImage returns h with the background image replaced.
func WithBackgroundImage(h History, ref string) History {
	h.BackgroundImage = ref
	return h
}
