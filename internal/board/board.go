// Package board is the interaction controller of the drawing surface:
// it binds pointer input to stroke construction and the history store,
// and exposes prop-getter bindings any rendering layer can attach.
package board

import (
	"image"
	"sync"

	"inkboard/internal/geom"
	"inkboard/internal/logger"
	"inkboard/internal/render"
	"inkboard/internal/state"
)

// Board owns one drawing surface. Two states: idle and drawing. All
// pointer and animation bookkeeping lives on the instance, so multiple
// boards never interfere with one another.
type Board struct {
	opts       Options
	log        *logger.Logger
	controlled bool
	pipeline   *render.Pipeline
	sched      *render.Scheduler

	mu        sync.Mutex
	hist      state.History
	undo      []state.Record
	drawing   bool
	pointerID int
	current   *state.Stroke
	last      geom.Point
	color     string
	width     float32
	tool      state.ToolType
	metrics   geom.Metrics

	frameSink  func(*image.RGBA)
	strokeHook func(state.Stroke)
	clearHook  func()
}

// New builds a Board and starts its render loop. Call Close when done.
func New(opts Options) *Board {
	opts.applyDefaults()

	b := &Board{
		opts:       opts,
		log:        opts.Logger.WithComponent("board"),
		controlled: opts.History != nil,
		color:      opts.DefaultColor,
		tool:       opts.DefaultToolType,
		metrics:    geom.SurfaceMetrics(opts.Width, opts.Height),
	}
	b.width = geom.Clamp(opts.DefaultStrokeWidth, opts.MinWidth, opts.MaxWidth)

	switch {
	case b.controlled:
		b.hist = *opts.History
	case opts.DefaultHistory != nil:
		b.hist = *opts.DefaultHistory
	}
	if b.hist.BackgroundColor == "" {
		b.hist.BackgroundColor = opts.BackgroundColor
	}
	if b.hist.BackgroundImage == "" {
		b.hist.BackgroundImage = opts.BackgroundImage
	}

	b.pipeline = render.NewPipeline(opts.Width, opts.Height, opts.Logger)
	b.sched = render.NewScheduler(b.pipeline, b.emitFrame)
	b.invalidate(b.snapshot())
	return b
}

// Close stops the board's render loop.
func (b *Board) Close() {
	b.sched.Close()
}

// SetFrameSink registers an additional consumer of rendered frames,
// typically the widget that blits them to the screen.
func (b *Board) SetFrameSink(fn func(*image.RGBA)) {
	b.mu.Lock()
	b.frameSink = fn
	b.mu.Unlock()
	b.invalidate(b.snapshot())
}

// SetStrokeHook registers a callback for every locally committed
// stroke. Used by collaboration sessions to broadcast edits.
func (b *Board) SetStrokeHook(fn func(state.Stroke)) {
	b.mu.Lock()
	b.strokeHook = fn
	b.mu.Unlock()
}

// SetClearHook registers a callback for every local clear.
func (b *Board) SetClearHook(fn func()) {
	b.mu.Lock()
	b.clearHook = fn
	b.mu.Unlock()
}

// AttachCanvas updates the surface geometry used to translate pointer
// coordinates, e.g. after the host layer resizes or moves the canvas.
func (b *Board) AttachCanvas(m geom.Metrics) {
	b.mu.Lock()
	b.metrics = m
	b.mu.Unlock()
}

// History returns the current committed history value.
func (b *Board) History() state.History {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hist
}

// SetHistory replaces the history wholesale: the controlled owner's
// push path, also used when loading a saved board. The undo stack is
// reset since its records refer to the previous timeline.
func (b *Board) SetHistory(h state.History) {
	b.mu.Lock()
	b.hist = h
	b.undo = nil
	f := b.frameLocked()
	b.mu.Unlock()
	b.invalidate(f)
}

// UndoDepth reports how many records sit on the undo stack.
func (b *Board) UndoDepth() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.undo)
}

// PointerDown transitions idle → drawing: captures the pointer, drops
// any redo future, and begins a stroke with the current style.
func (b *Board) PointerDown(ev geom.PointerEvent) {
	b.mu.Lock()
	if b.blockedLocked() || b.drawing {
		b.mu.Unlock()
		return
	}
	if len(b.undo) > 0 {
		b.invalidateRedo()
	}
	p := geom.Sample(ev, b.metrics)
	s := state.BeginStroke(p, b.color, b.width, b.tool)
	b.current = &s
	b.last = p
	b.drawing = true
	b.pointerID = ev.PointerID
	f := b.frameLocked()
	onBegin := b.opts.OnBegin
	b.mu.Unlock()

	b.invalidate(f)
	if onBegin != nil {
		onBegin()
	}
}

// PointerMove extends the in-progress stroke. Events from pointers
// other than the captured one are ignored.
func (b *Board) PointerMove(ev geom.PointerEvent) {
	b.mu.Lock()
	if b.blockedLocked() || !b.drawing || ev.PointerID != b.pointerID {
		b.mu.Unlock()
		return
	}
	p := geom.Sample(ev, b.metrics)
	if p.X == b.last.X && p.Y == b.last.Y {
		b.mu.Unlock()
		return
	}
	next := state.ExtendStroke(*b.current, p)
	b.current = &next
	b.last = p
	f := b.frameLocked()
	b.mu.Unlock()

	b.invalidate(f)
}

// PointerUp commits the in-progress stroke into the history and
// releases the pointer.
func (b *Board) PointerUp(ev geom.PointerEvent) {
	b.mu.Lock()
	if !b.drawing || ev.PointerID != b.pointerID {
		b.mu.Unlock()
		return
	}
	s := state.CommitStroke(*b.current)
	b.current = nil
	b.drawing = false
	next := state.Append(b.hist, s)
	onChange := b.commitLocked(next)
	f := b.frameLocked()
	onEnd := b.opts.OnEnd
	hook := b.strokeHook
	b.mu.Unlock()

	b.invalidate(f)
	if onChange != nil {
		onChange()
	}
	if hook != nil {
		hook(s)
	}
	if onEnd != nil {
		onEnd()
	}
}

// PointerCancel discards the in-progress stroke without committing it.
func (b *Board) PointerCancel(ev geom.PointerEvent) {
	b.mu.Lock()
	if !b.drawing || ev.PointerID != b.pointerID {
		b.mu.Unlock()
		return
	}
	b.current = nil
	b.drawing = false
	f := b.frameLocked()
	b.mu.Unlock()

	b.invalidate(f)
}

// PointerLeave is treated as a cancellation: with capture in effect a
// leave mid-gesture means the host lost the pointer.
func (b *Board) PointerLeave(ev geom.PointerEvent) {
	b.PointerCancel(ev)
}

// Undo removes the most recent stroke, or restores a cleared batch in
// one step when the canvas is empty. No-op otherwise, and while a
// stroke is in flight.
func (b *Board) Undo() {
	b.mu.Lock()
	if b.blockedLocked() || b.drawing {
		b.mu.Unlock()
		return
	}
	next, undo := state.Undo(b.hist, b.undo)
	if len(next.Strokes) == len(b.hist.Strokes) {
		b.mu.Unlock()
		return
	}
	b.undo = undo
	onChange := b.commitLocked(next)
	f := b.frameLocked()
	b.mu.Unlock()

	b.invalidate(f)
	if onChange != nil {
		onChange()
	}
}

// Redo reinstates the top record of the undo stack. No-op when empty
// and while a stroke is in flight.
func (b *Board) Redo() {
	b.mu.Lock()
	if b.blockedLocked() || b.drawing {
		b.mu.Unlock()
		return
	}
	next, undo := state.Redo(b.hist, b.undo)
	if len(next.Strokes) == len(b.hist.Strokes) {
		b.mu.Unlock()
		return
	}
	b.undo = undo
	onChange := b.commitLocked(next)
	f := b.frameLocked()
	b.mu.Unlock()

	b.invalidate(f)
	if onChange != nil {
		onChange()
	}
}

// Clear moves every stroke onto the undo stack as one batch. A single
// Undo afterwards restores the whole canvas. No-op while a stroke is
// in flight, so the pending stroke cannot commit onto a rewritten
// history.
func (b *Board) Clear() {
	b.mu.Lock()
	if b.blockedLocked() || b.drawing {
		b.mu.Unlock()
		return
	}
	next, undo := state.Clear(b.hist, b.undo)
	if len(next.Strokes) == len(b.hist.Strokes) {
		b.mu.Unlock()
		return
	}
	b.undo = undo
	onChange := b.commitLocked(next)
	f := b.frameLocked()
	onClear := b.opts.OnClear
	hook := b.clearHook
	b.mu.Unlock()

	b.invalidate(f)
	if onChange != nil {
		onChange()
	}
	if hook != nil {
		hook()
	}
	if onClear != nil {
		onClear()
	}
}

// SetColor selects the paint color for subsequent strokes.
func (b *Board) SetColor(c string) {
	b.mu.Lock()
	if !b.blockedLocked() {
		b.color = c
	}
	b.mu.Unlock()
}

// SetStrokeWidth selects the width for subsequent strokes, clamped to
// the configured [MinWidth, MaxWidth] range.
func (b *Board) SetStrokeWidth(w float32) {
	b.mu.Lock()
	if !b.blockedLocked() {
		b.width = geom.Clamp(w, b.opts.MinWidth, b.opts.MaxWidth)
	}
	b.mu.Unlock()
}

// StrokeWidth returns the currently selected stroke width.
func (b *Board) StrokeWidth() float32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width
}

// SetToolType switches between brush and eraser.
func (b *Board) SetToolType(t state.ToolType) {
	b.mu.Lock()
	if !b.blockedLocked() && t.Valid() {
		b.tool = t
	}
	b.mu.Unlock()
}

// ToolType returns the currently selected tool.
func (b *Board) ToolType() state.ToolType {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tool
}

// Color returns the currently selected color.
func (b *Board) Color() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.color
}

// SetBackgroundColor replaces the history's background color.
func (b *Board) SetBackgroundColor(c string) {
	b.mu.Lock()
	if b.blockedLocked() {
		b.mu.Unlock()
		return
	}
	onChange := b.commitLocked(state.WithBackgroundColor(b.hist, c))
	f := b.frameLocked()
	b.mu.Unlock()

	b.invalidate(f)
	if onChange != nil {
		onChange()
	}
}

// SetBackgroundImage replaces the history's background image reference
// (a file path or data URL).
func (b *Board) SetBackgroundImage(ref string) {
	b.mu.Lock()
	if b.blockedLocked() {
		b.mu.Unlock()
		return
	}
	onChange := b.commitLocked(state.WithBackgroundImage(b.hist, ref))
	f := b.frameLocked()
	b.mu.Unlock()

	b.invalidate(f)
	if onChange != nil {
		onChange()
	}
}

// ToDataURL renders the current frame synchronously and serializes it
// as a base64 data URL, invoking OnSave with the result. Returns ""
// for a zero-size surface.
func (b *Board) ToDataURL(mimeType string, quality float64) string {
	b.mu.Lock()
	if b.detachedLocked() {
		b.mu.Unlock()
		return ""
	}
	f := b.frameLocked()
	onSave := b.opts.OnSave
	b.mu.Unlock()

	img := b.pipeline.Render(f)
	url := render.DataURL(img, mimeType, quality)
	if url != "" && onSave != nil {
		onSave(url)
	}
	return url
}

// ApplyRemote folds a collaboration op into the board. Duplicate
// stroke IDs are ignored. A remote clear is not locally undoable; it
// also drops the local undo stack since the shared timeline moved on.
func (b *Board) ApplyRemote(op state.Op) {
	b.mu.Lock()
	var next state.History
	switch op.Type {
	case state.OpInsertStroke:
		if op.Stroke == nil || b.containsLocked(op.Stroke.ID) {
			b.mu.Unlock()
			return
		}
		next = state.Append(b.hist, *op.Stroke)
	case state.OpClear:
		if len(b.hist.Strokes) == 0 {
			b.mu.Unlock()
			return
		}
		next = b.hist
		next.Strokes = nil
		b.undo = nil
	default:
		b.mu.Unlock()
		b.log.Warn("ignoring unknown op type " + string(op.Type))
		return
	}
	onChange := b.commitLocked(next)
	f := b.frameLocked()
	b.mu.Unlock()

	b.invalidate(f)
	if onChange != nil {
		onChange()
	}
}

// Flush renders any pending frame synchronously. Used by tests and by
// shutdown paths that want the final state painted.
func (b *Board) Flush() {
	b.sched.Flush()
}

// invalidateRedo is the explicit begin-new-stroke → drop-redo-future
// transition. Caller holds b.mu.
func (b *Board) invalidateRedo() {
	b.undo = nil
}

func (b *Board) blockedLocked() bool {
	return b.opts.Disabled || b.opts.ReadOnly || b.detachedLocked()
}

func (b *Board) detachedLocked() bool {
	return b.opts.Width <= 0 || b.opts.Height <= 0
}

func (b *Board) containsLocked(id string) bool {
	for _, s := range b.hist.Strokes {
		if s.ID == id {
			return true
		}
	}
	return false
}

// commitLocked adopts next locally, or hands it to the controlled
// owner — never both, so the two copies cannot diverge. Returns the
// notification to run after the lock is released.
func (b *Board) commitLocked(next state.History) func() {
	if !b.controlled {
		b.hist = next
	}
	if onChange := b.opts.OnChange; onChange != nil {
		return func() { onChange(next) }
	}
	return nil
}

func (b *Board) frameLocked() render.Frame {
	f := render.Frame{History: b.hist}
	if b.current != nil {
		cur := *b.current
		f.Current = &cur
	}
	return f
}

func (b *Board) snapshot() render.Frame {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frameLocked()
}

func (b *Board) invalidate(f render.Frame) {
	b.sched.Invalidate(f)
}

func (b *Board) emitFrame(img *image.RGBA) {
	b.mu.Lock()
	sink := b.frameSink
	b.mu.Unlock()
	if sink != nil {
		sink(img)
	}
	if b.opts.OnFrame != nil {
		b.opts.OnFrame(img)
	}
}
