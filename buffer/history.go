package buffer

// History keeps bounded undo/redo stacks of document snapshots.
//
// Both stacks are most-recent-last. A snapshot lives on at most one stack, so
// the stacks are disjoint.
type History struct {
	undo  []Snapshot
	redo  []Snapshot
	limit int
}

// NewHistory returns a history bounded to limit undo entries. A non-positive
// limit disables recording.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// RecordBeforeEdit pushes cur onto the undo stack and clears the redo stack.
// It must be called immediately before a text mutation.
func (h *History) RecordBeforeEdit(cur Snapshot) {
	if h.limit <= 0 {
		return
	}
	h.undo = pushBounded(h.undo, cur, h.limit)
	h.redo = nil
}

// Undo pops the most recent undo snapshot and pushes cur onto the redo stack.
// It returns false, and changes nothing, when there is nothing to undo.
func (h *History) Undo(cur Snapshot) (Snapshot, bool) {
	if len(h.undo) == 0 {
		return Snapshot{}, false
	}
	i := len(h.undo) - 1
	prev := h.undo[i]
	h.undo = h.undo[:i]
	h.redo = append(h.redo, cur)
	return prev, true
}

// Redo is the mirror of Undo.
func (h *History) Redo(cur Snapshot) (Snapshot, bool) {
	if len(h.redo) == 0 {
		return Snapshot{}, false
	}
	i := len(h.redo) - 1
	next := h.redo[i]
	h.redo = h.redo[:i]
	h.undo = pushBounded(h.undo, cur, h.limit)
	return next, true
}

// Reset drops both stacks.
func (h *History) Reset() {
	h.undo = nil
	h.redo = nil
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }

func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Len returns the depths of the undo and redo stacks.
func (h *History) Len() (undo, redo int) { return len(h.undo), len(h.redo) }

func pushBounded(stack []Snapshot, s Snapshot, limit int) []Snapshot {
	stack = append(stack, s)
	if limit > 0 && len(stack) > limit {
		stack = append([]Snapshot(nil), stack[len(stack)-limit:]...)
	}
	return stack
}

// Undo restores the previous snapshot. It reports whether anything changed.
func (b *Buffer) Undo() bool {
	prev, ok := b.hist.Undo(b.Document())
	if !ok {
		return false
	}
	b.restore(prev)
	return true
}

// Redo re-applies the most recently undone snapshot.
func (b *Buffer) Redo() bool {
	next, ok := b.hist.Redo(b.Document())
	if !ok {
		return false
	}
	b.restore(next)
	return true
}
