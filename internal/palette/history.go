package palette

// History is a per-template undo log of candidate snapshots.
// The zero value is ready to use. It is not safe for concurrent use.
type History struct {
	stacks map[Template][]Candidate
}

// Push records c as the state to return to on the next Undo of its template.
func (h *History) Push(c Candidate) {
	if h.stacks == nil {
		h.stacks = make(map[Template][]Candidate)
	}
	h.stacks[c.Template] = append(h.stacks[c.Template], c)
}

// Undo pops the most recent snapshot for t. ok is false when none exists.
func (h *History) Undo(t Template) (c Candidate, ok bool) {
	stack := h.stacks[t]
	if len(stack) == 0 {
		return Candidate{}, false
	}
	c = stack[len(stack)-1]
	h.stacks[t] = stack[:len(stack)-1]
	return c, true
}

// Len returns the number of snapshots held for t.
func (h *History) Len(t Template) int {
	return len(h.stacks[t])
}

// Reset discards every snapshot.
func (h *History) Reset() {
	clear(h.stacks)
}
