package palette

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/huebridge/internal/colour"
)

// Session is an in-memory workbench: a base colour, the candidates generated
// from it, the current selection and an undo history.
// A Session must not be shared between goroutines without external locking.
type Session struct {
	base       colour.RGBA
	candidates []Candidate
	selected   Template
	hasSelect  bool
	mode       colour.VisionMode
	history    History
	logger     hclog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger used for debug output.
func WithLogger(logger hclog.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithBase sets the starting base colour instead of the default preset.
func WithBase(base colour.RGBA) SessionOption {
	return func(s *Session) {
		s.base = base
	}
}

// NewSession creates a session and generates candidates for its base colour.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		base:   DefaultBase(),
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.regenerate()
	return s
}

// Base returns the current base colour.
func (s *Session) Base() colour.RGBA {
	return s.base
}

// SetBase replaces the base colour and regenerates every candidate.
// Undo history is discarded since it refers to the previous base.
func (s *Session) SetBase(base colour.RGBA) {
	s.base = base
	s.regenerate()
}

// Candidates returns a copy of the current candidates in generation order.
func (s *Session) Candidates() []Candidate {
	return append([]Candidate(nil), s.candidates...)
}

// Candidate returns the current candidate for t.
func (s *Session) Candidate(t Template) (Candidate, bool) {
	i := s.index(t)
	if i < 0 {
		return Candidate{}, false
	}
	return s.candidates[i], true
}

// Select makes t the working candidate and resets the vision mode to normal.
func (s *Session) Select(t Template) error {
	if s.index(t) < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownTemplate, t)
	}
	s.selected = t
	s.hasSelect = true
	s.mode = colour.VisionNormal
	return nil
}

// Selected returns the working candidate, if any.
func (s *Session) Selected() (Candidate, bool) {
	if !s.hasSelect {
		return Candidate{}, false
	}
	return s.Candidate(s.selected)
}

// SetVisionMode sets the mode used by SelectedEvaluation.
func (s *Session) SetVisionMode(mode colour.VisionMode) {
	s.mode = mode
}

// VisionMode returns the current vision mode.
func (s *Session) VisionMode() colour.VisionMode {
	return s.mode
}

// SelectedEvaluation evaluates the working candidate under the current mode.
func (s *Session) SelectedEvaluation() (Evaluation, bool) {
	c, ok := s.Selected()
	if !ok {
		return Evaluation{}, false
	}
	return Evaluate(c, s.mode), true
}

// Ready reports whether the working candidate passes every check under every
// vision mode.
func (s *Session) Ready() bool {
	c, ok := s.Selected()
	return ok && InclusivePass(c)
}

// Apply snapshots the working candidate, then replaces it with the fixed one.
func (s *Session) Apply(fix Fix) (Candidate, error) {
	if !s.hasSelect {
		return Candidate{}, fmt.Errorf("apply %s: no palette selected", fix)
	}
	i := s.index(s.selected)
	if i < 0 {
		return Candidate{}, fmt.Errorf("apply %s: %w: %s", fix, ErrUnknownTemplate, s.selected)
	}

	before := s.candidates[i]
	s.history.Push(before)
	after := fix.Apply(before)
	s.candidates[i] = after

	s.logger.Debug("applied fix",
		"fix", fix.String(),
		"template", after.Template.String(),
		"changed", after != before,
		"ready", InclusivePass(after),
		"undo_depth", s.history.Len(after.Template))
	return after, nil
}

// Undo restores the working candidate to its last snapshot. It returns false
// when there is nothing to undo.
func (s *Session) Undo() (Candidate, bool) {
	if !s.hasSelect {
		return Candidate{}, false
	}
	i := s.index(s.selected)
	if i < 0 {
		return Candidate{}, false
	}

	prev, ok := s.history.Undo(s.selected)
	if !ok {
		return s.candidates[i], false
	}
	s.candidates[i] = prev
	s.logger.Debug("undo", "template", prev.Template.String(), "undo_depth", s.history.Len(prev.Template))
	return prev, true
}

// CanUndo reports whether the working candidate has a snapshot to restore.
func (s *Session) CanUndo() bool {
	return s.hasSelect && s.history.Len(s.selected) > 0
}

// Regenerate rebuilds every candidate from the current base, discarding
// applied fixes and undo history.
func (s *Session) Regenerate() {
	s.regenerate()
}

// Restart returns to the default preset with no selection.
func (s *Session) Restart() {
	s.hasSelect = false
	s.mode = colour.VisionNormal
	s.base = DefaultBase()
	s.regenerate()
}

func (s *Session) regenerate() {
	s.candidates = Generate(s.base)
	s.history.Reset()
	s.logger.Debug("generated candidates", "base", s.base.Hex(), "count", len(s.candidates))

	// A selection survives regeneration when its template still exists.
	if s.hasSelect && s.index(s.selected) < 0 {
		s.selected = s.candidates[0].Template
	}
}

func (s *Session) index(t Template) int {
	for i, c := range s.candidates {
		if c.Template == t {
			return i
		}
	}
	return -1
}
