package sequence

import "fmt"

// Sequencer hands out index tokens for one run. The running counter starts
// at 1 and only advances on numeric positions, so numbers strictly increase
// and never repeat within a run.
type Sequencer struct {
	mode StartMode
	skip SkipSet
	next int
}

// New returns a Sequencer positioned before the first file.
func New(mode StartMode, skip SkipSet) *Sequencer {
	return &Sequencer{mode: mode, skip: skip, next: 1}
}

// Mode returns the configured start mode.
func (s *Sequencer) Mode() StartMode { return s.mode }

// Next returns the counter value the next numeric position will start from,
// before skips are applied.
func (s *Sequencer) Next() int { return s.next }

// Token returns the token for the file at zero-based position pos and
// advances the counter when a number is consumed. Special positions ignore
// the skip set and leave the counter untouched.
func (s *Sequencer) Token(pos int) string {
	if prefix := s.mode.prefix(); pos >= 0 && pos < len(prefix) {
		return prefix[pos]
	}
	n := s.next
	for s.skip.Contains(n) {
		n++
	}
	s.next = n + 1
	return fmt.Sprintf("%02d", n)
}
