package sequence

import "sort"

// SkipSet holds numbers the sequencer must never emit. It is read-only
// once a run starts.
type SkipSet map[int]struct{}

// NewSkipSet builds a set from nums. Duplicates collapse.
func NewSkipSet(nums ...int) SkipSet {
	s := make(SkipSet, len(nums))
	for _, n := range nums {
		s[n] = struct{}{}
	}
	return s
}

// Contains reports whether n is skipped. A nil set skips nothing.
func (s SkipSet) Contains(n int) bool {
	_, ok := s[n]
	return ok
}

// Sorted returns the members in ascending order, for display.
func (s SkipSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
