// Package sequence generates the index tokens embedded in renamed file names.
//
// A [Sequencer] maps the zero-based position of a file in the sorted batch to
// a token string. The first positions may be reserved for special tokens
// depending on the [StartMode]; every other position draws the next number
// from a running counter that skips values in the caller's [SkipSet].
//
//	Mode             pos 0   pos 1   pos 2   pos >= N
//	Default          01      02      03      ...
//	ZeroStart        0       01      02      ...
//	DoubleZeroStart  _00     0       01      ...
//	ExtendedStart    __X     _00     0       01 ...
//
// A Sequencer is owned by a single run and is not safe for concurrent use.
package sequence
