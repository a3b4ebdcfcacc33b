package naming

import (
	"errors"
	"fmt"
)

// ErrDuplicateTarget is returned by [ClaimSet.Claim] when a second source
// asks for a target that is already owned within the run.
var ErrDuplicateTarget = errors.New("target name already claimed in this run")

// ClaimSet records which source owns each target name during one run. It
// never invents an alternative name; a duplicate claim is an error so that
// an existing rename result is not overwritten.
//
// The sequencer already hands out distinct tokens, so within a run Claim
// only fails if that invariant breaks. A run is sequential and the set is
// not safe for concurrent use.
type ClaimSet struct {
	owners map[string]string // target name → source name that owns it
}

// NewClaimSet creates a ready-to-use set.
func NewClaimSet() *ClaimSet {
	return &ClaimSet{owners: make(map[string]string)}
}

// Claim registers target for source. Claiming the same pair twice is a no-op.
func (c *ClaimSet) Claim(source, target string) error {
	owner, exists := c.owners[target]
	if exists && owner != source {
		return fmt.Errorf("%w: %s (owned by %s)", ErrDuplicateTarget, target, owner)
	}
	c.owners[target] = source
	return nil
}

// Len returns the number of claimed targets.
func (c *ClaimSet) Len() int {
	return len(c.owners)
}
