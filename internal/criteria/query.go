package criteria

import (
	"fmt"

	"github.com/corvusworks/seedscan/internal/catalog"
)

// MaxDepth is the deepest dungeon level a seed catalog records.
const MaxDepth = 26

// Query is a complete compiled search: the global bounds, the criteria
// list, and how many distinct matching seeds to find before stopping.
type Query struct {
	SeedMin uint32
	SeedMax uint32

	DepthMin uint8
	DepthMax uint8

	Criteria []*Criterion

	// MatchTarget is the number of matching seeds to report before the
	// search stops. Zero means report every match.
	MatchTarget uint32
}

// Bounds holds the raw global limits before validation.
type Bounds struct {
	SeedMin  uint32
	SeedMax  uint32
	DepthMin uint8
	DepthMax uint8
}

// Validate checks the seed and depth ranges on their own. Inverted or
// out-of-range bounds are configuration errors and can be rejected
// before any criteria compile.
func (b Bounds) Validate() error {
	if b.DepthMin < 1 || b.DepthMin > MaxDepth {
		return fmt.Errorf("minimum depth %d is outside 1-%d", b.DepthMin, MaxDepth)
	}
	if b.DepthMax < 1 || b.DepthMax > MaxDepth {
		return fmt.Errorf("maximum depth %d is outside 1-%d", b.DepthMax, MaxDepth)
	}
	if b.DepthMin > b.DepthMax {
		return fmt.Errorf("minimum depth %d exceeds maximum depth %d", b.DepthMin, b.DepthMax)
	}
	if b.SeedMin > b.SeedMax {
		return fmt.Errorf("minimum seed %d exceeds maximum seed %d", b.SeedMin, b.SeedMax)
	}
	return nil
}

// NewQuery validates the bounds and assembles the query. Criteria must
// already carry their per-criterion depth caps.
func NewQuery(b Bounds, criteria []*Criterion, matchTarget uint32) (*Query, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if len(criteria) == 0 {
		return nil, fmt.Errorf("no search criteria given")
	}
	if err := Duplicates(criteria); err != nil {
		return nil, err
	}
	return &Query{
		SeedMin:     b.SeedMin,
		SeedMax:     b.SeedMax,
		DepthMin:    b.DepthMin,
		DepthMax:    b.DepthMax,
		Criteria:    criteria,
		MatchTarget: matchTarget,
	}, nil
}

// Mask returns the union of every criterion's category mask. Rows whose
// category falls outside the union can be skipped without testing each
// criterion.
func (q *Query) Mask() catalog.Set {
	var set catalog.Set
	for _, c := range q.Criteria {
		set |= c.Mask
	}
	return set
}

// ResetSeed clears per-seed running counts on every criterion.
func (q *Query) ResetSeed() {
	for _, c := range q.Criteria {
		c.ClearCount()
	}
}

// AllValid reports whether every criterion's running count satisfies its
// mode. This is the final per-seed check at a seed boundary.
func (q *Query) AllValid() bool {
	for _, c := range q.Criteria {
		if !c.Valid() {
			return false
		}
	}
	return true
}
