package scan

import (
	"fmt"

	"github.com/corvusworks/seedscan/internal/catalog"
	"github.com/corvusworks/seedscan/internal/criteria"
)

// Match is one confirmed row: a catalog object that satisfied some
// criterion, together with where it was found.
type Match struct {
	Outcome criteria.Outcome

	Seed   uint32
	Depth  uint8
	Object catalog.Object

	Vault     *uint8
	CarriedBy string
}

func newMatch(row Row, outcome criteria.Outcome) Match {
	return Match{
		Outcome:   outcome,
		Seed:      row.Seed,
		Depth:     row.Depth,
		Object:    row.object(),
		Vault:     row.Vault,
		CarriedBy: row.CarriedBy,
	}
}

// String renders the matched object with its location context, e.g.
// "A +2 scale mail of mutuality (vault 3)".
func (m Match) String() string {
	if m.CarriedBy != "" {
		return fmt.Sprintf("%s (%s)", m.Object, m.CarriedBy)
	}
	if m.Vault != nil {
		return fmt.Sprintf("%s (vault %d)", m.Object, *m.Vault)
	}
	return m.Object.String()
}
