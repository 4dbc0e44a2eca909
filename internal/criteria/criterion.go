// Package criteria compiles free-form search tokens into typed criteria
// and models the aggregate query a seed must satisfy.
package criteria

import (
	"fmt"
	"strings"

	"github.com/corvusworks/seedscan/internal/catalog"
)

// CountMode says how a criterion's matched quantity compares to its
// target for the seed to qualify.
type CountMode uint8

const (
	// AtLeast accepts once the matched quantity reaches the target.
	AtLeast CountMode = iota
	// LessThan rejects the seed as soon as the quantity reaches the target.
	LessThan
	// EqualTo accepts only an exact quantity; exceeding it rejects the seed.
	EqualTo
)

// MagicType restricts a criterion to benevolent or malevolent objects.
type MagicType uint8

const (
	Benevolent MagicType = iota
	Malevolent
)

func (m MagicType) String() string {
	if m == Malevolent {
		return "malevolent"
	}
	return "benevolent"
}

// Outcome classifies what a successful row match did to its criterion.
type Outcome uint8

const (
	// Increment moved the criterion toward (or kept it at) a valid count.
	Increment Outcome = iota
	// DoNothing matched but changed nothing (target already exceeded).
	DoNothing
	// EarlyExit pushed a LessThan/EqualTo criterion past its target; the
	// current seed can never qualify.
	EarlyExit
)

// Criterion is one compiled search constraint. All fields except Count
// are immutable after compilation; Count is per-seed scratch state.
type Criterion struct {
	// Category the criterion targets; Mask is its bit representation and
	// may cover several concrete categories for item/equipment.
	Category catalog.Category
	Mask     catalog.Set

	// Count is the quantity matched so far in the active seed.
	Count uint32
	// CountTarget is the quantity the seed must reach, compare per Mode.
	CountTarget uint32
	Mode        CountMode

	// Depth caps the dungeon depth for this criterion only.
	Depth uint8

	// Kind, when non-empty, must be contained in the row's kind name.
	Kind string

	// Enchantment is a threshold when set: >= for non-negative values,
	// <= for negative ones.
	Enchantment *int8

	// Runic must be contained in the row's runic name; AnyRunic accepts
	// any non-empty runic. At most one of the two is set.
	Runic    string
	AnyRunic bool

	// AllyStatus matches the exported status exactly; AnyLegendary
	// accepts any legendary (allied) ally. At most one of the two is set.
	AllyStatus   string
	AnyLegendary bool

	// Mutation must be contained in the row's mutation name; AnyMutation
	// accepts any mutated ally. At most one of the two is set.
	Mutation    string
	AnyMutation bool

	// InVault, when set, requires the row to be inside (true) or outside
	// (false) a vault.
	InVault *bool

	// Magic, when set, requires the object's polarity to match.
	Magic *MagicType
}

// ClearCount resets the per-seed running count.
func (c *Criterion) ClearCount() {
	c.Count = 0
}

// Valid reports whether the running count currently satisfies the
// criterion's count mode.
func (c *Criterion) Valid() bool {
	switch c.Mode {
	case LessThan:
		return c.Count < c.CountTarget
	case EqualTo:
		return c.Count == c.CountTarget
	default:
		return c.Count >= c.CountTarget
	}
}

// Record adds a matched row's quantity to the running count and
// classifies the outcome:
//   - AtLeast never exits early; once past the target further matches do
//     nothing.
//   - LessThan exits early the moment the target is reached.
//   - EqualTo exits early once the target is exceeded.
func (c *Criterion) Record(quantity uint32) Outcome {
	prior := c.Count
	c.Count += quantity
	switch c.Mode {
	case LessThan:
		if c.Count < c.CountTarget {
			return Increment
		}
		return EarlyExit
	case EqualTo:
		if c.Count <= c.CountTarget {
			return Increment
		}
		return EarlyExit
	default:
		if prior > c.CountTarget {
			return DoNothing
		}
		return Increment
	}
}

// Equal reports whether two criteria express the same constraint.
// The running count is ignored.
func (c *Criterion) Equal(o *Criterion) bool {
	if c.Category != o.Category ||
		c.CountTarget != o.CountTarget ||
		c.Mode != o.Mode ||
		c.Depth != o.Depth ||
		c.Kind != o.Kind ||
		c.Runic != o.Runic ||
		c.AnyRunic != o.AnyRunic ||
		c.AllyStatus != o.AllyStatus ||
		c.AnyLegendary != o.AnyLegendary ||
		c.Mutation != o.Mutation ||
		c.AnyMutation != o.AnyMutation {
		return false
	}
	if (c.Enchantment == nil) != (o.Enchantment == nil) {
		return false
	}
	if c.Enchantment != nil && *c.Enchantment != *o.Enchantment {
		return false
	}
	if (c.InVault == nil) != (o.InVault == nil) {
		return false
	}
	if c.InVault != nil && *c.InVault != *o.InVault {
		return false
	}
	if (c.Magic == nil) != (o.Magic == nil) {
		return false
	}
	if c.Magic != nil && *c.Magic != *o.Magic {
		return false
	}
	return true
}

// Tokens renders the criterion back to its canonical token form.
// Compiling the result yields an equivalent criterion.
func (c *Criterion) Tokens() []string {
	var out []string
	switch c.Mode {
	case LessThan:
		out = append(out, fmt.Sprintf("<%d", c.CountTarget))
	case EqualTo:
		out = append(out, fmt.Sprintf("=%d", c.CountTarget))
	default:
		out = append(out, fmt.Sprintf("%d", c.CountTarget))
	}
	if c.Depth > 0 {
		out = append(out, fmt.Sprintf("d%d", c.Depth))
	}
	if c.Enchantment != nil {
		if *c.Enchantment >= 0 {
			out = append(out, fmt.Sprintf("+%d", *c.Enchantment))
		} else {
			out = append(out, fmt.Sprintf("%d-", -*c.Enchantment))
		}
	}
	if c.Kind != "" {
		out = append(out, c.Kind)
	}
	if c.AnyRunic {
		out = append(out, "runic")
	} else if c.Runic != "" {
		out = append(out, c.Runic)
	}
	if c.AnyLegendary {
		out = append(out, "legendary")
	} else if c.AllyStatus != "" {
		out = append(out, c.AllyStatus)
	}
	if c.AnyMutation {
		out = append(out, "mutation")
	} else if c.Mutation != "" {
		out = append(out, c.Mutation)
	}
	if c.InVault != nil {
		if *c.InVault {
			out = append(out, "vault")
		} else {
			out = append(out, "novault")
		}
	}
	if c.Magic != nil {
		if *c.Magic == Malevolent {
			out = append(out, "bad")
		} else {
			out = append(out, "good")
		}
	}
	return out
}

// String renders a multi-line summary used for the pre-scan search
// header.
func (c *Criterion) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "  category: %s\n", c.Category)
	switch c.Mode {
	case LessThan:
		fmt.Fprintf(&b, "     count: less than %d\n", c.CountTarget)
	case EqualTo:
		fmt.Fprintf(&b, "     count: exactly %d\n", c.CountTarget)
	default:
		fmt.Fprintf(&b, "     count: %d or more\n", c.CountTarget)
	}
	if c.Depth > 0 && c.Depth < 26 {
		fmt.Fprintf(&b, "     depth: %d or less\n", c.Depth)
	}
	if c.Kind != "" {
		fmt.Fprintf(&b, "      kind: %s\n", c.Kind)
	}
	if c.Enchantment != nil {
		fmt.Fprintf(&b, "      ench: %d\n", *c.Enchantment)
	}
	if c.Runic != "" {
		fmt.Fprintf(&b, "     runic: %s\n", c.Runic)
	}
	if c.AnyRunic {
		b.WriteString("     runic: any\n")
	}
	if c.AllyStatus != "" {
		fmt.Fprintf(&b, "    status: %s\n", c.AllyStatus)
	}
	if c.AnyLegendary {
		b.WriteString("    status: legendary\n")
	}
	if c.Mutation != "" {
		fmt.Fprintf(&b, "  mutation: %s\n", c.Mutation)
	}
	if c.AnyMutation {
		b.WriteString("  mutation: any\n")
	}
	if c.InVault != nil {
		fmt.Fprintf(&b, "     vault: %t\n", *c.InVault)
	}
	if c.Magic != nil {
		fmt.Fprintf(&b, "     magic: %s\n", *c.Magic)
	}
	return b.String()
}
