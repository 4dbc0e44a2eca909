package scan

import (
	"strings"

	"github.com/corvusworks/seedscan/internal/catalog"
	"github.com/corvusworks/seedscan/internal/criteria"
)

// evaluate tests one in-bounds row against the query's criteria in
// insertion order and returns the match produced by the first criterion
// whose predicate passes. A row satisfies at most one criterion.
func evaluate(row Row, q *criteria.Query) (Match, bool) {
	mask := row.Category.Mask()

	for _, crit := range q.Criteria {
		if !crit.Mask.Intersects(mask) || row.Depth > crit.Depth {
			continue
		}
		if !matches(row, crit) {
			continue
		}
		outcome := crit.Record(row.Quantity)
		return newMatch(row, outcome), true
	}
	return Match{}, false
}

// matches runs the category-specific predicate. Absent criterion fields
// are vacuously true; every present field must pass.
func matches(row Row, c *criteria.Criterion) bool {
	switch c.Category {
	case catalog.Weapon, catalog.Armor:
		return matchKind(row, c) &&
			matchEnchantment(row, c) &&
			matchRunic(row, c) &&
			matchVault(row, c) &&
			matchMagic(row, c)
	case catalog.Charm, catalog.Ring, catalog.Staff, catalog.Wand:
		return matchKind(row, c) &&
			matchEnchantment(row, c) &&
			matchVault(row, c) &&
			matchMagic(row, c)
	case catalog.Potion, catalog.Scroll:
		return matchKind(row, c) &&
			matchVault(row, c) &&
			matchMagic(row, c)
	case catalog.Food, catalog.Altar:
		return matchKind(row, c)
	case catalog.Ally:
		return matchKind(row, c) &&
			matchAllyStatus(row, c) &&
			matchMutation(row, c)
	case catalog.Item, catalog.Equipment:
		// Field checks apply only where the row's concrete category
		// carries the field; a row lacking a required field fails.
		if c.Enchantment != nil && !row.Category.HasEnchantment() {
			return false
		}
		if c.AnyRunic && !row.Category.HasRunic() {
			return false
		}
		return matchEnchantment(row, c) &&
			matchRunic(row, c) &&
			matchVault(row, c) &&
			matchMagic(row, c)
	default:
		// Gold and key criteria constrain only the count.
		return true
	}
}

func matchKind(row Row, c *criteria.Criterion) bool {
	return c.Kind == "" || strings.Contains(row.Kind, c.Kind)
}

// matchEnchantment compares the row against the criterion threshold using
// the threshold's polarity: a non-negative threshold means at-least, a
// negative one means at-most.
func matchEnchantment(row Row, c *criteria.Criterion) bool {
	if c.Enchantment == nil {
		return true
	}
	if *c.Enchantment >= 0 {
		return row.Enchant >= *c.Enchantment
	}
	return row.Enchant <= *c.Enchantment
}

func matchRunic(row Row, c *criteria.Criterion) bool {
	if c.AnyRunic {
		return row.Runic != ""
	}
	if c.Runic != "" {
		return strings.Contains(row.Runic, c.Runic)
	}
	return true
}

func matchVault(row Row, c *criteria.Criterion) bool {
	if c.InVault == nil {
		return true
	}
	return *c.InVault == (row.Vault != nil)
}

func matchAllyStatus(row Row, c *criteria.Criterion) bool {
	if c.AnyLegendary {
		return row.AllyStatus == "allied"
	}
	if c.AllyStatus != "" {
		return row.AllyStatus == c.AllyStatus
	}
	return true
}

func matchMutation(row Row, c *criteria.Criterion) bool {
	if c.AnyMutation {
		return row.Mutation != ""
	}
	if c.Mutation != "" {
		return strings.Contains(row.Mutation, c.Mutation)
	}
	return true
}

// matchMagic checks benevolent/malevolent polarity. Categories with a
// numeric enchantment derive polarity from its sign; potions, scrolls,
// staffs and wands use the fixed per-kind tables.
func matchMagic(row Row, c *criteria.Criterion) bool {
	if c.Magic == nil {
		return true
	}
	switch row.Category {
	case catalog.Armor, catalog.Charm, catalog.Ring, catalog.Weapon:
		if !row.HasEnchant {
			return true
		}
		if *c.Magic == criteria.Benevolent {
			return row.Enchant > 0
		}
		return row.Enchant < 0
	case catalog.Potion, catalog.Scroll, catalog.Staff, catalog.Wand:
		malevolent, _ := catalog.IsMalevolent(row.Category, row.Kind)
		return malevolent == (*c.Magic == criteria.Malevolent)
	}
	return false
}
