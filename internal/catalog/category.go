// Package catalog holds the closed vocabulary of game object categories,
// kinds, runics, monsters, and mutations that appear in exported seed
// catalog files, along with the bitmask representation used to match
// criteria against rows.
package catalog

// Category identifies one object category from the "category" CSV column,
// or one of the two derived meta-categories used only for matching.
type Category uint8

const (
	Ally Category = iota + 1
	Altar
	Armor
	Charm
	Food
	Gold
	Key
	Potion
	Ring
	Scroll
	Staff
	Wand
	Weapon

	// Item is the union of every category that can appear in a vault:
	// armor, charms, potions, rings, scrolls, staves, wands, and weapons.
	Item
	// Equipment is the union of the equippable categories:
	// armor, rings, and weapons.
	Equipment
)

// categoryNames is ordered so that earlier entries win partial matches.
var categoryNames = [...]struct {
	name string
	cat  Category
}{
	{"potion", Potion},
	{"scroll", Scroll},
	{"weapon", Weapon},
	{"armor", Armor},
	{"ring", Ring},
	{"staff", Staff},
	{"wand", Wand},
	{"charm", Charm},
	{"food", Food},
	{"gold", Gold},
	{"key", Key},
	{"ally", Ally},
	{"altar", Altar},
	{"item", Item},
	{"equipment", Equipment},
}

// ParseCategory resolves a category name from a CSV record. Partial values
// are accepted the same way kind names are (containment against the fixed
// table). Returns false if the value names no known category.
func ParseCategory(value string) (Category, bool) {
	if value == "" {
		return 0, false
	}
	for _, entry := range categoryNames {
		if contains(entry.name, value) {
			return entry.cat, true
		}
	}
	return 0, false
}

func (c Category) String() string {
	switch c {
	case Ally:
		return "ally"
	case Altar:
		return "altar"
	case Armor:
		return "armor"
	case Charm:
		return "charm"
	case Food:
		return "food"
	case Gold:
		return "gold"
	case Key:
		return "key"
	case Potion:
		return "potion"
	case Ring:
		return "ring"
	case Scroll:
		return "scroll"
	case Staff:
		return "staff"
	case Wand:
		return "wand"
	case Weapon:
		return "weapon"
	case Item:
		return "item"
	case Equipment:
		return "equipment"
	}
	return "unknown"
}

// Set is a 16-bit category bitmask. Concrete categories occupy one bit
// each; meta-categories expand to the union of their members.
type Set uint16

// bit returns the single bit a concrete category occupies in a Set.
func bit(c Category) Set {
	return 1 << uint16(c)
}

var (
	itemMask = bit(Armor) | bit(Charm) | bit(Potion) | bit(Ring) |
		bit(Scroll) | bit(Staff) | bit(Wand) | bit(Weapon)
	equipmentMask = bit(Armor) | bit(Ring) | bit(Weapon)
)

// Mask returns the bitmask for a category. Meta-categories return the
// precomputed union of their member bits.
func (c Category) Mask() Set {
	switch c {
	case Item:
		return itemMask
	case Equipment:
		return equipmentMask
	default:
		return bit(c)
	}
}

// Intersects reports whether the two sets share at least one category.
// Criterion matching tests intersection, not equality, so a meta-category
// criterion can match several concrete categories.
func (s Set) Intersects(other Set) bool {
	return s&other != 0
}

// HasEnchantment reports whether rows of this concrete category carry a
// numeric enchantment value.
func (c Category) HasEnchantment() bool {
	switch c {
	case Armor, Charm, Ring, Staff, Wand, Weapon:
		return true
	}
	return false
}

// HasRunic reports whether rows of this concrete category can carry a
// runic name.
func (c Category) HasRunic() bool {
	return c == Armor || c == Weapon
}
