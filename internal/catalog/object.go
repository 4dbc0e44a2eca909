package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Object is a typed game object reconstructed from one matched row, used
// for display. Fields that the row's category does not carry stay zero.
type Object struct {
	Category    Category
	Kind        string
	Enchantment int8
	HasEnchant  bool
	Runic       string
	Status      string // ally status as exported ("allied", "caged", "shackled")
	Mutation    string
	Quantity    uint32 // gold pieces
	GoldPiles   int    // number of piles, parsed from the gold kind string
	OpensVault  *uint8 // vault number a key opens
}

// ParseGoldPiles extracts the pile count from a gold kind string such as
// "gold pieces (13 piles)". A bare "gold pieces" is a single pile.
func ParseGoldPiles(kind string) (int, bool) {
	if kind == "gold pieces" {
		return 1, true
	}
	open := strings.IndexByte(kind, '(')
	close := strings.IndexByte(kind, ')')
	if open < 0 || close < open {
		return 0, false
	}
	inner := strings.TrimSuffix(kind[open+1:close], " piles")
	piles, err := strconv.Atoi(strings.TrimSpace(inner))
	if err != nil {
		return 0, false
	}
	return piles, true
}

// statusLabel maps the exported ally status to its display name. The
// export writes "allied" for legendary allies.
func statusLabel(status string) string {
	if status == "allied" {
		return "legendary"
	}
	return status
}

func signed(e int8) string {
	if e >= 0 {
		return fmt.Sprintf("+%d", e)
	}
	return strconv.Itoa(int(e))
}

func (o Object) String() string {
	switch o.Category {
	case Weapon, Armor:
		if o.Runic != "" {
			return fmt.Sprintf("A %s %s of %s", signed(o.Enchantment), o.Kind, o.Runic)
		}
		return fmt.Sprintf("A %s %s", signed(o.Enchantment), o.Kind)
	case Charm:
		return fmt.Sprintf("A %s %s charm", signed(o.Enchantment), o.Kind)
	case Ring:
		if o.Enchantment > 0 {
			return fmt.Sprintf("A +%d ring of %s", o.Enchantment, o.Kind)
		}
		return fmt.Sprintf("A %d ring of %s", o.Enchantment, o.Kind)
	case Potion:
		return fmt.Sprintf("A potion of %s", o.Kind)
	case Scroll:
		return fmt.Sprintf("A scroll of %s", o.Kind)
	case Staff:
		return fmt.Sprintf("A staff of %s [%d/%d]", o.Kind, o.Enchantment, o.Enchantment)
	case Wand:
		return fmt.Sprintf("A wand of %s [%d]", o.Kind, o.Enchantment)
	case Ally:
		if o.Mutation != "" {
			return fmt.Sprintf("A %s %s <%s>", statusLabel(o.Status), o.Kind, o.Mutation)
		}
		return fmt.Sprintf("A %s %s", statusLabel(o.Status), o.Kind)
	case Gold:
		if o.GoldPiles > 0 {
			return fmt.Sprintf("%d gold pieces (%d piles)", o.Quantity, o.GoldPiles)
		}
		return fmt.Sprintf("%d gold pieces", o.Quantity)
	case Food, Key, Altar:
		return fmt.Sprintf("A %s", o.Kind)
	}
	return o.Kind
}
