package catalog

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  Category
		ok    bool
	}{
		{name: "weapon", value: "weapon", want: Weapon, ok: true},
		{name: "armor", value: "armor", want: Armor, ok: true},
		{name: "ally", value: "ally", want: Ally, ok: true},
		{name: "gold", value: "gold", want: Gold, ok: true},
		{name: "key", value: "key", want: Key, ok: true},
		{name: "partial potion", value: "pot", want: Potion, ok: true},
		{name: "empty", value: "", ok: false},
		{name: "unknown", value: "banana", ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCategory(tt.value)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMetaCategoryMasks(t *testing.T) {
	itemMembers := []Category{Armor, Charm, Potion, Ring, Scroll, Staff, Wand, Weapon}

	var union Set
	for _, cat := range itemMembers {
		union |= cat.Mask()
	}
	if Item.Mask() != union {
		t.Errorf("expected item mask %016b to equal its member union %016b",
			Item.Mask(), union)
	}
	if Equipment.Mask() != Armor.Mask()|Ring.Mask()|Weapon.Mask() {
		t.Errorf("expected equipment mask to equal its member union")
	}

	for _, cat := range itemMembers {
		if !Item.Mask().Intersects(cat.Mask()) {
			t.Errorf("expected item mask to cover %s", cat)
		}
	}
	for _, cat := range []Category{Ally, Altar, Food, Gold, Key} {
		if Item.Mask().Intersects(cat.Mask()) {
			t.Errorf("expected item mask not to cover %s", cat)
		}
	}

	for _, cat := range []Category{Armor, Ring, Weapon} {
		if !Equipment.Mask().Intersects(cat.Mask()) {
			t.Errorf("expected equipment mask to cover %s", cat)
		}
	}
	if Equipment.Mask().Intersects(Potion.Mask()) {
		t.Errorf("expected equipment mask not to cover potion")
	}
}

func TestConcreteMasksAreDisjoint(t *testing.T) {
	concrete := []Category{Ally, Altar, Armor, Charm, Food, Gold, Key,
		Potion, Ring, Scroll, Staff, Wand, Weapon}

	for i, a := range concrete {
		for _, b := range concrete[i+1:] {
			if a.Mask().Intersects(b.Mask()) {
				t.Errorf("expected %s and %s masks to be disjoint", a, b)
			}
		}
	}
}

func TestFieldSupport(t *testing.T) {
	if !Weapon.HasEnchantment() || !Staff.HasEnchantment() {
		t.Errorf("expected weapon and staff to carry enchantment")
	}
	if Potion.HasEnchantment() || Gold.HasEnchantment() {
		t.Errorf("expected potion and gold not to carry enchantment")
	}
	if !Armor.HasRunic() || !Weapon.HasRunic() {
		t.Errorf("expected armor and weapon to carry runics")
	}
	if Ring.HasRunic() {
		t.Errorf("expected ring not to carry runics")
	}
}
