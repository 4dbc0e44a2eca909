package catalog

import "testing"

func TestParseGoldPiles(t *testing.T) {
	tests := []struct {
		name string
		kind string
		want int
		ok   bool
	}{
		{name: "single pile", kind: "gold pieces", want: 1, ok: true},
		{name: "many piles", kind: "gold pieces (13 piles)", want: 13, ok: true},
		{name: "garbage", kind: "gold pieces (some piles)", ok: false},
		{name: "no parens", kind: "gold", ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseGoldPiles(tt.kind)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.want {
				t.Fatalf("expected %d piles, got %d", tt.want, got)
			}
		})
	}
}

func TestObjectString(t *testing.T) {
	tests := []struct {
		name   string
		object Object
		want   string
	}{
		{
			name:   "runic armor",
			object: Object{Category: Armor, Kind: "scale mail", Enchantment: 2, HasEnchant: true, Runic: "mutuality"},
			want:   "A +2 scale mail of mutuality",
		},
		{
			name:   "plain weapon",
			object: Object{Category: Weapon, Kind: "whip", Enchantment: -1, HasEnchant: true},
			want:   "A -1 whip",
		},
		{
			name:   "charm",
			object: Object{Category: Charm, Kind: "health", Enchantment: 2, HasEnchant: true},
			want:   "A +2 health charm",
		},
		{
			name:   "negative ring",
			object: Object{Category: Ring, Kind: "light", Enchantment: -2, HasEnchant: true},
			want:   "A -2 ring of light",
		},
		{
			name:   "potion",
			object: Object{Category: Potion, Kind: "descent"},
			want:   "A potion of descent",
		},
		{
			name:   "staff shows charges",
			object: Object{Category: Staff, Kind: "firebolt", Enchantment: 3, HasEnchant: true},
			want:   "A staff of firebolt [3/3]",
		},
		{
			name:   "wand shows charges",
			object: Object{Category: Wand, Kind: "plenty", Enchantment: 1, HasEnchant: true},
			want:   "A wand of plenty [1]",
		},
		{
			name:   "mutated ally",
			object: Object{Category: Ally, Kind: "goblin", Status: "shackled", Mutation: "toxic"},
			want:   "A shackled goblin <toxic>",
		},
		{
			name:   "legendary ally label",
			object: Object{Category: Ally, Kind: "unicorn", Status: "allied"},
			want:   "A legendary unicorn",
		},
		{
			name:   "gold with piles",
			object: Object{Category: Gold, Quantity: 150, GoldPiles: 3},
			want:   "150 gold pieces (3 piles)",
		},
		{
			name:   "food",
			object: Object{Category: Food, Kind: "mango"},
			want:   "A mango",
		},
		{
			name:   "key",
			object: Object{Category: Key, Kind: "cage key"},
			want:   "A cage key",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.object.String(); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
