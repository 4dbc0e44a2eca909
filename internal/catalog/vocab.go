package catalog

import "strings"

// The name tables below mirror the vocabulary emitted by the game's seed
// catalog export. Matching is a case-sensitive containment test: a user
// token matches a table when at least one entry contains it.

var weaponKinds = []string{
	"broadsword",
	"dagger",
	"sword",
	"mace",
	"war hammer",
	"spear",
	"war pike",
	"war axe",
	"axe",
	"rapier",
	"whip",
	"flail",
	"incendiary dart",
	"dart",
	"javelin",
}

var weaponRunics = []string{
	"confusion",
	"force",
	"multiplicity",
	"paralysis",
	"quietus",
	"slowing",
	"speed",
	"mercy",
	"plenty",
	"airborne slaying",
	"abomination slaying",
	"animal slaying",
	"dar slaying",
	"dragon slaying",
	"fireborne slaying",
	"goblin slaying",
	"infernal slaying",
	"jelly slaying",
	"mage slaying",
	"ogre slaying",
	"troll slaying",
	"turret slaying",
	"undead slaying",
	"waterborne slaying",
}

var armorKinds = []string{
	"banded mail",
	"chain mail",
	"leather armor",
	"plate armor",
	"scale mail",
	"splint mail",
}

var armorRunics = []string{
	"absorption",
	"dampening",
	"multiplicity",
	"mutuality",
	"reflection",
	"reprisal",
	"respiration",
	"burden",
	"immolation",
	"vulnerability",
	"airborne immunity",
	"abomination immunity",
	"animal immunity",
	"dar immunity",
	"dragon immunity",
	"fireborne immunity",
	"goblin immunity",
	"infernal immunity",
	"jelly immunity",
	"mage immunity",
	"ogre immunity",
	"troll immunity",
	"turret immunity",
	"undead immunity",
	"waterborne immunity",
}

var charmKinds = []string{
	"fire immunity",
	"guardian",
	"haste",
	"health",
	"invisibility",
	"levitation",
	"negation",
	"protection",
	"recharging",
	"shattering",
	"telepathy",
	"teleportation",
}

var foodKinds = []string{
	"mango",
	"ration of food",
}

var keyKinds = []string{
	"door key",
	"cage key",
	"crystal orb",
}

var altarKinds = []string{
	"commutation altar",
	"resurrection altar",
}

var potionKinds = []string{
	"caustic gas",
	"confusion",
	"creeping death",
	"darkness",
	"descent",
	"detect magic",
	"fire immunity",
	"hallucination",
	"incineration",
	"invisibility",
	"levitation",
	"life",
	"paralysis",
	"speed",
	"strength",
	"telepathy",
}

var ringKinds = []string{
	"awareness",
	"clairvoyance",
	"light",
	"reaping",
	"regeneration",
	"stealth",
	"transference",
	"wisdom",
}

var scrollKinds = []string{
	"aggravate monsters",
	"discord",
	"enchanting",
	"identify",
	"magic mapping",
	"negation",
	"protect armor",
	"protect weapon",
	"recharging",
	"remove curse",
	"sanctuary",
	"shattering",
	"summon monsters",
	"teleportation",
}

var staffKinds = []string{
	"blinking",
	"conjuration",
	"discord",
	"entrancement",
	"firebolt",
	"haste",
	"healing",
	"lightning",
	"obstruction",
	"poison",
	"protection",
	"tunneling",
}

var wandKinds = []string{
	"beckoning",
	"domination",
	"empowerment",
	"invisibility",
	"negation",
	"plenty",
	"polymorphism",
	"slowness",
	"teleportation",
}

var monsterKinds = []string{
	"acid mound",
	"acidic jelly",
	"arrow turret",
	"black jelly",
	"bloat",
	"bog monster",
	"centaur",
	"centipede",
	"dar battlemage",
	"dar blademaster",
	"dar priestess",
	"dart turret",
	"dragon",
	"eel",
	"explosive bloat",
	"flame turret",
	"flamedancer",
	"fury",
	"goblin",
	"goblin conjurer",
	"goblin mystic",
	"goblin totem",
	"goblin warlord",
	"golem",
	"guardian spirit",
	"ifrit",
	"imp",
	"jackal",
	"kobold",
	"kraken",
	"lich",
	"mangrove dryad",
	"mirrored totem",
	"monkey",
	"naga",
	"ogre",
	"ogre shaman",
	"ogre totem",
	"phantom",
	"phoenix",
	"phoenix egg",
	"phylactery",
	"pink jelly",
	"pit bloat",
	"pixie",
	"rat",
	"revenant",
	"salamander",
	"sentinel",
	"spark turret",
	"spectral blade",
	"spider",
	"stone guardian",
	"tentacle horror",
	"toad",
	"troll",
	"underworm",
	"unicorn",
	"vampire",
	"vampire bat",
	"warden of yendor",
	"will-o-the-wisp",
	"winged guardian",
	"wraith",
	"zombie",
}

var mutations = []string{
	"agile",
	"explosive",
	"grappling",
	"infested",
	"juggernaut",
	"reflective",
	"toxic",
	"vampiric",
}

// allyStatuses are matched exactly, never partially: "caged" as a partial
// token would be indistinguishable from a kind substring.
var allyStatuses = []string{
	"allied",
	"caged",
	"shackled",
}

// Kinds of potions, scrolls, staves, and wands the game treats as
// malevolent. Every kind of those categories not listed here is
// benevolent. Other categories derive polarity from enchantment sign.
var malevolentKinds = map[Category]map[string]bool{
	Potion: {
		"caustic gas":    true,
		"confusion":      true,
		"creeping death": true,
		"darkness":       true,
		"descent":        true,
		"hallucination":  true,
		"incineration":   true,
		"paralysis":      true,
	},
	Scroll: {
		"aggravate monsters": true,
		"summon monsters":    true,
	},
	Staff: {
		"haste":      true,
		"healing":    true,
		"protection": true,
	},
	Wand: {
		"empowerment":  true,
		"invisibility": true,
		"plenty":       true,
	},
}

func contains(name, token string) bool {
	return strings.Contains(name, token)
}

func tableContains(table []string, token string) bool {
	if token == "" {
		return false
	}
	for _, name := range table {
		if contains(name, token) {
			return true
		}
	}
	return false
}

// KindNames returns the kind vocabulary for a concrete category, or nil
// for categories without a fixed kind table (gold) and meta-categories.
func KindNames(c Category) []string {
	switch c {
	case Ally:
		return monsterKinds
	case Altar:
		return altarKinds
	case Armor:
		return armorKinds
	case Charm:
		return charmKinds
	case Food:
		return foodKinds
	case Key:
		return keyKinds
	case Potion:
		return potionKinds
	case Ring:
		return ringKinds
	case Scroll:
		return scrollKinds
	case Staff:
		return staffKinds
	case Wand:
		return wandKinds
	case Weapon:
		return weaponKinds
	}
	return nil
}

// MatchKind reports whether token is a substring of any kind name of the
// category.
func MatchKind(c Category, token string) bool {
	return tableContains(KindNames(c), token)
}

// MatchRunic reports whether token is a substring of any runic name legal
// for the category (weapon and armor only).
func MatchRunic(c Category, token string) bool {
	switch c {
	case Weapon:
		return tableContains(weaponRunics, token)
	case Armor:
		return tableContains(armorRunics, token)
	case Item, Equipment:
		return tableContains(weaponRunics, token) || tableContains(armorRunics, token)
	}
	return false
}

// MatchMutation reports whether token is a substring of any ally mutation
// name.
func MatchMutation(token string) bool {
	return tableContains(mutations, token)
}

// IsAllyStatus reports whether token exactly names an ally status.
func IsAllyStatus(token string) bool {
	for _, s := range allyStatuses {
		if s == token {
			return true
		}
	}
	return false
}

// IsMalevolent reports whether a kind of the given category is malevolent
// by the fixed polarity table. The second result is false for categories
// whose polarity comes from the enchantment sign instead.
func IsMalevolent(c Category, kind string) (malevolent, tabled bool) {
	table, ok := malevolentKinds[c]
	if !ok {
		return false, false
	}
	return table[kind], true
}
