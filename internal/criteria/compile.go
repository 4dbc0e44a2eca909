package criteria

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/corvusworks/seedscan/internal/catalog"
)

// tokenClass identifies which criterion slot a raw token fills.
type tokenClass uint8

const (
	classNone tokenClass = iota
	classCount
	classDepth
	classEnchantment
	classKind
	classRunic
	classAnyRunic
	classAllyStatus
	classLegendary
	classMutation
	classAnyMutation
	classInVault
	classMagic
)

// token is one classified search term.
type token struct {
	class tokenClass
	text  string

	count     uint32
	countMode CountMode
	depth     uint8
	enchant   int8
	inVault   bool
	magic     MagicType
}

// parseCount recognizes a count token: an optional leading '<' (LessThan)
// or '=' (EqualTo), then a non-negative integer.
func parseCount(value string) (CountMode, uint32, bool) {
	mode := AtLeast
	rest := value
	switch {
	case strings.HasPrefix(value, "<"):
		mode, rest = LessThan, value[1:]
	case strings.HasPrefix(value, "="):
		mode, rest = EqualTo, value[1:]
	}
	n, err := strconv.ParseUint(rest, 10, 32)
	if err != nil {
		return 0, 0, false
	}
	return mode, uint32(n), true
}

// parseDepth recognizes a depth token: 'd' followed by an integer 1-26.
func parseDepth(value string) (uint8, bool) {
	if !strings.HasPrefix(value, "d") {
		return 0, false
	}
	n, err := strconv.ParseUint(value[1:], 10, 8)
	if err != nil || n < 1 || n > 26 {
		return 0, false
	}
	return uint8(n), true
}

// parseEnchantment recognizes '+N' (at least N) or 'N-' (at most N,
// stored negated).
func parseEnchantment(value string) (int8, bool) {
	if strings.HasPrefix(value, "+") {
		n, err := strconv.ParseInt(value[1:], 10, 8)
		if err != nil {
			return 0, false
		}
		return int8(n), true
	}
	if strings.HasSuffix(value, "-") {
		n, err := strconv.ParseInt(strings.TrimSuffix(value, "-"), 10, 8)
		if err != nil {
			return 0, false
		}
		return int8(-n), true
	}
	return 0, false
}

// parsePositiveEnchantment recognizes only the '+N' form, for categories
// whose enchantment can never be negative.
func parsePositiveEnchantment(value string) (int8, bool) {
	if !strings.HasPrefix(value, "+") {
		return 0, false
	}
	n, err := strconv.ParseInt(value[1:], 10, 8)
	if err != nil {
		return 0, false
	}
	return int8(n), true
}

func parseInVault(value string) (bool, bool) {
	switch value {
	case "vault":
		return true, true
	case "novault":
		return false, true
	}
	return false, false
}

func parseMagic(value string) (MagicType, bool) {
	switch value {
	case "good":
		return Benevolent, true
	case "bad":
		return Malevolent, true
	}
	return 0, false
}

// slotKind enumerates the trial parsers a category may legalize. The
// order within each category's list is the classification priority; it is
// fixed and deliberate (enchantment before count so "+2" is not read as a
// count, kind before runic so ambiguous names resolve to kind).
type slotKind uint8

const (
	slotSignedEnchant slotKind = iota
	slotPositiveEnchant
	slotCount
	slotDepth
	slotAnyRunicWord
	slotLegendaryWord
	slotAllyStatusWord
	slotAnyMutationWord
	slotKindName
	slotRunicName
	slotMutationName
	slotVaultWord
	slotMagicWord
)

// slotOrder lists, per category, the trial parsers in priority order.
var slotOrder = map[catalog.Category][]slotKind{
	catalog.Ally: {slotCount, slotDepth, slotLegendaryWord, slotAllyStatusWord,
		slotAnyMutationWord, slotKindName, slotMutationName},
	catalog.Altar: {slotCount, slotDepth, slotKindName},
	catalog.Armor: {slotSignedEnchant, slotCount, slotDepth, slotAnyRunicWord,
		slotKindName, slotRunicName, slotVaultWord, slotMagicWord},
	catalog.Charm: {slotPositiveEnchant, slotCount, slotDepth, slotKindName,
		slotVaultWord},
	catalog.Equipment: {slotSignedEnchant, slotCount, slotDepth,
		slotAnyRunicWord, slotVaultWord, slotMagicWord},
	catalog.Food: {slotCount, slotDepth, slotKindName},
	catalog.Gold: {slotCount, slotDepth},
	catalog.Item: {slotSignedEnchant, slotCount, slotDepth, slotAnyRunicWord,
		slotVaultWord, slotMagicWord},
	catalog.Potion: {slotCount, slotDepth, slotKindName, slotVaultWord,
		slotMagicWord},
	catalog.Ring: {slotSignedEnchant, slotCount, slotDepth, slotKindName,
		slotVaultWord, slotMagicWord},
	catalog.Scroll: {slotCount, slotDepth, slotKindName, slotVaultWord,
		slotMagicWord},
	catalog.Staff: {slotPositiveEnchant, slotCount, slotDepth, slotKindName,
		slotVaultWord, slotMagicWord},
	catalog.Wand: {slotPositiveEnchant, slotCount, slotDepth, slotKindName,
		slotVaultWord, slotMagicWord},
	catalog.Weapon: {slotSignedEnchant, slotCount, slotDepth, slotAnyRunicWord,
		slotKindName, slotRunicName, slotVaultWord, slotMagicWord},
}

// classify runs the category's trial parsers over one raw token and
// returns the first shape that matches.
func classify(cat catalog.Category, value string) token {
	for _, slot := range slotOrder[cat] {
		switch slot {
		case slotSignedEnchant:
			if e, ok := parseEnchantment(value); ok {
				return token{class: classEnchantment, enchant: e}
			}
		case slotPositiveEnchant:
			if e, ok := parsePositiveEnchantment(value); ok {
				return token{class: classEnchantment, enchant: e}
			}
		case slotCount:
			if mode, n, ok := parseCount(value); ok {
				return token{class: classCount, count: n, countMode: mode}
			}
		case slotDepth:
			if d, ok := parseDepth(value); ok {
				return token{class: classDepth, depth: d}
			}
		case slotAnyRunicWord:
			if value == "runic" {
				return token{class: classAnyRunic}
			}
		case slotLegendaryWord:
			if value == "legendary" {
				return token{class: classLegendary}
			}
		case slotAllyStatusWord:
			if catalog.IsAllyStatus(value) {
				return token{class: classAllyStatus, text: value}
			}
		case slotAnyMutationWord:
			if value == "mutation" {
				return token{class: classAnyMutation}
			}
		case slotKindName:
			if catalog.MatchKind(cat, value) {
				return token{class: classKind, text: value}
			}
		case slotRunicName:
			if catalog.MatchRunic(cat, value) {
				return token{class: classRunic, text: value}
			}
		case slotMutationName:
			if catalog.MatchMutation(value) {
				return token{class: classMutation, text: value}
			}
		case slotVaultWord:
			if v, ok := parseInVault(value); ok {
				return token{class: classInVault, inVault: v}
			}
		case slotMagicWord:
			if m, ok := parseMagic(value); ok {
				return token{class: classMagic, magic: m}
			}
		}
	}
	return token{class: classNone}
}

// draft accumulates classified tokens until a slot collision flushes it
// into a finished Criterion.
type draft struct {
	kind         string
	count        *uint32
	countMode    CountMode
	depth        *uint8
	enchant      *int8
	runic        string
	anyRunic     bool
	allyStatus   string
	anyLegendary bool
	mutation     string
	anyMutation  bool
	inVault      *bool
	magic        *MagicType
}

func (d *draft) empty() bool {
	return d.kind == "" && d.count == nil && d.depth == nil &&
		d.enchant == nil && d.runic == "" && !d.anyRunic &&
		d.allyStatus == "" && !d.anyLegendary &&
		d.mutation == "" && !d.anyMutation &&
		d.inVault == nil && d.magic == nil
}

// occupied reports whether the slot a classified token targets is already
// filled. The three mutually exclusive pairs collide on either member.
func (d *draft) occupied(tk token) bool {
	switch tk.class {
	case classCount:
		return d.count != nil
	case classDepth:
		return d.depth != nil
	case classEnchantment:
		return d.enchant != nil
	case classKind:
		return d.kind != ""
	case classRunic, classAnyRunic:
		return d.runic != "" || d.anyRunic
	case classAllyStatus, classLegendary:
		return d.allyStatus != "" || d.anyLegendary
	case classMutation, classAnyMutation:
		return d.mutation != "" || d.anyMutation
	case classInVault:
		return d.inVault != nil
	case classMagic:
		return d.magic != nil
	}
	return false
}

func (d *draft) set(tk token) {
	switch tk.class {
	case classCount:
		n := tk.count
		d.count = &n
		d.countMode = tk.countMode
	case classDepth:
		dep := tk.depth
		d.depth = &dep
	case classEnchantment:
		e := tk.enchant
		d.enchant = &e
	case classKind:
		d.kind = tk.text
	case classRunic:
		d.runic = tk.text
	case classAnyRunic:
		d.anyRunic = true
	case classAllyStatus:
		d.allyStatus = tk.text
	case classLegendary:
		d.anyLegendary = true
	case classMutation:
		d.mutation = tk.text
	case classAnyMutation:
		d.anyMutation = true
	case classInVault:
		v := tk.inVault
		d.inVault = &v
	case classMagic:
		m := tk.magic
		d.magic = &m
	}
}

// Compiler turns ordered token lists into criteria. DepthMax fills the
// per-criterion depth cap when a criterion has no depth token of its own.
type Compiler struct {
	DepthMax uint8
}

// finalize validates the draft and converts it into a Criterion.
// Food and gold require an explicit count; every other category rejects a
// fully empty draft.
func (cp *Compiler) finalize(cat catalog.Category, d *draft) (*Criterion, error) {
	switch cat {
	case catalog.Food, catalog.Gold:
		if d.count == nil {
			return nil, fmt.Errorf("COUNT is required for the %q category", cat)
		}
	default:
		if d.empty() {
			return nil, fmt.Errorf("insufficient parameters for the %q category", cat)
		}
	}

	crit := &Criterion{
		Category:     cat,
		Mask:         cat.Mask(),
		CountTarget:  1,
		Mode:         d.countMode,
		Depth:        cp.DepthMax,
		Kind:         d.kind,
		Enchantment:  d.enchant,
		Runic:        d.runic,
		AnyRunic:     d.anyRunic,
		AllyStatus:   d.allyStatus,
		AnyLegendary: d.anyLegendary,
		Mutation:     d.mutation,
		AnyMutation:  d.anyMutation,
		InVault:      d.inVault,
		Magic:        d.magic,
	}
	if d.count != nil {
		crit.CountTarget = *d.count
	}
	if d.depth != nil {
		crit.Depth = *d.depth
	}
	return crit, nil
}

// Compile classifies one flag occurrence's ordered tokens into one or
// more criteria. A token whose target slot is already occupied flushes
// the in-progress criterion and starts a fresh one; the final criterion
// is flushed at end of input.
//
// Every malformed token and every invalid flush is reported; the returned
// error joins all diagnostics for the occurrence.
func (cp *Compiler) Compile(cat catalog.Category, tokens []string) ([]*Criterion, error) {
	var (
		out  []*Criterion
		errs []error
		d    draft
	)

	flush := func() {
		crit, err := cp.finalize(cat, &d)
		if err != nil {
			errs = append(errs, err)
		} else {
			out = append(out, crit)
		}
		d = draft{}
	}

	for _, raw := range tokens {
		tk := classify(cat, raw)
		if tk.class == classNone {
			errs = append(errs, fmt.Errorf("%q is not a valid %s search term", raw, cat))
			continue
		}
		if d.occupied(tk) {
			flush()
		}
		d.set(tk)
	}
	flush()

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

// Duplicates returns an error if any two criteria in the list express the
// same constraint, e.g. the pair produced by "-a scale scale".
func Duplicates(criteria []*Criterion) error {
	for i := range criteria {
		for j := i + 1; j < len(criteria); j++ {
			if criteria[i].Equal(criteria[j]) {
				return fmt.Errorf("duplicate %s criteria: %q given twice",
					criteria[i].Category, strings.Join(criteria[i].Tokens(), " "))
			}
		}
	}
	return nil
}
