package scan

import (
	"fmt"
	"strconv"

	"github.com/corvusworks/seedscan/internal/catalog"
)

// Column positions in an exported seed catalog record.
const (
	colVersion = iota
	colSeed
	colDepth
	colQuantity
	colCategory
	colKind
	colEnchantment
	colRunic
	colVault
	colOpensVault
	colCarriedBy
	colAllyStatus
	colMutation

	numColumns
)

// Row is one decoded catalog record. Numeric fields are parsed eagerly so
// that a malformed record surfaces before any criterion inspects it.
type Row struct {
	Seed     uint32
	Depth    uint8
	Quantity uint32
	Category catalog.Category

	Kind       string
	Enchant    int8
	HasEnchant bool
	Runic      string
	Vault      *uint8
	OpensVault *uint8
	CarriedBy  string
	AllyStatus string
	Mutation   string
}

// validateHeader checks the leading signature columns of a catalog file.
func validateHeader(header []string) error {
	if len(header) != numColumns {
		return fmt.Errorf("header has %d fields, want %d", len(header), numColumns)
	}
	if header[colVersion] != "dungeon_version" || header[colSeed] != "seed" || header[colDepth] != "depth" {
		return fmt.Errorf("unrecognized header signature %q", header[:3])
	}
	return nil
}

// parseRow decodes one record. Seed, depth and quantity must be valid
// numbers; enchantment and the vault columns are optional and parsed only
// when present. The category name must resolve against the catalog.
func parseRow(record []string) (Row, error) {
	seed, err := strconv.ParseUint(record[colSeed], 10, 32)
	if err != nil {
		return Row{}, fmt.Errorf("bad seed %q: %w", record[colSeed], err)
	}
	depth, err := strconv.ParseUint(record[colDepth], 10, 8)
	if err != nil {
		return Row{}, fmt.Errorf("bad depth %q: %w", record[colDepth], err)
	}
	quantity, err := strconv.ParseUint(record[colQuantity], 10, 32)
	if err != nil {
		return Row{}, fmt.Errorf("bad quantity %q: %w", record[colQuantity], err)
	}
	cat, ok := catalog.ParseCategory(record[colCategory])
	if !ok {
		return Row{}, fmt.Errorf("unknown category %q", record[colCategory])
	}

	row := Row{
		Seed:       uint32(seed),
		Depth:      uint8(depth),
		Quantity:   uint32(quantity),
		Category:   cat,
		Kind:       record[colKind],
		Runic:      record[colRunic],
		CarriedBy:  record[colCarriedBy],
		AllyStatus: record[colAllyStatus],
		Mutation:   record[colMutation],
	}

	if v := record[colEnchantment]; v != "" {
		e, err := strconv.ParseInt(v, 10, 8)
		if err != nil {
			return Row{}, fmt.Errorf("bad enchantment %q: %w", v, err)
		}
		row.Enchant = int8(e)
		row.HasEnchant = true
	}
	if v := record[colVault]; v != "" {
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return Row{}, fmt.Errorf("bad vault number %q: %w", v, err)
		}
		vault := uint8(n)
		row.Vault = &vault
	}
	if v := record[colOpensVault]; v != "" {
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return Row{}, fmt.Errorf("bad opens-vault number %q: %w", v, err)
		}
		opens := uint8(n)
		row.OpensVault = &opens
	}

	return row, nil
}

// object reconstructs the typed catalog object a row describes, for
// display in search results.
func (r Row) object() catalog.Object {
	obj := catalog.Object{
		Category:    r.Category,
		Kind:        r.Kind,
		Enchantment: r.Enchant,
		HasEnchant:  r.HasEnchant,
		Runic:       r.Runic,
		Status:      r.AllyStatus,
		Mutation:    r.Mutation,
		Quantity:    r.Quantity,
		OpensVault:  r.OpensVault,
	}
	if r.Category == catalog.Gold {
		if piles, ok := catalog.ParseGoldPiles(r.Kind); ok {
			obj.GoldPiles = piles
		}
	}
	return obj
}
