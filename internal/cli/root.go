// Package cli implements the command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corvusworks/seedscan/internal/catalog"
	"github.com/corvusworks/seedscan/internal/config"
	"github.com/corvusworks/seedscan/internal/ui"
)

var (
	// Global flags
	debugFlag    bool
	depthMinFlag uint8
	depthMaxFlag uint8
	seedMinFlag  uint32
	seedMaxFlag  uint32
	matchesFlag  uint8
	filePathFlag string
	randomFlag   bool
	utf8Flag     bool
	utf16Flag    bool
	verboseCount int

	cfg *config.Config
)

// categoryFlag declares one repeatable per-category search flag. Each
// occurrence carries a space-separated token string, compiled on its own.
// Declaration order is evaluation priority for the compiled criteria.
type categoryFlag struct {
	name     string
	short    string
	category catalog.Category
	usage    string
	values   []string
}

var categoryFlags = []*categoryFlag{
	{name: "ally", short: "A", category: catalog.Ally,
		usage: "Allies matching [COUNT] [DEPTH] [KIND] [MUTATION] [STATUS] in any order.\nSpecial terms: 'legendary' (any legendary ally), 'mutation' (any mutation).\nExample: --ally \"2 legendary\""},
	{name: "altar", category: catalog.Altar,
		usage: "Altars matching [COUNT] [DEPTH] [KIND] in any order.\nExample: --altar \"2 comm\""},
	{name: "armor", short: "a", category: catalog.Armor,
		usage: "Armor matching [COUNT] [DEPTH] [ENCHANTMENT] [KIND] [MAGIC] [RUNIC] [VAULT] in any order.\nSpecial terms: 'runic' (any runic armor).\nExample: --armor \"2 +3 scale mutuality\""},
	{name: "charm", short: "c", category: catalog.Charm,
		usage: "Charms matching [COUNT] [DEPTH] [ENCHANTMENT] [KIND] [VAULT] in any order.\nExample: --charm \"1 +3 invisibility\""},
	{name: "food", short: "f", category: catalog.Food,
		usage: "Food matching <COUNT> [DEPTH] [KIND] in any order. COUNT is required.\nExample: --food \"5 mango\""},
	{name: "gold", short: "g", category: catalog.Gold,
		usage: "Seeds with at least <COUNT> gold. COUNT is required.\nExample: --gold 2600"},
	{name: "potion", short: "p", category: catalog.Potion,
		usage: "Potions matching [COUNT] [DEPTH] [KIND] [MAGIC] [VAULT] in any order.\nExample: --potion \"5 descent\""},
	{name: "ring", short: "r", category: catalog.Ring,
		usage: "Rings matching [COUNT] [DEPTH] [ENCHANTMENT] [KIND] [MAGIC] [VAULT] in any order.\nExample: --ring \"1 +3 light\""},
	{name: "scroll", short: "S", category: catalog.Scroll,
		usage: "Scrolls matching [COUNT] [DEPTH] [KIND] [MAGIC] [VAULT] in any order.\nExample: --scroll \"18 enchantment\""},
	{name: "staff", short: "s", category: catalog.Staff,
		usage: "Staves matching [COUNT] [DEPTH] [ENCHANTMENT] [KIND] [MAGIC] [VAULT] in any order.\nExample: --staff \"3 +2 lightning\""},
	{name: "wand", short: "W", category: catalog.Wand,
		usage: "Wands matching [COUNT] [DEPTH] [ENCHANTMENT] [KIND] [MAGIC] [VAULT] in any order.\nExample: --wand \"1 +2 plenty\""},
	{name: "weapon", short: "w", category: catalog.Weapon,
		usage: "Weapons matching [COUNT] [DEPTH] [ENCHANTMENT] [KIND] [MAGIC] [RUNIC] [VAULT] in any order.\nSpecial terms: 'runic' (any runic weapon).\nExample: --weapon \"2 +3 whip quietus\""},
	{name: "equipment", short: "e", category: catalog.Equipment,
		usage: "Equipment (armor, rings, weapons) matching [COUNT] [DEPTH] [ENCHANTMENT] [MAGIC] [VAULT] in any order.\nExample: --equipment \"2 +3\""},
	{name: "item", short: "i", category: catalog.Item,
		usage: "Items (anything vaultable) matching [COUNT] [DEPTH] [ENCHANTMENT] [MAGIC] [VAULT] in any order.\nExample: --item \"good vault\""},
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "seedscan",
	Short: "Search Brogue CE seed catalogs for items and allies",
	Long: `seedscan searches exported Brogue CE seed catalog files for seeds
containing user-specified combinations of items and allies, e.g. a +2
scale mail of mutuality and 2600 gold within the first six depths.

Catalogs are produced by the game itself:

    brogue-cmd --csv --print-seed-catalog 2001 1000 26 > catalog.csv

The export is UTF-16LE; hand-converted UTF-8 files work with --utf8.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "completion", "help", "version":
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg == nil {
			cfg = &config.Config{}
		}
		ui.ConfigureTheme(cfg.UI.Accent)
		if !stdoutIsTTY() {
			ui.DisableStyles()
		}

		// Config supplies defaults only where no flag was given.
		if !cmd.Flags().Changed("filepath") && cfg.CatalogDir != "" {
			filePathFlag = cfg.CatalogDir
		}
		if !utf8Flag && !utf16Flag && cfg.UTF8 {
			utf8Flag = true
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch()
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.Flags()

	flags.BoolVarP(&debugFlag, "debug", "D", false, "Print debug information during the search")
	flags.Uint8Var(&depthMinFlag, "mindepth", 1, "Minimum dungeon depth to search, 1 to 26")
	flags.Uint8VarP(&depthMaxFlag, "depth", "d", 26, "Maximum dungeon depth to search, 1 to 26")
	flags.StringVarP(&filePathFlag, "filepath", "F", "", "Directory containing seed catalog .csv files (default: current directory)")
	flags.Uint8VarP(&matchesFlag, "matches", "m", 10, "Maximum number of matching seeds to return, 1 to 255")
	flags.BoolVarP(&randomFlag, "random", "R", false, "Check catalog files in random order")
	flags.Uint32Var(&seedMinFlag, "minseed", 1, "Minimum seed to search")
	flags.Uint32Var(&seedMaxFlag, "maxseed", 4294967295, "Maximum seed to search")
	flags.BoolVarP(&utf8Flag, "utf8", "U", false, "Prefer UTF-8 catalog files (catalogs exported by the game are UTF-16LE)")
	flags.BoolVar(&utf16Flag, "utf16", false, "Prefer UTF-16LE catalog files (the default)")
	flags.CountVarP(&verboseCount, "verbose", "v", "Search verbosity, -v to -vvv (default 3: seeds, depths and matches)")

	rootCmd.MarkFlagsMutuallyExclusive("utf8", "utf16")

	for _, cf := range categoryFlags {
		if cf.short != "" {
			flags.StringArrayVarP(&cf.values, cf.name, cf.short, nil, cf.usage)
		} else {
			flags.StringArrayVar(&cf.values, cf.name, nil, cf.usage)
		}
	}
}

// verbosity resolves the output detail level: counted -v flags first,
// then the config default, then full detail.
func verbosity() int {
	switch verboseCount {
	case 1, 2:
		return verboseCount
	case 0:
		if cfg != nil && cfg.Verbosity >= 1 && cfg.Verbosity <= 3 {
			return cfg.Verbosity
		}
	}
	return 3
}
