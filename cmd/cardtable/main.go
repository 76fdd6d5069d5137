// Command cardtable inspects and manipulates card-table save data: listing
// the catalog and recipe databases, dumping a save's cards and slots, and
// checking what a set of cards could craft.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cardtable/internal/catalog"
	"cardtable/internal/model"
	"cardtable/internal/recipe"
	"cardtable/internal/registry"
	"cardtable/internal/save"
)

var (
	// configFile is set by the --config flag.
	configFile string

	// cfg is loaded on startup by the root command.
	cfg *viper.Viper
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cardtable",
	Short: "Inspect card-table saves, catalogs, and recipes",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(configFile)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: .cardtable.yaml)")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(recipesCmd)
	rootCmd.AddCommand(craftCmd)

	recipesCmd.Flags().Bool("all", false, "include locked recipes")
}

// openStore builds the configured save store.
func openStore() (save.Store, func() error, error) {
	backend := cfg.GetString(cfgKeyBackend)
	if !validBackend(backend) {
		return nil, nil, fmt.Errorf("unknown backend %q", backend)
	}

	path := cfg.GetString(cfgKeySavePath)
	if backend == backendSQLite {
		st, err := save.NewSQLiteStore(path)
		if err != nil {
			return nil, nil, err
		}
		return st, st.Close, nil
	}

	st, err := save.NewFileStore(path)
	if err != nil {
		return nil, nil, err
	}
	return st, func() error { return nil }, nil
}

// loadTable reconstructs a table from the configured save store.
func loadTable(ctx context.Context) (*registry.Table, *save.Report, error) {
	cat, err := catalog.LoadFile(cfg.GetString(cfgKeyCatalogPath))
	if err != nil {
		return nil, nil, err
	}

	store, closeStore, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	defer closeStore()

	table := registry.NewTable(cat)
	data, ok, err := store.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return table, &save.Report{}, nil
	}

	report, err := save.NewCoordinator(table).Load(data)
	if err != nil {
		return nil, nil, err
	}
	return table, report, nil
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the cards and slots of the configured save",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, report, err := loadTable(cmd.Context())
		if err != nil {
			return err
		}

		for _, issue := range report.Issues {
			fmt.Fprintln(os.Stderr, color.YellowString("load issue: %s", issue))
		}

		cards := table.Cards.Cards()
		sort.Slice(cards, func(i, j int) bool { return cards[i].ID < cards[j].ID })
		fmt.Println(color.CyanString("cards (%d):", len(cards)))
		for _, c := range cards {
			slot := "-"
			if c.InSlot() {
				slot = fmt.Sprintf("slot %d", c.Slot)
			}
			fmt.Printf("  %4d  %-10s  %-24s  %s\n", c.ID, c.Kind, c.Desc, slot)
		}

		slots := table.Slots.Slots()
		sort.Slice(slots, func(i, j int) bool { return slots[i].ID < slots[j].ID })
		fmt.Println(color.CyanString("slots (%d):", len(slots)))
		for _, s := range slots {
			fmt.Printf("  %4d  (%d,%d)  %v\n", s.ID, s.Pos.X, s.Pos.Y, s.Cards)
		}
		return nil
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the card description database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.LoadFile(cfg.GetString(cfgKeyCatalogPath))
		if err != nil {
			return err
		}

		descs := cat.Descriptions()
		sort.Slice(descs, func(i, j int) bool { return descs[i] < descs[j] })
		for _, d := range descs {
			e, _ := cat.Lookup(d)
			fmt.Printf("%-24s  %-10s  %s\n", e.Desc, color.GreenString(string(e.Kind)), e.Title)
		}
		return nil
	},
}

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "List recipes from the recipe database",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		recipes, err := recipe.LoadFile(cfg.GetString(cfgKeyRecipesPath))
		if err != nil {
			return err
		}

		for _, rec := range recipes {
			if !all && rec.Status != recipe.StatusUnlocked {
				continue
			}
			status := color.RedString(string(recipe.StatusLocked))
			if rec.Status == recipe.StatusUnlocked {
				status = color.GreenString(string(recipe.StatusUnlocked))
			}
			fmt.Printf("%-20s  %-10s  %s\n", rec.ID, status, rec.Title)
		}
		return nil
	},
}

var craftCmd = &cobra.Command{
	Use:   "craft <description>...",
	Short: "Check which unlocked recipe a set of cards would craft",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.LoadFile(cfg.GetString(cfgKeyCatalogPath))
		if err != nil {
			return err
		}
		recipes, err := recipe.LoadFile(cfg.GetString(cfgKeyRecipesPath))
		if err != nil {
			return err
		}

		table := registry.NewTable(cat)
		cards := make([]*model.Card, 0, len(args))
		for _, arg := range args {
			c, err := table.Cards.CreateCard(model.Description(arg))
			if err != nil {
				return err
			}
			cards = append(cards, c)
		}

		var unlocked []recipe.Recipe
		for _, rec := range recipes {
			if rec.Status == recipe.StatusUnlocked {
				unlocked = append(unlocked, rec)
			}
		}

		match, ok := recipe.FindRecipe(cards, unlocked)
		if !ok {
			fmt.Println(color.RedString("no recipe matches"))
			return nil
		}

		fmt.Println(color.GreenString("matches %s (%s)", match.Recipe.ID, match.Recipe.Title))
		for _, c := range match.Consumed {
			fmt.Printf("  consumes %d (%s)\n", c.ID, c.Desc)
		}
		return nil
	},
}
