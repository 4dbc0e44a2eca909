package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corvusworks/seedscan/internal/config"
	"github.com/corvusworks/seedscan/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize the seedscan configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultPath()
		if _, err := os.Stat(path); os.IsNotExist(err) {
			fmt.Printf("%s %s\n", path, ui.Hint("(not created yet)"))
			return nil
		}
		fmt.Println(path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file if none exists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateDefault()
		if err != nil {
			return &codedError{Code: ErrConfigInvalid, Err: err}
		}
		fmt.Println(ui.Successf("config at %s", ui.FilePath(path)))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
