package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var flagConfigCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Save it as ~/.pong/configs/pong.yaml or ./configs/pong.yaml and edit it,
or pass any file with --config. TOML files (pong.toml) work too.

Examples:
  pong config > ~/.pong/configs/pong.yaml
  pong config --check --config ./my-pong.toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigCheck, "check", false, "Validate the config that would be loaded and print its source")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigCheck {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	_, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Config OK (%s)\n", source)
}
