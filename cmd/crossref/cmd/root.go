package cmd

import (
	"fmt"

	"github.com/abramin/crossref/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "crossref",
	Short: "crossref - Cross-reference diagrams for multi-language codebases",
	Long: `crossref statically analyzes a project directory and renders ASCII
diagrams of its structure: directory trees, per-file code outlines, and
cross-file relation reports (imports, symbol usage, approximate call graph).

It uses lightweight per-language pattern rules rather than full parsers, so
it handles mixed-language projects and stays fast on large trees.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./crossref.yaml)")
}

func GetConfig() *config.Config {
	return cfg
}
