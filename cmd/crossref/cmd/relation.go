package cmd

import (
	"fmt"
	"os"

	"github.com/abramin/crossref/internal/index"
	"github.com/abramin/crossref/internal/relation"
	"github.com/spf13/cobra"
)

var (
	relationPath   string
	relationOutput string
	relationDepth  int
)

var relationCmd = &cobra.Command{
	Use:   "relation",
	Short: "Generate a code relation diagram showing dependencies",
	Long: `Analyze a project directory and render a relation report.

Depth controls the detail level:
  1  file import dependencies (local vs external)
  2  + symbol usage across files
  3  + approximate function call graph`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if relationDepth < 1 || relationDepth > 3 {
			return fmt.Errorf("invalid depth %d (want 1-3)", relationDepth)
		}

		fmt.Printf("Generating code relation diagram for %s\n", relationPath)

		indexer := index.NewIndexer(GetConfig(), relationPath)
		project, err := indexer.Run(cmd.Context())
		if err != nil {
			return fmt.Errorf("indexing failed: %w", err)
		}

		graphs, err := relation.Resolve(project, relationDepth, GetConfig().Ambiguous)
		if err != nil {
			return err
		}

		report := relation.Render(graphs)
		if err := os.WriteFile(relationOutput, []byte(report), 0644); err != nil {
			return fmt.Errorf("writing diagram: %w", err)
		}

		fmt.Printf("Success: Relation diagram saved to %s\n", relationOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(relationCmd)
	relationCmd.Flags().StringVar(&relationPath, "path", "", "path to the source directory to analyze")
	relationCmd.Flags().StringVar(&relationOutput, "output", "relation_diagram.txt", "output file path")
	relationCmd.Flags().IntVar(&relationDepth, "depth", 1, "depth of relation analysis (1-3)")
	relationCmd.MarkFlagRequired("path")
}
