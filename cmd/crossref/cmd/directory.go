package cmd

import (
	"fmt"
	"os"

	"github.com/abramin/crossref/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	dirPath     string
	dirOutput   string
	dirMaxDepth int
)

var directoryCmd = &cobra.Command{
	Use:   "directory",
	Short: "Generate a directory structure diagram",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Generating directory diagram for %s\n", dirPath)

		tree, err := diagram.Tree(dirPath, dirMaxDepth)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dirOutput, []byte(tree), 0644); err != nil {
			return fmt.Errorf("writing diagram: %w", err)
		}

		fmt.Printf("Success: Diagram saved to %s\n", dirOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(directoryCmd)
	directoryCmd.Flags().StringVar(&dirPath, "path", "", "path to the directory to visualize")
	directoryCmd.Flags().StringVar(&dirOutput, "output", "directory_diagram.txt", "output file path")
	directoryCmd.Flags().IntVar(&dirMaxDepth, "max-depth", 0, "maximum directory depth to visualize (0 = unlimited)")
	directoryCmd.MarkFlagRequired("path")
}
