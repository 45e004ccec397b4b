package cmd

import (
	"fmt"
	"os"

	"github.com/abramin/crossref/internal/diagram"
	"github.com/abramin/crossref/internal/lang"
	"github.com/spf13/cobra"
)

var (
	codePath     string
	codeOutput   string
	codeLanguage string
)

var codeCmd = &cobra.Command{
	Use:   "code",
	Short: "Generate a source code structure diagram",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Generating code diagram for %s\n", codePath)

		override := lang.Unknown
		if codeLanguage != "" {
			override = lang.Language(codeLanguage)
			if !override.Known() {
				return fmt.Errorf("unsupported language %q", codeLanguage)
			}
		}

		outline, err := diagram.Outline(GetConfig(), codePath, override)
		if err != nil {
			return err
		}
		if err := os.WriteFile(codeOutput, []byte(outline), 0644); err != nil {
			return fmt.Errorf("writing diagram: %w", err)
		}

		fmt.Printf("Success: Diagram saved to %s\n", codeOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(codeCmd)
	codeCmd.Flags().StringVar(&codePath, "path", "", "path to the source file or directory to visualize")
	codeCmd.Flags().StringVar(&codeOutput, "output", "code_diagram.txt", "output file path")
	codeCmd.Flags().StringVar(&codeLanguage, "language", "", "programming language (auto-detect if not specified)")
	codeCmd.MarkFlagRequired("path")
}
