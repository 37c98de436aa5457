// ABOUTME: Exceptions command producing the licence-exception dataset.
// ABOUTME: Exceptions are the WITH-expression half of SPDX identifiers.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hamidahoderinwale/licences-db/internal/export"
	"github.com/hamidahoderinwale/licences-db/internal/ui"
)

var exceptionsCmd = &cobra.Command{
	Use:   "exceptions",
	Short: "Build the exception dataset",
	Long:  `Fetch every SPDX licence exception and write the flat dataset to the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputDir, _ := cmd.Flags().GetString("output-dir")
		formatFlag, _ := cmd.Flags().GetString("format")
		sample, _ := cmd.Flags().GetInt("sample")

		if outputDir == "" {
			outputDir = cfg.OutputDir
		}
		formats, err := export.ValidFormats(strings.Split(formatFlag, ","))
		if err != nil {
			return err
		}

		rows, err := builder.BuildExceptions(cmd.Context(), sample)
		if err != nil {
			return fmt.Errorf("build failed: %w", err)
		}

		manifest, err := export.Exceptions(outputDir, rows, formats)
		if err != nil {
			return fmt.Errorf("write dataset: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Built %d exception rows in %s (%s)",
			manifest.Records, outputDir, strings.Join(manifest.Formats, ", "))))
		return nil
	},
}

func init() {
	exceptionsCmd.Flags().StringP("output-dir", "o", "", "output directory (default from config)")
	exceptionsCmd.Flags().StringP("format", "f", "csv,json,parquet", "comma-separated output formats (csv|json|jsonl|parquet|md)")
	exceptionsCmd.Flags().Int("sample", 0, "process only the first N exceptions (for testing)")
	rootCmd.AddCommand(exceptionsCmd)
}
