// ABOUTME: Build command producing the licence dataset.
// ABOUTME: Fetch, parse, classify, and write in the selected formats.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hamidahoderinwale/licences-db/internal/export"
	"github.com/hamidahoderinwale/licences-db/internal/ui"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the licence dataset",
	Long:  `Fetch every SPDX licence with its FSF metadata and write the flat dataset to the output directory.`,
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

		rows, err := builder.BuildLicenses(cmd.Context(), sample)
		if err != nil {
			return fmt.Errorf("build failed: %w", err)
		}

		manifest, err := export.Licenses(outputDir, rows, formats)
		if err != nil {
			return fmt.Errorf("write dataset: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Built %d licence rows in %s (%s)",
			manifest.Records, outputDir, strings.Join(manifest.Formats, ", "))))
		return nil
	},
}

func init() {
	buildCmd.Flags().StringP("output-dir", "o", "", "output directory (default from config)")
	buildCmd.Flags().StringP("format", "f", "csv,json,parquet", "comma-separated output formats (csv|json|jsonl|parquet|md)")
	buildCmd.Flags().Int("sample", 0, "process only the first N licences (for testing)")
	rootCmd.AddCommand(buildCmd)
}
