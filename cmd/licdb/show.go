// ABOUTME: Show command for displaying a single licence.
// ABOUTME: Renders the generated page markdown with glamour.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hamidahoderinwale/licences-db/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <spdx-id>",
	Short: "Show one licence",
	Long:  `Fetch a single licence, print its parsed fields and FSF classification, and render its page.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		builder.Progress = nil // keep the page output clean

		row, err := builder.Lookup(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get licence: %w", err)
		}

		fmt.Print(ui.FormatLicenseHeader(row))

		page, _ := ui.FormatPage(row.PageMarkdown)
		fmt.Print(page)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
