// ABOUTME: Terminal formatting for licdb output.
// ABOUTME: Uses glamour for markdown pages and fatih/color for styling.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"

	"github.com/hamidahoderinwale/licences-db/internal/models"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

// FormatLicenseHeader renders the parsed metadata block shown above a
// licence page.
func FormatLicenseHeader(row *models.LicenseRow) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s\n", bold(row.LicenseName)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("SPDX ID:"), cyan(row.SPDXID)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Family:"), row.LicenseFamily))

	if row.Version != nil {
		version := *row.Version
		if row.VersionModifier != nil {
			version += " (" + *row.VersionModifier + ")"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", faint("Version:"), version))
	}

	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Usage:"), row.UsageCategory))

	if row.FSFGPLCompat != nil {
		sb.WriteString(fmt.Sprintf("%s %s\n", faint("FSF:"), *row.FSFGPLCompat))
	}

	sb.WriteString(Separator())
	return sb.String()
}

// FormatPage renders a markdown page for the terminal, falling back to
// the raw markdown when rendering fails.
func FormatPage(page string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return page, nil //nolint:nilerr // Intentional fallback
	}

	out, err := renderer.Render(page)
	if err != nil {
		return page, nil //nolint:nilerr // Intentional fallback
	}
	return out, nil
}

func Separator() string {
	return faint(strings.Repeat("─", 50)) + "\n"
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}
