// ABOUTME: Markdown directory export, one page per identifier.
// ABOUTME: YAML frontmatter carries the row metadata above the page body.

package export

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hamidahoderinwale/licences-db/internal/models"
)

func writeLicensePages(dir string, rows []models.LicenseRow) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writePage(dir, row.SPDXID, row, row.PageMarkdown); err != nil {
			return err
		}
	}
	return nil
}

func writeExceptionPages(dir string, rows []models.ExceptionRow) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writePage(dir, row.ExceptionID, row, row.PageMarkdown); err != nil {
			return err
		}
	}
	return nil
}

func writePage(dir, id string, meta any, body string) error {
	var sb strings.Builder
	sb.WriteString("---\n")

	frontmatter, err := yaml.Marshal(meta)
	if err != nil {
		return err
	}
	sb.Write(frontmatter)
	sb.WriteString("---\n\n")
	sb.WriteString(body)

	path := filepath.Join(dir, sanitizeFilename(id)+".md")
	return os.WriteFile(path, []byte(sb.String()), 0644)
}

func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-",
		"?", "-", "\"", "-", "<", "-", ">", "-", "|", "-",
	)
	name = replacer.Replace(name)
	if len(name) > 100 {
		name = name[:100]
	}
	return name
}
