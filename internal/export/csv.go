// ABOUTME: CSV column layouts for the two datasets.
// ABOUTME: Nullable fields render as empty strings, matching the original exports.

package export

import "github.com/hamidahoderinwale/licences-db/internal/models"

var licenseHeader = []string{
	"license_name", "spdx_id", "license_family", "version",
	"version_modifier", "usage_category", "full_text", "source_url",
	"page_markdown", "fsf_tags", "fsf_gpl_compatibility",
}

var exceptionHeader = []string{
	"exception_id", "exception_name", "full_text", "source_url",
	"page_markdown", "is_deprecated",
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func licenseRecords(rows []models.LicenseRow) [][]string {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.LicenseName,
			r.SPDXID,
			r.LicenseFamily,
			orEmpty(r.Version),
			orEmpty(r.VersionModifier),
			r.UsageCategory,
			r.FullText,
			r.SourceURL,
			r.PageMarkdown,
			orEmpty(r.FSFTags),
			orEmpty(r.FSFGPLCompat),
		})
	}
	return records
}

func exceptionRecords(rows []models.ExceptionRow) [][]string {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		deprecated := "false"
		if r.IsDeprecated {
			deprecated = "true"
		}
		records = append(records, []string{
			r.ExceptionID,
			r.ExceptionName,
			r.FullText,
			r.SourceURL,
			r.PageMarkdown,
			deprecated,
		})
	}
	return records
}
