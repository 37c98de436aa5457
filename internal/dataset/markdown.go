// ABOUTME: Self-contained markdown pages for licences and exceptions.
// ABOUTME: Metadata header, notes, fenced legal text, capped reference list.

package dataset

import (
	"fmt"
	"strings"

	"github.com/hamidahoderinwale/licences-db/internal/models"
)

// maxReferenceLinks caps the reference section so pages stay readable.
const maxReferenceLinks = 10

// LicensePage builds a self-contained markdown document for a licence.
// fsfTags and fsfCompat are only rendered when FSF data exists.
func LicensePage(detail *models.LicenseDetail, sourceURL string, fsfTags []string, fsfCompat *string) string {
	if detail == nil {
		return ""
	}

	name := detail.Name
	if name == "" {
		name = detail.LicenseID
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n", name))
	sb.WriteString(fmt.Sprintf("**SPDX Identifier:** `%s`\n", detail.LicenseID))
	sb.WriteString(fmt.Sprintf("**Source:** %s\n", sourceURL))

	if notes := detail.Notes(); notes != "" {
		sb.WriteString("## Notes\n\n")
		sb.WriteString(notes + "\n")
	}

	if len(fsfTags) > 0 || fsfCompat != nil {
		sb.WriteString("## FSF Classification\n\n")
		if fsfCompat != nil {
			sb.WriteString(fmt.Sprintf("**GPL compatibility:** %s\n\n", *fsfCompat))
		}
		if len(fsfTags) > 0 {
			sb.WriteString(fmt.Sprintf("**Tags:** %s\n\n", strings.Join(fsfTags, ", ")))
		}
		sb.WriteString("(Source: [FSF License List API](https://github.com/spdx/fsf-api))\n\n")
	}

	sb.WriteString("## License Text\n\n")
	sb.WriteString("```\n")
	sb.WriteString(strings.TrimSpace(detail.LicenseText))
	sb.WriteString("\n```\n")

	if detail.StandardLicenseHeader != "" {
		sb.WriteString("## Standard License Header\n\n")
		sb.WriteString("```\n")
		sb.WriteString(strings.TrimSpace(detail.StandardLicenseHeader))
		sb.WriteString("\n```\n")
	}

	refs := make([]string, 0, len(detail.SeeAlso)+len(detail.CrossRef))
	refs = append(refs, detail.SeeAlso...)
	for _, ref := range detail.CrossRef {
		if ref.URL != "" {
			refs = append(refs, ref.URL)
		}
	}
	if len(refs) > 0 {
		if len(refs) > maxReferenceLinks {
			refs = refs[:maxReferenceLinks]
		}
		sb.WriteString("## Other References\n\n")
		for _, url := range refs {
			sb.WriteString(fmt.Sprintf("- %s\n", url))
		}
	}

	return sb.String()
}

// ExceptionPage builds a self-contained markdown document for an exception.
func ExceptionPage(detail *models.ExceptionDetail, sourceURL string) string {
	if detail == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n", detail.Name))
	sb.WriteString(fmt.Sprintf("**SPDX Exception ID:** `%s`\n", detail.LicenseExceptionID))
	sb.WriteString(fmt.Sprintf("**Source:** %s\n", sourceURL))
	sb.WriteString(fmt.Sprintf("\n**Used in expressions:** `LICENSE WITH %s`\n", detail.LicenseExceptionID))

	if detail.LicenseComments != "" {
		sb.WriteString("## Notes\n\n")
		sb.WriteString(detail.LicenseComments + "\n")
	}

	sb.WriteString("## Exception Text\n\n")
	sb.WriteString("```\n")
	sb.WriteString(strings.TrimSpace(detail.LicenseExceptionText))
	sb.WriteString("\n```\n")

	if len(detail.SeeAlso) > 0 {
		refs := detail.SeeAlso
		if len(refs) > maxReferenceLinks {
			refs = refs[:maxReferenceLinks]
		}
		sb.WriteString("## References\n\n")
		for _, url := range refs {
			sb.WriteString(fmt.Sprintf("- %s\n", url))
		}
	}

	return sb.String()
}
