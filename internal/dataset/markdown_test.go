// ABOUTME: Tests for the generated markdown pages.
// ABOUTME: Section presence, FSF block gating, and reference capping.

package dataset

import (
	"fmt"
	"strings"
	"testing"

	"github.com/hamidahoderinwale/licences-db/internal/models"
)

func TestLicensePage(t *testing.T) {
	compat := "GPL-2 and GPL-3 compatible"
	detail := &models.LicenseDetail{
		LicenseID:   "MIT",
		Name:        "MIT License",
		LicenseText: "Permission is hereby granted...",
		Comment:     "A short and permissive licence.",
		SeeAlso:     []string{"https://opensource.org/license/mit/"},
	}

	page := LicensePage(detail, "https://spdx.org/licenses/MIT.html", []string{"libre"}, &compat)

	for _, want := range []string{
		"# MIT License",
		"**SPDX Identifier:** `MIT`",
		"**Source:** https://spdx.org/licenses/MIT.html",
		"## Notes",
		"## FSF Classification",
		"**GPL compatibility:** GPL-2 and GPL-3 compatible",
		"**Tags:** libre",
		"## License Text",
		"Permission is hereby granted...",
		"## Other References",
		"- https://opensource.org/license/mit/",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestLicensePageWithoutFSFData(t *testing.T) {
	detail := &models.LicenseDetail{LicenseID: "X11", LicenseText: "text"}

	page := LicensePage(detail, "https://spdx.org/licenses/X11.html", nil, nil)

	if strings.Contains(page, "FSF Classification") {
		t.Error("expected no FSF section without FSF data")
	}
	// Name falls back to the identifier.
	if !strings.Contains(page, "# X11") {
		t.Error("expected identifier as title fallback")
	}
}

func TestLicensePageStandardHeader(t *testing.T) {
	detail := &models.LicenseDetail{
		LicenseID:             "GPL-3.0-only",
		Name:                  "GNU GPL v3.0 only",
		LicenseText:           "text",
		StandardLicenseHeader: "This program is free software...",
	}

	page := LicensePage(detail, "url", nil, nil)
	if !strings.Contains(page, "## Standard License Header") {
		t.Error("expected standard header section")
	}
}

func TestLicensePageCapsReferences(t *testing.T) {
	detail := &models.LicenseDetail{LicenseID: "Ref-1.0", LicenseText: "text"}
	for i := 0; i < 25; i++ {
		detail.SeeAlso = append(detail.SeeAlso, fmt.Sprintf("https://example.com/%d", i))
	}

	page := LicensePage(detail, "url", nil, nil)
	if got := strings.Count(page, "- https://example.com/"); got != maxReferenceLinks {
		t.Errorf("expected %d reference links, got %d", maxReferenceLinks, got)
	}
}

func TestLicensePageNilDetail(t *testing.T) {
	if page := LicensePage(nil, "url", nil, nil); page != "" {
		t.Errorf("expected empty page for nil detail, got %q", page)
	}
}

func TestExceptionPage(t *testing.T) {
	detail := &models.ExceptionDetail{
		LicenseExceptionID:   "Classpath-exception-2.0",
		Name:                 "Classpath exception 2.0",
		LicenseExceptionText: "Linking this library...",
	}

	page := ExceptionPage(detail, "https://spdx.org/licenses/Classpath-exception-2.0.html")

	for _, want := range []string{
		"# Classpath exception 2.0",
		"**SPDX Exception ID:** `Classpath-exception-2.0`",
		"`LICENSE WITH Classpath-exception-2.0`",
		"## Exception Text",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}
