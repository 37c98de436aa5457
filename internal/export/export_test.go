// ABOUTME: Tests for the dataset writers.
// ABOUTME: Round-trips CSV/JSON/JSONL, checks manifests, null handling, pages.

package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hamidahoderinwale/licences-db/internal/models"
)

func strptr(s string) *string { return &s }

func sampleLicenseRows() []models.LicenseRow {
	return []models.LicenseRow{
		{
			LicenseName:     "GNU General Public License v2.0 only",
			SPDXID:          "GPL-2.0-only",
			LicenseFamily:   "GPL",
			Version:         strptr("2.0"),
			VersionModifier: strptr("only"),
			UsageCategory:   "both",
			FullText:        "Everyone is permitted...",
			SourceURL:       "https://spdx.org/licenses/GPL-2.0-only.html",
			PageMarkdown:    "# GNU GPL v2.0\n",
			FSFTags:         strptr(`["gpl-2-compatible","libre"]`),
			FSFGPLCompat:    strptr("GPL-2 compatible only"),
		},
		{
			LicenseName:   "MIT License",
			SPDXID:        "MIT",
			LicenseFamily: "MIT",
			UsageCategory: "both",
			FullText:      "Permission is hereby granted...",
			SourceURL:     "https://spdx.org/licenses/MIT.html",
			PageMarkdown:  "# MIT License\n",
		},
	}
}

func TestValidFormats(t *testing.T) {
	formats, err := ValidFormats([]string{"JSON", "csv", " json "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(formats) != 2 || formats[0] != "csv" || formats[1] != "json" {
		t.Errorf("unexpected formats: %v", formats)
	}

	if _, err := ValidFormats([]string{"xlsx"}); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := ValidFormats([]string{""}); err == nil {
		t.Error("expected error for empty selection")
	}
}

func TestLicensesCSV(t *testing.T) {
	dir := t.TempDir()

	if _, err := Licenses(dir, sampleLicenseRows(), []string{"csv"}); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "spdx_licenses.csv"))
	if err != nil {
		t.Fatalf("expected csv output: %v", err)
	}
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if records[0][0] != "license_name" || records[0][10] != "fsf_gpl_compatibility" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][3] != "2.0" || records[1][4] != "only" {
		t.Errorf("unexpected GPL record: %v", records[1])
	}
	// Nullable fields render as empty strings.
	if records[2][3] != "" || records[2][10] != "" {
		t.Errorf("expected empty nullable fields for MIT: %v", records[2])
	}
}

func TestLicensesJSONPreservesNulls(t *testing.T) {
	dir := t.TempDir()

	if _, err := Licenses(dir, sampleLicenseRows(), []string{"json"}); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "spdx_licenses.json"))
	if err != nil {
		t.Fatalf("expected json output: %v", err)
	}

	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	// MIT has no FSF record: the field must be null, not absent or "".
	val, ok := rows[1]["fsf_gpl_compatibility"]
	if !ok {
		t.Fatal("expected fsf_gpl_compatibility key")
	}
	if val != nil {
		t.Errorf("expected null, got %v", val)
	}
	if rows[0]["fsf_gpl_compatibility"] != "GPL-2 compatible only" {
		t.Errorf("unexpected GPL classification: %v", rows[0]["fsf_gpl_compatibility"])
	}
}

func TestLicensesJSONL(t *testing.T) {
	dir := t.TempDir()

	if _, err := Licenses(dir, sampleLicenseRows(), []string{"jsonl"}); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "spdx_licenses.jsonl"))
	if err != nil {
		t.Fatalf("expected jsonl output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	var row models.LicenseRow
	if err := json.Unmarshal([]byte(lines[0]), &row); err != nil {
		t.Fatalf("decode line: %v", err)
	}
	if row.SPDXID != "GPL-2.0-only" {
		t.Errorf("unexpected first row: %s", row.SPDXID)
	}
}

func TestLicensesParquet(t *testing.T) {
	dir := t.TempDir()

	if _, err := Licenses(dir, sampleLicenseRows(), []string{"parquet"}); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "spdx_licenses.parquet"))
	if err != nil {
		t.Fatalf("expected parquet output: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty parquet file")
	}
}

func TestLicensesMarkdownPages(t *testing.T) {
	dir := t.TempDir()

	if _, err := Licenses(dir, sampleLicenseRows(), []string{"md"}); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "pages", "MIT.md"))
	if err != nil {
		t.Fatalf("expected MIT page: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "---\n") {
		t.Error("expected YAML frontmatter")
	}
	if !strings.Contains(content, "spdx_id: MIT") {
		t.Error("expected spdx_id in frontmatter")
	}
	if !strings.Contains(content, "# MIT License") {
		t.Error("expected page body")
	}
}

func TestManifest(t *testing.T) {
	dir := t.TempDir()

	manifest, err := Licenses(dir, sampleLicenseRows(), []string{"csv", "json"})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if manifest.Records != 2 {
		t.Errorf("expected 2 records, got %d", manifest.Records)
	}
	if len(manifest.Formats) != 2 || len(manifest.Outputs) != 2 {
		t.Errorf("unexpected manifest: %+v", manifest)
	}
	if manifest.Dataset != "spdx-licenses" {
		t.Errorf("unexpected dataset name: %s", manifest.Dataset)
	}

	data, err := os.ReadFile(filepath.Join(dir, "spdx-licenses.manifest.json"))
	if err != nil {
		t.Fatalf("expected manifest file: %v", err)
	}
	var onDisk models.Manifest
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatalf("decode manifest: %v", err)
	}
	if onDisk.ID != manifest.ID {
		t.Error("manifest ID mismatch")
	}
}

func TestExceptions(t *testing.T) {
	dir := t.TempDir()
	rows := []models.ExceptionRow{
		{
			ExceptionID:   "Classpath-exception-2.0",
			ExceptionName: "Classpath exception 2.0",
			FullText:      "Linking this library...",
			SourceURL:     "https://spdx.org/licenses/Classpath-exception-2.0.html",
			PageMarkdown:  "# Classpath exception 2.0\n",
			IsDeprecated:  false,
		},
	}

	manifest, err := Exceptions(dir, rows, []string{"csv", "md"})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if manifest.Dataset != "spdx-exceptions" {
		t.Errorf("unexpected dataset name: %s", manifest.Dataset)
	}

	f, err := os.Open(filepath.Join(dir, "spdx_exceptions.csv"))
	if err != nil {
		t.Fatalf("expected csv output: %v", err)
	}
	defer func() { _ = f.Close() }()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(records))
	}
	if records[1][5] != "false" {
		t.Errorf("expected is_deprecated false, got %q", records[1][5])
	}

	if _, err := os.Stat(filepath.Join(dir, "exception_pages", "Classpath-exception-2.0.md")); err != nil {
		t.Errorf("expected exception page: %v", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	if got := sanitizeFilename("a/b:c*d"); got != "a-b-c-d" {
		t.Errorf("unexpected sanitized name: %q", got)
	}
	long := strings.Repeat("x", 150)
	if got := sanitizeFilename(long); len(got) != 100 {
		t.Errorf("expected truncation to 100 chars, got %d", len(got))
	}
}
