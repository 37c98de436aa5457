// ABOUTME: Dataset writers for csv, json, jsonl, parquet, and markdown formats.
// ABOUTME: Each build emits the selected formats plus a manifest.json.

package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/hamidahoderinwale/licences-db/internal/models"
)

// Formats lists the supported output formats.
var Formats = []string{"csv", "json", "jsonl", "parquet", "md"}

// ValidFormats checks a requested format set, normalizing order and case.
func ValidFormats(requested []string) ([]string, error) {
	known := make(map[string]bool, len(Formats))
	for _, f := range Formats {
		known[f] = true
	}

	seen := make(map[string]bool)
	var out []string
	for _, f := range requested {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		if !known[f] {
			return nil, fmt.Errorf("unknown format %q (supported: %s)", f, strings.Join(Formats, ", "))
		}
		seen[f] = true
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no output format selected")
	}
	sort.Strings(out)
	return out, nil
}

// Licenses writes the licence dataset to dir in the given formats and
// returns the completed manifest.
func Licenses(dir string, rows []models.LicenseRow, formats []string) (*models.Manifest, error) {
	manifest := models.NewManifest("spdx-licenses")

	write := func(format string) (string, error) {
		switch format {
		case "csv":
			path := filepath.Join(dir, "spdx_licenses.csv")
			return path, writeCSV(path, licenseHeader, licenseRecords(rows))
		case "json":
			path := filepath.Join(dir, "spdx_licenses.json")
			return path, writeJSON(path, rows)
		case "jsonl":
			path := filepath.Join(dir, "spdx_licenses.jsonl")
			return path, writeJSONL(path, rows)
		case "parquet":
			path := filepath.Join(dir, "spdx_licenses.parquet")
			return path, writeParquet(path, rows)
		case "md":
			path := filepath.Join(dir, "pages")
			return path, writeLicensePages(path, rows)
		default:
			return "", fmt.Errorf("unknown format %q", format)
		}
	}

	if err := writeAll(dir, manifest, formats, write); err != nil {
		return nil, err
	}
	manifest.Finish(len(rows))
	return manifest, writeManifest(dir, manifest)
}

// Exceptions writes the exception dataset to dir in the given formats.
func Exceptions(dir string, rows []models.ExceptionRow, formats []string) (*models.Manifest, error) {
	manifest := models.NewManifest("spdx-exceptions")

	write := func(format string) (string, error) {
		switch format {
		case "csv":
			path := filepath.Join(dir, "spdx_exceptions.csv")
			return path, writeCSV(path, exceptionHeader, exceptionRecords(rows))
		case "json":
			path := filepath.Join(dir, "spdx_exceptions.json")
			return path, writeJSON(path, rows)
		case "jsonl":
			path := filepath.Join(dir, "spdx_exceptions.jsonl")
			return path, writeJSONL(path, rows)
		case "parquet":
			path := filepath.Join(dir, "spdx_exceptions.parquet")
			return path, writeParquet(path, rows)
		case "md":
			path := filepath.Join(dir, "exception_pages")
			return path, writeExceptionPages(path, rows)
		default:
			return "", fmt.Errorf("unknown format %q", format)
		}
	}

	if err := writeAll(dir, manifest, formats, write); err != nil {
		return nil, err
	}
	manifest.Finish(len(rows))
	return manifest, writeManifest(dir, manifest)
}

func writeAll(dir string, manifest *models.Manifest, formats []string, write func(string) (string, error)) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, format := range formats {
		path, err := write(format)
		if err != nil {
			return fmt.Errorf("write %s: %w", format, err)
		}
		manifest.Formats = append(manifest.Formats, format)
		manifest.Outputs = append(manifest.Outputs, path)
	}
	return nil
}

// writeManifest names the manifest after the dataset so licence and
// exception builds can share an output directory.
func writeManifest(dir string, manifest *models.Manifest) error {
	return writeJSON(filepath.Join(dir, manifest.Dataset+".manifest.json"), manifest)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func writeJSONL[T any](path string, rows []T) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			_ = f.Close()
			return err
		}
	}
	return f.Close()
}

func writeCSV(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.WriteAll(records); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeParquet[T any](path string, rows []T) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := parquet.NewGenericWriter[T](f)
	if _, err := w.Write(rows); err != nil {
		_ = w.Close()
		_ = f.Close()
		return err
	}
	if err := w.Close(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
