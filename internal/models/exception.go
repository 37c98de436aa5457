// ABOUTME: Models for SPDX licence exceptions (used in WITH expressions).
// ABOUTME: Covers the exceptions.json list and per-exception detail records.

package models

// ExceptionEntry is one entry of the master exceptions.json list.
type ExceptionEntry struct {
	LicenseExceptionID string   `json:"licenseExceptionId"`
	Name               string   `json:"name"`
	Reference          string   `json:"reference"`
	IsDeprecated       bool     `json:"isDeprecatedLicenseId"`
	SeeAlso            []string `json:"seeAlso"`
}

// SourceURL is the official SPDX page for this exception.
func (e ExceptionEntry) SourceURL() string {
	if e.Reference != "" {
		return e.Reference
	}
	return "https://spdx.org/licenses/" + e.LicenseExceptionID + ".html"
}

// ExceptionDetail is the per-exception detail JSON (exceptions/{id}.json).
type ExceptionDetail struct {
	LicenseExceptionID   string   `json:"licenseExceptionId"`
	Name                 string   `json:"name"`
	LicenseExceptionText string   `json:"licenseExceptionText"`
	LicenseComments      string   `json:"licenseComments"`
	SeeAlso              []string `json:"seeAlso"`
}

// ExceptionRow is one flat row of the exceptions dataset.
type ExceptionRow struct {
	ExceptionID   string `json:"exception_id" yaml:"exception_id" parquet:"exception_id"`
	ExceptionName string `json:"exception_name" yaml:"exception_name" parquet:"exception_name"`
	FullText      string `json:"full_text" yaml:"-" parquet:"full_text"`
	SourceURL     string `json:"source_url" yaml:"source_url" parquet:"source_url"`
	PageMarkdown  string `json:"page_markdown" yaml:"-" parquet:"page_markdown"`
	IsDeprecated  bool   `json:"is_deprecated" yaml:"is_deprecated" parquet:"is_deprecated"`
}
