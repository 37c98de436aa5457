// ABOUTME: Models for SPDX licence list entries and detail records.
// ABOUTME: JSON tags mirror the field names of the SPDX license-list-data JSON.

package models

// LicenseEntry is one entry of the master licenses.json list.
type LicenseEntry struct {
	LicenseID     string   `json:"licenseId"`
	Name          string   `json:"name"`
	Reference     string   `json:"reference"`
	IsDeprecated  bool     `json:"isDeprecatedLicenseId"`
	IsOsiApproved bool     `json:"isOsiApproved"`
	SeeAlso       []string `json:"seeAlso"`
}

// SourceURL is the official SPDX page for this licence, falling back to
// the canonical URL scheme when the list carries no reference.
func (e LicenseEntry) SourceURL() string {
	if e.Reference != "" {
		return e.Reference
	}
	return "https://spdx.org/licenses/" + e.LicenseID + ".html"
}

// CrossRef is one cross-reference of a licence detail record.
type CrossRef struct {
	URL     string `json:"url"`
	IsValid bool   `json:"isValid"`
}

// LicenseDetail is the per-licence detail JSON (details/{id}.json).
type LicenseDetail struct {
	LicenseID             string     `json:"licenseId"`
	Name                  string     `json:"name"`
	LicenseText           string     `json:"licenseText"`
	StandardLicenseHeader string     `json:"standardLicenseHeader"`
	Comment               string     `json:"comment"`
	LicenseComments       string     `json:"licenseComments"`
	SeeAlso               []string   `json:"seeAlso"`
	CrossRef              []CrossRef `json:"crossRef"`
}

// Notes returns the detail's comment, whichever field the record uses.
func (d LicenseDetail) Notes() string {
	if d.Comment != "" {
		return d.Comment
	}
	return d.LicenseComments
}

// FSFEntry is the per-licence record of the FSF metadata API.
type FSFEntry struct {
	ID   string   `json:"id"`
	Tags []string `json:"tags"`
}

// LicenseRow is one flat row of the licence dataset. Pointer fields are
// null in the output when the underlying value is absent, which carries
// meaning (no FSF record vs. unclassified, no version vs. no modifier).
type LicenseRow struct {
	LicenseName     string  `json:"license_name" yaml:"license_name" parquet:"license_name"`
	SPDXID          string  `json:"spdx_id" yaml:"spdx_id" parquet:"spdx_id"`
	LicenseFamily   string  `json:"license_family" yaml:"license_family" parquet:"license_family"`
	Version         *string `json:"version" yaml:"version" parquet:"version,optional"`
	VersionModifier *string `json:"version_modifier" yaml:"version_modifier" parquet:"version_modifier,optional"`
	UsageCategory   string  `json:"usage_category" yaml:"usage_category" parquet:"usage_category"`
	FullText        string  `json:"full_text" yaml:"-" parquet:"full_text"`
	SourceURL       string  `json:"source_url" yaml:"source_url" parquet:"source_url"`
	PageMarkdown    string  `json:"page_markdown" yaml:"-" parquet:"page_markdown"`
	FSFTags         *string `json:"fsf_tags" yaml:"fsf_tags" parquet:"fsf_tags,optional"`
	FSFGPLCompat    *string `json:"fsf_gpl_compatibility" yaml:"fsf_gpl_compatibility" parquet:"fsf_gpl_compatibility,optional"`
}
