// ABOUTME: Usage category derivation for licences as used on dataset hubs.
// ABOUTME: Exact-match table first, then family substring fallbacks.

package dataset

import "strings"

// usageMap categorizes well-known licences by their typical use.
var usageMap = map[string]string{
	// Licences commonly used for both datasets and models
	"MIT":          "both",
	"Apache-2.0":   "both",
	"BSD-2-Clause": "both",
	"BSD-3-Clause": "both",
	"GPL-3.0":      "both",
	"GPL-2.0":      "both",
	"LGPL-3.0":     "both",
	"LGPL-2.1":     "both",
	"ISC":          "both",
	"MPL-2.0":      "both",

	// Creative Commons, primarily datasets
	"CC0-1.0":         "both",
	"CC-BY-4.0":       "dataset",
	"CC-BY-SA-4.0":    "dataset",
	"CC-BY-NC-4.0":    "dataset",
	"CC-BY-NC-SA-4.0": "dataset",
	"CC-BY-ND-4.0":    "dataset",
	"CC-BY-NC-ND-4.0": "dataset",

	// Data-specific licences
	"CDLA-Permissive-1.0": "dataset",
	"CDLA-Permissive-2.0": "dataset",
	"CDLA-Sharing-1.0":    "dataset",
	"C-UDA-1.0":           "dataset",
	"ODbL-1.0":            "dataset",
	"PDDL-1.0":            "dataset",

	// Model-specific (RAIL and similar)
	"OpenRAIL-M":                "model",
	"OpenRAIL++":                "model",
	"BigScience-OpenRAIL-M":     "model",
	"CreativeML-OpenRAIL-M":     "model",
	"BigScience-BLOOM-RAIL-1.0": "model",

	// Code/software specific
	"AGPL-3.0":  "code",
	"Unlicense": "both",
	"WTFPL":     "code",
	"Zlib":      "code",
	"BSL-1.0":   "code",

	// Proprietary/restrictive
	"SSPL-1.0": "code",
}

// UsageCategory returns the typical usage of a licence: "dataset",
// "model", "both", "code", or "other" when no pattern applies.
func UsageCategory(spdxID string) string {
	if cat, ok := usageMap[spdxID]; ok {
		return cat
	}

	switch {
	case strings.Contains(spdxID, "CC-BY"), strings.Contains(spdxID, "CC-"):
		return "dataset"
	case strings.Contains(spdxID, "GPL"), strings.Contains(spdxID, "LGPL"):
		return "both"
	case strings.Contains(spdxID, "BSD"):
		return "both"
	case strings.Contains(spdxID, "Apache"):
		return "both"
	case strings.Contains(spdxID, "RAIL"), strings.Contains(spdxID, "OpenRAIL"):
		return "model"
	case strings.Contains(spdxID, "CDLA"), strings.Contains(spdxID, "ODbL"):
		return "dataset"
	}

	return "other"
}
