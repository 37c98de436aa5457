// ABOUTME: Tests for usage category derivation.
// ABOUTME: Exact matches, family fallbacks, and the unknown default.

package dataset

import "testing"

func TestUsageCategory(t *testing.T) {
	tests := []struct {
		spdxID   string
		category string
	}{
		{"MIT", "both"},
		{"Apache-2.0", "both"},
		{"CC-BY-4.0", "dataset"},
		{"AGPL-3.0", "code"},
		{"SSPL-1.0", "code"},
		{"CreativeML-OpenRAIL-M", "model"},
		// Fallbacks for identifiers outside the exact-match table
		{"CC-BY-3.0", "dataset"},
		{"GPL-1.0-only", "both"},
		{"BSD-4-Clause", "both"},
		{"Apache-1.1", "both"},
		{"CDLA-Permissive-1.5", "dataset"},
		{"EUPL-1.2", "other"},
		{"Artistic-2.0", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.spdxID, func(t *testing.T) {
			if got := UsageCategory(tt.spdxID); got != tt.category {
				t.Errorf("expected %q, got %q", tt.category, got)
			}
		})
	}
}
