// ABOUTME: Tests for FSF tag classification rules.
// ABOUTME: Verifies rule priority and the absent-vs-empty distinction.

package fsf

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		tags  []string
		label string
	}{
		{"both compatible", []string{"gpl-2-compatible", "gpl-3-compatible"}, LabelBothCompatible},
		{"both with extras", []string{"libre", "gpl-3-compatible", "fdl-compatible", "gpl-2-compatible"}, LabelBothCompatible},
		{"gpl3 only", []string{"gpl-3-compatible"}, LabelGPL3Only},
		{"gpl3 beats non-free", []string{"non-free", "gpl-3-compatible"}, LabelGPL3Only},
		{"gpl2 only", []string{"gpl-2-compatible"}, LabelGPL2Only},
		{"gpl2 beats libre", []string{"libre", "gpl-2-compatible"}, LabelGPL2Only},
		{"non-free", []string{"non-free"}, LabelNonFree},
		{"non-free beats libre", []string{"libre", "non-free"}, LabelNonFree},
		{"libre alone", []string{"libre"}, LabelLibre},
		{"unrecognized tags", []string{"viewpoint", "fdl-compatible"}, LabelUnknown},
		{"empty set", []string{}, LabelUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.tags); got != tt.label {
				t.Errorf("expected %q, got %q", tt.label, got)
			}
		})
	}
}

func TestClassificationAbsent(t *testing.T) {
	if got := Classification(nil, false); got != nil {
		t.Errorf("expected nil for absent record, got %q", *got)
	}
}

func TestClassificationEmptyButPresent(t *testing.T) {
	got := Classification([]string{}, true)
	if got == nil {
		t.Fatal("expected a label for an empty but present tag set")
	}
	if *got != LabelUnknown {
		t.Errorf("expected %q, got %q", LabelUnknown, *got)
	}
}

func TestClassificationFound(t *testing.T) {
	got := Classification([]string{"non-free"}, true)
	if got == nil {
		t.Fatal("expected a label")
	}
	if *got != LabelNonFree {
		t.Errorf("expected %q, got %q", LabelNonFree, *got)
	}
}
