// ABOUTME: FSF tag classification into a GPL-compatibility label.
// ABOUTME: Pure rule table; distinguishes absent tag data from empty tag sets.

package fsf

// Labels produced by Classify. First matching rule wins.
const (
	LabelBothCompatible = "GPL-2 and GPL-3 compatible"
	LabelGPL3Only       = "GPL-3 compatible only"
	LabelGPL2Only       = "GPL-2 compatible only"
	LabelNonFree        = "Non-free (not GPL-compatible)"
	LabelLibre          = "Free but not marked GPL-compatible"
	LabelUnknown        = "Unknown / not classified"
)

// Classify derives a human-readable GPL-compatibility label from the FSF
// tags recorded for a licence. It is total: an empty or unrecognized tag
// set classifies as LabelUnknown.
func Classify(tags []string) string {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}

	switch {
	case set["gpl-3-compatible"] && set["gpl-2-compatible"]:
		return LabelBothCompatible
	case set["gpl-3-compatible"]:
		return LabelGPL3Only
	case set["gpl-2-compatible"]:
		return LabelGPL2Only
	case set["non-free"]:
		return LabelNonFree
	case set["libre"]:
		return LabelLibre
	default:
		return LabelUnknown
	}
}

// Classification wraps Classify for callers that track whether an FSF
// record exists at all. No record means no classification (nil), which is
// distinct from a record whose tags match no rule.
func Classification(tags []string, found bool) *string {
	if !found {
		return nil
	}
	label := Classify(tags)
	return &label
}
