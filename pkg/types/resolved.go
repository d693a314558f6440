package types

import "strings"

// ResolvedSegment is one literal text segment in a composed document,
// attributed to the rule it originated from.
type ResolvedSegment struct {
	// Source is the name of the rule the text came from
	Source string `json:"source"`

	// Text is the literal guidance text
	Text string `json:"text"`
}

// ResolvedDocument is the final artifact of one compose query: the ordered,
// de-duplicated, reference-expanded segments plus any non-fatal warnings.
// It is owned by the caller and carries no link back to the store.
type ResolvedDocument struct {
	// TargetPath is the path the document was composed for
	TargetPath string `json:"targetPath"`

	// Segments are the resolved text segments in final order
	Segments []ResolvedSegment `json:"segments"`

	// Warnings are non-fatal issues observed for this query
	Warnings []Warning `json:"warnings,omitempty"`
}

// Empty reports whether the query matched no rules at all.
func (d *ResolvedDocument) Empty() bool {
	return len(d.Segments) == 0
}

// Text concatenates all segments into the single consolidated guidance
// document, separated by blank lines.
func (d *ResolvedDocument) Text() string {
	parts := make([]string, 0, len(d.Segments))
	for _, seg := range d.Segments {
		parts = append(parts, strings.TrimRight(seg.Text, "\n"))
	}
	return strings.Join(parts, "\n\n")
}

// Sources returns the distinct rule names contributing to the document, in
// order of first contribution.
func (d *ResolvedDocument) Sources() []string {
	seen := make(map[string]bool)
	var names []string
	for _, seg := range d.Segments {
		if !seen[seg.Source] {
			seen[seg.Source] = true
			names = append(names, seg.Source)
		}
	}
	return names
}
