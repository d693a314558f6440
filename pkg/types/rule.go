package types

// SegmentKind distinguishes literal text from a reference to another rule.
type SegmentKind int

const (
	// SegmentLiteral is a run of literal body text.
	SegmentLiteral SegmentKind = iota

	// SegmentReference is an inline reference to another rule by name.
	SegmentReference
)

// Segment is one piece of a rule body. A literal segment carries Text; a
// reference segment carries Ref, the name of the rule it points at.
type Segment struct {
	Kind SegmentKind
	Text string
	Ref  string
}

// Literal constructs a literal segment.
func Literal(text string) Segment {
	return Segment{Kind: SegmentLiteral, Text: text}
}

// Reference constructs a reference segment pointing at the named rule.
func Reference(name string) Segment {
	return Segment{Kind: SegmentReference, Ref: name}
}

// RuleDocument is a single named unit of guidance text with its selection
// metadata. The name is derived from the file stem and is unique within a
// store.
type RuleDocument struct {
	// Name is the rule's identity, the stem of its source file
	Name string

	// Description is an optional free-text label, informational only
	Description string

	// Globs are path patterns the rule applies to; empty means the rule
	// matches nothing by pattern
	Globs []string

	// AlwaysApply marks the rule as a candidate for every query
	AlwaysApply bool

	// Body is the ordered segment sequence making up the rule text
	Body []Segment

	// Source is the path the rule was loaded from, for diagnostics
	Source string
}

// Selectable reports whether any query can ever select this rule. A rule
// with no globs and AlwaysApply false is legal but unreachable.
func (r *RuleDocument) Selectable() bool {
	return r.AlwaysApply || len(r.Globs) > 0
}

// References returns the names of all rules referenced by this rule's body,
// in body order, without de-duplication.
func (r *RuleDocument) References() []string {
	var refs []string
	for _, seg := range r.Body {
		if seg.Kind == SegmentReference {
			refs = append(refs, seg.Ref)
		}
	}
	return refs
}
