package types

import "fmt"

// WarningKind classifies non-fatal conditions surfaced during loading.
type WarningKind string

const (
	// WarnUnreachableRule marks a rule with no globs and alwaysApply false;
	// it is legal but can never be selected.
	WarnUnreachableRule WarningKind = "unreachable_rule"

	// WarnUnknownKey marks an unrecognized frontmatter key.
	WarnUnknownKey WarningKind = "unknown_key"
)

// Warning is a non-fatal issue tied to a rule. Warnings never abort a load
// or a query.
type Warning struct {
	Kind WarningKind `json:"kind"`
	Rule string      `json:"rule"`
	Text string      `json:"text"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s: %s", w.Kind, w.Rule, w.Text)
}
