// Package selector produces the ordered candidate set of rules for a
// target path.
//
// Always-apply rules come first, then glob-matched rules, each group in
// lexicographic name order. The ordering is deterministic for an unchanged
// store, and universally-applicable guidance gets priority placement.
package selector

import (
	"github.com/arthur-debert/rulebook/pkg/globs"
	"github.com/arthur-debert/rulebook/pkg/logging"
	"github.com/arthur-debert/rulebook/pkg/rules"
	"github.com/arthur-debert/rulebook/pkg/types"
)

// Select returns the rules applicable to targetPath, ordered and without
// duplicates. A rule is a candidate when alwaysApply is set or at least one
// of its globs matches the path.
func Select(store *rules.Store, targetPath string) []*types.RuleDocument {
	logger := logging.GetLogger("selector")

	var always, matched []*types.RuleDocument

	// Documents arrive in lexicographic name order, so each group stays
	// sorted without a second pass.
	for _, doc := range store.Documents() {
		switch {
		case doc.AlwaysApply:
			always = append(always, doc)
		case globs.MatchesAny(doc.Globs, targetPath):
			matched = append(matched, doc)
		}
	}

	logger.Debug().
		Str("path", targetPath).
		Int("alwaysApply", len(always)).
		Int("globMatched", len(matched)).
		Msg("selected candidate rules")

	return append(always, matched...)
}
