// Package resolve expands inclusion references between rule bodies.
//
// Expansion is depth-first and in place: a reference segment is replaced by
// the resolved body of the referenced rule at its textual position. Each
// top-level Resolve call tracks the chain of rules currently being expanded;
// re-entering a rule on that chain is a cycle and fails with the full cycle
// path. The chain is scoped per call, so the same rule expands cleanly in
// unrelated queries.
package resolve

import (
	"strings"

	"github.com/arthur-debert/rulebook/pkg/errors"
	"github.com/arthur-debert/rulebook/pkg/rules"
	"github.com/arthur-debert/rulebook/pkg/types"
)

// Resolve expands doc's body into literal segments attributed to their
// source rules. Fails with ErrMissingReference when a referenced rule does
// not exist and ErrCycle when doc transitively references itself.
func Resolve(store *rules.Store, doc *types.RuleDocument) ([]types.ResolvedSegment, error) {
	walker := &walker{
		store:   store,
		onChain: make(map[string]bool),
	}
	return walker.expand(doc)
}

// walker carries the expansion state for one top-level Resolve call.
type walker struct {
	store   *rules.Store
	chain   []string
	onChain map[string]bool
}

func (w *walker) expand(doc *types.RuleDocument) ([]types.ResolvedSegment, error) {
	if w.onChain[doc.Name] {
		return nil, w.cycleError(doc.Name)
	}

	w.chain = append(w.chain, doc.Name)
	w.onChain[doc.Name] = true
	defer func() {
		w.chain = w.chain[:len(w.chain)-1]
		delete(w.onChain, doc.Name)
	}()

	var out []types.ResolvedSegment
	for _, seg := range doc.Body {
		switch seg.Kind {
		case types.SegmentLiteral:
			out = append(out, types.ResolvedSegment{Source: doc.Name, Text: seg.Text})

		case types.SegmentReference:
			target, ok := w.store.Get(seg.Ref)
			if !ok {
				return nil, errors.Newf(errors.ErrMissingReference,
					"rule %q references unknown rule %q", doc.Name, seg.Ref).
					WithDetail("rule", doc.Name).
					WithDetail("reference", seg.Ref)
			}
			expanded, err := w.expand(target)
			if err != nil {
				return nil, err
			}
			out = append(out, expanded...)
		}
	}
	return out, nil
}

// cycleError reports the ordered cycle path, from the first occurrence of
// the repeated rule back to itself.
func (w *walker) cycleError(name string) error {
	start := 0
	for i, n := range w.chain {
		if n == name {
			start = i
			break
		}
	}
	path := append(append([]string{}, w.chain[start:]...), name)

	return errors.Newf(errors.ErrCycle,
		"reference cycle: %s", strings.Join(path, " -> ")).
		WithDetail("rule", name).
		WithDetail("cycle", path)
}
