package rules

import (
	"regexp"

	"github.com/arthur-debert/rulebook/pkg/types"
)

// referencePattern recognizes inline rule references of the form
// @<name>.mdc or @<name>.md. The name is the referenced rule's file stem.
var referencePattern = regexp.MustCompile(`@([A-Za-z0-9_-]+)\.(?:mdc|md)\b`)

// segmentBody splits body text into an ordered sequence of literal and
// reference segments. References are kept in textual position so the
// resolver can expand them in place. Empty literal runs are dropped.
func segmentBody(body string) []types.Segment {
	var segments []types.Segment

	rest := body
	for {
		loc := referencePattern.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		if literal := rest[:loc[0]]; literal != "" {
			segments = append(segments, types.Literal(literal))
		}
		segments = append(segments, types.Reference(rest[loc[2]:loc[3]]))
		rest = rest[loc[1]:]
	}

	if rest != "" {
		segments = append(segments, types.Literal(rest))
	}

	return segments
}
