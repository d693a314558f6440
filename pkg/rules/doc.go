// Package rules loads rule documents from a directory tree into an
// immutable store.
//
// # File Format
//
// A rule file carries a frontmatter header followed by free-form guidance
// text:
//
//	---
//	description: React component conventions
//	globs: ["**/*.tsx", "**/*.jsx"]
//	alwaysApply: false
//	---
//	Prefer function components. Co-locate styles with the component.
//	See @typescript.mdc for the base language rules.
//
// Recognized header keys are description (string), globs (a list of
// patterns, or a single comma-separated string), and alwaysApply (boolean).
// Unrecognized keys are surfaced as warnings, not errors. A malformed
// header, a missing closing delimiter, or a wrong type for a recognized key
// fails the whole load.
//
// # Names and References
//
// A rule's name is the stem of its file, case-sensitive and unique within a
// store. An inline token of the form @<name>.mdc (or @<name>.md) in a body
// references another rule for inclusion; names use letters, digits,
// hyphens, and underscores.
//
// # Lifecycle
//
// A store is built once via Load and never mutated. Reloading means
// constructing a fresh store and swapping the reference, which pkg/engine
// does atomically.
package rules
