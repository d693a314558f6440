// Package types defines the core data structures used throughout rulebook:
// RuleDocument and its body segments, the resolved output produced for a
// query, and non-fatal warnings surfaced during loading and composition.
package types
