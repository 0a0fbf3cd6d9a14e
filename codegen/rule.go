package codegen

import "fmt"

// RuleKind identifies which phase of the generator produced a code.
// Tests and callers should match on the kind; the human-readable label is
// only formatted at the presentation boundary.
type RuleKind int

const (
	// RuleStandard is a hit from the per-word-count formula tables.
	RuleStandard RuleKind = iota
	// RuleFallbackStrategic is a hit from the positionally salient letter pool.
	RuleFallbackStrategic
	// RuleFallbackFull is a hit from the exhaustive unique-letter pool.
	RuleFallbackFull
	// RuleProvided marks a code claimed verbatim from import input.
	RuleProvided
	// RuleFailed marks a row for which no code could be generated.
	RuleFailed
)

// Rule is the provenance of a generated code.
type Rule struct {
	Kind   RuleKind
	Bucket WordBucket // standard hits only
	Index  int        // 1-based formula index, standard hits only
}

// Label formats the provenance for display, e.g. "Standard 3.2".
func (r Rule) Label() string {
	switch r.Kind {
	case RuleStandard:
		return fmt.Sprintf("Standard %d.%d", r.Bucket, r.Index)
	case RuleFallbackStrategic:
		return "Fallback L1 (Strategic)"
	case RuleFallbackFull:
		return "Fallback L2 (Full)"
	case RuleProvided:
		return "Provided (CSV)"
	default:
		return "FAILED"
	}
}
