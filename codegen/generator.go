// Package codegen implements the 3-letter asprak code generator: the
// standard per-word-count rule tables, the two fallback tiers that search
// letter combinations when the tables are exhausted, and the conflict and
// recycling policy for reassigning codes.
//
// Everything in this package is a pure function of its arguments. The set
// of taken codes is always passed in explicitly and never mutated, so
// identical inputs always produce identical output.
package codegen

import (
	"errors"
	"regexp"
)

var (
	// ErrNameInvalid is returned when a name contains no usable letters.
	ErrNameInvalid = errors.New("name contains no usable letters for code generation")
	// ErrExhausted is returned when every combination derivable from the
	// name is already taken. The caller must ask for a manual code.
	ErrExhausted = errors.New("all code combinations from the name are taken")
)

var codePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// IsValidCode reports whether code is exactly three uppercase Latin
// letters. Repeated letters are allowed ("AAB" is valid).
func IsValidCode(code string) bool {
	return codePattern.MatchString(code)
}

// Result is a generated code together with its provenance.
type Result struct {
	Code string `json:"code"`
	Rule Rule   `json:"-"`
}

// Generate derives a unique 3-letter code for fullName against the set of
// taken codes. Phases run in strict order: standard rule table for the
// name's word count, then the strategic fallback pool, then the full
// unique-letter pool. The first candidate that is valid and absent from
// used wins. used is never modified.
func Generate(fullName string, used map[string]bool) (Result, error) {
	words := NormalizeName(fullName)
	if len(words) == 0 {
		return Result{}, ErrNameInvalid
	}

	bucket, candidates := standardCandidates(words)
	for i, candidate := range candidates {
		if IsValidCode(candidate) && !used[candidate] {
			return Result{
				Code: candidate,
				Rule: Rule{Kind: RuleStandard, Bucket: bucket, Index: i + 1},
			}, nil
		}
	}

	for _, candidate := range strategicCandidates(words) {
		if IsValidCode(candidate) && !used[candidate] {
			return Result{Code: candidate, Rule: Rule{Kind: RuleFallbackStrategic}}, nil
		}
	}

	for _, candidate := range fullCandidates(words) {
		if IsValidCode(candidate) && !used[candidate] {
			return Result{Code: candidate, Rule: Rule{Kind: RuleFallbackFull}}, nil
		}
	}

	return Result{}, ErrExhausted
}
