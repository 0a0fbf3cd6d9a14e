package codegen

import "strings"

// BatchRow is one import row: a full name plus an optional code requested
// explicitly in the source file.
type BatchRow struct {
	FullName string
	Code     string
}

// GenerateBatch resolves codes for an ordered list of rows so that no two
// rows collide with each other or with existing. The result always has one
// entry per input row, in input order.
//
// Explicit codes are claimed in a first pass, before any auto-generation,
// so a later row's requested code cannot be stolen by an earlier row's
// generated one. When two rows request the same code the first occurrence
// wins and the second falls through to auto-generation.
//
// A row whose name is invalid or whose combinations are exhausted gets
// Code "" and RuleFailed; one bad row never aborts the batch.
func GenerateBatch(rows []BatchRow, existing map[string]bool) []Result {
	used := make(map[string]bool, len(existing)+len(rows))
	for code := range existing {
		used[code] = true
	}

	results := make([]Result, len(rows))
	resolved := make([]bool, len(rows))

	// Pass 1: claim explicitly provided codes.
	for i, row := range rows {
		if row.Code == "" {
			continue
		}
		code := strings.ToUpper(strings.TrimSpace(row.Code))
		if IsValidCode(code) && !used[code] {
			used[code] = true
			results[i] = Result{Code: code, Rule: Rule{Kind: RuleProvided}}
			resolved[i] = true
		}
	}

	// Pass 2: auto-generate the rest.
	for i, row := range rows {
		if resolved[i] {
			continue
		}
		result, err := Generate(row.FullName, used)
		if err != nil {
			results[i] = Result{Code: "", Rule: Rule{Kind: RuleFailed}}
			continue
		}
		used[result.Code] = true
		results[i] = result
	}

	return results
}
