package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBatchExplicitCodeWins(t *testing.T) {
	rows := []BatchRow{
		{FullName: "BUDI", Code: "BUD"},
		{FullName: "BUDI ONO"},
	}
	results := GenerateBatch(rows, nil)
	require.Len(t, results, 2)

	assert.Equal(t, "BUD", results[0].Code)
	assert.Equal(t, RuleProvided, results[0].Rule.Kind)
	assert.Equal(t, "Provided (CSV)", results[0].Rule.Label())

	assert.NotEqual(t, "BUD", results[1].Code)
	assert.True(t, IsValidCode(results[1].Code))
}

func TestGenerateBatchExplicitCodeNormalized(t *testing.T) {
	results := GenerateBatch([]BatchRow{{FullName: "BUDI", Code: "  bud "}}, nil)
	require.Len(t, results, 1)
	assert.Equal(t, "BUD", results[0].Code)
	assert.Equal(t, RuleProvided, results[0].Rule.Kind)
}

func TestGenerateBatchDuplicateExplicitCode(t *testing.T) {
	rows := []BatchRow{
		{FullName: "AGUS SALIM", Code: "XYZ"},
		{FullName: "ANDI WIJAYA", Code: "XYZ"},
	}
	results := GenerateBatch(rows, nil)
	require.Len(t, results, 2)

	// first occurrence wins; the second falls through to auto-generation
	assert.Equal(t, "XYZ", results[0].Code)
	assert.Equal(t, RuleProvided, results[0].Rule.Kind)
	assert.NotEqual(t, "XYZ", results[1].Code)
	assert.NotEqual(t, RuleProvided, results[1].Rule.Kind)
}

func TestGenerateBatchInvalidExplicitCodeFallsThrough(t *testing.T) {
	for _, bad := range []string{"BU", "BUDI", "B2D"} {
		results := GenerateBatch([]BatchRow{{FullName: "BUDI", Code: bad}}, nil)
		require.Len(t, results, 1)
		assert.Equal(t, "BUD", results[0].Code, "explicit %q", bad)
		assert.Equal(t, RuleStandard, results[0].Rule.Kind)
	}
}

// An explicit code requested by a later row must not be stolen by an
// earlier row's auto-generation.
func TestGenerateBatchClaimsBeforeGeneration(t *testing.T) {
	rows := []BatchRow{
		{FullName: "BUDI"},               // would naturally get BUD
		{FullName: "AGUS", Code: "BUD"},  // explicitly wants BUD
	}
	results := GenerateBatch(rows, nil)
	require.Len(t, results, 2)

	assert.Equal(t, "BUD", results[1].Code)
	assert.Equal(t, RuleProvided, results[1].Rule.Kind)
	assert.NotEqual(t, "BUD", results[0].Code)
}

func TestGenerateBatchFailureIsolation(t *testing.T) {
	rows := []BatchRow{
		{FullName: "BUDI"},
		{FullName: "12345"}, // no usable letters
		{FullName: "ANDI WIJAYA"},
	}
	results := GenerateBatch(rows, nil)
	require.Len(t, results, 3)

	assert.Equal(t, "BUD", results[0].Code)
	assert.Equal(t, "", results[1].Code)
	assert.Equal(t, RuleFailed, results[1].Rule.Kind)
	assert.Equal(t, "FAILED", results[1].Rule.Label())
	assert.Equal(t, "ANW", results[2].Code)
}

func TestGenerateBatchUniqueness(t *testing.T) {
	existing := map[string]bool{"BSA": true}
	rows := []BatchRow{
		{FullName: "BUDI SANTOSO"},
		{FullName: "BUDI SANTORO"},
		{FullName: "BUDI SANTOS"},
		{FullName: "BUDI SANTO"},
	}
	results := GenerateBatch(rows, existing)
	require.Len(t, results, len(rows))

	seen := make(map[string]bool)
	for i, r := range results {
		require.True(t, IsValidCode(r.Code), "row %d code %q", i, r.Code)
		assert.False(t, existing[r.Code], "row %d reused an existing code %q", i, r.Code)
		assert.False(t, seen[r.Code], "row %d duplicated code %q within batch", i, r.Code)
		seen[r.Code] = true
	}
}

func TestGenerateBatchDoesNotMutateExisting(t *testing.T) {
	existing := map[string]bool{"AAA": true}
	GenerateBatch([]BatchRow{{FullName: "BUDI"}, {FullName: "AGUS"}}, existing)
	assert.Equal(t, map[string]bool{"AAA": true}, existing)
}

func TestGenerateBatchEmpty(t *testing.T) {
	assert.Empty(t, GenerateBatch(nil, nil))
}
