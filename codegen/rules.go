package codegen

// WordBucket selects which standard rule table applies to a name.
// The numeric value is the prefix used in "Standard N.M" provenance labels.
type WordBucket int

const (
	OneWord     WordBucket = 1
	TwoWords    WordBucket = 2
	ThreeOrMore WordBucket = 3
)

// bucketFor maps a word count (>= 1) to its rule table bucket.
func bucketFor(wordCount int) WordBucket {
	switch {
	case wordCount <= 1:
		return OneWord
	case wordCount == 2:
		return TwoWords
	default:
		return ThreeOrMore
	}
}

// formula builds one 3-letter candidate from the normalized words.
// Short words may produce fewer than 3 characters; such outputs fail
// IsValidCode and are skipped by the generator.
type formula func(words []string) string

// Rule tables are ordered: the first formula whose output is valid and
// unused wins, so slice order is the tie-break priority.

var oneWordRules = []formula{
	// 1.1: three first letters
	func(w []string) string { return safeChar(w[0], 0) + safeChar(w[0], 1) + safeChar(w[0], 2) },
	// 1.2: characters 1, 2, 4
	func(w []string) string { return safeChar(w[0], 0) + safeChar(w[0], 1) + safeChar(w[0], 3) },
	// 1.3: characters 1, 3, 4
	func(w []string) string { return safeChar(w[0], 0) + safeChar(w[0], 2) + safeChar(w[0], 3) },
	// 1.4: characters 1, 2, last
	func(w []string) string { return safeChar(w[0], 0) + safeChar(w[0], 1) + lastChar(w[0]) },
}

var twoWordRules = []formula{
	// 2.1: first two of word 1 + first of word 2
	func(w []string) string { return safeChar(w[0], 0) + safeChar(w[0], 1) + safeChar(w[1], 0) },
	// 2.2: first of word 1 + first two of word 2
	func(w []string) string { return safeChar(w[0], 0) + safeChar(w[1], 0) + safeChar(w[1], 1) },
	// 2.3: first of word 1 + first and last of word 2
	func(w []string) string { return safeChar(w[0], 0) + safeChar(w[1], 0) + lastChar(w[1]) },
	// 2.4: first two of word 1 + last of word 2
	func(w []string) string { return safeChar(w[0], 0) + safeChar(w[0], 1) + lastChar(w[1]) },
}

// Names with more than three words use only the first three here; the
// extra words still contribute letters to the fallback pools.
var threeWordRules = []formula{
	// 3.1: initials of the first three words
	func(w []string) string { return safeChar(w[0], 0) + safeChar(w[1], 0) + safeChar(w[2], 0) },
	// 3.2: first of word 1 + first two of word 2
	func(w []string) string { return safeChar(w[0], 0) + safeChar(w[1], 0) + safeChar(w[1], 1) },
	// 3.3: first two of word 1 + first of word 2
	func(w []string) string { return safeChar(w[0], 0) + safeChar(w[0], 1) + safeChar(w[1], 0) },
	// 3.4: initials of words 1, 2 + second of word 3
	func(w []string) string { return safeChar(w[0], 0) + safeChar(w[1], 0) + safeChar(w[2], 1) },
	// 3.5: first of word 1 + first two of word 3
	func(w []string) string { return safeChar(w[0], 0) + safeChar(w[2], 0) + safeChar(w[2], 1) },
	// 3.6: first two of word 1 + first of word 3
	func(w []string) string { return safeChar(w[0], 0) + safeChar(w[0], 1) + safeChar(w[2], 0) },
	// 3.7: initials of words 1, 2 + last of word 3
	func(w []string) string { return safeChar(w[0], 0) + safeChar(w[1], 0) + lastChar(w[2]) },
	// 3.8: first of word 1 + second of word 2 + first of word 3
	func(w []string) string { return safeChar(w[0], 0) + safeChar(w[1], 1) + safeChar(w[2], 0) },
}

// standardCandidates returns the bucket and its ordered candidate list for
// the given normalized words.
func standardCandidates(words []string) (WordBucket, []string) {
	bucket := bucketFor(len(words))

	var rules []formula
	switch bucket {
	case OneWord:
		rules = oneWordRules
	case TwoWords:
		rules = twoWordRules
	default:
		rules = threeWordRules
	}

	candidates := make([]string, len(rules))
	for i, f := range rules {
		candidates[i] = f(words)
	}
	return bucket, candidates
}

// RuleDescription describes one standard formula for display purposes.
type RuleDescription struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// StandardRuleDescriptions returns the rule tables in evaluation order,
// keyed by bucket label. Used by the generation-rules endpoint so the UI
// can render the same tables the generator applies.
func StandardRuleDescriptions() map[string][]RuleDescription {
	return map[string][]RuleDescription{
		"1 word": {
			{Label: "Standard 1.1", Description: "first three letters"},
			{Label: "Standard 1.2", Description: "letters 1, 2 and 4"},
			{Label: "Standard 1.3", Description: "letters 1, 3 and 4"},
			{Label: "Standard 1.4", Description: "letters 1, 2 and the last letter"},
		},
		"2 words": {
			{Label: "Standard 2.1", Description: "first two letters of word 1 + initial of word 2"},
			{Label: "Standard 2.2", Description: "initial of word 1 + first two letters of word 2"},
			{Label: "Standard 2.3", Description: "initial of word 1 + first and last letters of word 2"},
			{Label: "Standard 2.4", Description: "first two letters of word 1 + last letter of word 2"},
		},
		"3+ words": {
			{Label: "Standard 3.1", Description: "initials of the first three words"},
			{Label: "Standard 3.2", Description: "initial of word 1 + first two letters of word 2"},
			{Label: "Standard 3.3", Description: "first two letters of word 1 + initial of word 2"},
			{Label: "Standard 3.4", Description: "initials of words 1 and 2 + second letter of word 3"},
			{Label: "Standard 3.5", Description: "initial of word 1 + first two letters of word 3"},
			{Label: "Standard 3.6", Description: "first two letters of word 1 + initial of word 3"},
			{Label: "Standard 3.7", Description: "initials of words 1 and 2 + last letter of word 3"},
			{Label: "Standard 3.8", Description: "initial of word 1 + second letter of word 2 + initial of word 3"},
		},
	}
}
