package codegen

import "strings"

// uniqueChars returns the unique uppercase letters of s in order of first
// appearance. Non-letter characters are ignored.
func uniqueChars(s string) []string {
	seen := make(map[byte]bool, len(s))
	result := make([]string, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < 'A' || ch > 'Z' {
			continue
		}
		if !seen[ch] {
			seen[ch] = true
			result = append(result, string(ch))
		}
	}
	return result
}

// combinations3 enumerates every 3-character string built from three
// distinct positions i<j<k of the pool, in lexicographic index order.
func combinations3(pool []string) []string {
	n := len(pool)
	if n < 3 {
		return nil
	}
	results := make([]string, 0, n*(n-1)*(n-2)/6)
	for i := 0; i < n-2; i++ {
		for j := i + 1; j < n-1; j++ {
			for k := j + 1; k < n; k++ {
				results = append(results, pool[i]+pool[j]+pool[k])
			}
		}
	}
	return results
}

// prioritizeByFirstLetter moves combinations starting with the name's first
// letter to the front, preserving relative order within each partition.
// A recognizability bias, not a correctness requirement.
func prioritizeByFirstLetter(combos []string, firstLetter string) []string {
	if firstLetter == "" {
		return combos
	}
	prioritized := make([]string, 0, len(combos))
	for _, c := range combos {
		if strings.HasPrefix(c, firstLetter) {
			prioritized = append(prioritized, c)
		}
	}
	for _, c := range combos {
		if !strings.HasPrefix(c, firstLetter) {
			prioritized = append(prioritized, c)
		}
	}
	return prioritized
}

// strategicPool collects the positionally salient letters of each word:
// first, second, midpoint and last, deduplicated in first-seen order.
func strategicPool(words []string) []string {
	var b strings.Builder
	for _, word := range words {
		if len(word) > 0 {
			b.WriteString(safeChar(word, 0))
		}
		if len(word) > 1 {
			b.WriteString(safeChar(word, 1))
		}
		if len(word) > 2 {
			b.WriteString(midChar(word))
		}
		if len(word) > 1 {
			b.WriteString(lastChar(word))
		}
	}
	return uniqueChars(b.String())
}

// strategicCandidates builds the L1 fallback candidate sequence.
func strategicCandidates(words []string) []string {
	combos := combinations3(strategicPool(words))
	return prioritizeByFirstLetter(combos, safeChar(words[0], 0))
}

// fullPool is every unique letter appearing anywhere in the name.
func fullPool(words []string) []string {
	return uniqueChars(strings.Join(words, ""))
}

// fullCandidates builds the L2 fallback candidate sequence, the last
// resort tier. Its size is C(k,3) over the distinct letters of the name,
// up to C(26,3) = 2600 combinations.
func fullCandidates(words []string) []string {
	combos := combinations3(fullPool(words))
	return prioritizeByFirstLetter(combos, safeChar(words[0], 0))
}
