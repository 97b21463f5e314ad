package token

// NGrams returns every contiguous substring of word whose length, counted in
// runes, is in [minLen, maxLen]. Grams are grouped by length, shortest first,
// and each group is in left-to-right order:
//
//	NGrams("cats", 3, 4) => [cat ats cats]
//
// A word shorter than minLen has no n-grams.
func NGrams(word string, minLen, maxLen int) []string {
	if minLen < 1 {
		minLen = 1
	}

	runes := []rune(word)
	if len(runes) < minLen || maxLen < minLen {
		return nil
	}

	grams := make([]string, 0, countNGrams(len(runes), minLen, maxLen))
	for n := minLen; n <= maxLen && n <= len(runes); n++ {
		for i := 0; i+n <= len(runes); i++ {
			grams = append(grams, string(runes[i:i+n]))
		}
	}

	return grams
}

func countNGrams(length, minLen, maxLen int) int {
	count := 0
	for n := minLen; n <= maxLen; n++ {
		if length-n+1 > 0 {
			count += length - n + 1
		}
	}
	return count
}
