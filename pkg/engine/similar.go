package engine

// maxHintDistance bounds how far an unknown employee id may be from a known
// one before the typo hint is withheld.
const maxHintDistance = 2

// closestEmployeeID returns the known employee id nearest to the given one by
// edit distance, when that distance is within maxHintDistance. Ties resolve
// to the first candidate in input order.
func closestEmployeeID(id string, known []string) (string, bool) {
	best := ""
	bestDist := maxHintDistance + 1
	for _, candidate := range known {
		if candidate == id {
			continue
		}
		d := levenshteinDistance(id, candidate)
		if d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best, best != ""
}

// levenshteinDistance computes the minimum number of single-character edits
// (insertions, deletions, or substitutions) required to transform a into b.
func levenshteinDistance(a, b string) int {
	aRunes := []rune(a)
	bRunes := []rune(b)
	aLen := len(aRunes)
	bLen := len(bRunes)

	if aLen == 0 {
		return bLen
	}
	if bLen == 0 {
		return aLen
	}

	// Two rows instead of a full matrix; iterate the shorter string inside.
	if aLen > bLen {
		aRunes, bRunes = bRunes, aRunes
		aLen, bLen = bLen, aLen
	}

	prevRow := make([]int, aLen+1)
	currRow := make([]int, aLen+1)
	for i := 0; i <= aLen; i++ {
		prevRow[i] = i
	}

	for j := 1; j <= bLen; j++ {
		currRow[0] = j
		for i := 1; i <= aLen; i++ {
			cost := 1
			if aRunes[i-1] == bRunes[j-1] {
				cost = 0
			}
			deletion := prevRow[i] + 1
			insertion := currRow[i-1] + 1
			substitution := prevRow[i-1] + cost
			currRow[i] = min3(deletion, insertion, substitution)
		}
		prevRow, currRow = currRow, prevRow
	}

	return prevRow[aLen]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
