package primitives

import "fmt"

const (
	minRank = 1
	maxRank = 26
)

// RankOf returns the 1-based alphabetic rank of a letter, treating upper
// and lower case alike. Callers are responsible for only passing ASCII
// letters; anything else has no defined rank.
func RankOf(r rune) int {
	if r >= 'a' && r <= 'z' {
		return int(r-'a') + 1
	}
	return int(r-'A') + 1
}

// LetterOf returns the uppercase letter for a rank in [1,26].
// Out-of-range ranks are a programming error: the search engine only ever
// produces values already inside the range.
func LetterOf(n int) rune {
	if n < minRank || n > maxRank {
		panic(fmt.Sprintf("rank %d is out of range", n))
	}
	return rune('A' + n - 1)
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Ranks converts a word to its rank sequence, dropping any character that
// is not an ASCII letter.
func Ranks(word string) []int {
	ranks := make([]int, 0, len(word))
	for _, r := range word {
		if !isLetter(r) {
			continue
		}
		ranks = append(ranks, RankOf(r))
	}
	return ranks
}
