package scoring

import (
	"regexp"
	"sort"

	"github.com/jonathan/resume-matcher/internal/vocab"
)

const (
	topKeywordCount  = 20
	minKeywordLength = 4
)

var wordPattern = regexp.MustCompile(`[a-z][a-z0-9+#./-]*`)

// ContentWords returns the top content words of a normalized document:
// words of at least four characters that are not stop words, ranked by
// frequency with ties broken by first occurrence, capped at twenty.
func ContentWords(text string, v *vocab.Vocabulary) []string {
	stop := v.StopWordSet()

	type wordStat struct {
		word  string
		count int
		first int
	}
	stats := make(map[string]*wordStat)
	order := []*wordStat{}

	for i, word := range wordPattern.FindAllString(text, -1) {
		if len(word) < minKeywordLength || stop[word] {
			continue
		}
		if s, ok := stats[word]; ok {
			s.count++
			continue
		}
		s := &wordStat{word: word, count: 1, first: i}
		stats[word] = s
		order = append(order, s)
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})

	limit := topKeywordCount
	if len(order) < limit {
		limit = len(order)
	}
	words := make([]string, 0, limit)
	for _, s := range order[:limit] {
		words = append(words, s.word)
	}
	return words
}
