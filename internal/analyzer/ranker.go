package analyzer

import (
	"sort"
	"strings"
	"unicode"

	"chatalyzer/internal/models"
)

// DefaultTopK is the ranking length used when the caller does not override it.
const DefaultTopK = 10

type RankerInterface interface {
	RankWords(text string, k int) []models.TokenCount
	RankEmojis(text string, k int) []models.TokenCount
}

// FrequencyRanker is the in-process ranking implementation. It is stateless;
// one instance serves all requests.
type FrequencyRanker struct{}

func NewFrequencyRanker() RankerInterface {
	return &FrequencyRanker{}
}

// RankWords lower-cases the text, maps every rune that is neither an ASCII
// letter nor whitespace to a space, splits on whitespace and counts the
// tokens that survive the length and stop-word filters.
func (r *FrequencyRanker) RankWords(text string, k int) []models.TokenCount {
	mapped := strings.Map(func(ch rune) rune {
		switch {
		case ch >= 'a' && ch <= 'z':
			return ch
		case ch >= 'A' && ch <= 'Z':
			return ch + ('a' - 'A')
		case unicode.IsSpace(ch):
			return ch
		default:
			return ' '
		}
	}, text)

	counts := make(map[string]int)
	for _, token := range strings.Fields(mapped) {
		if len(token) <= 2 {
			continue
		}
		if _, stopped := stopWords[token]; stopped {
			continue
		}
		counts[token]++
	}

	return topK(counts, k)
}

// emojiRanges are the Unicode blocks scanned for emoji, checked per rune.
var emojiRanges = [...][2]rune{
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F300, 0x1F5FF}, // symbols & pictographs
	{0x1F680, 0x1F6FF}, // transport & map symbols
	{0x1F1E6, 0x1F1FF}, // regional indicators (flags)
	{0x1F900, 0x1F9FF}, // supplemental symbols & pictographs
	{0x2600, 0x26FF},   // miscellaneous symbols
	{0x2700, 0x27BF},   // dingbats
}

func isEmoji(ch rune) bool {
	for _, rng := range emojiRanges {
		if ch >= rng[0] && ch <= rng[1] {
			return true
		}
	}
	return false
}

// RankEmojis counts occurrences of every distinct emoji rune in the text.
func (r *FrequencyRanker) RankEmojis(text string, k int) []models.TokenCount {
	counts := make(map[string]int)
	for _, ch := range text {
		if isEmoji(ch) {
			counts[string(ch)]++
		}
	}
	return topK(counts, k)
}

// topK sorts by count descending with a lexicographic tie-break on the token,
// then truncates. Always returns a non-nil slice so empty rankings serialize
// as [].
func topK(counts map[string]int, k int) []models.TokenCount {
	if k <= 0 {
		k = DefaultTopK
	}

	ranked := make([]models.TokenCount, 0, len(counts))
	for token, count := range counts {
		ranked = append(ranked, models.TokenCount{Token: token, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count == ranked[j].Count {
			return ranked[i].Token < ranked[j].Token
		}
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
