package analyzer

import (
	"fmt"
	"strings"

	"chatalyzer/internal/models"
)

// Analyzer orchestrates the pipeline: parse, aggregate, rank, assemble.
type Analyzer struct {
	parser *Parser
	ranker RankerInterface
}

func NewAnalyzer(parser *Parser, ranker RankerInterface) *Analyzer {
	return &Analyzer{
		parser: parser,
		ranker: ranker,
	}
}

// Analyze turns raw export text into a full report. Blank input returns
// ErrEmptyInput, a parse with zero matches returns ErrNoValidMessages, and
// any unexpected fault after parsing is wrapped as ErrAnalysisFailed with the
// cause retained.
func (a *Analyzer) Analyze(content string, topK int) (result *models.ChatAnalysis, err error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyInput
	}

	messages, err := a.parser.Parse(content)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: %v", ErrAnalysisFailed, r)
		}
	}()

	agg := Aggregate(messages)
	topWords, topEmojis := a.rank(joinTexts(messages), topK)

	result = &models.ChatAnalysis{
		TotalMessages:       len(messages),
		TotalWords:          agg.TotalWords,
		MediaMessages:       agg.MediaCount,
		UserMessageCounts:   agg.UserCounts,
		MostActiveUser:      agg.MostActiveUser,
		MostActiveUserCount: agg.MostActiveUserCount,
		Timeline:            agg.Timeline,
		TopWords:            topWords,
		TopEmojis:           topEmojis,
	}
	return result, nil
}

// rank is best-effort: a fault inside the ranker degrades both lists to empty
// instead of failing the report.
func (a *Analyzer) rank(text string, k int) (words, emojis []models.TokenCount) {
	defer func() {
		if r := recover(); r != nil {
			words = []models.TokenCount{}
			emojis = []models.TokenCount{}
		}
	}()

	words = a.ranker.RankWords(text, k)
	emojis = a.ranker.RankEmojis(text, k)
	return words, emojis
}

// joinTexts concatenates the bodies of non-media messages, space-joined in
// message order, as ranker input.
func joinTexts(messages []*models.ChatMessage) string {
	var sb strings.Builder
	for _, msg := range messages {
		if msg.IsMedia || msg.Text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(msg.Text)
	}
	return sb.String()
}
