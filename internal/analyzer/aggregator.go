package analyzer

import (
	"strings"

	"chatalyzer/internal/models"
)

// Aggregation holds the single-pass counts derived from a parsed message
// sequence.
type Aggregation struct {
	TotalWords          int
	MediaCount          int
	UserCounts          map[string]int
	Timeline            map[string]int
	MostActiveUser      string
	MostActiveUserCount int
}

// Aggregate walks the message sequence once. Word counts come from non-media
// messages only; every message with a date lands in the timeline. The most
// active user is the one with the highest count, ties broken by the
// lexicographically smallest author name.
func Aggregate(messages []*models.ChatMessage) *Aggregation {
	agg := &Aggregation{
		UserCounts: make(map[string]int),
		Timeline:   make(map[string]int),
	}

	for _, msg := range messages {
		if msg.Author != "" {
			agg.UserCounts[msg.Author]++
		}

		if msg.IsMedia {
			agg.MediaCount++
		} else if msg.Text != "" {
			agg.TotalWords += len(strings.Fields(msg.Text))
		}

		if !msg.Date.IsZero() {
			agg.Timeline[msg.DateKey()]++
		}
	}

	for author, count := range agg.UserCounts {
		switch {
		case count > agg.MostActiveUserCount:
			agg.MostActiveUser = author
			agg.MostActiveUserCount = count
		case count == agg.MostActiveUserCount && author < agg.MostActiveUser:
			agg.MostActiveUser = author
		}
	}

	return agg
}
