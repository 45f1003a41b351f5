package analyzer

import (
	"regexp"
	"strings"
	"time"

	"chatalyzer/internal/models"
)

// messagePattern matches one exported chat line:
// <date>, <time> - <author>: <text>
var messagePattern = regexp.MustCompile(
	`^(\d{1,2}/\d{1,2}/\d{2,4}),?\s+(\d{1,2}:\d{2}(?:\s*(?:AM|PM|am|pm))?)\s*-\s*([^:]+):\s*(.*)$`,
)

// dateLayouts is the fallback chain for ambiguous export dates. The first
// layout that parses wins; M/D is preferred over D/M, 4-digit years over
// 2-digit ones.
var dateLayouts = []string{
	"1/2/2006",
	"2/1/2006",
	"1/2/06",
	"2/1/06",
}

type Parser struct {
	now func() time.Time
}

func NewParser() *Parser {
	return &Parser{now: time.Now}
}

// Parse splits content into lines and extracts every line matching the
// message pattern. Blank and unrecognized lines (multi-line continuations,
// system messages) are skipped. Returns ErrNoValidMessages when nothing
// matched.
func (p *Parser) Parse(content string) ([]*models.ChatMessage, error) {
	var messages []*models.ChatMessage

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := messagePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		text := strings.TrimSpace(m[4])
		messages = append(messages, &models.ChatMessage{
			Date:    p.parseDate(m[1]),
			Time:    m[2],
			Author:  strings.TrimSpace(m[3]),
			Text:    text,
			IsMedia: IsMedia(text),
		})
	}

	if len(messages) == 0 {
		return nil, ErrNoValidMessages
	}
	return messages, nil
}

// parseDate tries each layout of the fallback chain. A date that fits none of
// them falls back to the current processing date, so the message stays in the
// report at the cost of a misattributed timeline entry.
func (p *Parser) parseDate(raw string) time.Time {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, raw); err == nil {
			return d
		}
	}
	y, m, d := p.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
