package models

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// TokenCount is one entry of a frequency ranking. On the wire it is a
// 2-element array ["token", count] to stay compatible with the report format
// consumed by existing clients.
type TokenCount struct {
	Token string
	Count int
}

func (tc TokenCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{tc.Token, tc.Count})
}

func (tc *TokenCount) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("token count pair must have 2 elements, got %d", len(pair))
	}
	if err := json.Unmarshal(pair[0], &tc.Token); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &tc.Count)
}

// ChatAnalysis is the full report for one analyzed transcript.
type ChatAnalysis struct {
	TotalMessages       int            `json:"totalMessages"`
	TotalWords          int            `json:"totalWords"`
	MediaMessages       int            `json:"mediaMessages"`
	UserMessageCounts   map[string]int `json:"userMessageCounts"`
	MostActiveUser      string         `json:"mostActiveUser,omitempty"`
	MostActiveUserCount int            `json:"mostActiveUserCount"`
	Timeline            map[string]int `json:"timeline"`
	TopWords            []TokenCount   `json:"topWords"`
	TopEmojis           []TokenCount   `json:"topEmojis"`
}
