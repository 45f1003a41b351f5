package models

import "time"

// ChatMessage is a single parsed line of a chat export. The Time field keeps
// the time-of-day exactly as it appeared in the export; only the Date part is
// used by aggregation.
type ChatMessage struct {
	Date    time.Time `json:"date"`
	Time    string    `json:"time"`
	Author  string    `json:"author"`
	Text    string    `json:"text"`
	IsMedia bool      `json:"isMedia"`
}

// DateKey returns the ISO calendar-date key used by the timeline.
func (m *ChatMessage) DateKey() string {
	return m.Date.Format("2006-01-02")
}
