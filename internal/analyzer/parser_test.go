package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClockParser(year int, month time.Month, day int) *Parser {
	return &Parser{now: func() time.Time {
		return time.Date(year, month, day, 15, 4, 5, 0, time.UTC)
	}}
}

func TestParser_BasicLine(t *testing.T) {
	p := NewParser()
	messages, err := p.Parse("1/1/24, 10:00 AM - Alice: Hello there")
	require.NoError(t, err)
	require.Len(t, messages, 1)

	msg := messages[0]
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), msg.Date)
	assert.Equal(t, "10:00 AM", msg.Time)
	assert.Equal(t, "Alice", msg.Author)
	assert.Equal(t, "Hello there", msg.Text)
	assert.False(t, msg.IsMedia)
}

func TestParser_TwentyFourHourTime(t *testing.T) {
	p := NewParser()
	messages, err := p.Parse("3/15/2024, 22:15 - Bob: late night")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "22:15", messages[0].Time)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), messages[0].Date)
}

func TestParser_LowercaseAmPm(t *testing.T) {
	p := NewParser()
	messages, err := p.Parse("1/1/24, 9:05 pm - Alice: hi")
	require.NoError(t, err)
	assert.Equal(t, "9:05 pm", messages[0].Time)
}

func TestParser_DayFirstDate(t *testing.T) {
	// 25 cannot be a month, so the D/M layout wins.
	p := NewParser()
	messages, err := p.Parse("25/12/2023, 10:00 - Bob: merry christmas")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC), messages[0].Date)
}

func TestParser_AmbiguousDatePrefersMonthFirst(t *testing.T) {
	p := NewParser()
	messages, err := p.Parse("2/3/2024, 10:00 - Bob: hi")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC), messages[0].Date)
}

func TestParser_DateFallbackToProcessingDate(t *testing.T) {
	p := fixedClockParser(2025, time.June, 30)
	messages, err := p.Parse("31/31/24, 10:00 - Alice: odd date")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), messages[0].Date)
}

func TestParser_SkipsBlankAndUnmatchedLines(t *testing.T) {
	content := "1/1/24, 10:00 AM - Alice: Hello there\n" +
		"\n" +
		"this is a continuation of the previous message\n" +
		"Messages to this chat are secured\n" +
		"1/1/24, 10:02 AM - Alice: Hello again\n"

	p := NewParser()
	messages, err := p.Parse(content)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Hello there", messages[0].Text)
	assert.Equal(t, "Hello again", messages[1].Text)
}

func TestParser_NoValidMessages(t *testing.T) {
	p := NewParser()
	_, err := p.Parse("random text\nmore random text")
	assert.ErrorIs(t, err, ErrNoValidMessages)
}

func TestParser_EmptyText(t *testing.T) {
	p := NewParser()
	messages, err := p.Parse("1/1/24, 10:00 AM - Alice:")
	require.NoError(t, err)
	assert.Equal(t, "", messages[0].Text)
	assert.False(t, messages[0].IsMedia)
}

func TestParser_AuthorWithSpaces(t *testing.T) {
	p := NewParser()
	messages, err := p.Parse("1/1/24, 10:00 AM - John Doe Jr: hi all")
	require.NoError(t, err)
	assert.Equal(t, "John Doe Jr", messages[0].Author)
}

func TestParser_MarksMediaMessages(t *testing.T) {
	p := NewParser()
	messages, err := p.Parse("1/1/24, 10:01 AM - Bob: <Media omitted>")
	require.NoError(t, err)
	assert.True(t, messages[0].IsMedia)
}

func TestParser_OrderPreserved(t *testing.T) {
	content := "1/1/24, 10:00 AM - Alice: first\n" +
		"1/1/24, 10:01 AM - Bob: second\n" +
		"1/2/24, 10:02 AM - Alice: third"

	p := NewParser()
	messages, err := p.Parse(content)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Text)
	assert.Equal(t, "second", messages[1].Text)
	assert.Equal(t, "third", messages[2].Text)
}

func TestIsMedia_Markers(t *testing.T) {
	assert.True(t, IsMedia("<Media omitted>"))
	assert.True(t, IsMedia("image omitted"))
	assert.True(t, IsMedia("video omitted"))
	assert.True(t, IsMedia("audio omitted"))
	assert.True(t, IsMedia("document omitted"))
	assert.True(t, IsMedia("sticker omitted"))
	assert.True(t, IsMedia("forwarded: image omitted"))
}

func TestIsMedia_NonMedia(t *testing.T) {
	assert.False(t, IsMedia(""))
	assert.False(t, IsMedia("just a regular message"))
	// matching is case-sensitive
	assert.False(t, IsMedia("Image Omitted"))
}
