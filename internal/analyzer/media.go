package analyzer

import "strings"

// mediaMarkers are the placeholder bodies exports substitute for omitted
// attachments. Matching is case-sensitive substring containment.
var mediaMarkers = []string{
	"<Media omitted>",
	"image omitted",
	"video omitted",
	"audio omitted",
	"document omitted",
	"sticker omitted",
}

func IsMedia(text string) bool {
	if text == "" {
		return false
	}
	for _, marker := range mediaMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
