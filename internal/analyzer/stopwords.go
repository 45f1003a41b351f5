package analyzer

// stopWords are common English function words excluded from word ranking.
// Tokens of length <= 2 are filtered before this set is consulted, so short
// entries like "the"-class articles under three characters never reach it.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "that": {}, "have": {}, "for": {}, "not": {},
	"with": {}, "you": {}, "this": {}, "but": {}, "his": {}, "from": {},
	"they": {}, "say": {}, "her": {}, "she": {}, "will": {}, "one": {},
	"all": {}, "would": {}, "there": {}, "their": {}, "what": {}, "out": {},
	"about": {}, "who": {}, "get": {}, "which": {}, "when": {}, "make": {},
	"can": {}, "like": {}, "just": {}, "him": {}, "know": {}, "your": {},
	"some": {}, "could": {}, "them": {}, "than": {}, "then": {}, "now": {},
	"was": {}, "are": {}, "been": {}, "has": {}, "had": {}, "were": {},
	"did": {}, "into": {},
}
