package nlp

import (
	"strings"
	"unicode/utf8"
)

const (
	minSubstantiveChars = 15
	minSubstantiveWords = 3
)

// dismissivePhrases are low-information or meta-conversational utterances
// that should never become field notes. Matching is by substring on the
// normalized text.
var dismissivePhrases = []string{
	// Non-substantive / dismissive
	"i don't know", "i dont know", "no idea", "not sure",
	"nothing to add", "i can't think", "you tell me",
	"i don't have", "i dont have", "no comment",
	"i'm not sure", "im not sure", "pass", "next",
	"that's all", "thats all", "nothing else",
	// Meta-conversational (talking TO the interviewer, not about the org)
	"don't understand", "dont understand", "what do you mean",
	"can you explain", "can you rephrase", "repeat the question",
	"make the question clear", "unclear question", "what question",
	"can you clarify", "i need clarification", "rephrase",
	"say that again", "come again",
}

// IsSubstantive is the hard gate in front of field-note creation. Turns it
// rejects are stored as conversation only and never reach the anonymizer or
// the categorizer.
func IsSubstantive(text string) bool {
	cleaned := strings.ToLower(strings.TrimSpace(text))
	if utf8.RuneCountInString(cleaned) < minSubstantiveChars {
		return false
	}
	if len(strings.Fields(cleaned)) < minSubstantiveWords {
		return false
	}
	for _, phrase := range dismissivePhrases {
		if strings.Contains(cleaned, phrase) {
			return false
		}
	}
	return true
}
