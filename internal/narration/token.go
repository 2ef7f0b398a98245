package narration

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is one segment of story text. Word tokens are independently
// highlightable; whitespace tokens only preserve layout. Concatenating
// all tokens reproduces the original text exactly.
type Token struct {
	Text string `json:"text"`
	Word bool   `json:"word"`
}

// Tokenize splits story content on whitespace boundaries, keeping the
// whitespace runs as their own tokens so the split is lossless.
func Tokenize(text string) []Token {
	if text == "" {
		return nil
	}
	var tokens []Token
	var current strings.Builder
	currentSpace := false

	flush := func() {
		if current.Len() == 0 {
			return
		}
		tokens = append(tokens, Token{Text: current.String(), Word: !currentSpace})
		current.Reset()
	}

	for _, r := range text {
		space := unicode.IsSpace(r)
		if current.Len() > 0 && space != currentSpace {
			flush()
		}
		currentSpace = space
		current.WriteRune(r)
	}
	flush()
	return tokens
}

// TokenAt maps a character offset reported by the narration backend to
// the index of the word token whose range contains it, or -1. The walk
// assumes a single separator character between words; wider gaps cause
// minor drift, which is accepted as best-effort.
func TokenAt(tokens []Token, charIndex int) int {
	if charIndex < 0 {
		return -1
	}
	acc := 0
	for i, t := range tokens {
		if !t.Word {
			continue
		}
		length := utf8.RuneCountInString(t.Text)
		if charIndex >= acc && charIndex <= acc+length {
			return i
		}
		acc += length + 1
	}
	return -1
}
