package formatter

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const sentenceSeparator = ". "

// CapitalizeSentences upper-cases the first letter of the text and of every
// fragment that follows a ". ".
func CapitalizeSentences(text string) string {
	if text == "" {
		return text
	}
	sentences := strings.Split(text, sentenceSeparator)
	for idx, sentence := range sentences {
		r, size := utf8.DecodeRuneInString(sentence)
		if size == 0 {
			continue
		}
		sentences[idx] = string(unicode.ToUpper(r)) + sentence[size:]
	}
	return strings.Join(sentences, sentenceSeparator)
}

// FixPunctuation puts a space after every period, collapses repeated spaces
// and trims the text.
func FixPunctuation(text string) string {
	if text == "" {
		return text
	}
	text = strings.ReplaceAll(text, ".", ". ")
	for strings.Contains(text, "  ") {
		text = strings.ReplaceAll(text, "  ", " ")
	}
	return strings.TrimSpace(text)
}
