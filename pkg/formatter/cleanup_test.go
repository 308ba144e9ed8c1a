package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalizeSentences(t *testing.T) {
	for _, tc := range []struct {
		In  string
		Out string
	}{
		{"", ""},
		{"hello world", "Hello world"},
		{"first. second. third", "First. Second. Third"},
		{"already. Capital", "Already. Capital"},
		{"ends with. ", "Ends with. "},
		{"ünicode. ärger", "Ünicode. Ärger"},
	} {
		t.Run(tc.In, func(t *testing.T) {
			assert.Equal(t, tc.Out, CapitalizeSentences(tc.In))
		})
	}
}

func TestFixPunctuation(t *testing.T) {
	for _, tc := range []struct {
		In  string
		Out string
	}{
		{"", ""},
		{"one.two", "one. two"},
		{"one.  two", "one. two"},
		{"  many    spaces  ", "many spaces"},
		{"end.", "end."},
	} {
		t.Run(tc.In, func(t *testing.T) {
			assert.Equal(t, tc.Out, FixPunctuation(tc.In))
		})
	}
}
