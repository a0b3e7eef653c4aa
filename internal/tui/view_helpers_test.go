package tui

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short string untouched", in: "hello", max: 10, want: "hello"},
		{name: "exact length untouched", in: "hello", max: 5, want: "hello"},
		{name: "long ascii gets ellipsis", in: "hello world", max: 8, want: "hello..."},
		{name: "tiny max hard cut", in: "hello", max: 2, want: "he"},
		{name: "zero max untouched", in: "hello", max: 0, want: "hello"},
		{name: "cyrillic cut on rune boundary", in: "Привет, дневник", max: 9, want: "Привет..."},
		{name: "emoji cut on rune boundary", in: "🙂🙂🙂🙂🙂", max: 2, want: "🙂🙂"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitText(tt.in, tt.max)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
