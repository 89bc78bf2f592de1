package urlenc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"space becomes plus", "hello world/path?q=1", "hello+world/path?q=1"},
		{"brackets escaped", "a[b]", "a%5Bb%5D"},
		{"preserved punctuation", "https://h.io:80/a_b-c.d?x=1&y=~", "https://h.io:80/a_b-c.d?x=1&y=~"},
		{"plus and percent escaped", "a+b%c", "a%2Bb%25c"},
		{"bare newline normalized to CRLF", "a\nb", "a%0D%0Ab"},
		{"existing CRLF kept single", "a\r\nb", "a%0D%0Ab"},
		{"utf8 encoded per byte", "é", "%C3%A9"},
		{"hash and at", "u@h#f", "u%40h%23f"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_MissingInput(t *testing.T) {
	got, err := Encode("")
	require.ErrorIs(t, err, ErrMissingInput)
	require.Empty(t, got)
}
