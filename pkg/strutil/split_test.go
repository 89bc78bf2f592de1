package strutil

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		sep       string
		maxSplits int
		want      []string
	}{
		{"bounded to one split", "a=b=c", "=", 1, []string{"a", "b=c"}},
		{"unbounded keeps empty fields", "a,b,,c", ",", -1, []string{"a", "b", "", "c"}},
		{"default whitespace separator", "GET  /path\tHTTP/1.1", "", -1, []string{"GET", "/path", "HTTP/1.1"}},
		{"no separator present", "abc", ",", -1, []string{"abc"}},
		{"zero budget returns whole input", "a,b", ",", 0, []string{"a,b"}},
		{"trailing separator", "a,", ",", -1, []string{"a", ""}},
		{"empty input", "", ",", -1, []string{""}},
		{"regex separator", "a1b22c", `[0-9]+`, -1, []string{"a", "b", "c"}},
		{"invalid pattern matched literally", "a(b(c", "(", -1, []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Split(tt.input, tt.sep, tt.maxSplits))
		})
	}
}

func TestSplitRegexp_EmptyMatches(t *testing.T) {
	require.Equal(t, []string{"abc"}, SplitRegexp("abc", regexp.MustCompile(`x*`), -1))
	require.Equal(t, []string{"a", "b"}, Split("a b", `\s*`, -1))
	require.Equal(t, []string{"é", "ü"}, Split("é  ü", `\s*`, -1))
	require.Equal(t, []string{"a", "b c"}, Split("a b c", `\s*`, 1))
}

func TestLines(t *testing.T) {
	require.Equal(t, []string{"A=1", "", "B=2"}, Lines("A=1\n\nB=2\n"))
	require.Equal(t, []string{"A=1", "B=2"}, Lines("A=1\r\nB=2"))
	require.Nil(t, Lines(""))
}
