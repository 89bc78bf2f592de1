// Package urlenc percent-encodes resolved URLs before they are handed to the
// transport.
package urlenc

import (
	"errors"
	"strings"

	"github.com/hashicorp/go-set/v3"
)

// ErrMissingInput is returned when there is nothing to encode.
var ErrMissingInput = errors.New("urlenc: missing input")

const upperHex = "0123456789ABCDEF"

// preserved holds the non-alphanumeric bytes that are never escaped.
var preserved = set.From([]byte(" _-.:/?&=~"))

// Encode normalizes newlines to CRLF, percent-encodes every byte outside the
// preserved set using uppercase hex, then rewrites spaces as '+'.
//
// Encoding is byte oriented: a multi-byte UTF-8 rune becomes one escape per
// byte. An empty url is treated as missing input.
func Encode(url string) (string, error) {
	if url == "" {
		return "", ErrMissingInput
	}
	normalized := normalizeNewlines(url)

	var builder strings.Builder
	builder.Grow(len(normalized))
	for i := 0; i < len(normalized); i++ {
		c := normalized[i]
		if shouldPreserve(c) {
			builder.WriteByte(c)
			continue
		}
		builder.WriteByte('%')
		builder.WriteByte(upperHex[c>>4])
		builder.WriteByte(upperHex[c&0x0F])
	}
	return strings.ReplaceAll(builder.String(), " ", "+"), nil
}

// normalizeNewlines turns every bare "\n" into "\r\n", leaving existing CRLF
// pairs untouched.
func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\n") {
		return s
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\n", "\r\n")
}

func shouldPreserve(c byte) bool {
	return isAlphanumeric(c) || preserved.Contains(c)
}

func isAlphanumeric(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
