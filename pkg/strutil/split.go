// Package strutil holds the small string helpers shared by the variable loader.
package strutil

import (
	"bufio"
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultSeparator matches one or more whitespace characters.
const DefaultSeparator = `\s+`

// Split breaks input around each match of the separator pattern. An empty sep
// selects DefaultSeparator. A negative maxSplits means unbounded; otherwise at
// most maxSplits splits are performed and the last element always holds the
// rest of the input.
//
// Zero-width matches of the separator are skipped. An invalid pattern is
// matched literally.
func Split(input, sep string, maxSplits int) []string {
	if sep == "" {
		sep = DefaultSeparator
	}
	re, err := regexp.Compile(sep)
	if err != nil {
		re = regexp.MustCompile(regexp.QuoteMeta(sep))
	}
	return SplitRegexp(input, re, maxSplits)
}

// SplitRegexp is Split with a precompiled separator.
func SplitRegexp(input string, re *regexp.Regexp, maxSplits int) []string {
	parts := make([]string, 0, 2)
	cursor, from := 0, 0
	for maxSplits != 0 && from <= len(input) {
		loc := re.FindStringIndex(input[from:])
		if loc == nil {
			break
		}
		// Empty matches never split; resume the search one rune later.
		if loc[0] == loc[1] {
			if from+loc[0] >= len(input) {
				break
			}
			_, width := utf8.DecodeRuneInString(input[from+loc[0]:])
			from += loc[0] + width
			continue
		}
		parts = append(parts, input[cursor:from+loc[0]])
		cursor = from + loc[1]
		from = cursor
		if maxSplits > 0 {
			maxSplits--
		}
	}
	return append(parts, input[cursor:])
}

// Lines returns the lines of text without their terminators. A trailing
// newline does not produce an extra empty line.
func Lines(text string) []string {
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), len(text)+1)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}
