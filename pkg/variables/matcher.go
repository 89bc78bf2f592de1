package variables

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/hashicorp/go-set/v3"
)

// MatchMode selects how a candidate name is compared against stored keys.
type MatchMode int

const (
	// MatchExact requires the candidate to equal a stored key.
	MatchExact MatchMode = iota
	// MatchPattern treats every stored key as a pattern searched for inside
	// the candidate. A key "HOST" therefore matches the candidate "API_HOST",
	// and so does "ID" for "USERID". Use with care: it over-matches partial
	// names.
	MatchPattern
)

func (m MatchMode) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchPattern:
		return "pattern"
	default:
		return fmt.Sprintf("MatchMode(%d)", int(m))
	}
}

// ParseMatchMode parses the names returned by MatchMode.String.
func ParseMatchMode(s string) (MatchMode, error) {
	switch strings.ToLower(s) {
	case "", "exact":
		return MatchExact, nil
	case "pattern":
		return MatchPattern, nil
	default:
		return MatchExact, fmt.Errorf("unknown match mode %q", s)
	}
}

// Contains reports whether any key of vars matches candidate under mode.
func Contains(vars Mapping, candidate string, mode MatchMode) bool {
	_, ok := MatchKey(vars, candidate, mode)
	return ok
}

// ContainsValue reports whether candidate matches any element of values
// under mode. In pattern mode each element is the pattern and candidate the
// text searched.
func ContainsValue(values []string, candidate string, mode MatchMode) bool {
	if mode == MatchExact {
		return set.From(values).Contains(candidate)
	}
	for _, v := range values {
		if patternFound(v, candidate) {
			return true
		}
	}
	return false
}

// MatchKey returns the stored key selected for candidate. In pattern mode
// the longest matching key wins and ties go to the lexically smallest key.
func MatchKey(vars Mapping, candidate string, mode MatchMode) (string, bool) {
	if mode == MatchExact {
		_, ok := vars[candidate]
		return candidate, ok
	}
	var matched []string
	for key := range vars {
		if patternFound(key, candidate) {
			matched = append(matched, key)
		}
	}
	if len(matched) == 0 {
		return "", false
	}
	sort.Slice(matched, func(i, j int) bool {
		if len(matched[i]) != len(matched[j]) {
			return len(matched[i]) > len(matched[j])
		}
		return matched[i] < matched[j]
	})
	return matched[0], true
}

// Lookup returns the value bound to the key MatchKey selects for candidate.
func Lookup(vars Mapping, candidate string, mode MatchMode) (string, bool) {
	key, ok := MatchKey(vars, candidate, mode)
	if !ok {
		return "", false
	}
	return vars[key], true
}

// patternFound searches text for pattern. Patterns that do not compile are
// searched for literally.
func patternFound(pattern, text string) bool {
	if pattern == "" {
		return false
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return strings.Contains(text, pattern)
	}
	return re.MatchString(text)
}
