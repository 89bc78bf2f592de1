// Package substitute replaces {{NAME}} placeholders in raw request text.
//
// Values come from the variable file first and the process environment
// second. A placeholder that neither source can satisfy fails the whole call:
// callers never observe a partially substituted string.
package substitute

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/git-hulk/requestkit/pkg/logger"
	"github.com/git-hulk/requestkit/pkg/variables"
)

const (
	openingDelimiter = "{{"
	closingDelimiter = "}}"
)

// placeholderPattern matches a delimited, non-empty name. Empty or malformed
// placeholders are left as they are.
var placeholderPattern = regexp.MustCompile(`\{\{[^{}]+\}\}`)

// ErrUnresolvedVariable is matched by every UnresolvedVariableError.
var ErrUnresolvedVariable = errors.New("unresolved variable")

// UnresolvedVariableError reports a placeholder found in neither the variable
// file nor the environment.
type UnresolvedVariableError struct {
	Name string
}

func (e *UnresolvedVariableError) Error() string {
	return fmt.Sprintf("unresolved variable %q: not set in variable file or environment", e.Name)
}

func (e *UnresolvedVariableError) Is(target error) bool {
	return target == ErrUnresolvedVariable
}

// LookupEnvFunc has the signature of os.LookupEnv.
type LookupEnvFunc func(name string) (string, bool)

// Option configures a Substitutor.
type Option func(*Substitutor)

// WithStore sets the variable store consulted before the environment.
func WithStore(store *variables.Store) Option {
	return func(s *Substitutor) {
		s.store = store
	}
}

// WithLookupEnv replaces os.LookupEnv as the environment source.
func WithLookupEnv(fn LookupEnvFunc) Option {
	return func(s *Substitutor) {
		s.lookupEnv = fn
	}
}

// WithMatchMode selects how placeholder names are matched against variable
// file keys. The environment is always matched exactly.
func WithMatchMode(mode variables.MatchMode) Option {
	return func(s *Substitutor) {
		s.mode = mode
	}
}

// WithLogger sets the logger used by the substitutor.
func WithLogger(l *zap.Logger) Option {
	return func(s *Substitutor) {
		s.logger = l
	}
}

// Substitutor resolves placeholders. It is safe for concurrent use; each call
// loads its own snapshot of the variable file.
type Substitutor struct {
	store     *variables.Store
	lookupEnv LookupEnvFunc
	mode      variables.MatchMode
	logger    *zap.Logger
}

// New creates a Substitutor. Without options it reads ./.env, falls back to
// os.LookupEnv and matches names exactly.
func New(options ...Option) *Substitutor {
	s := &Substitutor{
		lookupEnv: os.LookupEnv,
		mode:      variables.MatchExact,
	}
	for _, option := range options {
		option(s)
	}
	if s.logger == nil {
		s.logger = logger.Named("substitute")
	}
	if s.store == nil {
		s.store = variables.NewStore(variables.WithLogger(s.logger))
	}
	return s
}

// Resolve returns template with every placeholder replaced.
func (s *Substitutor) Resolve(template string) (string, error) {
	vars, err := s.store.Load()
	if err != nil {
		return "", err
	}
	return s.resolveWith(vars, template)
}

// ResolveAll resolves several templates against a single load of the
// variable file. Any failure fails the whole batch.
func (s *Substitutor) ResolveAll(templates ...string) ([]string, error) {
	vars, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	resolved := make([]string, len(templates))
	for i, template := range templates {
		if resolved[i], err = s.resolveWith(vars, template); err != nil {
			return nil, err
		}
	}
	return resolved, nil
}

// Placeholders returns the distinct placeholder names in template, in order
// of first appearance.
func Placeholders(template string) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, placeholder := range placeholderPattern.FindAllString(template, -1) {
		name := trimDelimiters(placeholder)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

func (s *Substitutor) resolveWith(vars variables.Mapping, template string) (string, error) {
	found := placeholderPattern.FindAllString(template, -1)
	if len(found) == 0 {
		return template, nil
	}

	values := make(map[string]string, len(found))
	for _, placeholder := range found {
		if _, ok := values[placeholder]; ok {
			continue
		}
		name := trimDelimiters(placeholder)
		value, err := s.lookup(vars, name)
		if err != nil {
			return "", err
		}
		values[placeholder] = value
	}

	// A single pass keeps substituted values from being scanned again.
	return placeholderPattern.ReplaceAllStringFunc(template, func(placeholder string) string {
		return values[placeholder]
	}), nil
}

func (s *Substitutor) lookup(vars variables.Mapping, name string) (string, error) {
	if key, ok := variables.MatchKey(vars, name, s.mode); ok {
		s.logger.Debug("placeholder resolved from variable file",
			zap.String("name", name), zap.String("key", key))
		return vars[key], nil
	}
	if value, ok := s.lookupEnv(name); ok {
		s.logger.Debug("placeholder resolved from environment", zap.String("name", name))
		return value, nil
	}
	return "", &UnresolvedVariableError{Name: name}
}

func trimDelimiters(placeholder string) string {
	return strings.TrimSuffix(strings.TrimPrefix(placeholder, openingDelimiter), closingDelimiter)
}
