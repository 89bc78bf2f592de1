// Package variables loads substitution variables from a local .env style file
// and answers membership questions against the loaded mapping.
//
// The file format is deliberately minimal: one KEY=VALUE pair per line, split
// on the first '=' only. Values are taken verbatim; there is no trimming,
// quoting, escaping or variable expansion.
package variables

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/git-hulk/requestkit/pkg/logger"
	"github.com/git-hulk/requestkit/pkg/strutil"
)

// DefaultFileName is the variable file looked up in the store directory.
const DefaultFileName = ".env"

// Mapping maps variable names to their values.
type Mapping map[string]string

// Option configures a Store.
type Option func(*Store)

// WithDir sets the directory holding the variable file. Defaults to the
// working directory at load time.
func WithDir(dir string) Option {
	return func(s *Store) {
		s.dir = dir
	}
}

// WithFileName overrides DefaultFileName.
func WithFileName(name string) Option {
	return func(s *Store) {
		s.fileName = name
	}
}

// WithSkipComments makes Load ignore lines for which IsComment reports true.
// By default comment lines are parsed like any other line.
func WithSkipComments() Option {
	return func(s *Store) {
		s.skipComments = true
	}
}

// WithLogger sets the logger used by the store.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// Store reads the variable file. It keeps no state between loads, so every
// call to Load observes the file as it is at that moment.
type Store struct {
	dir          string
	fileName     string
	skipComments bool
	logger       *zap.Logger
}

// NewStore creates a Store with the given options.
func NewStore(options ...Option) *Store {
	s := &Store{fileName: DefaultFileName}
	for _, option := range options {
		option(s)
	}
	if s.logger == nil {
		s.logger = logger.Named("variables")
	}
	return s
}

// Path returns the absolute location of the variable file.
func (s *Store) Path() (string, error) {
	dir := s.dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		dir = wd
	}
	return filepath.Join(dir, s.fileName), nil
}

// Load reads the variable file into a fresh Mapping. A missing file yields an
// empty mapping and no error.
func (s *Store) Load() (Mapping, error) {
	path, err := s.Path()
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("variable file not found", zap.String("path", path))
		return Mapping{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read variable file %s: %w", path, err)
	}
	return s.parse(string(content)), nil
}

func (s *Store) parse(content string) Mapping {
	vars := make(Mapping)
	for i, line := range strutil.Lines(content) {
		if line == "" {
			continue
		}
		if s.skipComments && IsComment(line) {
			continue
		}
		pair := strutil.Split(line, "=", 1)
		if len(pair) != 2 {
			s.logger.Debug("skip line without '='", zap.Int("line", i+1))
			continue
		}
		vars[pair[0]] = pair[1]
	}
	return vars
}

// IsComment reports whether line is a '#' comment, ignoring leading whitespace.
func IsComment(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "#")
}
