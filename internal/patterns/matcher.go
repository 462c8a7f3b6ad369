package patterns

import (
	"fmt"
	"path/filepath"

	"github.com/gobwas/glob"
)

// Matcher decides which paths are processed based on include and
// exclude glob lists. It is immutable after construction.
type Matcher struct {
	includes []glob.Glob
	excludes []glob.Glob
}

// NewMatcher compiles the include and exclude glob lists.
// Globs are case-sensitive and must match the entire path; `*` spans
// path separators.
func NewMatcher(includes, excludes []string) (*Matcher, error) {
	inc, err := compile(includes)
	if err != nil {
		return nil, err
	}
	exc, err := compile(excludes)
	if err != nil {
		return nil, err
	}

	return &Matcher{includes: inc, excludes: exc}, nil
}

func compile(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(filepath.ToSlash(pattern))
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// ShouldProcess reports whether a change at path is interesting.
// Directories are never processed. Excludes take precedence over
// includes. With no include patterns, nothing is processed.
func (m *Matcher) ShouldProcess(path string, isDir bool) bool {
	if isDir {
		return false
	}

	normalized := filepath.ToSlash(path)

	for _, exclude := range m.excludes {
		if exclude.Match(normalized) {
			return false
		}
	}

	for _, include := range m.includes {
		if include.Match(normalized) {
			return true
		}
	}

	return false
}
