package listing

import (
	pathpkg "path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// ignorePattern represents a single parsed ignore pattern.
type ignorePattern struct {
	// negated indicates whether or not the pattern is negated.
	negated bool
	// directoryOnly indicates whether or not the pattern should only match
	// directories.
	directoryOnly bool
	// matchLeaf indicates whether or not the pattern should be matched
	// against a name's base component in addition to the whole name.
	matchLeaf bool
	// pattern is the pattern to use in matching.
	pattern string
}

// newIgnorePattern validates and parses a user-provided ignore pattern.
func newIgnorePattern(pattern string) (*ignorePattern, error) {
	// Check for patterns that would leave us with an empty string after
	// parsing.
	if pattern == "" || pattern == "!" {
		return nil, errors.New("empty pattern")
	} else if pattern == "/" || pattern == "!/" {
		return nil, errors.New("root pattern")
	}

	// Check if this is a negated pattern. If so, remove the exclamation point
	// prefix, since it won't enter into pattern matching.
	negated := false
	if pattern[0] == '!' {
		negated = true
		pattern = pattern[1:]
	}

	// Check if this is an absolute pattern. If so, remove the forward slash
	// prefix, since it won't enter into pattern matching.
	absolute := false
	if pattern[0] == '/' {
		absolute = true
		pattern = pattern[1:]
	}

	// Check if this is a directory-only pattern. If so, remove the trailing
	// slash, since it won't enter into pattern matching.
	directoryOnly := false
	if len(pattern) > 0 && pattern[len(pattern)-1] == '/' {
		directoryOnly = true
		pattern = pattern[:len(pattern)-1]
	}

	// Determine whether or not the pattern contains a slash.
	containsSlash := strings.IndexByte(pattern, '/') >= 0

	// Attempt a match with the pattern to ensure validity. We have to match
	// against a non-empty path, otherwise bad pattern errors won't be
	// detected.
	if _, err := doublestar.Match(pattern, "a"); err != nil {
		return nil, errors.Wrap(err, "unable to validate pattern")
	}

	// Success.
	return &ignorePattern{
		negated:       negated,
		directoryOnly: directoryOnly,
		matchLeaf:     (!absolute && !containsSlash),
		pattern:       pattern,
	}, nil
}

// matches indicates whether or not the ignore pattern matches the specified
// name, returning (matched, negated).
func (i *ignorePattern) matches(name string, directory bool) (bool, bool) {
	// If this pattern only applies to directories and this is not a
	// directory, then this is not a match.
	if i.directoryOnly && !directory {
		return false, false
	}

	// Check if there is a direct match. Since we've already validated the
	// pattern in the constructor, we know Match can't fail.
	if match, _ := doublestar.Match(i.pattern, name); match {
		return true, i.negated
	}

	// If it makes sense, attempt to match on the base component of the name.
	if i.matchLeaf && name != "" {
		if match, _ := doublestar.Match(i.pattern, pathpkg.Base(name)); match {
			return true, i.negated
		}
	}

	// No match.
	return false, false
}

// ValidIgnorePattern checks whether or not a given pattern is a valid ignore
// specification.
func ValidIgnorePattern(pattern string) bool {
	_, err := newIgnorePattern(pattern)
	return err == nil
}

// ignorer is a collection of parsed ignore patterns.
type ignorer struct {
	// patterns are the parsed patterns, in evaluation order.
	patterns []*ignorePattern
}

// newIgnorer parses a series of user-provided ignore patterns.
func newIgnorer(patterns []string) (*ignorer, error) {
	parsed := make([]*ignorePattern, len(patterns))
	for i, pattern := range patterns {
		p, err := newIgnorePattern(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to parse pattern %q", pattern)
		}
		parsed[i] = p
	}
	return &ignorer{patterns: parsed}, nil
}

// ignored reports whether a name should be ignored. Later patterns take
// precedence over earlier ones, with negated patterns re-including
// previously ignored names.
func (i *ignorer) ignored(name string, directory bool) bool {
	ignored := false
	for _, pattern := range i.patterns {
		if matched, negated := pattern.matches(name, directory); matched {
			ignored = !negated
		}
	}
	return ignored
}
