// Package pathfilter decides which files take part in a pick.
package pathfilter

import (
	"regexp"
	"slices"
	"strings"
)

// Filter holds the allowed extensions and excluded path patterns for one walk.
// A nil *Filter matches every file and excludes nothing.
type Filter struct {
	extensions      []string
	ignoredPatterns []*regexp.Regexp
}

// Option configures a Filter.
type Option func(*Filter)

// WithExclude adds glob patterns for paths to skip during a walk.
// Patterns are matched against slash-separated paths relative to the root:
// ** matches anything, * matches within a path segment, ? matches one character.
func WithExclude(patterns ...string) Option {
	return func(f *Filter) {
		for _, p := range patterns {
			if strings.TrimSpace(p) == "" {
				continue
			}
			if re := compileGlob(p); re != nil {
				f.ignoredPatterns = append(f.ignoredPatterns, re)
			}
		}
	}
}

// New creates a Filter for the given extensions. Extensions are case-sensitive;
// a leading dot is dropped, and empty values are ignored. New returns nil when
// there is nothing to filter on.
func New(extensions []string, opts ...Option) *Filter {
	f := &Filter{}
	for _, ext := range extensions {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext == "" || slices.Contains(f.extensions, ext) {
			continue
		}
		f.extensions = append(f.extensions, ext)
	}
	for _, opt := range opts {
		opt(f)
	}

	if len(f.extensions) == 0 && len(f.ignoredPatterns) == 0 {
		return nil
	}
	return f
}

// FromArgs extracts extensions from an argument list made of "-e <ext>" pairs.
// Arguments are consumed two at a time; a pair only counts when its first
// element is exactly "-e". A trailing unpaired argument is ignored.
func FromArgs(args []string) []string {
	var extensions []string
	for i := 0; i+1 < len(args); i += 2 {
		if args[i] == "-e" {
			extensions = append(extensions, args[i+1])
		}
	}
	return extensions
}

// Extensions returns a copy of the configured extension set.
func (f *Filter) Extensions() []string {
	if f == nil {
		return nil
	}
	return slices.Clone(f.extensions)
}

// Matches reports whether a file with the given base name passes the
// extension filter. With no extensions configured every name matches.
func (f *Filter) Matches(name string) bool {
	if f == nil || len(f.extensions) == 0 {
		return true
	}

	ext, ok := Extension(name)
	if !ok {
		return false
	}
	return slices.Contains(f.extensions, ext)
}

// Excluded reports whether a path relative to the walk root matches one of
// the exclude patterns. Directories also match patterns that cover their
// contents, so ".git/**" prunes ".git" itself.
func (f *Filter) Excluded(relPath string, isDir bool) bool {
	if f == nil {
		return false
	}

	normalizedPath := strings.ReplaceAll(relPath, "\\", "/")
	for _, re := range f.ignoredPatterns {
		if re.MatchString(normalizedPath) {
			return true
		}
		if isDir && re.MatchString(normalizedPath+"/") {
			return true
		}
	}
	return false
}

// Extension returns the part of name after its final dot. Names without a
// dot, and names whose only dot is the leading one (".bashrc"), have none.
func Extension(name string) (string, bool) {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return "", false
	}
	return name[idx+1:], true
}

// compileGlob turns a glob into an anchored regex, or nil if it cannot compile.
func compileGlob(pattern string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(strings.ReplaceAll(pattern, "\\", "/"))
	expr := strings.NewReplacer(
		`\*\*`, ".*",
		`\*`, "[^/]*",
		`\?`, "[^/]",
	).Replace(quoted)

	re, err := regexp.Compile("^" + expr + "$")
	if err != nil {
		return nil
	}
	return re
}
