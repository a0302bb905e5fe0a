package dubar

import (
	"fmt"
	"regexp"

	"github.com/gobwas/glob"
)

// nameFilter decides which immediate children take part in a scan.
// It matches on the entry name only, never the full path.
type nameFilter struct {
	regex   *regexp.Regexp
	include []glob.Glob
	exclude []glob.Glob
}

// newNameFilter compiles the regex or glob patterns from opts. A regex
// takes precedence over globs; include and exclude globs combine so
// that a name must match any include (when given) and no exclude.
func newNameFilter(opts Options) (*nameFilter, error) {
	filter := &nameFilter{}

	if opts.Regex != "" {
		re, err := regexp.Compile(opts.Regex)
		if err != nil {
			return nil, fmt.Errorf("compiling regex pattern %q: %w", opts.Regex, err)
		}

		filter.regex = re

		return filter, nil
	}

	for _, p := range opts.Include {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compiling include pattern %q: %w", p, err)
		}

		filter.include = append(filter.include, g)
	}

	for _, p := range opts.Exclude {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compiling exclude pattern %q: %w", p, err)
		}

		filter.exclude = append(filter.exclude, g)
	}

	return filter, nil
}

// match reports whether name passes the filter.
func (f *nameFilter) match(name string) bool {
	if f.regex != nil {
		return f.regex.MatchString(name)
	}

	// Check excludes first
	for _, g := range f.exclude {
		if g.Match(name) {
			return false
		}
	}
	// If no include filter, include all
	if len(f.include) == 0 {
		return true
	}
	// Check includes
	for _, g := range f.include {
		if g.Match(name) {
			return true
		}
	}

	return false
}
