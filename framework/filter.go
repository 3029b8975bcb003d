package framework

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not.
type Filter func(TestID) bool

type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

// AsFilter can be passed to Run as a Filter.
//
// Like the -run flag of "go test", each MustMatch pattern is split on "/" and each element is
// matched against the test name at the same depth, so a group of tests is run as long as its
// path is consistent with some pattern so far. MustNotMatch patterns are matched against the
// whole slash-separated test name.
func (r RegexFilters) AsFilter(id TestID) bool {
	return (!r.MustMatch.IsDefined() || r.MustMatch.anyPrefixMatch(id)) &&
		!r.MustNotMatch.AnyMatch(id.String())
}

type RegexList struct {
	patterns []regexPath
}

type regexPath struct {
	full     *regexp.Regexp
	elements []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.full.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	full, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	p := regexPath{full: full}
	for _, element := range splitRegexp(value) {
		rx, err := regexp.Compile(element)
		if err != nil {
			return fmt.Errorf("invalid regex: %w", err)
		}
		p.elements = append(p.elements, rx)
	}
	r.patterns = append(r.patterns, p)
	return nil
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

// AnyMatch returns true if the string matches any of the patterns as a whole.
func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.full.MatchString(s) {
			return true
		}
	}
	return false
}

func (r RegexList) anyPrefixMatch(id TestID) bool {
	for _, p := range r.patterns {
		if p.matchesPrefix(id) {
			return true
		}
	}
	return false
}

func (p regexPath) matchesPrefix(id TestID) bool {
	for i, name := range id.Path {
		if i >= len(p.elements) {
			break
		}
		if !p.elements[i].MatchString(name) {
			return false
		}
	}
	return true
}

// splitRegexp splits a pattern on slashes that are not inside brackets or parentheses.
func splitRegexp(s string) []string {
	var elements []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '[', '(':
			depth++
		case ']', ')':
			depth--
		case '/':
			if depth == 0 {
				elements = append(elements, s[start:i])
				start = i + 1
			}
		}
	}
	return append(elements, s[start:])
}

func PrintFilterDescription(dest io.Writer, filters RegexFilters) {
	if filters.MustMatch.IsDefined() || filters.MustNotMatch.IsDefined() {
		fmt.Fprintln(dest, "Some tests will be skipped based on the filter criteria for this test run:")
		if filters.MustMatch.IsDefined() {
			fmt.Fprintf(dest, "  skip any not matching %s\n", filters.MustMatch)
		}
		if filters.MustNotMatch.IsDefined() {
			fmt.Fprintf(dest, "  skip any matching %s\n", filters.MustNotMatch)
		}
		fmt.Fprintln(dest)
	}
}
