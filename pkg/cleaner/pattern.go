package cleaner

import "regexp"

// PatternCleaner deletes every match of a regular expression.
// Text around a match, including whitespace, is left untouched.
type PatternCleaner struct {
	name string
	re   *regexp.Regexp
}

// NewPattern creates a cleaner named name that removes all matches of re.
func NewPattern(name string, re *regexp.Regexp) *PatternCleaner {
	return &PatternCleaner{name: name, re: re}
}

// Clean removes every match of the pattern.
func (p *PatternCleaner) Clean(content string) (string, error) {
	return p.re.ReplaceAllLiteralString(content, ""), nil
}

// Strip removes every match and reports how many matches were removed.
func (p *PatternCleaner) Strip(content string) (string, int) {
	n := len(p.re.FindAllStringIndex(content, -1))
	if n == 0 {
		return content, 0
	}
	return p.re.ReplaceAllLiteralString(content, ""), n
}

// Pattern returns the source of the underlying regular expression.
func (p *PatternCleaner) Pattern() string {
	return p.re.String()
}

// Name returns the rule name.
func (p *PatternCleaner) Name() string {
	return p.name
}
