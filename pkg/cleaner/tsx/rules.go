package tsx

import (
	"regexp"

	"github.com/jmylchreest/svg2tsx/pkg/cleaner"
)

// Strip rule names, in the order they are applied.
const (
	RuleSodipodiAttrs = "sodipodi-attrs"
	RuleXMLNSAttrs    = "xmlns-attrs"
	RuleXMLAttrs      = "xml-attrs"
	RuleXMLDecl       = "xml-declaration"
	RuleNamedView     = "namedview"
	RuleInkscapeAttrs = "inkscape-attrs"
)

// Character class bodies. Word and space are Unicode aware: letters, numbers
// and underscore count as word characters; Unicode separators and the ASCII
// control whitespace (including \v and the \x1c-\x1f separators) count as space.
const (
	wordClass  = `\p{L}\p{N}_`
	spaceClass = `\s\v\p{Z}\x{85}\x{1c}-\x{1f}`
)

type ruleDef struct {
	name    string
	pattern string
}

var ruleDefs = []ruleDef{
	// sodipodi:type="arc" and friends; values restricted to word chars and dots.
	{RuleSodipodiAttrs, `sodipodi:[` + wordClass + `]+="[` + wordClass + `.]+"`},
	// xmlns:inkscape="http://..." (the default xmlns="..." has no prefix and stays).
	{RuleXMLNSAttrs, `xmlns:[` + wordClass + `]+="[^` + spaceClass + `]+"`},
	{RuleXMLAttrs, `xml:[` + wordClass + `]+="[^"]+"`},
	{RuleXMLDecl, `<\?xml[^>]+>`},
	{RuleNamedView, `<sodipodi:namedview[` + wordClass + spaceClass + `="#.:\-]+/>`},
	{RuleInkscapeAttrs, `inkscape:[` + wordClass + `]+="[^"]+"`},
}

var compiledRules = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(ruleDefs))
	for _, d := range ruleDefs {
		m[d.name] = regexp.MustCompile(d.pattern)
	}
	return m
}()

// RuleNames returns every strip rule name in application order.
func RuleNames() []string {
	names := make([]string, len(ruleDefs))
	for i, d := range ruleDefs {
		names[i] = d.name
	}
	return names
}

// buildRules returns pattern cleaners for the enabled rule names. Rules always
// run in the canonical order, whatever order enabled lists them in.
func buildRules(enabled []string) ([]*cleaner.PatternCleaner, error) {
	want := make(map[string]bool, len(enabled))
	for _, name := range enabled {
		if _, ok := compiledRules[name]; !ok {
			return nil, &UnknownRuleError{Name: name}
		}
		want[name] = true
	}

	rules := make([]*cleaner.PatternCleaner, 0, len(want))
	for _, d := range ruleDefs {
		if want[d.name] {
			rules = append(rules, cleaner.NewPattern(d.name, compiledRules[d.name]))
		}
	}
	return rules, nil
}

// UnknownRuleError reports a strip rule name that does not exist.
type UnknownRuleError struct {
	Name string
}

func (e *UnknownRuleError) Error() string {
	return "unknown strip rule: " + e.Name
}
