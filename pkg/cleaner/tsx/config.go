// Package tsx converts Inkscape SVG exports into markup that can be pasted
// into a TSX dashboard component. It binds known dashboard refs and strips
// editor metadata with plain text operations; the SVG is never parsed.
package tsx

// Config selects the refs to bind and the strip rules to apply.
type Config struct {
	// Refs are the ref names to annotate, in application order.
	Refs []string `json:"refs" yaml:"refs"`

	// Rules are the strip rule names to enable. Enabled rules always run in
	// the order returned by RuleNames.
	Rules []string `json:"rules" yaml:"rules"`
}

// DefaultConfig binds every dashboard ref and enables every strip rule.
func DefaultConfig() *Config {
	return &Config{
		Refs:  append([]string(nil), DefaultRefs...),
		Rules: RuleNames(),
	}
}

// PresetStripOnly removes editor metadata without binding any refs.
func PresetStripOnly() *Config {
	return &Config{
		Rules: RuleNames(),
	}
}
