package tsx

import (
	"fmt"
	"time"

	"github.com/jmylchreest/svg2tsx/pkg/cleaner"
)

// Converter turns SVG text into TSX-ready markup.
// It implements the cleaner.Cleaner interface.
//
// Refs are bound first, then the strip rules run in order. Later rules see
// the output of earlier ones.
type Converter struct {
	config *Config
	binder *RefBinder
	rules  []*cleaner.PatternCleaner
	chain  *cleaner.ChainCleaner
}

// New creates a Converter with the given configuration.
// If config is nil, DefaultConfig() is used.
func New(config *Config) (*Converter, error) {
	if config == nil {
		config = DefaultConfig()
	}

	for i, ref := range config.Refs {
		if ref == "" {
			return nil, fmt.Errorf("ref %d is empty", i)
		}
	}

	rules, err := buildRules(config.Rules)
	if err != nil {
		return nil, err
	}

	binder := NewRefBinder(config.Refs)
	stages := make([]cleaner.Cleaner, 0, len(rules)+1)
	stages = append(stages, binder)
	for _, r := range rules {
		stages = append(stages, r)
	}

	return &Converter{
		config: config,
		binder: binder,
		rules:  rules,
		chain:  cleaner.NewChain(stages...),
	}, nil
}

// Name returns the cleaner name for logging.
func (c *Converter) Name() string {
	return "tsx"
}

// Stages describes the conversion pipeline, e.g. "chain(refs->sodipodi-attrs->...)".
func (c *Converter) Stages() string {
	return c.chain.Name()
}

// Clean converts svg. It never fails; the error is part of cleaner.Cleaner.
func (c *Converter) Clean(svg string) (string, error) {
	return c.chain.Clean(svg)
}

// CleanWithStats converts svg and returns detailed stats.
func (c *Converter) CleanWithStats(svg string) *Result {
	start := time.Now()
	stats := NewStats()
	stats.InputBytes = len(svg)

	content, bound := c.binder.Bind(svg)
	stats.RefsBound = bound
	stats.BindDuration = time.Since(start)

	stripStart := time.Now()
	for _, r := range c.rules {
		var n int
		content, n = r.Strip(content)
		if n > 0 {
			stats.RuleMatches[r.Name()] = n
		}
	}
	stats.StripDuration = time.Since(stripStart)

	stats.OutputBytes = len(content)
	stats.TotalDuration = time.Since(start)

	return &Result{
		Content: content,
		Stats:   stats,
	}
}
