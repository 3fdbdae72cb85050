package tsx

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Stats captures metrics about one conversion.
type Stats struct {
	// Size metrics
	InputBytes  int `json:"input_bytes"`
	OutputBytes int `json:"output_bytes"`

	// RefsBound counts the annotations added per ref name.
	RefsBound map[string]int `json:"refs_bound"`

	// RuleMatches counts the matches removed per strip rule.
	RuleMatches map[string]int `json:"rule_matches"`

	// Timing
	BindDuration  time.Duration `json:"bind_duration_ms"`
	StripDuration time.Duration `json:"strip_duration_ms"`
	TotalDuration time.Duration `json:"total_duration_ms"`
}

// NewStats creates a new Stats instance with initialized maps.
func NewStats() *Stats {
	return &Stats{
		RefsBound:   make(map[string]int),
		RuleMatches: make(map[string]int),
	}
}

// ReductionPercent returns the percentage reduction in size.
// Binding annotations grow the output, so the value can be negative.
func (s *Stats) ReductionPercent() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.InputBytes-s.OutputBytes) / float64(s.InputBytes) * 100
}

// TotalRefsBound returns the number of annotations added.
func (s *Stats) TotalRefsBound() int {
	total := 0
	for _, n := range s.RefsBound {
		total += n
	}
	return total
}

// TotalRemoved returns the number of matches removed by all strip rules.
func (s *Stats) TotalRemoved() int {
	total := 0
	for _, n := range s.RuleMatches {
		total += n
	}
	return total
}

// String returns a human-readable summary of the stats.
func (s *Stats) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Size: %d -> %d bytes (%.1f%% reduction)\n",
		s.InputBytes, s.OutputBytes, s.ReductionPercent())

	fmt.Fprintf(&sb, "Refs bound: %d\n", s.TotalRefsBound())
	if len(s.RefsBound) > 0 {
		sb.WriteString("Bound by ref: ")
		sb.WriteString(joinCounts(s.RefsBound))
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Removed: %d\n", s.TotalRemoved())
	if len(s.RuleMatches) > 0 {
		sb.WriteString("Removed by rule: ")
		sb.WriteString(joinCounts(s.RuleMatches))
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Timing: bind=%v, strip=%v, total=%v\n",
		s.BindDuration.Round(time.Microsecond),
		s.StripDuration.Round(time.Microsecond),
		s.TotalDuration.Round(time.Microsecond))

	return sb.String()
}

// joinCounts renders a count map as "k=v" pairs sorted by key.
func joinCounts(m map[string]int) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, m[k])
	}
	return strings.Join(parts, ", ")
}

// Result contains the output of a conversion.
type Result struct {
	// Content is the converted markup.
	Content string `json:"content"`

	// Stats contains metrics about what was done.
	Stats *Stats `json:"stats"`
}
