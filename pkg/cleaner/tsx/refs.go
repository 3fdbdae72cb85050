package tsx

import "strings"

// DefaultRefs lists the dashboard data bindings expected as quoted attribute
// values in dashboard SVG assets. Order is the order bindings are applied in.
var DefaultRefs = []string{
	"revValue",
	"batteryVoltage",
	"powerValue",
	"cellVoltageMaxPath",
	"batteryTempMaxPath",
	"socSpan",
	"batteryVoltageDiffSpan",
	"batteryTempMinPath",
	"batteryTemperatureSpan",
	"coolantTemperature",
	"batteryTemperatureDiffSpan",
	"batteryVoltageSpan",
	"rpmSpan",
	"batteryTemperature",
	"powerSpan",
	"cellVoltageMinPath",
	"throttleSpan",
	"throttleValue",
	"speedSpan",
	"coolantTemperatureSpan",
	"cellVoltageSpan",
	"cellVoltageDiffSpan",
	"heaterTempSpan",
	"batteryInletTempSpan",
	"maxPowerSpan",
	"powerUnit",
}

// RefBinder appends a binding annotation after every quoted ref name:
// "socSpan" becomes "socSpan" ref={socSpan}.
//
// Matching is a literal substring search, so a quoted name inside a comment
// or an unrelated attribute value is annotated too.
type RefBinder struct {
	refs []string
}

// NewRefBinder creates a binder for refs, applied in the given order.
func NewRefBinder(refs []string) *RefBinder {
	r := make([]string, len(refs))
	copy(r, refs)
	return &RefBinder{refs: r}
}

// Name returns the cleaner name.
func (b *RefBinder) Name() string {
	return "refs"
}

// Refs returns the ref names in application order.
func (b *RefBinder) Refs() []string {
	out := make([]string, len(b.refs))
	copy(out, b.refs)
	return out
}

// Clean annotates every ref occurrence.
func (b *RefBinder) Clean(content string) (string, error) {
	content, _ = b.Bind(content)
	return content, nil
}

// Bind annotates every ref occurrence and returns the number of annotations
// added per ref. Refs with no new annotation are absent from the map.
func (b *RefBinder) Bind(content string) (string, map[string]int) {
	counts := make(map[string]int)
	for _, ref := range b.refs {
		var n int
		content, n = bindRef(content, ref)
		if n > 0 {
			counts[ref] = n
		}
	}
	return content, counts
}

// Annotation returns the binding annotation appended after "ref".
func Annotation(ref string) string {
	return "ref={" + ref + "}"
}

// bindRef replaces every non-overlapping `"ref"` with `"ref" ref={ref}`.
// An occurrence already followed by its annotation is kept as is.
func bindRef(content, ref string) (string, int) {
	quoted := `"` + ref + `"`
	suffix := " " + Annotation(ref)

	if !strings.Contains(content, quoted) {
		return content, 0
	}

	var sb strings.Builder
	sb.Grow(len(content) + len(suffix))

	n := 0
	rest := content
	for {
		i := strings.Index(rest, quoted)
		if i < 0 {
			break
		}
		end := i + len(quoted)
		sb.WriteString(rest[:end])
		rest = rest[end:]
		if strings.HasPrefix(rest, suffix) {
			continue
		}
		sb.WriteString(suffix)
		n++
	}
	if n == 0 {
		return content, 0
	}
	sb.WriteString(rest)
	return sb.String(), n
}
