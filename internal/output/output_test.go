package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// Test data structure
type testItem struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

func (i testItem) String() string {
	return i.Name
}

// --- Format Tests ---

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" jsonl ", FormatJSONL, false},
		{"yaml", FormatYAML, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// --- NewWriter Factory Tests ---

func TestNewWriter_Types(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatText, "*output.TextWriter"},
		{FormatJSON, "*output.JSONWriter"},
		{FormatJSONL, "*output.JSONLWriter"},
		{FormatYAML, "*output.YAMLWriter"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			w, err := NewWriter(&bytes.Buffer{}, tt.format)
			if err != nil {
				t.Fatalf("NewWriter() error = %v", err)
			}
			if got := fmt.Sprintf("%T", w); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestNewWriter_UnsupportedFormat(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, Format("xml"))
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported output format") {
		t.Errorf("unexpected error message: %v", err)
	}
}

// --- TextWriter Tests ---

func TestTextWriter_UsesStringer(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewTextWriter(buf)

	_ = w.Write(testItem{Name: "socSpan", Value: 1})
	_ = w.Write(testItem{Name: "rpmSpan", Value: 2})
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	if got := buf.String(); got != "socSpan\nrpmSpan\n" {
		t.Errorf("got %q", got)
	}
}

// --- JSONWriter Tests ---

func TestJSONWriter_AlwaysArray(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONWriter(buf, false, "")

	_ = w.Write(testItem{Name: "only", Value: 1})
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	var result []testItem
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("output is not a JSON array: %v", err)
	}
	if len(result) != 1 || result[0].Name != "only" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestJSONWriter_PrettyPrint(t *testing.T) {
	buf := &bytes.Buffer{}
	w, _ := NewWriter(buf, FormatJSON, WithIndent("\t"))

	_ = w.Write(testItem{Name: "test", Value: 1})
	_ = w.Flush()

	if !strings.Contains(buf.String(), "\n\t{") {
		t.Errorf("expected tab indentation, got %q", buf.String())
	}
}

func TestJSONWriter_Compact(t *testing.T) {
	buf := &bytes.Buffer{}
	w, _ := NewWriter(buf, FormatJSON, WithPretty(false))

	_ = w.Write(testItem{Name: "a", Value: 1})
	_ = w.Write(testItem{Name: "b", Value: 2})
	_ = w.Flush()

	want := `[{"name":"a","value":1},{"name":"b","value":2}]` + "\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestJSONWriter_Empty(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONWriter(buf, true, "  ")
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if buf.String() != "[]\n" {
		t.Errorf("expected empty array, got %q", buf.String())
	}
}

// --- JSONLWriter Tests ---

func TestJSONLWriter_SeparateLines(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONLWriter(buf)

	for i, name := range []string{"a", "b", "c"} {
		if err := w.Write(testItem{Name: name, Value: i}); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}
	_ = w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, line := range lines {
		var item testItem
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			t.Errorf("line %d is not valid JSON: %v", i, err)
		}
		if item.Value != i {
			t.Errorf("line %d value = %d, want %d", i, item.Value, i)
		}
	}
}

func TestJSONLWriter_BuffersUntilFlush(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONLWriter(buf)

	_ = w.Write(testItem{Name: "a"})
	if buf.Len() != 0 {
		t.Error("expected nothing written before Flush")
	}
	_ = w.Flush()
	if buf.Len() == 0 {
		t.Error("expected output after Flush")
	}
}

// --- YAMLWriter Tests ---

func TestYAMLWriter_Sequence(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewYAMLWriter(buf)

	_ = w.Write(testItem{Name: "a", Value: 1})
	_ = w.Write(testItem{Name: "b", Value: 2})
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	var result []testItem
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse YAML: %v", err)
	}
	if len(result) != 2 || result[1].Name != "b" {
		t.Errorf("unexpected result: %+v", result)
	}
	if !strings.HasPrefix(buf.String(), "- name: a") {
		t.Errorf("expected block sequence, got %q", buf.String())
	}
}

func TestYAMLWriter_Empty(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewYAMLWriter(buf)
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("expected empty sequence, got %q", buf.String())
	}
}
