package cleaner

import (
	"errors"
	"regexp"
	"strings"
	"testing"
)

// upperCleaner is a test cleaner that upper-cases its input
type upperCleaner struct{}

func (c *upperCleaner) Clean(content string) (string, error) {
	return strings.ToUpper(content), nil
}

func (c *upperCleaner) Name() string {
	return "upper"
}

// errorCleaner is a test cleaner that always returns an error
type errorCleaner struct{}

var errTest = errors.New("test error")

func (c *errorCleaner) Clean(content string) (string, error) {
	return "", errTest
}

func (c *errorCleaner) Name() string {
	return "error"
}

// --- ChainCleaner Tests ---

func TestChainCleaner_Empty(t *testing.T) {
	c := NewChain()

	input := "unchanged content"
	got, err := c.Clean(input)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}

	if got != input {
		t.Errorf("Clean() = %q, want %q", got, input)
	}
}

func TestChainCleaner_Order(t *testing.T) {
	// Stripping lowercase "x" only works before upper-casing.
	c := NewChain(NewPattern("x", regexp.MustCompile(`x`)), &upperCleaner{})

	got, err := c.Clean("axbxc")
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if got != "ABC" {
		t.Errorf("Clean() = %q, want %q", got, "ABC")
	}

	reversed := NewChain(&upperCleaner{}, NewPattern("x", regexp.MustCompile(`x`)))
	got, err = reversed.Clean("axbxc")
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if got != "AXBXC" {
		t.Errorf("Clean() = %q, want %q", got, "AXBXC")
	}
}

func TestChainCleaner_ErrorPropagation(t *testing.T) {
	c := NewChain(&upperCleaner{}, &errorCleaner{}, &upperCleaner{})

	_, err := c.Clean("test")
	if err == nil {
		t.Fatal("expected error to propagate")
	}

	if !errors.Is(err, errTest) {
		t.Errorf("expected wrapped errTest, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "error: ") {
		t.Errorf("expected error prefixed with cleaner name, got %v", err)
	}
}

func TestChainCleaner_Name(t *testing.T) {
	tests := []struct {
		name     string
		cleaners []Cleaner
		want     string
	}{
		{"empty", []Cleaner{}, "chain()"},
		{"single", []Cleaner{&upperCleaner{}}, "chain(upper)"},
		{"double", []Cleaner{&upperCleaner{}, NewPattern("strip", regexp.MustCompile(`a`))}, "chain(upper->strip)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChain(tt.cleaners...)
			if got := c.Name(); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChainCleaner_CleanersIsCopy(t *testing.T) {
	c := NewChain(&upperCleaner{})

	got := c.Cleaners()
	got[0] = &errorCleaner{}

	if _, err := c.Clean("a"); err != nil {
		t.Errorf("mutating Cleaners() result changed the chain: %v", err)
	}
}

// --- PatternCleaner Tests ---

func TestPatternCleaner_Strip(t *testing.T) {
	p := NewPattern("digits", regexp.MustCompile(`[0-9]+`))

	tests := []struct {
		name      string
		input     string
		want      string
		wantCount int
	}{
		{"no_match", "abc", "abc", 0},
		{"single", "a1b", "ab", 1},
		{"multiple", "1a22b333", "ab", 3},
		{"keeps_surrounding_space", "a 1 b", "a  b", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n := p.Strip(tt.input)
			if got != tt.want {
				t.Errorf("Strip() = %q, want %q", got, tt.want)
			}
			if n != tt.wantCount {
				t.Errorf("Strip() count = %d, want %d", n, tt.wantCount)
			}

			cleaned, err := p.Clean(tt.input)
			if err != nil {
				t.Fatalf("Clean() error = %v", err)
			}
			if cleaned != tt.want {
				t.Errorf("Clean() = %q, want %q", cleaned, tt.want)
			}
		})
	}
}

func TestPatternCleaner_LiteralReplacement(t *testing.T) {
	// "$1" in the input must survive; removal never expands templates.
	p := NewPattern("x", regexp.MustCompile(`(x)`))
	got, _ := p.Strip("$1x$1")
	if got != "$1$1" {
		t.Errorf("Strip() = %q, want %q", got, "$1$1")
	}
}

func TestPatternCleaner_Accessors(t *testing.T) {
	p := NewPattern("digits", regexp.MustCompile(`[0-9]+`))
	if p.Name() != "digits" {
		t.Errorf("Name() = %q, want %q", p.Name(), "digits")
	}
	if p.Pattern() != `[0-9]+` {
		t.Errorf("Pattern() = %q, want %q", p.Pattern(), `[0-9]+`)
	}
}
