package rules

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// patternsConfig is the on-disk shape of resources.toml.
type patternsConfig struct {
	Patterns []patternDef `toml:"patterns"`
}

type patternDef struct {
	Pattern  string `toml:"pattern"`
	Category string `toml:"category"`
}

type patternEntry struct {
	re       *regexp.Regexp
	category string
}

// Patterns classifies item names into resource categories. Entries are
// checked in file order and the first match wins.
type Patterns struct {
	entries []patternEntry
}

// LoadPatternsFile loads resource patterns from a TOML file.
func LoadPatternsFile(path string) (*Patterns, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open patterns file: %w", err)
	}
	defer f.Close()
	return LoadPatterns(f)
}

// LoadPatterns parses and compiles the pattern list.
func LoadPatterns(r io.Reader) (*Patterns, error) {
	var cfg patternsConfig
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse patterns config: %w", err)
	}

	p := &Patterns{entries: make([]patternEntry, 0, len(cfg.Patterns))}
	for _, def := range cfg.Patterns {
		if def.Pattern == "" || def.Category == "" {
			return nil, fmt.Errorf("pattern entry must set both pattern and category: %+v", def)
		}
		re, err := regexp.Compile(def.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid resource pattern %q: %w", def.Pattern, err)
		}
		p.entries = append(p.entries, patternEntry{re: re, category: def.Category})
	}

	return p, nil
}

// Categorize returns the category of the first pattern matching the
// item name. Matching is done against the lowercased name. Items no
// pattern matches are untracked and report false.
func (p *Patterns) Categorize(item string) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(item))
	for _, e := range p.entries {
		if e.re.MatchString(name) {
			return e.category, true
		}
	}
	return "", false
}

// Size returns the number of compiled patterns.
func (p *Patterns) Size() int {
	return len(p.entries)
}
