package rules

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Slayer list column layout. Rows may be tab or pipe separated.
const (
	slayerLevelColumn       = 0
	slayerNameColumn        = 1
	slayerSuperiorColumn    = 6
	slayerAlternativeColumn = 7
)

// SlayerTable maps monsters to the slayer level required to harm them.
// Monsters without an entry have no slayer requirement.
type SlayerTable struct {
	levels map[string]int
}

// LoadSlayerFile loads a slayer table from a file.
func LoadSlayerFile(path string) (*SlayerTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open slayer file: %w", err)
	}
	defer f.Close()
	return LoadSlayer(f)
}

// LoadSlayer parses slayer rows. Superior variants and alternative
// names inherit the level of their base row. Rows with a level of 1 or
// below carry no real requirement and are skipped.
func LoadSlayer(r io.Reader) (*SlayerTable, error) {
	s := &SlayerTable{levels: make(map[string]int)}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		sep := "\t"
		if !strings.Contains(line, sep) {
			sep = "|"
		}
		fields := strings.Split(line, sep)
		if len(fields) <= slayerNameColumn {
			continue
		}

		level, err := strconv.Atoi(strings.TrimSpace(fields[slayerLevelColumn]))
		if err != nil || level <= 1 {
			continue
		}

		name := strings.ToLower(strings.TrimSpace(fields[slayerNameColumn]))
		name = strings.TrimSuffix(name, "s")
		if name == "" {
			continue
		}
		s.add(name, level)

		if len(fields) > slayerSuperiorColumn {
			for _, superior := range strings.Split(fields[slayerSuperiorColumn], ",") {
				superior = strings.ToLower(strings.TrimSpace(superior))
				if superior == "" || superior == "n/a" {
					continue
				}
				s.add(superior, level)
			}
		}

		if len(fields) > slayerAlternativeColumn {
			for _, alt := range strings.Split(fields[slayerAlternativeColumn], ",") {
				alt = strings.ToLower(strings.TrimSpace(alt))
				if alt == "" || alt == "n/a" {
					continue
				}
				s.add(alt, level)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read slayer list: %w", err)
	}

	return s, nil
}

func (s *SlayerTable) add(name string, level int) {
	if _, exists := s.levels[name]; !exists {
		s.levels[name] = level
	}
}

// Requirement returns the slayer level needed for a monster, if any.
// Trailing plural forms are normalized the same way the loader does.
func (s *SlayerTable) Requirement(name string) (int, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if level, ok := s.levels[key]; ok {
		return level, true
	}
	level, ok := s.levels[strings.TrimSuffix(key, "s")]
	return level, ok
}

// Size returns the number of distinct slayer entries loaded.
func (s *SlayerTable) Size() int {
	return len(s.levels)
}
