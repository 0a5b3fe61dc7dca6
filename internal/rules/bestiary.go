package rules

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Bestiary column layout of the tab-separated monster dump.
const (
	bestiaryNameColumn   = 0
	bestiaryCombatColumn = 3
	bestiaryMinColumns   = 4
)

// Bestiary maps monster names to combat levels. Loaded once at startup
// and read-only afterwards.
type Bestiary struct {
	combat map[string]int
}

// LoadBestiaryFile loads a bestiary from a tab-separated file.
func LoadBestiaryFile(path string) (*Bestiary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bestiary file: %w", err)
	}
	defer f.Close()
	return LoadBestiary(f)
}

// LoadBestiary parses tab-separated monster rows. The name column is
// cleaned of wiki suffixes, and the first occurrence of a name wins so
// that monster variants do not overwrite the base entry.
func LoadBestiary(r io.Reader) (*Bestiary, error) {
	b := &Bestiary{combat: make(map[string]int)}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) < bestiaryMinColumns {
			continue
		}

		name := cleanMonsterName(fields[bestiaryNameColumn])
		if name == "" {
			continue
		}

		level, err := strconv.Atoi(strings.TrimSpace(fields[bestiaryCombatColumn]))
		if err != nil {
			// Header row or a monster without a combat level
			continue
		}

		key := strings.ToLower(name)
		if _, exists := b.combat[key]; !exists {
			b.combat[key] = level
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bestiary: %w", err)
	}

	return b, nil
}

// CombatLevel looks up a monster's combat level, case-insensitively.
func (b *Bestiary) CombatLevel(name string) (int, bool) {
	level, ok := b.combat[strings.ToLower(strings.TrimSpace(name))]
	return level, ok
}

// Size returns the number of distinct monsters loaded.
func (b *Bestiary) Size() int {
	return len(b.combat)
}

// cleanMonsterName strips the wiki suffixes monsters carry in the dump,
// e.g. "Zulrah - Serpentine" and "Kree'arra (hard)" both reduce to the
// base monster name.
func cleanMonsterName(raw string) string {
	name := strings.TrimSpace(raw)
	if idx := strings.Index(name, " - "); idx >= 0 {
		name = name[:idx]
	}
	if idx := strings.Index(name, " ("); idx >= 0 {
		name = name[:idx]
	}
	return strings.TrimSpace(name)
}
