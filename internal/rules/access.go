package rules

import (
	"strings"
)

// CreditModifier boosts resource credits for teams that have invested
// in a building. A drop credit for a category picks up the best
// multiplier and flat bonus among the rows its building levels unlock.
type CreditModifier struct {
	Building   string
	Level      int
	Category   string
	Multiplier float64
	FlatBonus  int64
}

// AccessTables holds the level-keyed mappings that gate drops and
// shape credits. Lookups are strict: a level with no row denies access
// rather than falling through to a permissive default.
type AccessTables struct {
	ArmoryCombat map[int]int
	SlayerMaster map[int]int
	Raids        map[string]int
	Modifiers    []CreditModifier
}

// MaxCombat returns the highest monster combat level an armory level
// may engage. Missing rows report false, which callers treat as deny.
func (a AccessTables) MaxCombat(armoryLevel int) (int, bool) {
	v, ok := a.ArmoryCombat[armoryLevel]
	return v, ok
}

// SlayerLevel returns the slayer-master level unlocked by a slayer
// building level. Missing rows report false, which callers treat as
// deny.
func (a AccessTables) SlayerLevel(buildingLevel int) (int, bool) {
	v, ok := a.SlayerMaster[buildingLevel]
	return v, ok
}

// RaidRequirement returns the garrisons level required for a raid
// source, matching case-insensitively. The second result is false when
// the source is not a known raid.
func (a AccessTables) RaidRequirement(source string) (int, bool) {
	v, ok := a.Raids[strings.ToLower(strings.TrimSpace(source))]
	return v, ok
}

// CreditModifier computes the multiplier and flat bonus for a category
// given a team's building levels. Among all modifier rows the team's
// levels meet, the largest multiplier and largest flat bonus apply
// independently. Teams with no matching rows get the neutral 1.0 / 0.
func (a AccessTables) CreditModifier(buildingLevels map[string]int, category string) (float64, int64) {
	multiplier := 1.0
	var flatBonus int64

	for _, m := range a.Modifiers {
		if m.Category != category {
			continue
		}
		level, ok := buildingLevels[m.Building]
		if !ok || level < m.Level {
			continue
		}
		if m.Multiplier > multiplier {
			multiplier = m.Multiplier
		}
		if m.FlatBonus > flatBonus {
			flatBonus = m.FlatBonus
		}
	}

	return multiplier, flatBonus
}

// CalculateCredit applies the credit formula: the base quantity scaled
// by the multiplier, floored, plus the flat bonus.
func CalculateCredit(base int64, multiplier float64, flatBonus int64) int64 {
	return int64(float64(base)*multiplier) + flatBonus
}
