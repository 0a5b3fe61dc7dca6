// Package gate decides whether a team is entitled to resource credit
// for a drop source, based on its building levels and the static rule
// tables.
package gate

import (
	"github.com/osse101/ClanWarsBot_Go/internal/domain"
	"github.com/osse101/ClanWarsBot_Go/internal/rules"
)

// Denial reasons, surfaced in logs and metrics only.
const (
	ReasonAllowed         = "allowed"
	ReasonUnknownSource   = "unknown_source"
	ReasonArmoryUnmapped  = "armory_level_unmapped"
	ReasonCombatTooHigh   = "combat_level_too_high"
	ReasonSlayerUnmapped  = "slayer_level_unmapped"
	ReasonSlayerTooLow    = "slayer_level_too_low"
	ReasonGarrisonsTooLow = "garrisons_level_too_low"
)

// Decision is the outcome of an access check. Reason is for
// observability; callers branch on Allowed alone.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true, Reason: ReasonAllowed}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Evaluator checks drop sources against the loaded rule tables. It is
// pure and safe for concurrent use.
type Evaluator struct {
	bestiary *rules.Bestiary
	slayer   *rules.SlayerTable
	access   rules.AccessTables
}

// NewEvaluator creates an Evaluator over the given rule tables.
func NewEvaluator(bestiary *rules.Bestiary, slayer *rules.SlayerTable, access rules.AccessTables) *Evaluator {
	return &Evaluator{
		bestiary: bestiary,
		slayer:   slayer,
		access:   access,
	}
}

// Evaluate decides whether a team with the given building levels may
// claim credit for a drop from source. Sources with a bestiary combat
// level are gated by the armory (and the slayer tower when the monster
// has a slayer requirement); everything else must match a known raid
// gated by the garrisons. Levels with no mapping row deny rather than
// fall through.
func (e *Evaluator) Evaluate(source string, buildingLevels map[string]int) Decision {
	if combat, ok := e.bestiary.CombatLevel(source); ok {
		return e.evaluateMonster(source, combat, buildingLevels)
	}

	req, ok := e.access.RaidRequirement(source)
	if !ok {
		return deny(ReasonUnknownSource)
	}
	if buildingLevels[domain.BuildingGarrisons] < req {
		return deny(ReasonGarrisonsTooLow)
	}
	return allow()
}

func (e *Evaluator) evaluateMonster(source string, combat int, buildingLevels map[string]int) Decision {
	maxCombat, ok := e.access.MaxCombat(buildingLevels[domain.BuildingArmory])
	if !ok {
		return deny(ReasonArmoryUnmapped)
	}
	if combat > maxCombat {
		return deny(ReasonCombatTooHigh)
	}

	required, ok := e.slayer.Requirement(source)
	if !ok {
		return allow()
	}

	unlocked, ok := e.access.SlayerLevel(buildingLevels[domain.BuildingSlayer])
	if !ok {
		return deny(ReasonSlayerUnmapped)
	}
	if unlocked < required {
		return deny(ReasonSlayerTooLow)
	}
	return allow()
}
