package discord

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/ClanWarsBot_Go/internal/domain"
	"github.com/osse101/ClanWarsBot_Go/internal/rules"
	"github.com/osse101/ClanWarsBot_Go/internal/town"
)

func displayTownRules() *rules.Town {
	return &rules.Town{
		Catalog: map[string]domain.BuildingCatalogEntry{
			"garrisons": {
				Name:          "garrisons",
				Icon:          "🛡️",
				StartingLevel: 1,
				MaxLevel:      5,
				Benefits:      []string{"Basic patrols", "Raid scouts", "Siege training"},
			},
			"armory": {
				Name:          "armory",
				StartingLevel: 1,
				MaxLevel:      3,
			},
		},
		Access: rules.AccessTables{
			Raids: map[string]int{
				"tombs of amascut":  2,
				"chambers of xeric": 3,
			},
		},
	}
}

func TestBuildTownEmbed(t *testing.T) {
	// ARRANGE
	summary := &town.Summary{
		Team: domain.Team{ID: 1, Name: "red-raiders"},
		Buildings: []domain.Building{
			{Name: "garrisons", Level: 2},
			{Name: "armory", Level: 1},
		},
		Resources: []domain.Resource{
			{Name: "gold coin", Category: domain.CategoryCurrency, Quantity: 100},
			{Name: "oak log", Category: domain.CategoryWood, Quantity: 40},
			{Name: "willow log", Category: domain.CategoryWood, Quantity: 10},
		},
	}

	// ACT
	embed := buildTownEmbed(summary, displayTownRules())

	// ASSERT
	assert.Contains(t, embed.Title, "red-raiders")
	assert.Len(t, embed.Fields, 3)

	buildings := embed.Fields[0].Value
	assert.Contains(t, buildings, "garrisons")
	assert.Contains(t, buildings, "level 2/5")
	assert.Contains(t, buildings, "Raid scouts")

	chest := embed.Fields[1].Value
	assert.Contains(t, chest, "Currency")
	assert.Contains(t, chest, "100")
	assert.Contains(t, chest, "Woodcutting")
	assert.Contains(t, chest, "50")

	raids := embed.Fields[2].Value
	assert.Contains(t, raids, "✅ tombs of amascut")
	assert.Contains(t, raids, "🔒 chambers of xeric")
}

func TestFormatRaidAccess_NoGarrisonsRow(t *testing.T) {
	raids := formatRaidAccess(nil, displayTownRules())

	assert.Contains(t, raids, "🔒 tombs of amascut")
	assert.Contains(t, raids, "🔒 chambers of xeric")
}

func TestFormatLedger_Empty(t *testing.T) {
	assert.Contains(t, formatLedger(nil), "empty")
}

func TestFormatLedger_GroupsAndSorts(t *testing.T) {
	out := formatLedger([]domain.Resource{
		{Name: "willow log", Category: domain.CategoryWood, Quantity: 3},
		{Name: "oak log", Category: domain.CategoryWood, Quantity: 7},
		{Name: "gold coin", Category: domain.CategoryCurrency, Quantity: 12},
	})

	assert.Contains(t, out, "**Currency**")
	assert.Contains(t, out, "**Woodcutting**")
	// Rows sorted within category
	assert.Less(t, strings.Index(out, "oak log"), strings.Index(out, "willow log"))
}
