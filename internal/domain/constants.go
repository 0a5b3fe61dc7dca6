package domain

// Resource categories assigned by the pattern matcher.
const (
	CategoryMining        = "mining"
	CategoryWood          = "wood"
	CategoryFishing       = "fishing"
	CategoryHerb          = "herb"
	CategoryFarming       = "farming"
	CategoryCurrency      = "currency"
	CategoryRune          = "rune"
	CategoryCrafting      = "crafting"
	CategoryHunting       = "hunting"
	CategoryMiscellaneous = "miscellaneous"
)

// CategoryDisplayNames maps internal category keys to the labels shown
// in team embeds.
var CategoryDisplayNames = map[string]string{
	CategoryMining:        "Mining",
	CategoryWood:          "Woodcutting",
	CategoryFishing:       "Fishing",
	CategoryHerb:          "Herblore",
	CategoryFarming:       "Farming",
	CategoryCurrency:      "Currency",
	CategoryRune:          "Runecrafting",
	CategoryCrafting:      "Crafting",
	CategoryHunting:       "Hunting",
	CategoryMiscellaneous: "Miscellaneous",
}

// Well-known building names referenced by the access gates.
const (
	BuildingArmory    = "armory"
	BuildingSlayer    = "slayer tower"
	BuildingGarrisons = "garrisons"
	BuildingTownhall  = "townhall"
)
