package domain

import "fmt"

// BuildingCatalogEntry describes a building type available to every
// team. Catalog entries come from static configuration and never
// change at runtime.
type BuildingCatalogEntry struct {
	Name          string
	Description   string
	StartingLevel int
	MaxLevel      int
	Icon          string
	UpgradeCosts  []UpgradeCost
	Benefits      []string
}

// UpgradeCost is one cost line for reaching a building level. Exactly
// one of Resource or Category is set: a resource cost deducts from a
// single named resource, a category cost may be satisfied by any
// resources in that category.
type UpgradeCost struct {
	Level    int
	Resource string
	Category string
	Amount   int64
}

// IsCategory reports whether the cost is satisfied by category total
// rather than a single resource.
func (c UpgradeCost) IsCategory() bool {
	return c.Category != ""
}

// Target returns the resource or category name the cost applies to.
func (c UpgradeCost) Target() string {
	if c.IsCategory() {
		return c.Category
	}
	return c.Resource
}

// Validate rejects cost lines that name both or neither of a resource
// and a category, and non-positive amounts.
func (c UpgradeCost) Validate() error {
	if (c.Resource == "") == (c.Category == "") {
		return fmt.Errorf("%w: level %d must name exactly one of resource or category", ErrInvalidUpgradeCost, c.Level)
	}
	if c.Amount <= 0 {
		return fmt.Errorf("%w: level %d has non-positive amount %d", ErrInvalidUpgradeCost, c.Level, c.Amount)
	}
	return nil
}

// CostsForLevel filters the catalog entry's costs to one target level.
func (e *BuildingCatalogEntry) CostsForLevel(level int) []UpgradeCost {
	var costs []UpgradeCost
	for _, c := range e.UpgradeCosts {
		if c.Level == level {
			costs = append(costs, c)
		}
	}
	return costs
}
