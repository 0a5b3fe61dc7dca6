package rules

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/osse101/ClanWarsBot_Go/internal/domain"
)

// townConfig is the on-disk shape of clanwars.toml.
type townConfig struct {
	Assets map[string]assetDef `toml:"assets"`
	Access accessDef           `toml:"access"`
}

type assetDef struct {
	Description   string    `toml:"description"`
	StartingLevel int       `toml:"starting_level"`
	MaxLevel      int       `toml:"max_level"`
	Icon          string    `toml:"icon"`
	UpgradeCosts  []costDef `toml:"upgrade_costs"`
	Benefits      []string  `toml:"benefits"`
}

type costDef struct {
	Level    int    `toml:"level"`
	Resource string `toml:"resource"`
	Category string `toml:"category"`
	Amount   int64  `toml:"amount"`
}

type accessDef struct {
	ArmoryCombat []levelMapDef `toml:"armory_combat"`
	SlayerMaster []levelMapDef `toml:"slayer_master"`
	Raids        []raidDef     `toml:"raids"`
	Modifiers    []modifierDef `toml:"modifiers"`
}

type levelMapDef struct {
	Level int `toml:"level"`
	Value int `toml:"value"`
}

type raidDef struct {
	Name           string `toml:"name"`
	GarrisonsLevel int    `toml:"garrisons_level"`
}

type modifierDef struct {
	Building   string  `toml:"building"`
	Level      int     `toml:"level"`
	Category   string  `toml:"category"`
	Multiplier float64 `toml:"multiplier"`
	FlatBonus  int64   `toml:"flat_bonus"`
}

// Town bundles the building catalog and the access tables derived from
// the town configuration file.
type Town struct {
	Catalog map[string]domain.BuildingCatalogEntry
	Access  AccessTables
}

// LoadTownFile loads the town configuration from a TOML file.
func LoadTownFile(path string) (*Town, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open town config: %w", err)
	}
	defer f.Close()
	return LoadTown(f)
}

// LoadTown parses and validates the town configuration. Upgrade costs
// are checked at load time so a bad cost line fails startup instead of
// surfacing mid-upgrade.
func LoadTown(r io.Reader) (*Town, error) {
	var cfg townConfig
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse town config: %w", err)
	}
	if len(cfg.Assets) == 0 {
		return nil, fmt.Errorf("town config defines no buildings")
	}

	town := &Town{
		Catalog: make(map[string]domain.BuildingCatalogEntry, len(cfg.Assets)),
		Access: AccessTables{
			ArmoryCombat: make(map[int]int, len(cfg.Access.ArmoryCombat)),
			SlayerMaster: make(map[int]int, len(cfg.Access.SlayerMaster)),
			Raids:        make(map[string]int, len(cfg.Access.Raids)),
		},
	}

	for name, def := range cfg.Assets {
		entry, err := buildCatalogEntry(name, def)
		if err != nil {
			return nil, err
		}
		town.Catalog[entry.Name] = entry
	}

	for _, m := range cfg.Access.ArmoryCombat {
		town.Access.ArmoryCombat[m.Level] = m.Value
	}
	for _, m := range cfg.Access.SlayerMaster {
		town.Access.SlayerMaster[m.Level] = m.Value
	}
	for _, raid := range cfg.Access.Raids {
		if raid.Name == "" {
			return nil, fmt.Errorf("raid access entry missing name")
		}
		town.Access.Raids[strings.ToLower(raid.Name)] = raid.GarrisonsLevel
	}
	for _, m := range cfg.Access.Modifiers {
		if m.Building == "" || m.Category == "" {
			return nil, fmt.Errorf("credit modifier must set building and category: %+v", m)
		}
		town.Access.Modifiers = append(town.Access.Modifiers, CreditModifier{
			Building:   strings.ToLower(m.Building),
			Level:      m.Level,
			Category:   m.Category,
			Multiplier: m.Multiplier,
			FlatBonus:  m.FlatBonus,
		})
	}

	return town, nil
}

func buildCatalogEntry(name string, def assetDef) (domain.BuildingCatalogEntry, error) {
	entry := domain.BuildingCatalogEntry{
		Name:          strings.ToLower(name),
		Description:   def.Description,
		StartingLevel: def.StartingLevel,
		MaxLevel:      def.MaxLevel,
		Icon:          def.Icon,
		Benefits:      def.Benefits,
	}
	if entry.StartingLevel == 0 {
		entry.StartingLevel = 1
	}
	if entry.MaxLevel < entry.StartingLevel {
		return entry, fmt.Errorf("building %q has max_level %d below starting_level %d",
			entry.Name, entry.MaxLevel, entry.StartingLevel)
	}

	for _, c := range def.UpgradeCosts {
		cost := domain.UpgradeCost{
			Level:    c.Level,
			Resource: strings.ToLower(c.Resource),
			Category: strings.ToLower(c.Category),
			Amount:   c.Amount,
		}
		if err := cost.Validate(); err != nil {
			return entry, fmt.Errorf("building %q: %w", entry.Name, err)
		}
		if cost.Level <= entry.StartingLevel || cost.Level > entry.MaxLevel {
			return entry, fmt.Errorf("building %q has cost for unreachable level %d",
				entry.Name, cost.Level)
		}
		entry.UpgradeCosts = append(entry.UpgradeCosts, cost)
	}

	return entry, nil
}

// Entry looks up a catalog building by name, case-insensitively.
func (t *Town) Entry(name string) (domain.BuildingCatalogEntry, bool) {
	entry, ok := t.Catalog[strings.ToLower(strings.TrimSpace(name))]
	return entry, ok
}
