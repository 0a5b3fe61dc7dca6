// Package town manages team building levels: upgrades paid from the
// resource ledger, administrative downgrades and the town summary.
package town

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/osse101/ClanWarsBot_Go/internal/domain"
	"github.com/osse101/ClanWarsBot_Go/internal/event"
	"github.com/osse101/ClanWarsBot_Go/internal/logger"
	"github.com/osse101/ClanWarsBot_Go/internal/metrics"
	"github.com/osse101/ClanWarsBot_Go/internal/repository"
	"github.com/osse101/ClanWarsBot_Go/internal/rules"
)

// Deduction is one ledger debit applied by an upgrade.
type Deduction struct {
	Resource string `json:"resource"`
	Amount   int64  `json:"amount"`
}

// Outcome reports a completed level change.
type Outcome struct {
	TeamName string      `json:"team_name"`
	Building string      `json:"building"`
	OldLevel int         `json:"old_level"`
	NewLevel int         `json:"new_level"`
	Spent    []Deduction `json:"spent"`
}

// Summary is a team's town state for display.
type Summary struct {
	Team      domain.Team       `json:"team"`
	Buildings []domain.Building `json:"buildings"`
	Resources []domain.Resource `json:"resources"`
}

// Service defines the building upgrade business logic
type Service interface {
	// UpgradeBuilding raises a building one level, deducting the
	// catalog costs atomically. Affordability is checked against every
	// cost line before anything is deducted.
	UpgradeBuilding(ctx context.Context, teamName, buildingName string) (*Outcome, error)

	// DowngradeBuilding lowers a building one level, bounded by the
	// catalog starting level. No resources are refunded.
	DowngradeBuilding(ctx context.Context, teamName, buildingName string) (*Outcome, error)

	// GetSummary returns a team's buildings and ledger for display.
	GetSummary(ctx context.Context, teamName string) (*Summary, error)
}

type service struct {
	teamRepo   repository.Team
	townRepo   repository.Town
	ledgerRepo repository.Ledger
	town       *rules.Town
	publisher  event.Bus
}

// NewService creates a new town service
func NewService(
	teamRepo repository.Team,
	townRepo repository.Town,
	ledgerRepo repository.Ledger,
	town *rules.Town,
	publisher event.Bus,
) Service {
	return &service{
		teamRepo:   teamRepo,
		townRepo:   townRepo,
		ledgerRepo: ledgerRepo,
		town:       town,
		publisher:  publisher,
	}
}

// UpgradeBuilding raises a building one level.
func (s *service) UpgradeBuilding(ctx context.Context, teamName, buildingName string) (*Outcome, error) {
	log := logger.FromContext(ctx)
	log.Info(logMsgUpgradeRequested, "team", teamName, "building", buildingName)

	team, entry, err := s.resolve(ctx, teamName, buildingName)
	if err != nil {
		return nil, err
	}

	tx, err := s.townRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	building, err := tx.GetBuildingForUpdate(ctx, team.ID, entry.Name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBuildingMissing
		}
		return nil, fmt.Errorf("failed to get building: %w", err)
	}

	if building.Level >= entry.MaxLevel {
		return nil, domain.ErrAlreadyMaxed
	}

	targetLevel := building.Level + 1
	costs := entry.CostsForLevel(targetLevel)
	if len(costs) == 0 {
		return nil, fmt.Errorf("%w %d of %s", domain.ErrNoCostDefined, targetLevel, entry.Name)
	}

	resources, err := tx.GetResourcesForUpdate(ctx, team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get resources: %w", err)
	}

	if err := checkAffordable(costs, resources); err != nil {
		return nil, err
	}

	spent, err := s.deductCosts(ctx, tx, team.ID, costs, resources)
	if err != nil {
		return nil, err
	}

	if err := tx.SetBuildingLevel(ctx, team.ID, entry.Name, targetLevel); err != nil {
		return nil, fmt.Errorf("failed to set building level: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.BuildingsUpgraded.WithLabelValues(entry.Name).Inc()
	log.Info(logMsgUpgradeCompleted, "team", team.Name, "building", entry.Name, "level", targetLevel)

	if err := s.publisher.Publish(ctx, event.NewBuildingUpgradedEvent(team.ID, team.Name, entry.Name, building.Level, targetLevel)); err != nil {
		log.Warn("Failed to publish building upgraded event", "error", err)
	}
	// The upgrade spent from the ledger, so display caches must refresh.
	if err := s.publisher.Publish(ctx, event.NewResourcesChangedEvent(team.ID, team.Name)); err != nil {
		log.Warn("Failed to publish resources changed event", "error", err)
	}

	return &Outcome{
		TeamName: team.Name,
		Building: entry.Name,
		OldLevel: building.Level,
		NewLevel: targetLevel,
		Spent:    spent,
	}, nil
}

// DowngradeBuilding lowers a building one level.
func (s *service) DowngradeBuilding(ctx context.Context, teamName, buildingName string) (*Outcome, error) {
	log := logger.FromContext(ctx)
	log.Info(logMsgDowngradeRequested, "team", teamName, "building", buildingName)

	team, entry, err := s.resolve(ctx, teamName, buildingName)
	if err != nil {
		return nil, err
	}

	tx, err := s.townRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	building, err := tx.GetBuildingForUpdate(ctx, team.ID, entry.Name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBuildingMissing
		}
		return nil, fmt.Errorf("failed to get building: %w", err)
	}

	if building.Level <= entry.StartingLevel {
		return nil, domain.ErrAlreadyAtMinimum
	}

	targetLevel := building.Level - 1
	if err := tx.SetBuildingLevel(ctx, team.ID, entry.Name, targetLevel); err != nil {
		return nil, fmt.Errorf("failed to set building level: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.BuildingsDowngraded.WithLabelValues(entry.Name).Inc()
	log.Info(logMsgDowngradeCompleted, "team", team.Name, "building", entry.Name, "level", targetLevel)

	if err := s.publisher.Publish(ctx, event.NewBuildingDowngradedEvent(team.ID, team.Name, entry.Name, building.Level, targetLevel)); err != nil {
		log.Warn("Failed to publish building downgraded event", "error", err)
	}

	return &Outcome{
		TeamName: team.Name,
		Building: entry.Name,
		OldLevel: building.Level,
		NewLevel: targetLevel,
	}, nil
}

// GetSummary returns a team's buildings and ledger for display.
func (s *service) GetSummary(ctx context.Context, teamName string) (*Summary, error) {
	team, err := s.getTeam(ctx, teamName)
	if err != nil {
		return nil, err
	}

	buildings, err := s.townRepo.GetBuildings(ctx, team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get buildings: %w", err)
	}
	resources, err := s.ledgerRepo.GetResources(ctx, team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get resources: %w", err)
	}

	return &Summary{Team: *team, Buildings: buildings, Resources: resources}, nil
}

func (s *service) getTeam(ctx context.Context, teamName string) (*domain.Team, error) {
	team, err := s.teamRepo.GetTeamByName(ctx, strings.ToLower(strings.TrimSpace(teamName)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

func (s *service) resolve(ctx context.Context, teamName, buildingName string) (*domain.Team, *domain.BuildingCatalogEntry, error) {
	team, err := s.getTeam(ctx, teamName)
	if err != nil {
		return nil, nil, err
	}

	entry, ok := s.town.Entry(buildingName)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrUnknownBuilding, buildingName)
	}
	return team, &entry, nil
}

// checkAffordable verifies every cost line against the locked ledger
// snapshot and collects all shortfalls before anything is deducted.
func checkAffordable(costs []domain.UpgradeCost, resources []domain.Resource) error {
	byName := make(map[string]int64, len(resources))
	byCategory := make(map[string]int64)
	for _, r := range resources {
		byName[r.Name] = r.Quantity
		byCategory[r.Category] += r.Quantity
	}

	var shortfalls []Shortfall
	for _, c := range costs {
		available := byName[c.Resource]
		if c.IsCategory() {
			available = byCategory[c.Category]
		}
		if available < c.Amount {
			shortfalls = append(shortfalls, Shortfall{
				Target:    c.Target(),
				Required:  c.Amount,
				Available: available,
			})
		}
	}

	if len(shortfalls) > 0 {
		return &InsufficientResourcesError{Shortfalls: shortfalls}
	}
	return nil
}

// deductCosts applies every cost line inside the transaction. Category
// costs consume resources greedily from the largest stack down.
func (s *service) deductCosts(ctx context.Context, tx repository.TownTx, teamID int, costs []domain.UpgradeCost, resources []domain.Resource) ([]Deduction, error) {
	var spent []Deduction
	for _, c := range costs {
		if !c.IsCategory() {
			if err := tx.DeductResource(ctx, teamID, c.Resource, c.Amount); err != nil {
				if errors.Is(err, domain.ErrInsufficientResources) {
					return nil, fmt.Errorf("%w: %s", domain.ErrInsufficientResources, c.Resource)
				}
				return nil, fmt.Errorf("failed to deduct %s: %w", c.Resource, err)
			}
			spent = append(spent, Deduction{Resource: c.Resource, Amount: c.Amount})
			continue
		}

		deductions, err := s.deductCategory(ctx, tx, teamID, c, resources)
		if err != nil {
			return nil, err
		}
		spent = append(spent, deductions...)
	}
	return spent, nil
}

func (s *service) deductCategory(ctx context.Context, tx repository.TownTx, teamID int, cost domain.UpgradeCost, resources []domain.Resource) ([]Deduction, error) {
	stacks := make([]domain.Resource, 0, len(resources))
	for _, r := range resources {
		if r.Category == cost.Category && r.Quantity > 0 {
			stacks = append(stacks, r)
		}
	}
	sort.Slice(stacks, func(i, j int) bool {
		if stacks[i].Quantity != stacks[j].Quantity {
			return stacks[i].Quantity > stacks[j].Quantity
		}
		return stacks[i].Name < stacks[j].Name
	})

	var spent []Deduction
	remaining := cost.Amount
	for _, stack := range stacks {
		if remaining <= 0 {
			break
		}
		take := stack.Quantity
		if take > remaining {
			take = remaining
		}
		if err := tx.DeductResource(ctx, teamID, stack.Name, take); err != nil {
			if errors.Is(err, domain.ErrInsufficientResources) {
				return nil, fmt.Errorf("%w: %s", domain.ErrCategoryDeductionFailed, cost.Category)
			}
			return nil, fmt.Errorf("failed to deduct %s: %w", stack.Name, err)
		}
		spent = append(spent, Deduction{Resource: stack.Name, Amount: take})
		remaining -= take
	}

	if remaining > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrCategoryDeductionFailed, cost.Category)
	}
	return spent, nil
}
