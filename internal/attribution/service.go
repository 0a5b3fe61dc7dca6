// Package attribution turns raw loot notifications into team resource
// credits: parse, resolve the member's team, check the access gate,
// scale each tracked item and apply the whole drop in one transaction.
package attribution

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/ClanWarsBot_Go/internal/domain"
	"github.com/osse101/ClanWarsBot_Go/internal/event"
	"github.com/osse101/ClanWarsBot_Go/internal/gate"
	"github.com/osse101/ClanWarsBot_Go/internal/logger"
	"github.com/osse101/ClanWarsBot_Go/internal/loot"
	"github.com/osse101/ClanWarsBot_Go/internal/metrics"
	"github.com/osse101/ClanWarsBot_Go/internal/repository"
	"github.com/osse101/ClanWarsBot_Go/internal/rules"
)

// Service defines the drop attribution business logic
type Service interface {
	// AttributeText parses a raw loot notification and attributes it.
	// Business-rule discards (unparseable text, unregistered user, gate
	// denial, nothing tracked) return nil; only store failures error.
	AttributeText(ctx context.Context, text string) error

	// AttributeDrop attributes an already-parsed drop event.
	AttributeDrop(ctx context.Context, drop *domain.DropEvent) error
}

type service struct {
	teamRepo   repository.Team
	ledgerRepo repository.Ledger
	townRepo   repository.Town
	evaluator  *gate.Evaluator
	patterns   *rules.Patterns
	access     rules.AccessTables
	publisher  event.Bus
}

// NewService creates a new attribution service
func NewService(
	teamRepo repository.Team,
	ledgerRepo repository.Ledger,
	townRepo repository.Town,
	evaluator *gate.Evaluator,
	patterns *rules.Patterns,
	access rules.AccessTables,
	publisher event.Bus,
) Service {
	return &service{
		teamRepo:   teamRepo,
		ledgerRepo: ledgerRepo,
		townRepo:   townRepo,
		evaluator:  evaluator,
		patterns:   patterns,
		access:     access,
		publisher:  publisher,
	}
}

// AttributeText parses a raw loot notification and attributes it.
func (s *service) AttributeText(ctx context.Context, text string) error {
	log := logger.FromContext(ctx)

	drop, err := loot.Parse(text)
	if err != nil {
		log.Debug(logMsgDropDiscarded, "reason", reasonParseFailed, "error", err)
		metrics.DropsDiscarded.WithLabelValues(reasonParseFailed).Inc()
		return nil
	}

	return s.AttributeDrop(ctx, drop)
}

// AttributeDrop attributes an already-parsed drop event.
func (s *service) AttributeDrop(ctx context.Context, drop *domain.DropEvent) error {
	log := logger.FromContext(ctx)
	log.Info(logMsgDropReceived, "username", drop.Username, "source", drop.Source, "items", len(drop.Items))

	// 1. Resolve the player to a team. Drops from unregistered players
	// are expected and silently ignored.
	username := strings.ToLower(strings.TrimSpace(drop.Username))
	team, err := s.teamRepo.GetTeamByMember(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.discard(ctx, drop, reasonUnregisteredUser)
			return nil
		}
		return fmt.Errorf("failed to resolve team for %s: %w", username, err)
	}

	// 2. Access gate
	buildingLevels, err := s.townRepo.GetBuildingLevels(ctx, team.ID)
	if err != nil {
		return fmt.Errorf("failed to get building levels: %w", err)
	}

	decision := s.evaluator.Evaluate(drop.Source, buildingLevels)
	if !decision.Allowed {
		s.discard(ctx, drop, decision.Reason)
		return nil
	}

	// 3. Categorize and scale each tracked item
	credits := s.computeCredits(drop, buildingLevels)
	if len(credits) == 0 {
		s.discard(ctx, drop, reasonNoTrackedItems)
		return nil
	}

	// 4. Apply the whole drop atomically
	if err := s.applyCredits(ctx, team.ID, credits); err != nil {
		return err
	}

	metrics.DropsAttributed.WithLabelValues(team.Name).Inc()
	for _, c := range credits {
		metrics.ResourcesCredited.WithLabelValues(c.Category).Add(float64(c.Amount))
	}

	log.Info(logMsgDropAttributed, "team", team.Name, "username", username, "source", drop.Source, "credits", len(credits))

	if err := s.publisher.Publish(ctx, event.NewDropAttributedEvent(team.ID, team.Name, username, drop.Source, credits)); err != nil {
		log.Warn("Failed to publish drop attributed event", "error", err)
	}

	return nil
}

// computeCredits maps drop items to resource credits. Items matching no
// resource pattern are untracked and skipped, as are credits that scale
// to zero.
func (s *service) computeCredits(drop *domain.DropEvent, buildingLevels map[string]int) []event.ResourceCreditV1 {
	var credits []event.ResourceCreditV1
	for _, item := range drop.Items {
		name := strings.ToLower(strings.TrimSpace(item.Name))
		category, ok := s.patterns.Categorize(name)
		if !ok {
			continue
		}

		multiplier, flatBonus := s.access.CreditModifier(buildingLevels, category)
		amount := rules.CalculateCredit(item.Quantity, multiplier, flatBonus)
		if amount <= 0 {
			continue
		}

		credits = append(credits, event.ResourceCreditV1{
			Resource: name,
			Category: category,
			Amount:   amount,
		})
	}
	return credits
}

// applyCredits writes every credit of a drop in a single transaction so
// a failure part-way through never leaves a half-credited drop.
func (s *service) applyCredits(ctx context.Context, teamID int, credits []event.ResourceCreditV1) error {
	tx, err := s.ledgerRepo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	for _, c := range credits {
		if err := tx.IncrementResource(ctx, teamID, c.Resource, c.Category, c.Amount); err != nil {
			return fmt.Errorf("failed to credit %s: %w", c.Resource, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	return nil
}

func (s *service) discard(ctx context.Context, drop *domain.DropEvent, reason string) {
	logger.FromContext(ctx).Debug(logMsgDropDiscarded,
		"username", drop.Username,
		"source", drop.Source,
		"reason", reason)
	metrics.DropsDiscarded.WithLabelValues(reason).Inc()

	if err := s.publisher.Publish(ctx, event.NewDropDiscardedEvent(drop.Username, drop.Source, reason)); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish drop discarded event", "error", err)
	}
}
