package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/ClanWarsBot_Go/internal/rules"
	"github.com/osse101/ClanWarsBot_Go/internal/town"
)

// UpgradeCommand returns the upgrade command definition and handler
func UpgradeCommand(svc town.Service) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "upgrade",
		Description: "Spend team resources to upgrade a building",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "team",
				Description: "Team name",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "building",
				Description: "Building to upgrade",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}

		options := getOptions(i)
		teamName := options[0].StringValue()
		building := options[1].StringValue()

		outcome, err := svc.UpgradeBuilding(context.Background(), teamName, building)
		if err != nil {
			if shortfallMsg, ok := formatShortfalls(err); ok {
				respondError(s, i, shortfallMsg)
				return
			}
			slog.Error("Failed to upgrade building", "team", teamName, "building", building, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		embed := createEmbed("🔨 Building Upgraded",
			formatOutcome(outcome, "rises to"),
			0x2ecc71, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// DowngradeCommand returns the downgrade command definition and handler
func DowngradeCommand(svc town.Service) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "downgrade",
		Description: "Lower a building one level (no refund)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "team",
				Description: "Team name",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "building",
				Description: "Building to downgrade",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}

		options := getOptions(i)
		teamName := options[0].StringValue()
		building := options[1].StringValue()

		outcome, err := svc.DowngradeBuilding(context.Background(), teamName, building)
		if err != nil {
			slog.Error("Failed to downgrade building", "team", teamName, "building", building, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		embed := createEmbed("⛏️ Building Downgraded",
			formatOutcome(outcome, "falls to"),
			0xe67e22, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// TownCommand returns the town command definition and handler
func TownCommand(svc town.Service, townRules *rules.Town) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "town",
		Description: "Show a team's buildings and raid access",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "team",
				Description: "Team name",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}

		teamName := getOptions(i)[0].StringValue()
		summary, err := svc.GetSummary(context.Background(), teamName)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, buildTownEmbed(summary, townRules))
	}

	return cmd, handler
}

// formatOutcome describes a completed level change, including anything spent.
func formatOutcome(o *town.Outcome, verb string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**: %s %s level **%d** (was %d)", o.TeamName, o.Building, verb, o.NewLevel, o.OldLevel)
	if len(o.Spent) > 0 {
		b.WriteString("\n\n**Spent:**")
		for _, d := range o.Spent {
			fmt.Fprintf(&b, "\n• %s x%d", d.Resource, d.Amount)
		}
	}
	return b.String()
}

// formatShortfalls renders an insufficient-resources error with its
// per-cost detail. Returns false for any other error.
func formatShortfalls(err error) (string, bool) {
	var insufficient *town.InsufficientResourcesError
	if !errors.As(err, &insufficient) {
		return "", false
	}

	var b strings.Builder
	b.WriteString(MsgInsufficientResources)
	b.WriteString("\n")
	for _, s := range insufficient.Shortfalls {
		fmt.Fprintf(&b, "\n• **%s**: have %d, need %d", s.Target, s.Available, s.Required)
	}
	return b.String(), true
}
