package discord

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/ClanWarsBot_Go/internal/domain"
	"github.com/osse101/ClanWarsBot_Go/internal/town"
)

// ResourcesCommand returns the resources command definition and handler
func ResourcesCommand(svc town.Service) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "resources",
		Description: "Show a team's resource ledger",
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

		embed := createEmbed(
			fmt.Sprintf("💰 %s — War Chest", summary.Team.Name),
			formatLedger(summary.Resources),
			0xf1c40f, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// formatLedger lists every resource row grouped under its category
// header, categories and rows both sorted by name.
func formatLedger(resources []domain.Resource) string {
	if len(resources) == 0 {
		return "The war chest is empty. Go kill something."
	}

	byCategory := make(map[string][]domain.Resource)
	for _, res := range resources {
		byCategory[res.Category] = append(byCategory[res.Category], res)
	}

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var b strings.Builder
	for _, cat := range categories {
		display := domain.CategoryDisplayNames[cat]
		if display == "" {
			display = cat
		}
		fmt.Fprintf(&b, "**%s**\n", display)

		rows := byCategory[cat]
		sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
		for _, row := range rows {
			fmt.Fprintf(&b, "• %s x%d\n", row.Name, row.Quantity)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
