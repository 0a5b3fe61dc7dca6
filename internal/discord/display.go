package discord

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/ClanWarsBot_Go/internal/domain"
	"github.com/osse101/ClanWarsBot_Go/internal/rules"
	"github.com/osse101/ClanWarsBot_Go/internal/town"
)

// Refresher keeps one pinned town embed per team up to date in the
// display channel. It satisfies the notify sink's Display contract.
type Refresher struct {
	session     *discordgo.Session
	channelID   string
	townService town.Service
	townRules   *rules.Town

	mu         sync.Mutex
	messageIDs map[int]string // teamID -> pinned message
}

// NewRefresher creates a Refresher posting into channelID
func NewRefresher(session *discordgo.Session, channelID string, townService town.Service, townRules *rules.Town) *Refresher {
	return &Refresher{
		session:     session,
		channelID:   channelID,
		townService: townService,
		townRules:   townRules,
		messageIDs:  make(map[int]string),
	}
}

// RefreshTeam rebuilds a team's pinned embed from the current summary.
// The first refresh for a team posts and pins a new message; later
// refreshes edit it in place.
func (r *Refresher) RefreshTeam(ctx context.Context, teamID int, teamName string) error {
	summary, err := r.townService.GetSummary(ctx, teamName)
	if err != nil {
		return fmt.Errorf("failed to load team summary: %w", err)
	}

	embed := buildTownEmbed(summary, r.townRules)

	r.mu.Lock()
	msgID := r.messageIDs[teamID]
	r.mu.Unlock()

	if msgID != "" {
		if _, err := r.session.ChannelMessageEditEmbed(r.channelID, msgID, embed); err == nil {
			return nil
		}
		// Message was deleted or is otherwise unreachable, repost.
	}

	msg, err := r.session.ChannelMessageSendEmbed(r.channelID, embed)
	if err != nil {
		return fmt.Errorf("failed to post team embed: %w", err)
	}
	if err := r.session.ChannelMessagePin(r.channelID, msg.ID); err != nil {
		// Pinning is cosmetic; keep tracking the message regardless.
		return nil
	}

	r.mu.Lock()
	r.messageIDs[teamID] = msg.ID
	r.mu.Unlock()

	return nil
}

// buildTownEmbed renders a team's full town state: building levels
// with benefits, the resource ledger grouped by category, and which
// raids the garrisons level unlocks.
func buildTownEmbed(summary *town.Summary, townRules *rules.Town) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🏰 %s", summary.Team.Name),
		Color: 0x3498db,
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterClanWars,
		},
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "Buildings",
		Value: formatBuildings(summary.Buildings, townRules),
	})

	if resourceField := formatResourcesByCategory(summary.Resources); resourceField != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "War Chest",
			Value: resourceField,
		})
	}

	if raidField := formatRaidAccess(summary.Buildings, townRules); raidField != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Raid Access",
			Value: raidField,
		})
	}

	return embed
}

func formatBuildings(buildings []domain.Building, townRules *rules.Town) string {
	if len(buildings) == 0 {
		return "No buildings yet."
	}

	sorted := make([]domain.Building, len(buildings))
	copy(sorted, buildings)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var b strings.Builder
	for _, building := range sorted {
		entry, ok := townRules.Entry(building.Name)
		if !ok {
			fmt.Fprintf(&b, "%s — level %d\n", building.Name, building.Level)
			continue
		}

		icon := entry.Icon
		if icon == "" {
			icon = "🏠"
		}
		fmt.Fprintf(&b, "%s **%s** — level %d/%d", icon, entry.Name, building.Level, entry.MaxLevel)

		if benefit := benefitForLevel(entry, building.Level); benefit != "" {
			fmt.Fprintf(&b, "\n  _%s_", benefit)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// benefitForLevel picks the benefit line for the building's current
// level; the catalog lists one line per level starting at level 1.
func benefitForLevel(entry domain.BuildingCatalogEntry, level int) string {
	idx := level - 1
	if idx < 0 || idx >= len(entry.Benefits) {
		return ""
	}
	return entry.Benefits[idx]
}

func formatResourcesByCategory(resources []domain.Resource) string {
	if len(resources) == 0 {
		return ""
	}

	totals := make(map[string]int64)
	for _, res := range resources {
		totals[res.Category] += res.Quantity
	}

	categories := make([]string, 0, len(totals))
	for cat := range totals {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var b strings.Builder
	for _, cat := range categories {
		display := domain.CategoryDisplayNames[cat]
		if display == "" {
			display = cat
		}
		fmt.Fprintf(&b, "**%s**: %d\n", display, totals[cat])
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatRaidAccess(buildings []domain.Building, townRules *rules.Town) string {
	if len(townRules.Access.Raids) == 0 {
		return ""
	}

	garrisons := 0
	for _, building := range buildings {
		if building.Name == domain.BuildingGarrisons {
			garrisons = building.Level
			break
		}
	}

	raids := make([]string, 0, len(townRules.Access.Raids))
	for name := range townRules.Access.Raids {
		raids = append(raids, name)
	}
	sort.Strings(raids)

	var b strings.Builder
	for _, name := range raids {
		required := townRules.Access.Raids[name]
		if garrisons >= required {
			fmt.Fprintf(&b, "✅ %s\n", name)
		} else {
			fmt.Fprintf(&b, "🔒 %s (garrisons %d)\n", name, required)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
