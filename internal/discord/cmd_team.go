package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/ClanWarsBot_Go/internal/team"
)

// TeamCreateCommand returns the team-create command definition and handler
func TeamCreateCommand(svc team.Service) (*discordgo.ApplicationCommand, CommandHandler) {
	adminPerms := int64(discordgo.PermissionManageServer)

	cmd := &discordgo.ApplicationCommand{
		Name:                     "team-create",
		Description:              "Create a new team with its starting town",
		DefaultMemberPermissions: &adminPerms,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Team name",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}

		name := getOptions(i)[0].StringValue()
		created, err := svc.CreateTeam(context.Background(), name)
		if err != nil {
			slog.Error("Failed to create team", "team", name, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		embed := createEmbed("⚔️ Team Created",
			fmt.Sprintf("**%s** enters the war! Their town stands ready.", created.Name),
			0x2ecc71, FooterClanWarsAdmin)
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// TeamRemoveCommand returns the team-remove command definition and handler
func TeamRemoveCommand(svc team.Service) (*discordgo.ApplicationCommand, CommandHandler) {
	adminPerms := int64(discordgo.PermissionManageServer)

	cmd := &discordgo.ApplicationCommand{
		Name:                     "team-remove",
		Description:              "Delete a team, its roster and its town",
		DefaultMemberPermissions: &adminPerms,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Team name",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}

		name := getOptions(i)[0].StringValue()
		if err := svc.DeleteTeam(context.Background(), name); err != nil {
			slog.Error("Failed to delete team", "team", name, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		embed := createEmbed("🏳️ Team Disbanded",
			fmt.Sprintf("**%s** has left the war.", name),
			0x95a5a6, FooterClanWarsAdmin)
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// TeamAddPlayerCommand returns the team-add-player command definition and handler
func TeamAddPlayerCommand(svc team.Service) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "team-add-player",
		Description: "Add a player to a team",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "team",
				Description: "Team name",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "player",
				Description: "RuneScape username",
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
		username := options[1].StringValue()

		if err := svc.AddMember(context.Background(), teamName, username); err != nil {
			slog.Error("Failed to add player", "team", teamName, "player", username, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		embed := createEmbed("🪖 Player Recruited",
			fmt.Sprintf("**%s** now fights for **%s**. Their drops feed the war chest.", username, teamName),
			0x2ecc71, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// TeamRemovePlayerCommand returns the team-remove-player command definition and handler
func TeamRemovePlayerCommand(svc team.Service) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "team-remove-player",
		Description: "Remove a player from their team",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "player",
				Description: "RuneScape username",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}

		username := getOptions(i)[0].StringValue()
		if err := svc.RemoveMember(context.Background(), username); err != nil {
			slog.Error("Failed to remove player", "player", username, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		embed := createEmbed("🏃 Player Released",
			fmt.Sprintf("**%s** no longer fights for a team.", username),
			0x95a5a6, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
