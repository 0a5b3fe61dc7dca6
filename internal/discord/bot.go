package discord

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/ClanWarsBot_Go/internal/attribution"
	"github.com/osse101/ClanWarsBot_Go/internal/rules"
	"github.com/osse101/ClanWarsBot_Go/internal/team"
	"github.com/osse101/ClanWarsBot_Go/internal/town"
)

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	AppID    string
	Registry *CommandRegistry

	lootChannelID string
	attribution   attribution.Service
}

// Config holds the bot configuration
type Config struct {
	Token string
	AppID string

	// LootChannelID is the channel the loot notifier relays into. Empty
	// disables the message listener (webhook-only ingestion).
	LootChannelID string
}

// New creates a new Discord bot with the full command set registered
func New(cfg Config, attributionSvc attribution.Service, teamSvc team.Service, townSvc town.Service, townRules *rules.Town) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	registry := NewCommandRegistry()
	registry.Register(TeamCreateCommand(teamSvc))
	registry.Register(TeamRemoveCommand(teamSvc))
	registry.Register(TeamAddPlayerCommand(teamSvc))
	registry.Register(TeamRemovePlayerCommand(teamSvc))
	registry.Register(UpgradeCommand(townSvc))
	registry.Register(DowngradeCommand(townSvc))
	registry.Register(TownCommand(townSvc, townRules))
	registry.Register(ResourcesCommand(townSvc))

	return &Bot{
		Session:       s,
		AppID:         cfg.AppID,
		Registry:      registry,
		lootChannelID: cfg.LootChannelID,
		attribution:   attributionSvc,
	}, nil
}

// Start starts the bot
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)
	if b.lootChannelID != "" {
		b.Session.AddHandler(b.messageCreate)
		b.Session.Identify.Intents |= discordgo.IntentsGuildMessages | discordgo.IntentMessageContent
	}

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info("Discord bot is now running")
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() {
	b.Session.Close()
}

// Run runs the bot until a signal is received
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	// Wait here until CTRL-C or other term signal is received.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Registry != nil {
		b.Registry.Handle(s, i)
	}
}

// messageCreate feeds relayed loot notifications from the configured
// channel into the attribution pipeline. Attribution treats anything
// unparseable as a silent discard, so every message can be forwarded.
// Loot notifiers like Dink post the drop as an embed description with
// an empty message body, so embeds are forwarded alongside the content.
func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.ChannelID != b.lootChannelID {
		return
	}
	if m.Author != nil && m.Author.ID == s.State.User.ID {
		return
	}

	b.forwardLootText(m.ChannelID, m.Content)
	for _, embed := range m.Embeds {
		b.forwardLootText(m.ChannelID, embed.Description)
	}
}

func (b *Bot) forwardLootText(channelID, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	if err := b.attribution.AttributeText(context.Background(), text); err != nil {
		slog.Error("Failed to attribute relayed drop", "error", err, "channel", channelID)
	}
}
