package discord

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/ClanWarsBot_Go/internal/domain"
)

// MockAttributionService is a mock implementation of attribution.Service
type MockAttributionService struct {
	mock.Mock
}

func (m *MockAttributionService) AttributeText(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}

func (m *MockAttributionService) AttributeDrop(ctx context.Context, drop *domain.DropEvent) error {
	args := m.Called(ctx, drop)
	return args.Error(0)
}

func listenerFixture(t *testing.T) (*Bot, *MockAttributionService, *discordgo.Session) {
	t.Helper()

	attributionSvc := new(MockAttributionService)
	session := &discordgo.Session{State: discordgo.NewState()}
	session.State.User = &discordgo.User{ID: "bot-user"}

	bot := &Bot{
		Session:       session,
		lootChannelID: "loot-channel",
		attribution:   attributionSvc,
	}
	return bot, attributionSvc, session
}

func relayedMessage(channelID, content string, embeds ...*discordgo.MessageEmbed) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		ChannelID: channelID,
		Content:   content,
		Author:    &discordgo.User{ID: "notifier"},
		Embeds:    embeds,
	}}
}

func TestMessageCreate_ForwardsContent(t *testing.T) {
	bot, attributionSvc, session := listenerFixture(t)
	attributionSvc.On("AttributeText", mock.Anything, "Osse101 has looted: 5 x Coins").Return(nil)

	bot.messageCreate(session, relayedMessage("loot-channel", "Osse101 has looted: 5 x Coins"))

	attributionSvc.AssertExpectations(t)
}

func TestMessageCreate_ForwardsEmbedDescription(t *testing.T) {
	bot, attributionSvc, session := listenerFixture(t)
	attributionSvc.On("AttributeText", mock.Anything, "Osse101 has looted: 3 x Yew logs").Return(nil)

	// Dink posts drops with an empty body and the text in an embed
	bot.messageCreate(session, relayedMessage("loot-channel", "",
		&discordgo.MessageEmbed{Description: "Osse101 has looted: 3 x Yew logs"},
	))

	attributionSvc.AssertExpectations(t)
	attributionSvc.AssertNumberOfCalls(t, "AttributeText", 1)
}

func TestMessageCreate_ForwardsContentAndEveryEmbed(t *testing.T) {
	bot, attributionSvc, session := listenerFixture(t)
	attributionSvc.On("AttributeText", mock.Anything, mock.Anything).Return(nil)

	bot.messageCreate(session, relayedMessage("loot-channel", "Osse101 has looted: 5 x Coins",
		&discordgo.MessageEmbed{Description: "Osse101 has looted: 3 x Yew logs"},
		&discordgo.MessageEmbed{Description: "Osse101 has looted: 1 x Rune scimitar"},
	))

	attributionSvc.AssertNumberOfCalls(t, "AttributeText", 3)
}

func TestMessageCreate_SkipsEmptyEmbedDescription(t *testing.T) {
	bot, attributionSvc, session := listenerFixture(t)

	bot.messageCreate(session, relayedMessage("loot-channel", "",
		&discordgo.MessageEmbed{Title: "Loot Drop"},
	))

	attributionSvc.AssertNotCalled(t, "AttributeText", mock.Anything, mock.Anything)
}

func TestMessageCreate_IgnoresOtherChannels(t *testing.T) {
	bot, attributionSvc, session := listenerFixture(t)

	bot.messageCreate(session, relayedMessage("general", "Osse101 has looted: 5 x Coins"))

	attributionSvc.AssertNotCalled(t, "AttributeText", mock.Anything, mock.Anything)
}

func TestMessageCreate_IgnoresOwnMessages(t *testing.T) {
	bot, attributionSvc, session := listenerFixture(t)

	msg := relayedMessage("loot-channel", "Osse101 has looted: 5 x Coins")
	msg.Author = &discordgo.User{ID: "bot-user"}
	bot.messageCreate(session, msg)

	attributionSvc.AssertNotCalled(t, "AttributeText", mock.Anything, mock.Anything)
}
