package commands

import (
	"context"
	"strings"
	"time"

	"bjbot/internal/blackjack"

	"github.com/bwmarrin/discordgo"
)

// storeTimeout bounds the store round trips of a single message.
const storeTimeout = 10 * time.Second

// Classify maps raw message text to a game command.
func Classify(text string) blackjack.Command {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case TriggerWord:
		return blackjack.CommandNewGame
	case "hit":
		return blackjack.CommandHit
	case "stand":
		return blackjack.CommandStand
	case "status":
		return blackjack.CommandStatus
	case "help":
		return blackjack.CommandHelp
	default:
		return blackjack.CommandUnknown
	}
}

// OnMessageCreate is the discordgo handler for inbound messages.
func (h *Handler) OnMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if !h.accepts(m.Message) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	resp, err := h.Handle(ctx, m.ChannelID, m.Author.Username, m.Content)
	if err != nil {
		h.log.Error("[COMMAND FAILED]", "user", m.Author.Username, "channel", m.ChannelID, "error", err)
	}
	if resp == "" {
		return
	}
	if _, err := s.ChannelMessageSend(m.ChannelID, resp); err != nil {
		h.log.Error("Cannot send reply", "channel", m.ChannelID, "error", err)
	}
}

// accepts drops messages from bots and, unless allowed, from server channels.
func (h *Handler) accepts(m *discordgo.Message) bool {
	if m == nil || m.Author == nil {
		return false
	}
	if m.Author.Bot {
		h.log.Debug("ignored bot message", "author", m.Author.ID)
		return false
	}
	if m.GuildID != "" && !h.allowGuild {
		h.log.Debug("ignored channel message", "guild", m.GuildID)
		return false
	}
	return true
}
