package events

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"bjbot/internal/blackjack"
	"bjbot/internal/commands"
	"bjbot/internal/discord"

	"github.com/bwmarrin/discordgo"
)

// EmbedSender is the part of *discordgo.Session the logger needs.
type EmbedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Logger posts finished rounds to the configured log channel.
type Logger struct {
	Session      EmbedSender
	LogChannelID string
	log          *slog.Logger
	now          func() time.Time
}

func NewLogger(s EmbedSender, cfg *discord.Config, log *slog.Logger) *Logger {
	return &Logger{
		Session:      s,
		LogChannelID: cfg.LogChannelID,
		log:          log,
		now:          time.Now,
	}
}

func (l *Logger) RoundFinished(r commands.Round) {
	embed := RoundEmbed(r, l.now())
	if _, err := l.Session.ChannelMessageSendEmbed(l.LogChannelID, embed); err != nil {
		l.log.Error("Cannot post round result", "channel", l.LogChannelID, "error", err)
		return
	}
	l.log.Info("[EVENT] Round logged", "user", r.Username, "outcome", r.Outcome)
}

// RoundEmbed renders a finished round.
func RoundEmbed(r commands.Round, at time.Time) *discordgo.MessageEmbed {
	title, color := "Dealer Won", 0xff0000 // Red
	switch r.Outcome {
	case blackjack.OutcomePlayerWin:
		title, color = "Player Won", 0x00ff00 // Green
		if r.Natural {
			title = "Blackjack!"
		}
	case blackjack.OutcomeTie:
		title, color = "Tie", 0x5865F2
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("%s finished a round of blackjack.", r.Username),
		Color:       color,
		Timestamp:   at.Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Player", Value: formatHand(r.Player), Inline: true},
			{Name: "Dealer", Value: formatHand(r.Dealer), Inline: true},
		},
	}
}

func formatHand(hand []blackjack.Rank) string {
	if len(hand) == 0 {
		return "None"
	}
	score, err := blackjack.ScoreOf(hand)
	if err != nil {
		return "invalid hand"
	}
	s := make([]string, len(hand))
	for i, c := range hand {
		s[i] = fmt.Sprintf("`%s`", c)
	}
	return fmt.Sprintf("(%d) %s", score, strings.Join(s, " "))
}
