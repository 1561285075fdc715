package commands

import (
	"log/slog"
	"testing"

	"bjbot/internal/blackjack"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

func Test_Classify(t *testing.T) {
	tests := []struct {
		text     string
		expected blackjack.Command
	}{
		{"blackjack", blackjack.CommandNewGame},
		{"  BLACKJACK\n", blackjack.CommandNewGame},
		{"hit", blackjack.CommandHit},
		{"Hit ", blackjack.CommandHit},
		{"stand", blackjack.CommandStand},
		{"STATUS", blackjack.CommandStatus},
		{"help", blackjack.CommandHelp},
		{"hit me", blackjack.CommandUnknown},
		{"", blackjack.CommandUnknown},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, Classify(tt.text), "text %q", tt.text)
	}
}

func Test_Accepts_Filters_Authors_And_Guilds(t *testing.T) {
	req := require.New(t)
	dmOnly := NewHandler(failingStore{}, slog.Default(), Options{})
	anywhere := NewHandler(failingStore{}, slog.Default(), Options{AllowGuild: true})

	human := &discordgo.User{ID: "1", Username: "alice"}
	bot := &discordgo.User{ID: "2", Username: "other", Bot: true}

	req.True(dmOnly.accepts(&discordgo.Message{Author: human, ChannelID: "dm"}))
	req.False(dmOnly.accepts(&discordgo.Message{Author: bot, ChannelID: "dm"}))
	req.False(dmOnly.accepts(&discordgo.Message{Author: human, ChannelID: "c", GuildID: "g"}))
	req.False(dmOnly.accepts(&discordgo.Message{ChannelID: "dm"}))
	req.False(dmOnly.accepts(nil))

	req.True(anywhere.accepts(&discordgo.Message{Author: human, ChannelID: "c", GuildID: "g"}))
	req.False(anywhere.accepts(&discordgo.Message{Author: bot, ChannelID: "c", GuildID: "g"}))
}
