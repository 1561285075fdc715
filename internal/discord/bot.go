package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type Bot struct {
	Session *discordgo.Session
	Config  *Config
}

func New(cfg *Config) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	return &Bot{
		Session: session,
		Config:  cfg,
	}, nil
}

func (b *Bot) Start() error {
	// Set intents
	b.Session.Identify.Intents = discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent
	if b.Config.AllowGuild {
		b.Session.Identify.Intents |= discordgo.IntentsGuilds | discordgo.IntentsGuildMessages
	}

	err := b.Session.Open()
	if err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}
	return nil
}

func (b *Bot) Stop() error {
	return b.Session.Close()
}
