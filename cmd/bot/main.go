package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bjbot/internal/commands"
	"bjbot/internal/database"
	"bjbot/internal/discord"
	"bjbot/internal/events"

	"github.com/bwmarrin/discordgo"
)

const purgeInterval = time.Hour

type store interface {
	commands.GameStore
	io.Closer
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	// 1. Load Configuration
	cfg, err := discord.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// 2. Initialize Bot
	bot, err := discord.New(cfg)
	if err != nil {
		return fmt.Errorf("initializing bot: %w", err)
	}

	// 3. Initialize Game Store
	ctx, cancel := context.WithCancel(context.Background())
	games, err := openStore(ctx, cfg, logger)
	if err != nil {
		cancel()
		return fmt.Errorf("initializing store: %w", err)
	}
	defer func() {
		cancel()
		_ = games.Close()
	}()

	// 4. Register Event Handlers
	opts := commands.Options{TTL: cfg.GameTTL, AllowGuild: cfg.AllowGuild}
	if cfg.LogChannelID != "" {
		opts.Reporter = events.NewLogger(bot.Session, cfg, logger)
	}
	handler := commands.NewHandler(games, logger, opts)
	bot.Session.AddHandler(handler.OnMessageCreate)

	bot.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		logger.Info("Logged in", "user", s.State.User.Username, "discriminator", s.State.User.Discriminator)
	})

	// 5. Start Bot
	if err := bot.Start(); err != nil {
		return err
	}
	defer bot.Stop()

	// 6. Wait for Shutdown Signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	logger.Info("Bot is running. Press Ctrl+C to exit.")
	<-stop

	logger.Info("Gracefully shutting down...")
	return nil
}

func openStore(ctx context.Context, cfg *discord.Config, logger *slog.Logger) (store, error) {
	if cfg.StoreDriver == discord.StoreBadger {
		b, err := database.NewBadger(cfg.BadgerPath, logger)
		if err != nil {
			return nil, err
		}
		return b, nil
	}

	db, err := database.New(cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	// badger expires entries itself; sqlite rows are swept here
	if cfg.GameTTL > 0 {
		go purgeLoop(ctx, db, logger)
	}
	return db, nil
}

func purgeLoop(ctx context.Context, db *database.DB, logger *slog.Logger) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := db.PurgeExpired(ctx)
			if err != nil {
				logger.Error("Purging expired games failed", "error", err)
				continue
			}
			if n > 0 {
				logger.Info("Purged expired games", "count", n)
			}
		}
	}
}
