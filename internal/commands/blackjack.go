package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bjbot/internal/blackjack"
)

const (
	// TriggerWord starts a game when no game is stored for the conversation.
	TriggerWord = "blackjack"

	keyPrefix       = "bj:"
	storeFailureMsg = "I lost track of our table, please try again in a moment."
)

// GameStore persists one serialized game per conversation key.
type GameStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, record []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Round describes a finished round for reporting.
type Round struct {
	ConversationID string
	Username       string
	Outcome        blackjack.Outcome
	Natural        bool
	Player         []blackjack.Rank
	Dealer         []blackjack.Rank
}

// RoundReporter is told about every finished round.
type RoundReporter interface {
	RoundFinished(r Round)
}

type Options struct {
	// TTL bounds how long an idle game is kept. Zero keeps it until it ends.
	TTL time.Duration
	// AllowGuild lets the bot play in server channels as well as DMs.
	AllowGuild bool
	Shuffler   blackjack.Shuffler
	Reporter   RoundReporter
}

// Handler turns inbound text into game moves against the stored state.
type Handler struct {
	store      GameStore
	log        *slog.Logger
	ttl        time.Duration
	allowGuild bool
	shuffler   blackjack.Shuffler
	reporter   RoundReporter
}

func NewHandler(store GameStore, log *slog.Logger, opts Options) *Handler {
	shuffler := opts.Shuffler
	if shuffler == nil {
		shuffler = blackjack.DefaultShuffler()
	}
	return &Handler{
		store:      store,
		log:        log,
		ttl:        opts.TTL,
		allowGuild: opts.AllowGuild,
		shuffler:   shuffler,
		reporter:   opts.Reporter,
	}
}

// Handle plays one message for a conversation and returns the reply. An empty
// reply means the message is not for the bot. When err is not nil the reply
// still explains the failure to the user.
func (h *Handler) Handle(ctx context.Context, conversationID, username, text string) (string, error) {
	key := keyPrefix + conversationID
	cmd := Classify(text)

	data, ok, err := h.store.Get(ctx, key)
	if err != nil {
		return storeFailureMsg, fmt.Errorf("failed to load game %s: %w", key, err)
	}

	var rec *blackjack.Record
	if ok {
		r, err := blackjack.DecodeRecord(data)
		if err != nil {
			h.log.Warn("[BLACKJACK CORRUPT] Discarding stored game", "key", key, "error", err)
			if err := h.store.Delete(ctx, key); err != nil {
				return storeFailureMsg, fmt.Errorf("failed to discard game %s: %w", key, err)
			}
			return blackjack.CorruptGameMsg, nil
		}
		rec = &r
	}

	res, err := blackjack.Play(rec, cmd, h.shuffler)
	if err != nil {
		h.log.Error("[BLACKJACK ERROR] Round terminated", "key", key, "user", username, "command", cmd, "error", err)
	}

	switch {
	case res.Record != nil:
		encoded, err := blackjack.EncodeRecord(*res.Record)
		if err != nil {
			return storeFailureMsg, err
		}
		if err := h.store.Set(ctx, key, encoded, h.ttl); err != nil {
			return storeFailureMsg, fmt.Errorf("failed to save game %s: %w", key, err)
		}
	case res.Clear:
		if err := h.store.Delete(ctx, key); err != nil {
			return storeFailureMsg, fmt.Errorf("failed to clear game %s: %w", key, err)
		}
	}

	if cmd == blackjack.CommandNewGame && rec == nil {
		h.log.Info("[BLACKJACK START] New game", "key", key, "user", username)
	}
	if res.Outcome != blackjack.OutcomeNone {
		h.log.Info("[BLACKJACK FINISH] Round settled", "key", key, "user", username,
			"outcome", res.Outcome, "natural", res.Natural)
		if h.reporter != nil {
			h.reporter.RoundFinished(Round{
				ConversationID: conversationID,
				Username:       username,
				Outcome:        res.Outcome,
				Natural:        res.Natural,
				Player:         res.Player,
				Dealer:         res.Dealer,
			})
		}
	}
	return res.Response, nil
}
