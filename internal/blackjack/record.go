package blackjack

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var ErrMalformedRecord = errors.New("malformed game record")

var validate = validator.New()

// Record is the persisted form of a game in progress. Array order is draw
// order for Card2Use and must survive a store round trip.
type Record struct {
	DealerCards []Rank `json:"dealer_cards" validate:"required"`
	PlayerCards []Rank `json:"player_cards" validate:"required"`
	Card2Use    []Rank `json:"card2use" validate:"required"`
}

// Record snapshots the game. The returned slices do not alias the game.
func (g *Game) Record() Record {
	return Record{
		DealerCards: append([]Rank{}, g.Dealer...),
		PlayerCards: append([]Rank{}, g.Player...),
		Card2Use:    append([]Rank{}, g.Deck...),
	}
}

// Validate checks rank tokens, card conservation and the per-rank bound.
func (r Record) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	all := make([]Rank, 0, DeckSize)
	all = append(all, r.DealerCards...)
	all = append(all, r.PlayerCards...)
	all = append(all, r.Card2Use...)
	for _, c := range all {
		if _, err := c.Value(); err != nil {
			return err
		}
	}
	if len(all) != DeckSize {
		return fmt.Errorf("%w: holds %d cards, want %d", ErrMalformedRecord, len(all), DeckSize)
	}
	for rank, n := range lo.CountValues(all) {
		if n > CopiesPerRank {
			return fmt.Errorf("%w: rank %s appears %d times", ErrMalformedRecord, rank, n)
		}
	}
	return nil
}

// Game rebuilds a live game from a validated record. A record with dealt
// hands resumes in the player's turn.
func (r Record) Game() (*Game, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		Dealer: append([]Rank{}, r.DealerCards...),
		Player: append([]Rank{}, r.PlayerCards...),
		Deck:   append(Deck{}, r.Card2Use...),
		state:  StateNotStarted,
	}
	if len(g.Player) > 0 {
		g.state = StatePlayerTurn
	}
	return g, nil
}

func EncodeRecord(r Record) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	return data, nil
}

// DecodeRecord parses and validates a stored record. Unknown, missing or
// mistyped fields yield ErrMalformedRecord; foreign tokens yield ErrInvalidRank.
func DecodeRecord(data []byte) (Record, error) {
	var r Record
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&r); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if dec.More() {
		return Record{}, fmt.Errorf("%w: trailing data", ErrMalformedRecord)
	}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}
