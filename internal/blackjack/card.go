package blackjack

import (
	"errors"
	"fmt"
)

// Rank is a card rank token. Suits are not modeled.
type Rank string

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
	Ace   Rank = "A"
)

// Ranks is the closed rank alphabet in deck construction order.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

const (
	// CopiesPerRank is how many cards of each rank a fresh deck holds.
	CopiesPerRank = 4
	// DeckSize is the number of cards a game is created with.
	DeckSize = CopiesPerRank * 13
)

var ErrInvalidRank = errors.New("invalid card rank")

// Value returns the fixed blackjack value of the rank. Aces always count 11.
func (r Rank) Value() (int, error) {
	switch r {
	case Two, Three, Four, Five, Six, Seven, Eight, Nine:
		return int(r[0] - '0'), nil
	case Ten, Jack, Queen, King:
		return 10, nil
	case Ace:
		return 11, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidRank, string(r))
	}
}

func (r Rank) String() string {
	return string(r)
}
