package blackjack

import (
	"errors"
	"math/rand/v2"
)

var ErrDeckExhausted = errors.New("insufficient cards")

// Shuffler supplies the permutation applied to a fresh deck.
// *rand.Rand satisfies it, so tests can pass a seeded source.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// DefaultShuffler shuffles with the process-wide random source.
func DefaultShuffler() Shuffler {
	return globalShuffler{}
}

// Deck is the ordered pile of cards still to be dealt. Index 0 is drawn first.
type Deck []Rank

// NewDeck builds CopiesPerRank runs of the rank alphabet and shuffles them.
func NewDeck(s Shuffler) Deck {
	deck := make(Deck, 0, DeckSize)
	for range CopiesPerRank {
		deck = append(deck, Ranks...)
	}
	s.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return deck
}

// Draw removes and returns the front card.
func (d *Deck) Draw() (Rank, error) {
	if len(*d) == 0 {
		return "", ErrDeckExhausted
	}
	card := (*d)[0]
	*d = (*d)[1:]
	return card, nil
}
