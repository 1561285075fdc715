package blackjack

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// identity leaves a fresh deck in construction order: 2..A repeated four times.
type identity struct{}

func (identity) Shuffle(int, func(i, j int)) {}

// stacked moves the listed ranks to the front of a fresh deck, in order.
type stacked []Rank

func (s stacked) Shuffle(_ int, swap func(i, j int)) {
	order := NewDeck(identity{})
	for i, want := range s {
		j := slices.Index(order[i:], want) + i
		swap(i, j)
		order[i], order[j] = order[j], order[i]
	}
}

// rigged builds a game in the player's turn with the given hands and the
// given cards on top of the deck. The remaining cards follow in construction order.
func rigged(t *testing.T, player, dealer []Rank, front ...Rank) *Game {
	t.Helper()
	pool := NewDeck(identity{})
	for _, hand := range [][]Rank{player, dealer, front} {
		for _, r := range hand {
			idx := slices.Index(pool, r)
			require.NotEqual(t, -1, idx, "rank %s exhausted", r)
			pool = slices.Delete(pool, idx, idx+1)
		}
	}
	rec := Record{
		DealerCards: append([]Rank{}, dealer...),
		PlayerCards: append([]Rank{}, player...),
		Card2Use:    append(append([]Rank{}, front...), pool...),
	}
	g, err := rec.Game()
	require.NoError(t, err)
	return g
}

func requireCardsConserved(t *testing.T, g *Game) {
	t.Helper()
	total := len(g.Player) + len(g.Dealer) + len(g.Deck)
	require.Equal(t, DeckSize, total)
	counts := map[Rank]int{}
	for _, hand := range [][]Rank{g.Player, g.Dealer, g.Deck} {
		for _, r := range hand {
			counts[r]++
		}
	}
	for r, n := range counts {
		require.LessOrEqual(t, n, CopiesPerRank, "rank %s", r)
		require.Contains(t, Ranks, r)
	}
}
