package blackjack

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

type GameState string

const (
	StateNotStarted GameState = "NOT_STARTED"
	StatePlayerTurn GameState = "PLAYER_TURN"
	StateFinished   GameState = "FINISHED"
)

type Outcome int

const (
	// OutcomeNone means the round is still being played.
	OutcomeNone Outcome = iota
	OutcomePlayerWin
	OutcomeDealerWin
	OutcomeTie
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlayerWin:
		return "player_win"
	case OutcomeDealerWin:
		return "dealer_win"
	case OutcomeTie:
		return "tie"
	default:
		return "none"
	}
}

const (
	Target         = 21
	DealerStandsOn = 17
)

var (
	ErrNotDealt     = errors.New("game has not been dealt")
	ErrAlreadyDealt = errors.New("game has already been dealt")
	ErrGameOver     = errors.New("game is already finished")
)

// Game is one round between a single player and the dealer.
type Game struct {
	Dealer []Rank
	Player []Rank
	Deck   Deck

	state   GameState
	outcome Outcome
}

// NewGame returns an undealt game over a freshly shuffled deck.
func NewGame(s Shuffler) *Game {
	return &Game{
		Dealer: []Rank{},
		Player: []Rank{},
		Deck:   NewDeck(s),
		state:  StateNotStarted,
	}
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Init deals two cards to the player and the face-up card to the dealer.
func (g *Game) Init() error {
	if g.state != StateNotStarted {
		return ErrAlreadyDealt
	}
	for range 2 {
		if err := g.draw(&g.Player); err != nil {
			return err
		}
	}
	if err := g.draw(&g.Dealer); err != nil {
		return err
	}
	g.state = StatePlayerTurn
	return nil
}

// Hit deals one card to the player. A bust finishes the round as a dealer win;
// otherwise OutcomeNone is returned and the player keeps the turn.
func (g *Game) Hit() (Outcome, error) {
	if err := g.checkTurn(); err != nil {
		return OutcomeNone, err
	}
	if err := g.draw(&g.Player); err != nil {
		return OutcomeNone, err
	}
	score, err := ScoreOf(g.Player)
	if err != nil {
		return OutcomeNone, err
	}
	if score > Target {
		return g.finish(OutcomeDealerWin), nil
	}
	return OutcomeNone, nil
}

// Stand reveals the dealer's second card, lets the dealer draw to 17 and
// settles the round.
func (g *Game) Stand() (Outcome, error) {
	if err := g.checkTurn(); err != nil {
		return OutcomeNone, err
	}
	if err := g.draw(&g.Dealer); err != nil {
		return OutcomeNone, err
	}
	for {
		dealer, err := ScoreOf(g.Dealer)
		if err != nil {
			return OutcomeNone, err
		}
		if dealer >= DealerStandsOn {
			break
		}
		if err := g.draw(&g.Dealer); err != nil {
			return OutcomeNone, err
		}
	}

	player, dealer, err := g.Scores()
	if err != nil {
		return OutcomeNone, err
	}
	return g.finish(Resolve(player, dealer)), nil
}

// Resolve settles a round from the final totals. The player bust check comes
// before any comparison with the dealer.
func Resolve(player, dealer int) Outcome {
	switch {
	case player > Target:
		return OutcomeDealerWin
	case player < dealer && dealer <= Target:
		return OutcomeDealerWin
	case dealer < player || dealer > Target:
		return OutcomePlayerWin
	default:
		return OutcomeTie
	}
}

// IsNatural reports whether the player's opening two cards total 21.
func (g *Game) IsNatural() bool {
	if len(g.Player) != 2 {
		return false
	}
	score, err := ScoreOf(g.Player)
	return err == nil && score == Target
}

// Scores returns the current player and dealer totals.
func (g *Game) Scores() (player, dealer int, err error) {
	if player, err = ScoreOf(g.Player); err != nil {
		return 0, 0, err
	}
	if dealer, err = ScoreOf(g.Dealer); err != nil {
		return 0, 0, err
	}
	return player, dealer, nil
}

// Status renders both hands with their totals.
func (g *Game) Status() (string, error) {
	player, dealer, err := g.Scores()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Cards in your hand: %s (Total Point: %d).\nCards (face-up) in my hand: %s (Total Point: %d)",
		joinRanks(g.Player), player, joinRanks(g.Dealer), dealer), nil
}

func (g *Game) checkTurn() error {
	switch g.state {
	case StateNotStarted:
		return ErrNotDealt
	case StateFinished:
		return ErrGameOver
	}
	return nil
}

func (g *Game) draw(hand *[]Rank) error {
	card, err := g.Deck.Draw()
	if err != nil {
		return err
	}
	*hand = append(*hand, card)
	return nil
}

func (g *Game) finish(o Outcome) Outcome {
	g.state = StateFinished
	g.outcome = o
	return o
}

func joinRanks(cards []Rank) string {
	if len(cards) == 0 {
		return "None"
	}
	return strings.Join(lo.Map(cards, func(c Rank, _ int) string { return string(c) }), ", ")
}
