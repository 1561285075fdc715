package blackjack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Play_Without_Game(t *testing.T) {
	tests := []struct {
		name     string
		cmd      Command
		expected string
	}{
		{"help", CommandHelp, HelpMsg},
		{"status", CommandStatus, NoGameMsg},
		{"hit is ignored", CommandHit, ""},
		{"stand is ignored", CommandStand, ""},
		{"chatter is ignored", CommandUnknown, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			res, err := Play(nil, tt.cmd, identity{})
			req.NoError(err)
			req.Equal(tt.expected, res.Response)
			req.Nil(res.Record)
			req.False(res.Clear)
		})
	}
}

func Test_Play_New_Game_Deals_And_Saves(t *testing.T) {
	req := require.New(t)
	res, err := Play(nil, CommandNewGame, identity{})
	req.NoError(err)
	req.Equal(OutcomeNone, res.Outcome)
	req.NotNil(res.Record)
	req.Equal([]Rank{Two, Three}, res.Record.PlayerCards)
	req.Equal([]Rank{Four}, res.Record.DealerCards)
	req.Len(res.Record.Card2Use, DeckSize-3)
	req.Contains(res.Response, StartMsg)
	req.Contains(res.Response, IntroMsg)
	req.Contains(res.Response, HelpMsg)
	req.Contains(res.Response, "Cards in your hand: 2, 3 (Total Point: 5)")
}

func Test_Play_Natural_Ends_Without_Saving(t *testing.T) {
	req := require.New(t)
	res, err := Play(nil, CommandNewGame, stacked{Ace, King, Five})
	req.NoError(err)
	req.True(res.Natural)
	req.Equal(OutcomePlayerWin, res.Outcome)
	req.Nil(res.Record)
	req.Contains(res.Response, NaturalMsg)
	req.Equal([]Rank{Ace, King}, res.Player)
}

func Test_Play_Hit_Continues(t *testing.T) {
	req := require.New(t)
	rec := rigged(t, []Rank{Two, Three}, []Rank{Four}, Five).Record()

	res, err := Play(&rec, CommandHit, identity{})
	req.NoError(err)
	req.Equal(OutcomeNone, res.Outcome)
	req.False(res.Clear)
	req.NotNil(res.Record)
	req.Equal([]Rank{Two, Three, Five}, res.Record.PlayerCards)
	req.Len(res.Record.Card2Use, len(rec.Card2Use)-1)
	req.Contains(res.Response, HitMsg)
	req.Contains(res.Response, "Current Status:")
}

func Test_Play_Hit_Bust_Clears(t *testing.T) {
	req := require.New(t)
	rec := rigged(t, []Rank{Ten, King}, []Rank{Four}, Queen).Record()

	res, err := Play(&rec, CommandHit, identity{})
	req.NoError(err)
	req.Equal(OutcomeDealerWin, res.Outcome)
	req.True(res.Clear)
	req.Nil(res.Record)
	req.Contains(res.Response, DealerWinMsg)
}

func Test_Play_Stand_Clears(t *testing.T) {
	req := require.New(t)
	rec := rigged(t, []Rank{Ten, Nine}, []Rank{Nine}, Jack).Record()

	res, err := Play(&rec, CommandStand, identity{})
	req.NoError(err)
	req.Equal(OutcomeTie, res.Outcome)
	req.True(res.Clear)
	req.Nil(res.Record)
	req.Contains(res.Response, TieMsg)
	req.Equal([]Rank{Nine, Jack}, res.Dealer)
}

func Test_Play_Read_Only_Commands_Keep_State(t *testing.T) {
	tests := []struct {
		name     string
		cmd      Command
		expected string
	}{
		{"status", CommandStatus, StatusMsg},
		{"help", CommandHelp, HelpMsg},
		{"new game while playing", CommandNewGame, InProgressMsg},
		{"unknown", CommandUnknown, UnknownMsg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			rec := rigged(t, []Rank{Two, Three}, []Rank{Four}).Record()

			res, err := Play(&rec, tt.cmd, identity{})
			req.NoError(err)
			req.False(res.Clear)
			req.NotNil(res.Record)
			req.Equal(rec, *res.Record)
			req.Contains(res.Response, tt.expected)
			req.Contains(res.Response, "Current Status:")
		})
	}
}

func Test_Play_Corrupt_Record_Clears(t *testing.T) {
	req := require.New(t)
	rec := Record{DealerCards: []Rank{"Z"}, PlayerCards: []Rank{}, Card2Use: []Rank{}}

	res, err := Play(&rec, CommandHit, identity{})
	req.ErrorIs(err, ErrInvalidRank)
	req.True(res.Clear)
	req.Nil(res.Record)
	req.Equal(CorruptGameMsg, res.Response)
}

func Test_Play_Exhausted_Deck_Clears(t *testing.T) {
	req := require.New(t)
	all := NewDeck(identity{})
	rec := Record{DealerCards: all[:1], PlayerCards: all[1:], Card2Use: []Rank{}}

	res, err := Play(&rec, CommandStand, identity{})
	req.ErrorIs(err, ErrDeckExhausted)
	req.True(res.Clear)
	req.Nil(res.Record)
	req.Contains(res.Response, FailureMsg)
}
