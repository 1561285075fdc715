package blackjack

import "fmt"

// Command is an inbound message after classification.
type Command int

const (
	CommandUnknown Command = iota
	CommandNewGame
	CommandHit
	CommandStand
	CommandStatus
	CommandHelp
)

func (c Command) String() string {
	switch c {
	case CommandNewGame:
		return "new-game"
	case CommandHit:
		return "hit"
	case CommandStand:
		return "stand"
	case CommandStatus:
		return "status"
	case CommandHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Result is what one command does to a conversation.
//
// Record is the state to persist, nil when nothing should be stored. Clear
// asks the caller to delete any stored state. An empty Response means the
// message is ignored.
type Result struct {
	Record   *Record
	Response string
	Outcome  Outcome
	Natural  bool
	Clear    bool
	Player   []Rank
	Dealer   []Rank
}

// Play applies cmd to the conversation whose stored state is rec (nil when no
// game exists). Errors always come with a Result that clears the state and
// explains the failure.
func Play(rec *Record, cmd Command, s Shuffler) (Result, error) {
	if rec == nil {
		return playIdle(cmd, s)
	}
	g, err := rec.Game()
	if err != nil {
		return Result{Response: CorruptGameMsg, Clear: true}, err
	}
	return playTurn(g, cmd)
}

func playIdle(cmd Command, s Shuffler) (Result, error) {
	switch cmd {
	case CommandNewGame:
		return deal(s)
	case CommandHelp:
		return Result{Response: HelpMsg}, nil
	case CommandStatus:
		return Result{Response: NoGameMsg}, nil
	default:
		return Result{}, nil
	}
}

func deal(s Shuffler) (Result, error) {
	g := NewGame(s)
	if err := g.Init(); err != nil {
		return failure(err), err
	}
	status, err := g.Status()
	if err != nil {
		return failure(err), err
	}
	resp := fmt.Sprintf("%s\n\n%s\n\nFor now,\n%s\n\n%s", StartMsg, IntroMsg, status, HelpMsg)
	if g.IsNatural() {
		g.finish(OutcomePlayerWin)
		return Result{
			Response: resp + "\n\n" + NaturalMsg,
			Outcome:  OutcomePlayerWin,
			Natural:  true,
			Player:   g.Player,
			Dealer:   g.Dealer,
		}, nil
	}
	rec := g.Record()
	return Result{Record: &rec, Response: resp}, nil
}

func playTurn(g *Game, cmd Command) (Result, error) {
	var (
		resp    string
		outcome Outcome
		err     error
	)
	switch cmd {
	case CommandHit:
		outcome, err = g.Hit()
		resp = HitMsg
	case CommandStand:
		outcome, err = g.Stand()
	case CommandHelp:
		resp = HelpMsg
	case CommandStatus:
		resp = StatusMsg
	case CommandNewGame:
		resp = InProgressMsg
	default:
		resp = UnknownMsg + "\n" + HelpMsg
	}
	if err != nil {
		return failure(err), err
	}
	if outcome != OutcomeNone {
		resp = OutcomeMsg(outcome)
	}

	status, err := g.Status()
	if err != nil {
		return failure(err), err
	}
	res := Result{
		Response: fmt.Sprintf(currentStatusFm, resp, status),
		Outcome:  outcome,
		Player:   g.Player,
		Dealer:   g.Dealer,
	}
	if g.State() == StateFinished {
		res.Clear = true
		return res, nil
	}
	rec := g.Record()
	res.Record = &rec
	return res, nil
}

func failure(err error) Result {
	return Result{Response: FailureMsg + err.Error(), Clear: true}
}
