package blackjack

const (
	DealerWinMsg = "Haha! I can't believe it! Looks like I completely crushed you. " +
		"Don't worry, it's all in good fun. Maybe next time you'll stand a chance against my " +
		"unbeatable skills. Until then, enjoy the taste of defeat!"
	PlayerWinMsg = "Alright, alright, you got me this time! I'll begrudgingly admit it, " +
		"you beat me fair and square. I'll be back for a rematch soon. Consider yourself lucky, my friend!"
	TieMsg = "Ha! It's a tie, my friend! That's quite a rare occurrence. Shall we go at it again?"

	NaturalMsg = "I cannot believe it, you got BLACKJACK!!!! You are so lucky this time!\n" +
		"Do you want another try? You may not be so lucky next time."

	HelpMsg = "There are 4 options for you:\n" +
		"1. Say \"hit\" to take another card.\n" +
		"2. Say \"stand\" to take no more cards, then I will reveal the result.\n" +
		"3. Say \"status\" to see the cards in your hand and my face-up card.\n" +
		"4. Say \"help\" or anything else to see this message."

	IntroMsg = "Let me introduce the rules of this game:\n" +
		"1. Cards 2~10 count at face value. Face cards (J, Q, K) count as 10 points. \"A\" counts 11 points.\n" +
		"2. First you get two cards and I show you one of mine.\n" +
		"3. You can take another card by saying \"hit\" as many times as you like, until you say \"stand\".\n" +
		"4. If your points go beyond 21 after a hit, you lose immediately.\n" +
		"5. After you \"stand\", I reveal my next card and keep drawing until I reach at least 17.\n" +
		"6. If your points are 21 or less and greater than mine, or mine are beyond 21, you win.\n" +
		"7. If my points are 21 or less and greater than yours, I win.\n" +
		"8. Anything else is a tie."

	StartMsg        = "Ok, let's begin."
	HitMsg          = "Order received."
	StatusMsg       = "So soon you forgot your cards?"
	UnknownMsg      = "I don't know what you mean."
	InProgressMsg   = "We are already in the middle of a game."
	NoGameMsg       = "There is no active game. Say \"blackjack\" to start one."
	FailureMsg      = "There's something wrong and the game will be terminated. Possible reason: "
	CorruptGameMsg  = "Your saved game could not be read, so it has been discarded. Say \"blackjack\" to start a new one."
	currentStatusFm = "%s\n\nCurrent Status:\n%s"
)

// OutcomeMsg is the dealer's narration for a finished round.
func OutcomeMsg(o Outcome) string {
	switch o {
	case OutcomePlayerWin:
		return PlayerWinMsg
	case OutcomeDealerWin:
		return DealerWinMsg
	case OutcomeTie:
		return TieMsg
	default:
		return ""
	}
}
