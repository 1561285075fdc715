package blackjack

// ScoreOf sums the hard total of a hand. The empty hand scores 0.
func ScoreOf(cards []Rank) (int, error) {
	score := 0
	for _, c := range cards {
		v, err := c.Value()
		if err != nil {
			return 0, err
		}
		score += v
	}
	return score, nil
}
