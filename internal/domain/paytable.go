package domain

// Bet levels run 1..5 coins; payouts are totals for the whole bet, not
// per-coin multiples, so jackpot rows (4000 at bet 5) stay non-linear.
const (
	MinBet = 1
	MaxBet = 5
)

// Paytable maps an Outcome to its payout per bet level. Outcomes absent from
// the table pay zero rather than erroring.
type Paytable map[Outcome][MaxBet]int64

// Payout returns the payout for an outcome at the given bet level.
// Bets outside [1,5] are clamped.
func (p Paytable) Payout(outcome Outcome, bet int) int64 {
	row, ok := p[outcome]
	if !ok {
		return 0
	}
	if bet < MinBet {
		bet = MinBet
	}
	if bet > MaxBet {
		bet = MaxBet
	}
	return row[bet-1]
}
