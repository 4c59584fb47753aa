package domain

// Outcome is a payout category. Each variant maps every 5-card hand to
// exactly one Outcome; OutcomeNothing is the exhaustive non-paying fallback.
type Outcome string

const (
	OutcomeNothing Outcome = "Nothing"

	// Shared across variants.
	OutcomeRoyalFlush    Outcome = "Royal Flush"
	OutcomeStraightFlush Outcome = "Straight Flush"
	OutcomeFourOfAKind   Outcome = "Four of a Kind"
	OutcomeFullHouse     Outcome = "Full House"
	OutcomeFlush         Outcome = "Flush"
	OutcomeStraight      Outcome = "Straight"
	OutcomeThreeOfAKind  Outcome = "Three of a Kind"
	OutcomeTwoPair       Outcome = "Two Pair"
	OutcomeJacksOrBetter Outcome = "Jacks or Better"

	// Bonus-quad tiers, split by quad rank and kicker.
	OutcomeFourAcesWithKicker Outcome = "Four Aces w/ 2-4"
	OutcomeFourLowsWithKicker Outcome = "Four 2s-4s w/ A-4"
	OutcomeFourAces           Outcome = "Four Aces"
	OutcomeFourLows           Outcome = "Four 2s-4s"
	OutcomeFourHighs          Outcome = "Four 5s-Ks"

	// Wild-deuce categories.
	OutcomeNaturalRoyalFlush Outcome = "Natural Royal Flush"
	OutcomeFourDeuces        Outcome = "Four Deuces"
	OutcomeWildRoyalFlush    Outcome = "Wild Royal Flush"
	OutcomeFiveOfAKind       Outcome = "Five of a Kind"
)
