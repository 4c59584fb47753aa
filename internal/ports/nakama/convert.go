package nakama

import "videopoker/internal/domain"

// wireCard is the JSON card representation on the match socket. Ranks are
// 2..14 with ace high; suits are single letters.
type wireCard struct {
	Rank int    `json:"rank"`
	Suit string `json:"suit"`
}

func cardsToWire(cards []domain.Card) []wireCard {
	out := make([]wireCard, 0, len(cards))
	for _, c := range cards {
		out = append(out, wireCard{
			Rank: int(c.Rank),
			Suit: suitToWire(c.Suit),
		})
	}
	return out
}

func suitToWire(s domain.Suit) string {
	switch s {
	case domain.Spades:
		return "S"
	case domain.Hearts:
		return "H"
	case domain.Diamonds:
		return "D"
	case domain.Clubs:
		return "C"
	default:
		return ""
	}
}
