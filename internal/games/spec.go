// Package games defines the playable variants: each one bundles a hand
// classifier, a strategy advisor and a paytable behind a single GameSpec
// looked up by id. Variants register themselves at init.
package games

import (
	"fmt"

	"videopoker/internal/domain"
)

// GameSpec describes one variant. Classify and Advise are pure over a
// 5-card hand; DisplayOrder lists paying outcomes top row first for UIs.
type GameSpec struct {
	ID           string
	Title        string
	DisplayOrder []domain.Outcome
	Paytable     domain.Paytable
	Classify     func(hand []domain.Card) domain.Outcome
	Advise       func(hand []domain.Card) Advice
}

var (
	registry = make(map[string]GameSpec)
	order    []string
)

func register(spec GameSpec) {
	if _, dup := registry[spec.ID]; dup {
		panic(fmt.Sprintf("games: duplicate game id %q", spec.ID))
	}
	registry[spec.ID] = spec
	order = append(order, spec.ID)
}

func init() {
	register(JacksOrBetter())
	register(DoubleDoubleBonus())
	register(DeucesWild())
}

// Lookup returns the variant registered under id. An unknown id is a
// programming error and panics.
func Lookup(id string) GameSpec {
	spec, ok := registry[id]
	if !ok {
		panic(fmt.Sprintf("games: unknown game id %q", id))
	}
	return spec
}

// IDs returns every registered variant id in registration order.
func IDs() []string {
	return append([]string(nil), order...)
}
