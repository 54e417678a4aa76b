package deck

import (
	"math/rand/v2"
)

// NewRand returns a PCG-backed generator. Equal seeds give equal boards.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SelectCards draws pairCount distinct faces from a shuffled copy of faces,
// gives each a random color, emits two cards per face and shuffles the result.
// Slot is the card's final position on the board.
func SelectCards(pairCount int, faces []Face, colors []Color, rng *rand.Rand) ([]CardSpec, error) {
	if pairCount < 1 || pairCount > len(faces) {
		return nil, &ConfigurationError{Field: "pair count", Value: pairCount, Min: 1, Max: len(faces)}
	}
	if len(colors) == 0 {
		return nil, &ConfigurationError{Field: "color catalog size", Value: 0, Min: 1, Max: 0}
	}

	shuffled := make([]Face, len(faces))
	copy(shuffled, faces)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	cards := make([]CardSpec, 0, pairCount*2)
	for pair := 0; pair < pairCount; pair++ {
		card := CardSpec{
			Face:       shuffled[pair],
			Color:      colors[rng.IntN(len(colors))],
			PairNumber: pair,
		}
		cards = append(cards, card, card)
	}

	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	for i := range cards {
		cards[i].Slot = i
	}

	return cards, nil
}
