package deck

import rand "math/rand/v2"

// Size is the number of cards in a full deck.
const Size = 52

// Deck represents a shuffled deck of playing cards. A fresh deck is built
// for every hand and drawn from the end, stack style.
type Deck struct {
	cards []Card
}

// New creates a full 52-card deck shuffled with the provided RNG
// (Fisher-Yates, unbiased).
func New(rng *rand.Rand) *Deck {
	d := &Deck{cards: make([]Card, 0, Size)}

	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Ace; rank <= King; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}

	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}

	return d
}

// FromCards creates a deck with an exact card order, drawn from the end.
// Used to script hands in tests.
func FromCards(cards ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// Draw removes and returns the top (last) card.
//
// Drawing from an empty deck panics: a single blackjack hand cannot exhaust
// a fresh 52-card deck, so underflow indicates an engine bug rather than a
// recoverable condition.
func (d *Deck) Draw() Card {
	if len(d.cards) == 0 {
		panic("deck: draw from empty deck")
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}
