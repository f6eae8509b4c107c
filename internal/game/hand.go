package game

import (
	"strings"

	"github.com/lox/relicjack/internal/deck"
)

// Hand is an ordered set of cards held by the player or dealer during one
// round. Cards are only ever appended while a hand is live.
type Hand []deck.Card

// Total computes the blackjack total of the hand with soft-ace reduction:
// aces count 11 until the total exceeds 21, then drop to 1 one at a time.
// soft is true when at least one ace is still being counted as 11.
func (h Hand) Total() (total int, soft bool) {
	aces := 0
	for _, c := range h {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces > 0
}

// IsBlackjack returns true for a natural: exactly two cards totalling 21.
func (h Hand) IsBlackjack() bool {
	if len(h) != 2 {
		return false
	}
	total, _ := h.Total()
	return total == 21
}

// String returns the hand as space-separated cards (e.g. "A♠ K♥")
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
