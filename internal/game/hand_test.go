package game

import (
	"testing"

	"github.com/lox/relicjack/internal/deck"
)

func card(suit deck.Suit, rank deck.Rank) deck.Card {
	return deck.NewCard(suit, rank)
}

func TestHandTotal(t *testing.T) {
	tests := []struct {
		name      string
		hand      Hand
		wantTotal int
		wantSoft  bool
	}{
		{
			name:      "simple hard total",
			hand:      Hand{card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Seven)},
			wantTotal: 17,
			wantSoft:  false,
		},
		{
			name:      "ace counts eleven while legal",
			hand:      Hand{card(deck.Spades, deck.Ace), card(deck.Hearts, deck.Six)},
			wantTotal: 17,
			wantSoft:  true,
		},
		{
			name:      "ace drops to one on bust",
			hand:      Hand{card(deck.Spades, deck.Ace), card(deck.Hearts, deck.Nine), card(deck.Clubs, deck.Five)},
			wantTotal: 15,
			wantSoft:  false,
		},
		{
			name:      "two aces reduce exactly once",
			hand:      Hand{card(deck.Spades, deck.Ace), card(deck.Hearts, deck.Ace), card(deck.Clubs, deck.Nine)},
			wantTotal: 21,
			wantSoft:  true,
		},
		{
			name:      "three aces and a nine",
			hand:      Hand{card(deck.Spades, deck.Ace), card(deck.Hearts, deck.Ace), card(deck.Diamonds, deck.Ace), card(deck.Clubs, deck.Nine)},
			wantTotal: 12,
			wantSoft:  false,
		},
		{
			name:      "face cards are ten",
			hand:      Hand{card(deck.Spades, deck.King), card(deck.Hearts, deck.Queen), card(deck.Clubs, deck.Jack)},
			wantTotal: 30,
			wantSoft:  false,
		},
		{
			name:      "empty hand",
			hand:      Hand{},
			wantTotal: 0,
			wantSoft:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, soft := tt.hand.Total()
			if total != tt.wantTotal {
				t.Errorf("Total() = %d, want %d", total, tt.wantTotal)
			}
			if soft != tt.wantSoft {
				t.Errorf("soft = %v, want %v", soft, tt.wantSoft)
			}
		})
	}
}

func TestIsBlackjack(t *testing.T) {
	tests := []struct {
		name string
		hand Hand
		want bool
	}{
		{
			name: "ace and king",
			hand: Hand{card(deck.Spades, deck.Ace), card(deck.Hearts, deck.King)},
			want: true,
		},
		{
			name: "ace and ten",
			hand: Hand{card(deck.Spades, deck.Ace), card(deck.Hearts, deck.Ten)},
			want: true,
		},
		{
			name: "three card twenty one is not blackjack",
			hand: Hand{card(deck.Spades, deck.Ace), card(deck.Hearts, deck.Five), card(deck.Clubs, deck.Five)},
			want: false,
		},
		{
			name: "two card twenty",
			hand: Hand{card(deck.Spades, deck.King), card(deck.Hearts, deck.Queen)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hand.IsBlackjack(); got != tt.want {
				t.Errorf("IsBlackjack() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHandString(t *testing.T) {
	h := Hand{card(deck.Spades, deck.Ace), card(deck.Hearts, deck.King)}
	if got := h.String(); got != "A♠ K♥" {
		t.Errorf("String() = %q, want %q", got, "A♠ K♥")
	}
}
