package deck

import "testing"

func TestCardValue(t *testing.T) {
	tests := []struct {
		card     Card
		expected int
	}{
		{NewCard(Spades, Ace), 11},
		{NewCard(Hearts, Two), 2},
		{NewCard(Diamonds, Nine), 9},
		{NewCard(Clubs, Ten), 10},
		{NewCard(Spades, Jack), 10},
		{NewCard(Hearts, Queen), 10},
		{NewCard(Diamonds, King), 10},
	}

	for _, tt := range tests {
		if got := tt.card.Value(); got != tt.expected {
			t.Errorf("%s.Value() = %d, want %d", tt.card, got, tt.expected)
		}
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card     Card
		expected string
	}{
		{NewCard(Spades, Ace), "A♠"},
		{NewCard(Hearts, Ten), "10♥"},
		{NewCard(Diamonds, Queen), "Q♦"},
		{NewCard(Clubs, Two), "2♣"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestSuitColor(t *testing.T) {
	if NewCard(Spades, Ace).IsRed() || NewCard(Clubs, Ace).IsRed() {
		t.Error("spades and clubs should be black")
	}
	if !NewCard(Hearts, Ace).IsRed() || !NewCard(Diamonds, Ace).IsRed() {
		t.Error("hearts and diamonds should be red")
	}
}

func TestIsFaceCard(t *testing.T) {
	for _, rank := range []Rank{Jack, Queen, King} {
		if !NewCard(Spades, rank).IsFaceCard() {
			t.Errorf("%s should be a face card", rank)
		}
	}
	for _, rank := range []Rank{Ace, Two, Ten} {
		if NewCard(Spades, rank).IsFaceCard() {
			t.Errorf("%s should not be a face card", rank)
		}
	}
}
