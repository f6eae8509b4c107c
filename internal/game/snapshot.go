package game

import "github.com/lox/relicjack/internal/deck"

// Snapshot is an immutable view of the session for rendering layers. It is
// recomputed after every engine operation; renderers never reach into the
// session itself.
type Snapshot struct {
	Phase Phase

	PlayerHand   []deck.Card
	DealerHand   []deck.Card
	DealerHidden bool // hole card renders face down

	PlayerTotal int
	PlayerSoft  bool
	// DealerTotal is the visible total: the up card only while the hole
	// card is hidden, the full hand once revealed.
	DealerTotal int

	Chips     int
	Bet       int
	MinBet    int
	MaxBet    int
	Streak    int
	Stars     int
	HighScore int

	Relics       []Relic
	RelicChoices []Relic

	// Legal player-turn affordances for the current state.
	CanHit       bool
	CanDouble    bool
	CanSurrender bool
	CanPeek      bool

	// LuckyCoinUsed is true once the bust rescue has fired this hand.
	LuckyCoinUsed bool

	// Settlement summary, present during the payout phase.
	Outcome       Outcome
	Info          string
	StarGain      int
	WinTotal      int
	GambleOffered bool

	PendingGameOver bool
}

// Snapshot captures the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:        s.phase,
		DealerHidden: !s.flags.dealerRevealed,
		Chips:        s.chips,
		Bet:          s.bet,
		MinBet:       s.minBet,
		MaxBet:       s.rules.MaxBet,
		Streak:       s.streak,
		Stars:        s.stars,
		HighScore:    s.highScore,
		Relics:       s.relics.Relics(),

		LuckyCoinUsed:   s.flags.usedLuckyCoin,
		PendingGameOver: s.pendingGameOver,
	}

	snap.PlayerHand = append([]deck.Card(nil), s.playerHand...)
	snap.DealerHand = append([]deck.Card(nil), s.dealerHand...)
	snap.PlayerTotal, snap.PlayerSoft = s.playerHand.Total()

	if s.flags.dealerRevealed {
		snap.DealerTotal, _ = s.dealerHand.Total()
	} else if len(s.dealerHand) > 0 {
		snap.DealerTotal, _ = Hand(s.dealerHand[:1]).Total()
	}

	if s.phase == PlayerTurn {
		snap.CanHit = true
		snap.CanDouble = s.flags.canDouble && len(s.playerHand) == 2 && s.chips >= s.bet
		snap.CanSurrender = s.flags.canSurrender
		snap.CanPeek = s.relics.Has(RelicPeek) && !s.flags.usedPeek
	}

	if s.phase == RelicChoice {
		snap.RelicChoices = s.RelicChoices()
	}

	if st := s.settlement; st != nil && s.phase == Payout {
		snap.Outcome = st.Outcome
		snap.Info = st.Info
		snap.StarGain = st.StarGain
		snap.WinTotal = st.WinTotal
		snap.GambleOffered = st.GambleOffered && !st.gambleUsed
	}

	return snap
}
