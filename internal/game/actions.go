package game

import (
	rand "math/rand/v2"

	"github.com/lox/relicjack/internal/deck"
)

// SetBet adjusts the pending wager during the betting phase, clamped to the
// legal range. Returns false outside Betting.
func (s *Session) SetBet(bet int) bool {
	if s.phase != Betting {
		return false
	}
	s.bet = s.clampBet(bet)
	return true
}

// BetMin sets the pending wager to the minimum bet.
func (s *Session) BetMin() bool { return s.SetBet(s.minBet) }

// BetHalf sets the pending wager to half the chip balance.
func (s *Session) BetHalf() bool { return s.SetBet(s.chips / 2) }

// BetAllIn sets the pending wager to the full chip balance.
func (s *Session) BetAllIn() bool { return s.SetBet(s.chips) }

// Deal validates the wager, deducts it, and deals the opening hands.
// An invalid wager is rejected with no state mutation. Naturals on either
// side reveal the hole card and settle immediately, skipping both turns.
func (s *Session) Deal(wager int) bool {
	if s.phase != Betting {
		return false
	}
	if wager < s.minBet || wager > s.maxWager() {
		return false
	}

	s.bet = wager
	s.isAllIn = wager == s.chips
	s.chips -= wager
	s.flags = handFlags{canDouble: true, canSurrender: true}
	s.settlement = nil
	s.lastWinDelta = 0

	s.deck = deck.New(s.rng)
	s.playerHand = nil
	s.dealerHand = nil
	s.playerHand = append(s.playerHand, s.deck.Draw())
	s.dealerHand = append(s.dealerHand, s.deck.Draw())
	s.playerHand = append(s.playerHand, s.deck.Draw())
	s.dealerHand = append(s.dealerHand, s.deck.Draw())

	s.phase = PlayerTurn
	s.logger.Debug("Dealt hand",
		"bet", s.bet,
		"player", s.playerHand.String(),
		"dealerUp", s.dealerHand[0].String())

	s.resolveNaturals()
	return true
}

// resolveNaturals settles immediately when either opening hand is a
// blackjack, revealing the hole card and skipping both turns.
func (s *Session) resolveNaturals() bool {
	playerBJ := s.playerHand.IsBlackjack()
	dealerBJ := s.dealerHand.IsBlackjack()
	if !playerBJ && !dealerBJ {
		return false
	}

	s.flags.dealerRevealed = true
	switch {
	case playerBJ && dealerBJ:
		s.settle(OutcomePush, false)
	case playerBJ:
		s.settle(OutcomeBlackjack, false)
	default:
		s.settle(OutcomeLose, false)
	}
	return true
}

// Hit draws one card and disables double/surrender for the rest of the hand.
// A bust ends the hand as a loss, unless an unused Lucky Coin rescues it:
// the busting card is replaced by a fresh small card (rank 2-5, random suit)
// that does not come from the deck.
func (s *Session) Hit() bool {
	if s.phase != PlayerTurn {
		return false
	}

	s.playerHand = append(s.playerHand, s.deck.Draw())
	s.flags.canDouble = false
	s.flags.canSurrender = false

	total, _ := s.playerHand.Total()
	if total <= 21 {
		return true
	}

	if s.relics.Has(RelicLuckyCoin) && !s.flags.usedLuckyCoin {
		s.flags.usedLuckyCoin = true
		s.playerHand = s.playerHand[:len(s.playerHand)-1]
		replacement := luckyCoinCard(s.rng)
		s.playerHand = append(s.playerHand, replacement)
		total, _ = s.playerHand.Total()
		s.logger.Debug("Lucky Coin rescued a bust", "replacement", replacement.String(), "total", total)
		return true
	}

	s.settle(OutcomeLose, false)
	return true
}

// luckyCoinCard draws the Lucky Coin replacement: rank uniform in 2-5, suit
// uniform across the four suits. It deliberately bypasses the deck.
func luckyCoinCard(rng *rand.Rand) deck.Card {
	rank := deck.Two + deck.Rank(rng.IntN(4))
	suit := deck.Suit(rng.IntN(4))
	return deck.NewCard(suit, rank)
}

// Stand ends the player turn and hands control to the dealer.
func (s *Session) Stand() bool {
	if s.phase != PlayerTurn {
		return false
	}
	s.flags.canDouble = false
	s.flags.canSurrender = false
	s.standOrBust()
	return true
}

// Double doubles the bet, draws exactly one card, and forces a stand. Only
// legal on a two-card hand with double still allowed and enough chips to
// cover the raise.
func (s *Session) Double() bool {
	if s.phase != PlayerTurn || !s.flags.canDouble || len(s.playerHand) != 2 || s.chips < s.bet {
		return false
	}

	s.chips -= s.bet
	s.bet *= 2
	s.flags.canDouble = false
	s.flags.canSurrender = false
	s.playerHand = append(s.playerHand, s.deck.Draw())
	s.logger.Debug("Doubled down", "bet", s.bet, "player", s.playerHand.String())
	s.standOrBust()
	return true
}

// Surrender refunds half the bet (60% with Cool-Headed) and ends the hand
// as a surrendered loss.
func (s *Session) Surrender() bool {
	if s.phase != PlayerTurn || !s.flags.canSurrender {
		return false
	}

	refund := floorMul(s.bet, s.relics.HookValue(HookSurrenderRefund, 0.5))
	s.chips += refund
	s.logger.Debug("Surrendered", "refund", refund)
	s.settle(OutcomeLose, true)
	return true
}

// Peek reveals the dealer's hole card for presentation. Requires the peek
// relic and is limited to once per hand; the only state change is the
// consumed flag.
func (s *Session) Peek() (deck.Card, bool) {
	if s.phase != PlayerTurn || !s.relics.Has(RelicPeek) || s.flags.usedPeek || len(s.dealerHand) < 2 {
		return deck.Card{}, false
	}
	s.flags.usedPeek = true
	return s.dealerHand[1], true
}

// standOrBust resolves the end of the player turn: a total over 21 loses
// immediately, otherwise the hole card is revealed and the dealer plays.
func (s *Session) standOrBust() {
	total, _ := s.playerHand.Total()
	if total > 21 {
		s.settle(OutcomeLose, false)
		return
	}
	s.phase = DealerTurn
	s.flags.dealerRevealed = true
}

// Advance performs one step of dealer auto-play: a single draw while the
// dealer total is under 17, then the final comparison. Callers control the
// pacing; looping Advance until the phase leaves DealerTurn plays the whole
// dealer turn. The dealer stands on all 17s, soft included.
func (s *Session) Advance() bool {
	if s.phase != DealerTurn {
		return false
	}

	total, _ := s.dealerHand.Total()
	if total < 17 {
		card := s.deck.Draw()
		s.dealerHand = append(s.dealerHand, card)
		total, _ = s.dealerHand.Total()
		s.logger.Debug("Dealer drew", "card", card.String(), "total", total)
		return true
	}

	playerTotal, _ := s.playerHand.Total()
	switch {
	case total > 21:
		s.settle(OutcomeWin, false)
	case playerTotal > total:
		s.settle(OutcomeWin, false)
	case playerTotal < total:
		s.settle(OutcomeLose, false)
	default:
		s.settle(OutcomePush, false)
	}
	return true
}

// floorMul multiplies a non-negative chip amount by a rate, rounding toward
// zero as every percentage computation in settlement does.
func floorMul(n int, rate float64) int {
	return int(float64(n) * rate)
}
