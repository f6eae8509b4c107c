package game

import (
	"fmt"
	"strings"
)

// Settlement records the applied result of one hand. It is produced exactly
// once per hand when the terminal outcome is reached; acknowledgment only
// routes the player onward and never re-applies deltas.
type Settlement struct {
	Outcome     Outcome
	Surrendered bool

	// Info is the human-readable summary line, e.g.
	// "Win +20🪙 +10💰" or "Surrender".
	Info string

	// StarGain is the number of stars awarded by this hand.
	StarGain int

	// WinTotal is the displayed bonus total for win/blackjack outcomes and
	// the stake of the Double or Nothing gamble.
	WinTotal int

	// GambleOffered is true when Double or Nothing may be exercised before
	// the round advances.
	GambleOffered bool

	gambleUsed bool
}

// AckResult is the routing decision returned by AcknowledgeSettlement.
type AckResult int

const (
	AckRejected AckResult = iota
	AckGameOver
	AckRelicChoice
	AckNextBet
)

// GambleResult is the outcome of exercising Double or Nothing.
type GambleResult int

const (
	GambleUnavailable GambleResult = iota
	GambleDoubled
	GambleLost
)

// settle applies the full settlement sequence for a terminal outcome, in a
// fixed order: base payout, win-side relic bonuses, extra star, loss
// penalty, resurrection, chip/star application, minimum-bet drift, high
// score, game-over determination, and the gamble offer. Every percentage is
// floored.
func (s *Session) settle(outcome Outcome, surrendered bool) {
	s.phase = Payout

	delta := 0
	starGain := 0
	info := ""

	switch outcome {
	case OutcomeBlackjack:
		win := floorMul(s.bet, s.relics.HookValue(HookBlackjackPayout, 1.5))
		delta = s.bet + win
		totalShown := win
		starGain = 2
		s.streak++
		info = fmt.Sprintf("Blackjack! +%d🪙", floorMul(s.bet, 1.5))
		if s.relics.Has(RelicRoyalPayout) {
			bonus := floorMul(s.bet, 0.5)
			totalShown += bonus
			info += fmt.Sprintf(" +%d👑", bonus)
		}
		if endBonus := int(s.relics.HookValue(HookChipEndBonus, 0)); endBonus > 0 {
			s.chips += endBonus
			totalShown += endBonus
			info += fmt.Sprintf(" +%d💧", endBonus)
		}
		s.lastWinDelta = totalShown

	case OutcomeWin:
		baseWin := s.bet
		totalShown := baseWin
		parts := []string{fmt.Sprintf("Win +%d🪙", baseWin)}
		if s.relics.Has(RelicMomentum) && s.streak >= 2 {
			b := floorMul(s.bet, s.relics.HookValue(HookStreakWinBoost, 0.25))
			totalShown += b
			parts = append(parts, fmt.Sprintf("+%d⚡", b))
		}
		if s.relics.Has(RelicGoldRush) {
			b := floorMul(s.bet, s.relics.HookValue(HookWinBonusPercent, 0.5))
			totalShown += b
			parts = append(parts, fmt.Sprintf("+%d💰", b))
		}
		endBonus := int(s.relics.HookValue(HookChipEndBonus, 0))
		if endBonus > 0 {
			s.chips += endBonus
			totalShown += endBonus
			parts = append(parts, fmt.Sprintf("+%d💧", endBonus))
		}
		info = strings.Join(parts, " ")
		// The flat end bonus went straight to chips above; everything else
		// in the shown total rides on the returned stake.
		delta = s.bet + (totalShown - endBonus)
		starGain = 1
		s.streak++
		s.lastWinDelta = totalShown

	case OutcomePush:
		delta = s.bet
		info = "Push"
		if !s.relics.Has(RelicPushIt) {
			s.streak = 0
		}

	case OutcomeLose:
		if surrendered {
			info = "Surrender"
		} else {
			info = "Lose"
		}
		s.streak = 0
	}

	won := outcome == OutcomeWin || outcome == OutcomeBlackjack

	if won && s.relics.Has(RelicRiskyGain) && s.isAllIn {
		starGain++
	}

	if outcome == OutcomeLose && s.relics.Has(RelicGoldRush) {
		penalty := floorMul(s.chips, s.relics.HookValue(HookLossPenaltyPercent, 0.1))
		s.chips -= penalty
		info += fmt.Sprintf(" -%d💰", penalty)
	}

	if outcome == OutcomeLose && s.chips <= 0 && s.relics.Has(RelicResurrection) && !s.usedResurrection {
		refund := floorMul(s.rules.InitialChips, 0.5)
		s.chips = refund
		s.usedResurrection = true
		info += fmt.Sprintf(" Resurrected! +%d🔄", refund)
		s.logger.Info("Resurrection Token activated", "chips", refund)
	}

	s.chips += delta
	s.stars += starGain

	drift := minBetStep
	if won {
		drift = 0
	}
	if s.relics.Has(RelicBigWinner) && outcome == OutcomeLose {
		drift = minBetLossHeavy
	}
	if s.relics.Has(RelicPushIt) && outcome == OutcomePush {
		drift = 0
	}
	s.minBet += drift
	if s.relics.Has(RelicBigWinner) && won && s.streak > 1 {
		s.minBet -= (s.streak - 1) * minBetStep
	}
	if s.minBet < minBetFloor {
		s.minBet = minBetFloor
	}

	if s.chips > s.highScore {
		s.highScore = s.chips
		if s.store != nil {
			if err := s.store.Save(s.highScore); err != nil {
				s.logger.Warn("Failed to save high score", "error", err)
			}
		}
	}

	s.pendingGameOver = s.chips < s.minBet

	s.settlement = &Settlement{
		Outcome:       outcome,
		Surrendered:   surrendered,
		Info:          info,
		StarGain:      starGain,
		WinTotal:      s.lastWinDelta,
		GambleOffered: won && s.relics.Has(RelicDoubleOrNothing) && s.lastWinDelta > 0,
	}

	s.logger.Debug("Hand settled",
		"outcome", outcome.String(),
		"info", info,
		"chips", s.chips,
		"minBet", s.minBet,
		"streak", s.streak,
		"stars", s.stars,
		"gameOver", s.pendingGameOver)
}

// Settlement returns the settlement of the hand currently awaiting
// acknowledgment, or nil outside the payout phase.
func (s *Session) Settlement() *Settlement {
	if s.phase != Payout {
		return nil
	}
	return s.settlement
}

// GamblePayout exercises the Double or Nothing offer: a fair coin flip that
// either doubles the shown win total or deducts it. At most once per
// settlement, and only before the round advances.
func (s *Session) GamblePayout() GambleResult {
	if s.phase != Payout || s.settlement == nil {
		return GambleUnavailable
	}
	st := s.settlement
	if !st.GambleOffered || st.gambleUsed || s.lastWinDelta <= 0 {
		return GambleUnavailable
	}

	st.gambleUsed = true
	amount := s.lastWinDelta
	if s.rng.IntN(2) == 0 {
		s.chips += amount
		st.WinTotal = amount * 2
		st.Info += fmt.Sprintf(" Gamble: Doubled! +%d", amount)
		s.logger.Debug("Gamble succeeded", "amount", amount, "chips", s.chips)
		return GambleDoubled
	}

	s.chips -= amount
	st.WinTotal = 0
	st.Info += fmt.Sprintf(" Gamble: Lost! -%d", amount)
	s.logger.Debug("Gamble failed", "amount", amount, "chips", s.chips)
	return GambleLost
}

// AcknowledgeSettlement advances past the payout phase: to game over when
// the remaining chips cannot cover the minimum bet, to the relic draft when
// enough stars are banked, otherwise straight back to betting. Calling it
// outside the payout phase is rejected, so chip and star deltas can never
// be applied twice.
func (s *Session) AcknowledgeSettlement() AckResult {
	if s.phase != Payout || s.settlement == nil {
		return AckRejected
	}

	if s.pendingGameOver {
		s.phase = GameOver
		s.logger.Info("Run over", "chips", s.chips, "minBet", s.minBet, "highScore", s.highScore)
		return AckGameOver
	}

	if choices := s.draftChoices(); len(choices) > 0 {
		s.relicChoices = choices
		s.phase = RelicChoice
		return AckRelicChoice
	}

	s.nextRound()
	return AckNextBet
}

// nextRound returns to the betting phase, carrying the previous wager
// forward clamped into the new legal range.
func (s *Session) nextRound() {
	s.phase = Betting
	s.playerHand = nil
	s.dealerHand = nil
	s.deck = nil
	s.bet = s.clampBet(s.bet)
	s.pendingGameOver = false
	s.isAllIn = false
	s.lastWinDelta = 0
	s.settlement = nil
	s.relicChoices = nil
}
