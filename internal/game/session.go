package game

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/relicjack/internal/deck"
)

// Phase enumerates the round lifecycle states. Exactly one phase is active
// at a time and every action method guards on it.
type Phase int

const (
	Betting Phase = iota
	PlayerTurn
	DealerTurn
	Payout
	RelicChoice
	GameOver
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case Betting:
		return "betting"
	case PlayerTurn:
		return "player"
	case DealerTurn:
		return "dealer"
	case Payout:
		return "payout"
	case RelicChoice:
		return "relic-choice"
	case GameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result of a single hand.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeBlackjack
	OutcomePush
	OutcomeLose
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeBlackjack:
		return "blackjack"
	case OutcomePush:
		return "push"
	case OutcomeLose:
		return "lose"
	default:
		return "none"
	}
}

// Rules holds the table parameters for a run.
type Rules struct {
	InitialChips int
	MaxBet       int
	StartingBet  int
}

// DefaultRules returns the standard table parameters.
func DefaultRules() Rules {
	return Rules{
		InitialChips: 100,
		MaxBet:       1000,
		StartingBet:  25,
	}
}

const (
	minBetFloor     = 5
	minBetStep      = 5
	minBetLossHeavy = 10
	starThreshold   = 3
	draftSize       = 2
)

// ScoreStore persists the single high-score scalar across runs.
type ScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// handFlags are reset at the start of every hand.
type handFlags struct {
	dealerRevealed bool
	canDouble      bool
	canSurrender   bool
	usedLuckyCoin  bool
	usedPeek       bool
}

// Session is the state of one interactive run: the economy, the relic set,
// and the live hand. It is not safe for concurrent use; a single caller
// drives it synchronously.
type Session struct {
	rng    *rand.Rand
	logger *log.Logger
	rules  Rules
	store  ScoreStore

	phase      Phase
	deck       *deck.Deck
	playerHand Hand
	dealerHand Hand

	chips     int
	bet       int
	minBet    int
	streak    int
	stars     int
	highScore int

	relics       *RelicSet
	isAllIn      bool
	lastWinDelta int

	flags            handFlags
	usedResurrection bool

	settlement      *Settlement
	pendingGameOver bool
	relicChoices    []Relic
}

// NewSession creates a session for a fresh run. The high score is loaded
// from the store; a missing or unreadable store falls back to the starting
// chip count, matching a first-ever run.
func NewSession(rng *rand.Rand, rules Rules, store ScoreStore, logger *log.Logger) *Session {
	s := &Session{
		rng:    rng,
		logger: logger,
		rules:  rules,
		store:  store,
	}

	s.highScore = rules.InitialChips
	if store != nil {
		if hs, err := store.Load(); err != nil {
			logger.Warn("Failed to load high score", "error", err)
		} else if hs > s.highScore {
			s.highScore = hs
		}
	}

	s.reset()
	return s
}

// StartNewRun abandons the current run and resets the economy and relic set
// to their initial values. The high score survives.
func (s *Session) StartNewRun() {
	s.logger.Info("Starting new run", "highScore", s.highScore)
	s.reset()
}

func (s *Session) reset() {
	s.phase = Betting
	s.deck = nil
	s.playerHand = nil
	s.dealerHand = nil
	s.chips = s.rules.InitialChips
	s.bet = s.rules.StartingBet
	s.minBet = minBetFloor
	s.streak = 0
	s.stars = 0
	s.relics = NewRelicSet()
	s.isAllIn = false
	s.lastWinDelta = 0
	s.flags = handFlags{}
	s.usedResurrection = false
	s.settlement = nil
	s.pendingGameOver = false
	s.relicChoices = nil
}

// Phase returns the current round phase.
func (s *Session) Phase() Phase { return s.phase }

// Chips returns the current chip balance.
func (s *Session) Chips() int { return s.chips }

// Bet returns the currently selected (or in-play) wager.
func (s *Session) Bet() int { return s.bet }

// MinBet returns the current minimum bet.
func (s *Session) MinBet() int { return s.minBet }

// Streak returns the current win streak.
func (s *Session) Streak() int { return s.streak }

// Stars returns the accumulated draft progress.
func (s *Session) Stars() int { return s.stars }

// HighScore returns the best chip balance seen across runs.
func (s *Session) HighScore() int { return s.highScore }

// Relics returns the owned relics in acquisition order.
func (s *Session) Relics() []Relic { return s.relics.Relics() }

// maxWager is the largest legal wager right now.
func (s *Session) maxWager() int {
	if s.chips < s.rules.MaxBet {
		return s.chips
	}
	return s.rules.MaxBet
}

// clampBet pulls an arbitrary bet into the legal range for the next deal.
func (s *Session) clampBet(bet int) int {
	if max := s.maxWager(); bet > max {
		bet = max
	}
	if bet < s.minBet {
		bet = s.minBet
	}
	return bet
}
