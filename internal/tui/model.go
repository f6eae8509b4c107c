// Package tui renders a run in the terminal with bubbletea. It is a pure
// consumer of engine snapshots: every key press maps to one engine
// operation, and the view re-renders from the snapshot afterwards. Timing
// (dealer pacing, toasts, the peek reveal) is cosmetic and runs off an
// injectable clock so tests can drive it.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/relicjack/internal/config"
	"github.com/lox/relicjack/internal/deck"
	"github.com/lox/relicjack/internal/game"
)

const (
	dealerStepDelay = 350 * time.Millisecond
	toastDuration   = 2 * time.Second
	peekDuration    = 1800 * time.Millisecond
)

type (
	dealerStepMsg   struct{}
	toastExpiredMsg struct{ seq int }
	peekExpiredMsg  struct{ seq int }
)

// Model is the bubbletea model for an interactive run.
type Model struct {
	session *game.Session
	keys    keyMap
	help    help.Model
	logger  *log.Logger
	clock   quartz.Clock

	toast    string
	toastSeq int
	peeked   *deck.Card
	peekSeq  int
	selected int

	width    int
	height   int
	quitting bool
}

// New creates a TUI model around an engine session.
func New(session *game.Session, cfg *config.Config, logger *log.Logger, clock quartz.Clock) Model {
	return Model{
		session:  session,
		keys:     newKeyMap(cfg.Hotkeys),
		help:     help.New(),
		logger:   logger.WithPrefix("tui"),
		clock:    clock,
		selected: -1,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case dealerStepMsg:
		if m.session.Phase() == game.DealerTurn {
			m.session.Advance()
			if m.session.Phase() == game.DealerTurn {
				return m, m.dealerStepCmd()
			}
		}
		return m, nil

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case peekExpiredMsg:
		if msg.seq == m.peekSeq {
			m.peeked = nil
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.session.Phase() {
	case game.Betting:
		return m.handleBettingKey(msg)
	case game.PlayerTurn:
		return m.handlePlayerKey(msg)
	case game.Payout:
		return m.handlePayoutKey(msg)
	case game.RelicChoice:
		return m.handleRelicKey(msg)
	case game.GameOver:
		if key.Matches(msg, m.keys.Continue) || key.Matches(msg, m.keys.NewRun) {
			m.session.StartNewRun()
			return m.setToast("New run! Adjust bet and press Deal.")
		}
	}
	return m, nil
}

func (m Model) handleBettingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Deal):
		if !m.session.Deal(m.session.Bet()) {
			return m.setToast("Can't deal that bet.")
		}
	case key.Matches(msg, m.keys.BetUp):
		m.session.SetBet(m.session.Bet() + 5)
	case key.Matches(msg, m.keys.BetDown):
		m.session.SetBet(m.session.Bet() - 5)
	case key.Matches(msg, m.keys.BetMin):
		m.session.BetMin()
	case key.Matches(msg, m.keys.BetHalf):
		m.session.BetHalf()
	case key.Matches(msg, m.keys.BetAllIn):
		m.session.BetAllIn()
	case key.Matches(msg, m.keys.NewRun):
		m.session.StartNewRun()
		return m.setToast("New run! Adjust bet and press Deal.")
	}
	return m, nil
}

func (m Model) handlePlayerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Hit):
		rescued := m.session.Snapshot().LuckyCoinUsed
		m.session.Hit()
		if !rescued && m.session.Snapshot().LuckyCoinUsed {
			return m.setToast("Lucky Coin saved you from a bust!")
		}
	case key.Matches(msg, m.keys.Stand):
		m.session.Stand()
	case key.Matches(msg, m.keys.Double):
		m.session.Double()
	case key.Matches(msg, m.keys.Surrender):
		m.session.Surrender()
	case key.Matches(msg, m.keys.Peek):
		if card, ok := m.session.Peek(); ok {
			m.peeked = &card
			m.peekSeq++
			return m, m.peekExpireCmd(m.peekSeq)
		}
	}
	if m.session.Phase() == game.DealerTurn {
		return m, m.dealerStepCmd()
	}
	return m, nil
}

func (m Model) handlePayoutKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Continue):
		if m.session.AcknowledgeSettlement() == game.AckRelicChoice {
			m.selected = -1
		}
	case key.Matches(msg, m.keys.Gamble):
		switch m.session.GamblePayout() {
		case game.GambleDoubled:
			return m.setToast("Gamble success!")
		case game.GambleLost:
			return m.setToast("Gamble failed!")
		}
	}
	return m, nil
}

func (m Model) handleRelicKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	choices := m.session.RelicChoices()
	switch {
	case key.Matches(msg, m.keys.Relic1):
		m.selected = 0
	case key.Matches(msg, m.keys.Relic2):
		if len(choices) > 1 {
			m.selected = 1
		}
	case key.Matches(msg, m.keys.Confirm):
		if m.selected >= 0 && m.selected < len(choices) {
			picked := choices[m.selected]
			if m.session.PickRelic(picked.ID) {
				return m.setToast(fmt.Sprintf("Gained relic: %s", picked.Name))
			}
		}
	case key.Matches(msg, m.keys.Skip):
		m.session.SkipRelicChoice()
	}
	return m, nil
}

func (m Model) dealerStepCmd() tea.Cmd {
	clock := m.clock
	return func() tea.Msg {
		timer := clock.NewTimer(dealerStepDelay)
		<-timer.C
		return dealerStepMsg{}
	}
}

func (m Model) setToast(text string) (Model, tea.Cmd) {
	m.toast = text
	m.toastSeq++
	seq := m.toastSeq
	clock := m.clock
	return m, func() tea.Msg {
		timer := clock.NewTimer(toastDuration)
		<-timer.C
		return toastExpiredMsg{seq: seq}
	}
}

func (m Model) peekExpireCmd(seq int) tea.Cmd {
	clock := m.clock
	return func() tea.Msg {
		timer := clock.NewTimer(peekDuration)
		<-timer.C
		return peekExpiredMsg{seq: seq}
	}
}
