package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/relicjack/internal/config"
	"github.com/lox/relicjack/internal/game"
	"github.com/lox/relicjack/internal/randutil"
)

func testModel(t *testing.T, seed int64) (Model, *game.Session) {
	t.Helper()
	session := game.NewSession(randutil.New(seed), game.DefaultRules(), nil, log.New(io.Discard))
	m := New(session, config.Default(), log.New(io.Discard), quartz.NewMock(t))
	return m, session
}

// dealtModel walks seeds until the opening deal has no natural, so the
// session lands in the player turn.
func dealtModel(t *testing.T) (Model, *game.Session) {
	t.Helper()
	for seed := int64(1); seed < 100; seed++ {
		m, session := testModel(t, seed)
		m, _ = press(m, keyMsg("enter"))
		if session.Phase() == game.PlayerTurn {
			return m, session
		}
	}
	t.Fatal("no seed under 100 deals a natural-free opening hand")
	return Model{}, nil
}

func press(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestDealKeyStartsHand(t *testing.T) {
	m, session := testModel(t, 1)

	_, _ = press(m, keyMsg("enter"))

	require.NotEqual(t, game.Betting, session.Phase())
	snap := session.Snapshot()
	assert.Len(t, snap.PlayerHand, 2)
	assert.Len(t, snap.DealerHand, 2)
}

func TestBetAdjustKeys(t *testing.T) {
	m, session := testModel(t, 1)
	require.Equal(t, 25, session.Bet())

	m, _ = press(m, keyMsg("up"))
	assert.Equal(t, 30, session.Bet())

	m, _ = press(m, keyMsg("down"))
	assert.Equal(t, 25, session.Bet())

	m, _ = press(m, keyMsg("3"))
	assert.Equal(t, 100, session.Bet(), "all-in")

	m, _ = press(m, keyMsg("2"))
	assert.Equal(t, 50, session.Bet(), "half")

	_, _ = press(m, keyMsg("1"))
	assert.Equal(t, session.MinBet(), session.Bet(), "min")
}

func TestStandTriggersDealerPacing(t *testing.T) {
	m, session := dealtModel(t)

	m, cmd := press(m, keyMsg("2"))
	require.Equal(t, game.DealerTurn, session.Phase())
	require.NotNil(t, cmd, "standing should schedule a dealer step")

	// Drive the pacing loop directly; the timer only spaces the steps out.
	for i := 0; session.Phase() == game.DealerTurn; i++ {
		require.Less(t, i, 20, "dealer turn did not terminate")
		m, _ = press(m, dealerStepMsg{})
	}
	assert.Equal(t, game.Payout, session.Phase())
}

func TestPayoutContinueReturnsToBetting(t *testing.T) {
	m, session := dealtModel(t)
	m, _ = press(m, keyMsg("2"))
	for session.Phase() == game.DealerTurn {
		m, _ = press(m, dealerStepMsg{})
	}
	require.Equal(t, game.Payout, session.Phase())

	_, _ = press(m, keyMsg("enter"))
	// Stars cannot reach the draft threshold after one hand.
	assert.Equal(t, game.Betting, session.Phase())
}

func TestToastExpiresOnMatchingSeq(t *testing.T) {
	m, _ := testModel(t, 1)
	m, cmd := m.setToast("hello")
	require.NotNil(t, cmd)
	require.Equal(t, "hello", m.toast)

	// A stale expiry from an earlier toast is ignored.
	m, _ = press(m, toastExpiredMsg{seq: m.toastSeq - 1})
	assert.Equal(t, "hello", m.toast)

	m, _ = press(m, toastExpiredMsg{seq: m.toastSeq})
	assert.Empty(t, m.toast)
}

func TestWindowSizeTracked(t *testing.T) {
	m, _ := testModel(t, 1)
	m, _ = press(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestQuitKey(t *testing.T) {
	m, _ := testModel(t, 1)
	m, cmd := press(m, keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.True(t, m.quitting)
}

func TestNewRunKeyResetsSession(t *testing.T) {
	m, session := dealtModel(t)
	m, _ = press(m, keyMsg("2"))
	for session.Phase() == game.DealerTurn {
		m, _ = press(m, dealerStepMsg{})
	}
	m, _ = press(m, keyMsg("enter"))
	require.Equal(t, game.Betting, session.Phase())

	_, _ = press(m, keyMsg("n"))
	assert.Equal(t, 100, session.Chips())
	assert.Equal(t, 25, session.Bet())
}
