package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/relicjack/internal/game"
)

func TestViewShowsTopbar(t *testing.T) {
	m, _ := testModel(t, 1)
	out := m.View()

	assert.Contains(t, out, "Relicjack")
	assert.Contains(t, out, "Chips 100")
	assert.Contains(t, out, "Bet 25")
	assert.Contains(t, out, "Place your bet")
}

func TestViewHidesHoleCard(t *testing.T) {
	m, session := dealtModel(t)
	require.Equal(t, game.PlayerTurn, session.Phase())

	out := m.View()
	assert.Contains(t, out, "[??]", "hole card should render face down")
	assert.Contains(t, out, "Your move.")

	m, _ = press(m, keyMsg("2"))
	for session.Phase() == game.DealerTurn {
		m, _ = press(m, dealerStepMsg{})
	}
	assert.NotContains(t, m.View(), "[??]", "hole card should be revealed at payout")
}

func TestViewShowsToast(t *testing.T) {
	m, _ := testModel(t, 1)
	m, _ = m.setToast("Lucky Coin saved you from a bust!")
	assert.Contains(t, m.View(), "Lucky Coin saved you")
}

func TestViewEmptyWhenQuitting(t *testing.T) {
	m, _ := testModel(t, 1)
	m.quitting = true
	assert.Empty(t, m.View())
}

func TestViewSettlement(t *testing.T) {
	m, session := dealtModel(t)
	m, _ = press(m, keyMsg("2"))
	for session.Phase() == game.DealerTurn {
		m, _ = press(m, dealerStepMsg{})
	}
	require.Equal(t, game.Payout, session.Phase())

	out := m.View()
	snap := session.Snapshot()
	assert.Contains(t, out, snap.Info)
}
