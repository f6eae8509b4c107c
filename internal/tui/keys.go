package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/lox/relicjack/internal/config"
)

// keyMap holds every binding, built from the hotkeys config block. Which
// bindings are live at any moment depends on the engine phase.
type keyMap struct {
	Deal      key.Binding
	BetUp     key.Binding
	BetDown   key.Binding
	BetMin    key.Binding
	BetHalf   key.Binding
	BetAllIn  key.Binding
	Hit       key.Binding
	Stand     key.Binding
	Double    key.Binding
	Surrender key.Binding
	Peek      key.Binding
	Continue  key.Binding
	Gamble    key.Binding
	Relic1    key.Binding
	Relic2    key.Binding
	Confirm   key.Binding
	Skip      key.Binding
	NewRun    key.Binding
	Quit      key.Binding
}

func newKeyMap(hk config.HotkeysConfig) keyMap {
	return keyMap{
		Deal:      key.NewBinding(key.WithKeys(hk.Deal), key.WithHelp(hk.Deal, "deal")),
		BetUp:     key.NewBinding(key.WithKeys("up", "+"), key.WithHelp("↑/+", "raise bet")),
		BetDown:   key.NewBinding(key.WithKeys("down", "-"), key.WithHelp("↓/-", "lower bet")),
		BetMin:    key.NewBinding(key.WithKeys(hk.BetMin), key.WithHelp(hk.BetMin, "min")),
		BetHalf:   key.NewBinding(key.WithKeys(hk.BetHalf), key.WithHelp(hk.BetHalf, "half")),
		BetAllIn:  key.NewBinding(key.WithKeys(hk.BetAllIn), key.WithHelp(hk.BetAllIn, "all-in")),
		Hit:       key.NewBinding(key.WithKeys(hk.Hit), key.WithHelp(hk.Hit, "hit")),
		Stand:     key.NewBinding(key.WithKeys(hk.Stand), key.WithHelp(hk.Stand, "stand")),
		Double:    key.NewBinding(key.WithKeys(hk.Double), key.WithHelp(hk.Double, "double")),
		Surrender: key.NewBinding(key.WithKeys(hk.Surrender), key.WithHelp(hk.Surrender, "surrender")),
		Peek:      key.NewBinding(key.WithKeys(hk.Peek), key.WithHelp(hk.Peek, "peek")),
		Continue:  key.NewBinding(key.WithKeys(hk.Continue), key.WithHelp(hk.Continue, "continue")),
		Gamble:    key.NewBinding(key.WithKeys(hk.Gamble), key.WithHelp(hk.Gamble, "gamble")),
		Relic1:    key.NewBinding(key.WithKeys(hk.Relic1), key.WithHelp(hk.Relic1, "left relic")),
		Relic2:    key.NewBinding(key.WithKeys(hk.Relic2), key.WithHelp(hk.Relic2, "right relic")),
		Confirm:   key.NewBinding(key.WithKeys(hk.ConfirmRelic), key.WithHelp(hk.ConfirmRelic, "confirm")),
		Skip:      key.NewBinding(key.WithKeys(hk.SkipRelic), key.WithHelp(hk.SkipRelic, "skip")),
		NewRun:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new run")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// phaseHelp adapts a flat binding list to the help bubble's KeyMap.
type phaseHelp struct {
	bindings []key.Binding
}

func (p phaseHelp) ShortHelp() []key.Binding {
	return p.bindings
}

func (p phaseHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{p.bindings}
}
