package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/relicjack/internal/deck"
	"github.com/lox/relicjack/internal/game"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()
	var b strings.Builder

	b.WriteString(HeaderStyle.Render(" ♠ ♥ Relicjack ♦ ♣ "))
	b.WriteString("\n\n")
	b.WriteString(m.renderTopbar(snap))
	b.WriteString("\n")
	if line := m.renderRelics(snap); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderDealer(snap))
	b.WriteString("\n")
	b.WriteString(m.renderPlayer(snap))
	b.WriteString("\n\n")

	b.WriteString(m.renderStatus(snap))
	b.WriteString("\n")

	if m.toast != "" {
		b.WriteString(ToastStyle.Render(m.toast))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(phaseHelp{bindings: m.activeBindings(snap)}))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderTopbar(snap game.Snapshot) string {
	return TopbarStyle.Render(fmt.Sprintf(
		"Chips %d🪙   Bet %d   Min %d   Streak %d   Stars %d✨   Best %d",
		snap.Chips, snap.Bet, snap.MinBet, snap.Streak, snap.Stars, snap.HighScore))
}

func (m Model) renderRelics(snap game.Snapshot) string {
	if len(snap.Relics) == 0 {
		return ""
	}
	parts := make([]string, len(snap.Relics))
	for i, r := range snap.Relics {
		parts[i] = fmt.Sprintf("%s %s", r.Icon, r.Name)
	}
	return RelicStyle.Render("Relics: " + strings.Join(parts, "  "))
}

func (m Model) renderDealer(snap game.Snapshot) string {
	cards := make([]string, 0, len(snap.DealerHand))
	for i, c := range snap.DealerHand {
		if i == 1 && snap.DealerHidden {
			if m.peeked != nil {
				cards = append(cards, ToastStyle.Render(renderCardText(*m.peeked)))
			} else {
				cards = append(cards, HiddenCardStyle.Render("[??]"))
			}
			continue
		}
		cards = append(cards, renderCard(c))
	}
	return fmt.Sprintf("%s %s  %s",
		LabelStyle.Render("Dealer"),
		strings.Join(cards, " "),
		LabelStyle.Render(fmt.Sprintf("Total: %d", snap.DealerTotal)))
}

func (m Model) renderPlayer(snap game.Snapshot) string {
	cards := make([]string, len(snap.PlayerHand))
	for i, c := range snap.PlayerHand {
		cards[i] = renderCard(c)
	}
	total := fmt.Sprintf("Total: %d", snap.PlayerTotal)
	if snap.PlayerSoft {
		total += " (soft)"
	}
	return fmt.Sprintf("%s %s  %s",
		LabelStyle.Render("You   "),
		strings.Join(cards, " "),
		LabelStyle.Render(total))
}

func (m Model) renderStatus(snap game.Snapshot) string {
	switch snap.Phase {
	case game.Betting:
		return "Place your bet and press Deal."
	case game.PlayerTurn:
		return "Your move."
	case game.DealerTurn:
		return "Dealer plays..."
	case game.Payout:
		return m.renderSettlement(snap)
	case game.RelicChoice:
		return m.renderRelicChoice(snap)
	case game.GameOver:
		return LoseStyle.Render(fmt.Sprintf("Game over — high score %d.", snap.HighScore))
	}
	return ""
}

func (m Model) renderSettlement(snap game.Snapshot) string {
	style := PushStyle
	switch snap.Outcome {
	case game.OutcomeWin:
		style = WinStyle
	case game.OutcomeBlackjack:
		style = BlackjackStyle
	case game.OutcomeLose:
		style = LoseStyle
	}

	line := style.Render(snap.Info)
	if (snap.Outcome == game.OutcomeWin || snap.Outcome == game.OutcomeBlackjack) && snap.WinTotal > 0 {
		line += LabelStyle.Render(fmt.Sprintf(" (%d)", snap.WinTotal))
	}
	if snap.StarGain > 0 {
		line += fmt.Sprintf("  Stars +%d✨", snap.StarGain)
	}
	if snap.GambleOffered {
		line += ToastStyle.Render("  Double or Nothing?")
	}
	return line
}

func (m Model) renderRelicChoice(snap game.Snapshot) string {
	boxes := make([]string, len(snap.RelicChoices))
	for i, r := range snap.RelicChoices {
		style := ChoiceStyle
		if i == m.selected {
			style = SelectedChoiceStyle
		}
		boxes[i] = style.Render(fmt.Sprintf("%s %s\n%s", r.Icon, r.Name, r.Description))
	}
	title := "Choose a relic:"
	return title + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m Model) activeBindings(snap game.Snapshot) []key.Binding {
	switch snap.Phase {
	case game.Betting:
		return []key.Binding{m.keys.Deal, m.keys.BetUp, m.keys.BetDown, m.keys.BetMin, m.keys.BetHalf, m.keys.BetAllIn, m.keys.Quit}
	case game.PlayerTurn:
		bindings := []key.Binding{m.keys.Hit, m.keys.Stand}
		if snap.CanDouble {
			bindings = append(bindings, m.keys.Double)
		}
		if snap.CanSurrender {
			bindings = append(bindings, m.keys.Surrender)
		}
		if snap.CanPeek {
			bindings = append(bindings, m.keys.Peek)
		}
		return bindings
	case game.Payout:
		bindings := []key.Binding{m.keys.Continue}
		if snap.GambleOffered {
			bindings = append(bindings, m.keys.Gamble)
		}
		return bindings
	case game.RelicChoice:
		return []key.Binding{m.keys.Relic1, m.keys.Relic2, m.keys.Confirm, m.keys.Skip}
	case game.GameOver:
		return []key.Binding{m.keys.Continue, m.keys.Quit}
	}
	return []key.Binding{m.keys.Quit}
}

func renderCard(c deck.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(renderCardText(c))
	}
	return BlackCardStyle.Render(renderCardText(c))
}

func renderCardText(c deck.Card) string {
	return fmt.Sprintf("[%s]", c.String())
}
