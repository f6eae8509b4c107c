package game

// RelicID uniquely identifies a relic. A run owns each id at most once.
type RelicID string

const (
	RelicLuckyCoin       RelicID = "lucky-coin"
	RelicRoyalPayout     RelicID = "blackjack-boost"
	RelicPeek            RelicID = "peek"
	RelicChipDrip        RelicID = "chip-drip"
	RelicMomentum        RelicID = "momentum"
	RelicCoolHeaded      RelicID = "cool-headed"
	RelicRiskyGain       RelicID = "risky-gain"
	RelicResurrection    RelicID = "resurrection-token"
	RelicGoldRush        RelicID = "gold-rush"
	RelicDoubleOrNothing RelicID = "double-or-nothing"
	RelicPushIt          RelicID = "push-it"
	RelicBigWinner       RelicID = "big-winner"
)

// HookName names a numeric parameter the settlement engine consults.
// Presence-only abilities (peek, resurrection, gamble) are checked by relic
// id instead of carrying a hook value.
type HookName string

const (
	HookBlackjackPayout    HookName = "blackjackPayout"
	HookChipEndBonus       HookName = "chipEndBonus"
	HookStreakWinBoost     HookName = "streakWinBoost"
	HookWinBonusPercent    HookName = "winBonusPercent"
	HookLossPenaltyPercent HookName = "lossPenaltyPercent"
	HookSurrenderRefund    HookName = "surrenderRefund"
)

// Relic is a run-scoped modifier. Its Hooks map patches named settlement
// parameters; relics without hooks act purely by presence.
type Relic struct {
	ID          RelicID
	Name        string
	Icon        string
	Description string
	Hooks       map[HookName]float64
}

// Catalogue returns the full set of draftable relic definitions.
func Catalogue() []Relic {
	return []Relic{
		{
			ID:          RelicLuckyCoin,
			Name:        "Lucky Coin",
			Icon:        "🪙",
			Description: "Once per hand, if your first hit would bust, redraw that card with a small one.",
		},
		{
			ID:          RelicRoyalPayout,
			Name:        "Royal Payout",
			Icon:        "👑",
			Description: "Blackjack pays 2:1 instead of 3:2.",
			Hooks:       map[HookName]float64{HookBlackjackPayout: 2.0},
		},
		{
			ID:          RelicPeek,
			Name:        "Card Counter's Peek",
			Icon:        "👁️",
			Description: "Once per hand, peek at the dealer's hole card.",
		},
		{
			ID:          RelicChipDrip,
			Name:        "Chip Drip",
			Icon:        "💧",
			Description: "Gain +1 chip after every winning hand.",
			Hooks:       map[HookName]float64{HookChipEndBonus: 1},
		},
		{
			ID:          RelicMomentum,
			Name:        "Momentum",
			Icon:        "⚡",
			Description: "With a streak of 2+, wins pay +25%.",
			Hooks:       map[HookName]float64{HookStreakWinBoost: 0.25},
		},
		{
			ID:          RelicCoolHeaded,
			Name:        "Cool-Headed",
			Icon:        "🧊",
			Description: "Surrender refunds 60% of your bet (instead of 50%).",
			Hooks:       map[HookName]float64{HookSurrenderRefund: 0.6},
		},
		{
			ID:          RelicRiskyGain,
			Name:        "Risky Gain",
			Icon:        "🎲",
			Description: "Going all-in on a winning hand grants an extra star.",
		},
		{
			ID:          RelicResurrection,
			Name:        "Resurrection Token",
			Icon:        "🔄",
			Description: "Once per run, if you bust out, resurrect with half your starting chips.",
		},
		{
			ID:          RelicGoldRush,
			Name:        "Gold Rush",
			Icon:        "💰",
			Description: "Wins pay +50% extra, but losses deduct an extra 10% of your remaining chips.",
			Hooks: map[HookName]float64{
				HookWinBonusPercent:    0.5,
				HookLossPenaltyPercent: 0.1,
			},
		},
		{
			ID:          RelicDoubleOrNothing,
			Name:        "Double or Nothing",
			Icon:        "⚠️",
			Description: "After a win, gamble your payout for a 50/50 chance to double it or lose it all.",
		},
		{
			ID:          RelicPushIt,
			Name:        "Push it",
			Icon:        "🤝",
			Description: "Push hands no longer raise the minimum bet or reset your win streak.",
		},
		{
			ID:          RelicBigWinner,
			Name:        "Big Winner",
			Icon:        "🏆",
			Description: "Wins past 1 streak reduce min bet by (streak-1)*5. Losses increase min bet by 10.",
		},
	}
}
