// Package game implements the core round lifecycle for a single-player
// roguelike blackjack run: betting, the player/dealer turn state machine,
// outcome settlement with relic modifiers, and the relic draft.
//
// The main type is Session, which owns the run economy (chips, minimum bet,
// streak, stars) and the relic set for one run. Each exported action method
// guards on the current phase and relevant flags and is a silent no-op when
// the action is illegal, so callers cannot corrupt state by firing actions
// out of order.
//
// # Deterministic Testing
//
// All randomness (deck shuffle, lucky-coin replacement, draft order, gamble
// coin flip) flows through the single *rand.Rand passed to NewSession:
//
//	rng := randutil.New(42)
//	s := game.NewSession(rng, game.DefaultRules(), store, logger)
//
// Fixed seeds give fully reproducible runs.
//
// # Pacing
//
// Dealer auto-play is steppable: callers invoke Advance once per dealer draw
// (or in a tight loop). The resulting state is identical regardless of
// pacing, so rendering layers can animate at their own rhythm.
package game
