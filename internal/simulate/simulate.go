// Package simulate plays headless runs against the engine with a simple
// fixed policy. It exists to exercise the full round lifecycle end to end
// and to gather survival statistics for balance tweaking.
package simulate

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/relicjack/internal/game"
	"github.com/lox/relicjack/internal/randutil"
)

// Config holds configuration for running simulations.
type Config struct {
	Runs     int
	MaxHands int // safety cap per run
	Workers  int
	Seed     int64
	Rules    game.Rules
	Logger   *log.Logger
}

// RunResult summarises one simulated run.
type RunResult struct {
	Hands      int
	FinalChips int
	PeakChips  int
	Relics     int
	GameOver   bool
}

// Report aggregates the results of all runs.
type Report struct {
	Results []RunResult
}

// TotalHands returns the number of hands played across all runs.
func (r *Report) TotalHands() int {
	total := 0
	for _, res := range r.Results {
		total += res.Hands
	}
	return total
}

// AvgHands returns the mean number of hands survived per run.
func (r *Report) AvgHands() float64 {
	if len(r.Results) == 0 {
		return 0
	}
	return float64(r.TotalHands()) / float64(len(r.Results))
}

// BestPeak returns the highest chip balance reached by any run.
func (r *Report) BestPeak() int {
	best := 0
	for _, res := range r.Results {
		if res.PeakChips > best {
			best = res.PeakChips
		}
	}
	return best
}

// Survivors returns the number of runs that hit the hand cap without
// busting out.
func (r *Report) Survivors() int {
	n := 0
	for _, res := range r.Results {
		if !res.GameOver {
			n++
		}
	}
	return n
}

// Simulator runs blackjack run simulations.
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration.
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.MaxHands <= 0 {
		config.MaxHands = 1000
	}
	return &Simulator{config: config}
}

// Run executes all configured runs, spreading them across workers. Each run
// gets an independent seed derived from the base seed, so results are
// reproducible regardless of worker scheduling.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	results := make([]RunResult, s.config.Runs)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := 0; i < s.config.Runs; i++ {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = s.playRun(s.config.Seed + int64(i))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("simulation aborted: %w", err)
	}
	return &Report{Results: results}, nil
}

// playRun plays a single run to game over (or the hand cap) with a basic
// policy: always bet the minimum, hit below hard 17, always take the
// gamble, always pick the first offered relic.
func (s *Simulator) playRun(seed int64) RunResult {
	rng := randutil.New(seed)
	session := game.NewSession(rng, s.config.Rules, nil, s.config.Logger)

	result := RunResult{PeakChips: session.Chips()}

	for result.Hands < s.config.MaxHands {
		if session.Phase() != game.Betting {
			break
		}
		if !session.Deal(session.MinBet()) {
			break
		}
		result.Hands++

		for session.Phase() == game.PlayerTurn {
			if session.Snapshot().PlayerTotal < 17 {
				session.Hit()
			} else {
				session.Stand()
			}
		}
		for session.Phase() == game.DealerTurn {
			session.Advance()
		}

		session.GamblePayout()

		if chips := session.Chips(); chips > result.PeakChips {
			result.PeakChips = chips
		}

		switch session.AcknowledgeSettlement() {
		case game.AckGameOver:
			result.GameOver = true
		case game.AckRelicChoice:
			choices := session.RelicChoices()
			session.PickRelic(choices[0].ID)
		}

		if result.GameOver {
			break
		}
	}

	result.FinalChips = session.Chips()
	result.Relics = len(session.Relics())
	return result
}
