package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/fatih/color"

	"github.com/lox/relicjack/internal/config"
	"github.com/lox/relicjack/internal/game"
	"github.com/lox/relicjack/internal/highscore"
	"github.com/lox/relicjack/internal/randutil"
	"github.com/lox/relicjack/internal/simulate"
	"github.com/lox/relicjack/internal/tui"
)

// Globals are flags shared by every subcommand.
type Globals struct {
	Config string `help:"Path to an HCL config file." type:"path"`
	Seed   int64  `help:"Random seed (0 uses the current time)." default:"0"`
	Debug  bool   `help:"Write debug logs to relicjack.log."`
}

// CLI is the top-level command structure.
type CLI struct {
	Globals

	Play     PlayCmd     `cmd:"" default:"withargs" help:"Play a run in the terminal."`
	Simulate SimulateCmd `cmd:"" help:"Play headless runs and report survival stats."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("relicjack"),
		kong.Description("Roguelike blackjack: escalating minimum bets, relic-modified payouts."))
	ctx.FatalIfErrorf(ctx.Run(&cli.Globals))
}

func (g *Globals) seed() int64 {
	if g.Seed != 0 {
		return g.Seed
	}
	return time.Now().UnixNano()
}

// PlayCmd runs the interactive TUI.
type PlayCmd struct{}

// Run starts an interactive run.
func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The TUI owns the terminal, so debug logs go to a file.
	logWriter := io.Discard
	if g.Debug {
		f, err := os.OpenFile("relicjack.log", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
		if err != nil {
			return fmt.Errorf("create debug log: %w", err)
		}
		defer f.Close()
		logWriter = f
	}
	logger := log.NewWithOptions(logWriter, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           log.DebugLevel,
	})

	var store game.ScoreStore
	if path, err := highscore.DefaultPath(); err != nil {
		logger.Warn("High score persistence disabled", "error", err)
	} else {
		store = highscore.NewFileStore(path)
	}

	session := game.NewSession(randutil.New(g.seed()), cfg.GameRules(), store, logger)
	model := tui.New(session, cfg, logger, quartz.NewReal())

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// SimulateCmd plays headless runs with a fixed policy.
type SimulateCmd struct {
	Runs    int `help:"Number of runs to simulate." default:"100"`
	Hands   int `help:"Hand cap per run." default:"500"`
	Workers int `help:"Parallel workers." default:"4"`
}

// Run executes the simulation and prints a report.
func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := log.WarnLevel
	if g.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	seed := g.seed()
	sim := simulate.New(simulate.Config{
		Runs:     c.Runs,
		MaxHands: c.Hands,
		Workers:  c.Workers,
		Seed:     seed,
		Rules:    cfg.GameRules(),
		Logger:   logger,
	})

	report, err := sim.Run(context.Background())
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	bold.Printf("Simulated %d runs, %d hands total (seed %d)\n", c.Runs, report.TotalHands(), seed)
	fmt.Printf("  avg hands per run: %.1f\n", report.AvgHands())
	color.Green("  best peak chips:   %d", report.BestPeak())
	if survivors := report.Survivors(); survivors > 0 {
		color.Yellow("  hit the hand cap:  %d/%d", survivors, c.Runs)
	}
	return nil
}
