// Package config loads the optional HCL configuration file: table rules and
// hotkey bindings. Every field has a default, so running without a config
// file is the common case.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/relicjack/internal/game"
)

// Config is the complete configuration.
type Config struct {
	Rules   RulesConfig   `hcl:"rules,block"`
	Hotkeys HotkeysConfig `hcl:"hotkeys,block"`
}

// RulesConfig contains the table parameters for a run.
type RulesConfig struct {
	InitialChips int `hcl:"initial_chips,optional"`
	MaxBet       int `hcl:"max_bet,optional"`
	StartingBet  int `hcl:"starting_bet,optional"`
}

// HotkeysConfig maps engine actions to keys. Keys are bubbletea key names
// ("enter", "esc", single runes).
type HotkeysConfig struct {
	Deal      string `hcl:"deal,optional"`
	Hit       string `hcl:"hit,optional"`
	Stand     string `hcl:"stand,optional"`
	Double    string `hcl:"double,optional"`
	Surrender string `hcl:"surrender,optional"`
	Peek      string `hcl:"peek,optional"`

	BetMin   string `hcl:"bet_min,optional"`
	BetHalf  string `hcl:"bet_half,optional"`
	BetAllIn string `hcl:"bet_all_in,optional"`

	Continue string `hcl:"continue,optional"`
	Gamble   string `hcl:"gamble,optional"`

	Relic1       string `hcl:"relic_1,optional"`
	Relic2       string `hcl:"relic_2,optional"`
	ConfirmRelic string `hcl:"confirm_relic,optional"`
	SkipRelic    string `hcl:"skip_relic,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Rules: RulesConfig{
			InitialChips: 100,
			MaxBet:       1000,
			StartingBet:  25,
		},
		Hotkeys: HotkeysConfig{
			Deal:      "enter",
			Hit:       "1",
			Stand:     "2",
			Double:    "3",
			Surrender: "4",
			Peek:      "5",

			BetMin:   "1",
			BetHalf:  "2",
			BetAllIn: "3",

			Continue: "enter",
			Gamble:   "g",

			Relic1:       "1",
			Relic2:       "2",
			ConfirmRelic: "enter",
			SkipRelic:    "esc",
		},
	}
}

// Load reads the config file at path and merges it over the defaults.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	src, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse config: %s", diags.Error())
	}

	// Blocks are pointers here so a file may omit either one entirely.
	var parsed struct {
		Rules   *RulesConfig   `hcl:"rules,block"`
		Hotkeys *HotkeysConfig `hcl:"hotkeys,block"`
	}
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("decode config: %s", diags.Error())
	}

	if parsed.Rules != nil {
		mergeRules(&cfg.Rules, *parsed.Rules)
	}
	if parsed.Hotkeys != nil {
		mergeHotkeys(&cfg.Hotkeys, *parsed.Hotkeys)
	}
	return cfg, nil
}

// GameRules converts the rules block to engine rules.
func (c *Config) GameRules() game.Rules {
	return game.Rules{
		InitialChips: c.Rules.InitialChips,
		MaxBet:       c.Rules.MaxBet,
		StartingBet:  c.Rules.StartingBet,
	}
}

func mergeRules(dst *RulesConfig, src RulesConfig) {
	if src.InitialChips > 0 {
		dst.InitialChips = src.InitialChips
	}
	if src.MaxBet > 0 {
		dst.MaxBet = src.MaxBet
	}
	if src.StartingBet > 0 {
		dst.StartingBet = src.StartingBet
	}
}

func mergeHotkeys(dst *HotkeysConfig, src HotkeysConfig) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&dst.Deal, src.Deal)
	merge(&dst.Hit, src.Hit)
	merge(&dst.Stand, src.Stand)
	merge(&dst.Double, src.Double)
	merge(&dst.Surrender, src.Surrender)
	merge(&dst.Peek, src.Peek)
	merge(&dst.BetMin, src.BetMin)
	merge(&dst.BetHalf, src.BetHalf)
	merge(&dst.BetAllIn, src.BetAllIn)
	merge(&dst.Continue, src.Continue)
	merge(&dst.Gamble, src.Gamble)
	merge(&dst.Relic1, src.Relic1)
	merge(&dst.Relic2, src.Relic2)
	merge(&dst.ConfirmRelic, src.ConfirmRelic)
	merge(&dst.SkipRelic, src.SkipRelic)
}
