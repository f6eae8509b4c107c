package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadEmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Rules.InitialChips != 100 || cfg.Hotkeys.Deal != "enter" {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relicjack.hcl")
	src := `
rules {
  initial_chips = 500
}

hotkeys {
  hit   = "h"
  stand = "s"
}
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Rules.InitialChips != 500 {
		t.Errorf("InitialChips = %d, want 500", cfg.Rules.InitialChips)
	}
	// Unset fields keep their defaults.
	if cfg.Rules.MaxBet != 1000 || cfg.Rules.StartingBet != 25 {
		t.Errorf("rules = %+v, want defaulted max/starting bet", cfg.Rules)
	}
	if cfg.Hotkeys.Hit != "h" || cfg.Hotkeys.Stand != "s" {
		t.Errorf("hotkeys = %+v, want overridden hit/stand", cfg.Hotkeys)
	}
	if cfg.Hotkeys.Double != "3" || cfg.Hotkeys.Deal != "enter" {
		t.Errorf("hotkeys = %+v, want defaulted double/deal", cfg.Hotkeys)
	}
}

func TestLoadRulesOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relicjack.hcl")
	src := `
rules {
  max_bet = 200
}
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Rules.MaxBet != 200 {
		t.Errorf("MaxBet = %d, want 200", cfg.Rules.MaxBet)
	}
	if cfg.Hotkeys != Default().Hotkeys {
		t.Errorf("hotkeys = %+v, want defaults when the block is absent", cfg.Hotkeys)
	}
}

func TestLoadRejectsBadSyntax(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relicjack.hcl")
	if err := os.WriteFile(path, []byte("rules {"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestGameRules(t *testing.T) {
	rules := Default().GameRules()
	if rules.InitialChips != 100 || rules.MaxBet != 1000 || rules.StartingBet != 25 {
		t.Errorf("GameRules() = %+v", rules)
	}
}
