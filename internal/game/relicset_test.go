package game

import "testing"

func relicDef(t *testing.T, id RelicID) Relic {
	t.Helper()
	for _, r := range Catalogue() {
		if r.ID == id {
			return r
		}
	}
	t.Fatalf("relic %q not in catalogue", id)
	return Relic{}
}

func TestRelicSetAddAndHas(t *testing.T) {
	rs := NewRelicSet()

	if rs.Has(RelicLuckyCoin) {
		t.Error("empty set should not own lucky-coin")
	}

	if err := rs.Add(relicDef(t, RelicLuckyCoin)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !rs.Has(RelicLuckyCoin) {
		t.Error("set should own lucky-coin after Add")
	}

	if err := rs.Add(relicDef(t, RelicLuckyCoin)); err == nil {
		t.Error("expected error adding a duplicate relic")
	}
	if rs.Len() != 1 {
		t.Errorf("Len() = %d, want 1", rs.Len())
	}
}

func TestHookValueDefault(t *testing.T) {
	rs := NewRelicSet()
	if got := rs.HookValue(HookBlackjackPayout, 1.5); got != 1.5 {
		t.Errorf("HookValue default = %v, want 1.5", got)
	}

	if err := rs.Add(relicDef(t, RelicRoyalPayout)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got := rs.HookValue(HookBlackjackPayout, 1.5); got != 2.0 {
		t.Errorf("HookValue = %v, want 2.0", got)
	}
}

func TestFirstAcquiredWinsOnSharedHook(t *testing.T) {
	// The shipped catalogue never overlaps hook names, so script a conflict.
	first := Relic{ID: "test-first", Hooks: map[HookName]float64{HookBlackjackPayout: 3.0}}
	second := Relic{ID: "test-second", Hooks: map[HookName]float64{HookBlackjackPayout: 9.0}}

	rs := NewRelicSet()
	if err := rs.Add(first); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := rs.Add(second); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if got := rs.HookValue(HookBlackjackPayout, 1.5); got != 3.0 {
		t.Errorf("HookValue = %v, want the first-acquired 3.0", got)
	}
}

func TestCatalogueHookNamesUnique(t *testing.T) {
	seen := make(map[HookName]RelicID)
	for _, r := range Catalogue() {
		for name := range r.Hooks {
			if owner, ok := seen[name]; ok {
				t.Errorf("hook %q defined by both %q and %q", name, owner, r.ID)
			}
			seen[name] = r.ID
		}
	}
}

func TestCatalogueIDsUnique(t *testing.T) {
	seen := make(map[RelicID]bool)
	for _, r := range Catalogue() {
		if seen[r.ID] {
			t.Errorf("duplicate relic id %q", r.ID)
		}
		seen[r.ID] = true
	}
}
