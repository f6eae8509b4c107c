package game

import "fmt"

// RelicSet holds the relics owned during a run and resolves hook lookups
// against them. The hook table is rebuilt whenever the set changes; when two
// owned relics define the same hook name, the first-acquired relic wins.
// The shipped catalogue never overlaps hook names, so the rule exists as a
// documented tiebreak rather than an expected path.
type RelicSet struct {
	relics []Relic
	hooks  map[HookName]float64
}

// NewRelicSet returns an empty relic set.
func NewRelicSet() *RelicSet {
	return &RelicSet{hooks: make(map[HookName]float64)}
}

// Add acquires a relic. Acquiring an id twice is an error.
func (rs *RelicSet) Add(r Relic) error {
	if rs.Has(r.ID) {
		return fmt.Errorf("relic %q already owned", r.ID)
	}
	rs.relics = append(rs.relics, r)
	rs.rebuild()
	return nil
}

// Has reports whether the relic with the given id is owned.
func (rs *RelicSet) Has(id RelicID) bool {
	for _, r := range rs.relics {
		if r.ID == id {
			return true
		}
	}
	return false
}

// HookValue returns the resolved value for a hook name, or def when no owned
// relic defines it.
func (rs *RelicSet) HookValue(name HookName, def float64) float64 {
	if v, ok := rs.hooks[name]; ok {
		return v
	}
	return def
}

// Relics returns the owned relics in acquisition order.
func (rs *RelicSet) Relics() []Relic {
	out := make([]Relic, len(rs.relics))
	copy(out, rs.relics)
	return out
}

// Len returns the number of owned relics.
func (rs *RelicSet) Len() int {
	return len(rs.relics)
}

func (rs *RelicSet) rebuild() {
	rs.hooks = make(map[HookName]float64)
	for _, r := range rs.relics {
		for name, v := range r.Hooks {
			if _, ok := rs.hooks[name]; !ok {
				rs.hooks[name] = v
			}
		}
	}
}
