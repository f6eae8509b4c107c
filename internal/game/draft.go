package game

// draftChoices computes the relic draft for this acknowledgment. With fewer
// than three stars there is no draft. An exhausted pool still burns the
// stars so they cannot bank forever.
func (s *Session) draftChoices() []Relic {
	if s.stars < starThreshold {
		return nil
	}

	pool := make([]Relic, 0)
	for _, r := range Catalogue() {
		if !s.relics.Has(r.ID) {
			pool = append(pool, r)
		}
	}
	if len(pool) == 0 {
		s.stars = 0
		return nil
	}

	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	n := draftSize
	if len(pool) < n {
		n = len(pool)
	}
	return pool[:n]
}

// RelicChoices returns the relics currently on offer, or nil outside the
// relic choice phase.
func (s *Session) RelicChoices() []Relic {
	if s.phase != RelicChoice {
		return nil
	}
	out := make([]Relic, len(s.relicChoices))
	copy(out, s.relicChoices)
	return out
}

// PickRelic acquires one of the offered relics, burns the banked stars, and
// returns to betting. Ids outside the current offer are rejected.
func (s *Session) PickRelic(id RelicID) bool {
	if s.phase != RelicChoice {
		return false
	}

	for _, r := range s.relicChoices {
		if r.ID != id {
			continue
		}
		if err := s.relics.Add(r); err != nil {
			s.logger.Error("Failed to add relic", "relic", id, "error", err)
			return false
		}
		s.logger.Info("Relic acquired", "relic", r.Name)
		s.stars = 0
		s.nextRound()
		return true
	}
	return false
}

// SkipRelicChoice declines the draft. The banked stars are still burned.
func (s *Session) SkipRelicChoice() bool {
	if s.phase != RelicChoice {
		return false
	}
	s.stars = 0
	s.nextRound()
	return true
}
