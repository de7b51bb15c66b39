package game

import (
	"github.com/solfarer/last-voyage/internal/combat"
	"github.com/solfarer/last-voyage/internal/crew"
	"github.com/solfarer/last-voyage/internal/event"
	"github.com/solfarer/last-voyage/internal/faction"
	"github.com/solfarer/last-voyage/internal/galaxy"
	"github.com/solfarer/last-voyage/internal/research"
	"github.com/solfarer/last-voyage/internal/trade"
)

// OpenMarket docks at a market of the kind the current system supports.
func (s *State) OpenMarket(kind trade.MarketKind) *trade.Market {
	return s.Exchange.Open(kind, s.Turn, s.Rand)
}

// StartResearch spends banked technology on a tree node.
func (s *State) StartResearch(id research.TechID) research.StartResult {
	return s.Lab.Start(id, s.Resources)
}

// StartCombat opens a fight against a random enemy for the current
// system's threat level.
func (s *State) StartCombat(threatLevel int) *combat.Session {
	t := combat.RandomEnemy(threatLevel, s.Rand)
	return s.Combat.Start(t, s.Lab)
}

// ThreatLevel derives the encounter tier from the current system's type
// and hazard field.
func (s *State) ThreatLevel() int {
	here := s.Here()
	if here == nil {
		return 1
	}
	switch {
	case here.Type == galaxy.Hostile || here.Hazard > 0.8:
		return 3
	case here.Type == galaxy.Inhabited || here.Type == galaxy.Ruins || here.Hazard > 0.5:
		return 2
	}
	return 1
}

// RollEvent draws a narrative event for the given context, nil when none
// qualifies.
func (s *State) RollEvent(context string) *event.Event {
	return s.Events.Random(context, s, s.Rand)
}

// ResolveEvent applies one choice of an event to the session.
func (s *State) ResolveEvent(ev *event.Event, choiceIndex int) event.ChoiceResult {
	return s.Events.ProcessChoice(ev, choiceIndex, s, s.Rand)
}

// FactionEncounter rolls the dominant faction for the current system and
// builds its encounter menu, nil when no faction claims the territory.
func (s *State) FactionEncounter() (*faction.Faction, *faction.Encounter) {
	here := s.Here()
	if here == nil {
		return nil, nil
	}
	f := s.Factions.Dominant(string(here.Type), s.Rand)
	if f == nil {
		return nil, nil
	}
	enc := s.Factions.NewEncounter(f)
	return f, &enc
}

// ResolveEncounter processes a faction encounter choice. A choice that
// provokes combat opens a session against the faction's ship type.
func (s *State) ResolveEncounter(f *faction.Faction, choice string) faction.EncounterResult {
	diplomat := s.Crew.SkillBonus(crew.Diplomat)
	r := s.Factions.ProcessChoice(f, choice, s.Resources, diplomat, s.Turn, s.Rand)
	if r.StartCombat {
		s.Combat.Start(combat.EnemyType(f.ShipType), s.Lab)
	}
	return r
}
