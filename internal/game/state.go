// Package game owns the full session: every subsystem, the turn counter,
// story flags, and the game-over conditions. State is the single mutable
// root; subsystems never reach back into it.
package game

import (
	"log/slog"
	"sort"

	"github.com/solfarer/last-voyage/internal/combat"
	"github.com/solfarer/last-voyage/internal/config"
	"github.com/solfarer/last-voyage/internal/crew"
	"github.com/solfarer/last-voyage/internal/event"
	"github.com/solfarer/last-voyage/internal/faction"
	"github.com/solfarer/last-voyage/internal/galaxy"
	"github.com/solfarer/last-voyage/internal/mission"
	"github.com/solfarer/last-voyage/internal/research"
	"github.com/solfarer/last-voyage/internal/resource"
	"github.com/solfarer/last-voyage/internal/rng"
	"github.com/solfarer/last-voyage/internal/ship"
	"github.com/solfarer/last-voyage/internal/trade"
)

// Ending identifiers.
const (
	EndingExtinction    = "extinction"
	EndingStarvation    = "starvation"
	EndingStranded      = "stranded"
	EndingShipDestroyed = "ship_destroyed"
	EndingCrewLost      = "crew_lost"
	EndingNewHome       = "new_home"
)

// Character is a named story figure whose opinion of the player shifts with
// event choices.
type Character struct {
	Name    string `json:"name"`
	Opinion int    `json:"opinion"`
	Alive   bool   `json:"alive"`
}

func defaultCharacters() map[string]*Character {
	return map[string]*Character{
		"elena":     {Name: "Captain Elena Vasquez", Alive: true},
		"chen":      {Name: "Dr. James Chen", Alive: true},
		"mitchell":  {Name: "Commander Sarah Mitchell", Alive: true},
		"rodriguez": {Name: "Engineer Marcus Rodriguez", Alive: true},
		"okafor":    {Name: "Dr. Amara Okafor", Alive: true},
		"park":      {Name: "Councilor David Park", Alive: true},
	}
}

// State is one game session.
type State struct {
	Seed   int64
	Tuning config.Tuning
	Rand   rng.Source

	Resources *resource.Ledger
	Cargo     resource.Cargo
	Crew      *crew.Roster
	Ship      *ship.Bank
	Factions  *faction.Ledger
	Exchange  *trade.Exchange
	Lab       *research.Lab
	Combat    *combat.Resolver
	Events    *event.Engine
	Missions  *mission.Board
	Systems   []*galaxy.System

	CurrentSystem string
	Turn          int
	DaysPassed    int

	flags      map[string]bool
	values     map[string]float64
	Characters map[string]*Character

	GameOver bool
	Victory  bool
	Ending   string
}

// New starts a fresh voyage from the given seed. The galaxy layout is
// derived from the seed alone; gameplay rolls come from their own stream.
func New(seed int64, tuning config.Tuning) *State {
	s := &State{
		Seed:          seed,
		Tuning:        tuning,
		Rand:          rng.New(seed),
		Resources:     resource.NewLedger(),
		Cargo:         make(resource.Cargo),
		Crew:          crew.NewRoster(),
		Ship:          ship.NewBank(),
		Factions:      faction.NewLedger(),
		Exchange:      trade.NewExchange(),
		Lab:           research.NewLab(),
		Combat:        combat.NewResolver(tuning.Combat),
		Events:        event.NewEngine(event.DefaultCatalog()),
		Missions:      mission.NewBoard(),
		Systems:       galaxy.NewGenerator(seed).Generate(),
		CurrentSystem: "sol",
		flags:         make(map[string]bool),
		values:        make(map[string]float64),
		Characters:    defaultCharacters(),
	}
	slog.Info("new voyage", "seed", seed, "systems", len(s.Systems))
	return s
}

// System returns a system by ID, nil if unknown.
func (s *State) System(id string) *galaxy.System {
	for _, sys := range s.Systems {
		if sys.ID == id {
			return sys
		}
	}
	return nil
}

// Here returns the current system.
func (s *State) Here() *galaxy.System { return s.System(s.CurrentSystem) }

// ledgerKinds mirrors the fixed resource keys for the event World bridge.
var ledgerKinds = map[string]resource.Kind{}

func init() {
	for _, k := range resource.Kinds {
		ledgerKinds[string(k)] = k
	}
}

// Resource reads a named quantity: ledger resources by their fixed keys,
// anything else from the sparse value map.
func (s *State) Resource(kind string) float64 {
	if k, ok := ledgerKinds[kind]; ok {
		return s.Resources.Get(k)
	}
	return s.values[kind]
}

// ModifyResource shifts a named quantity, routing fixed keys through the
// ledger's clamping.
func (s *State) ModifyResource(kind string, delta float64) {
	if k, ok := ledgerKinds[kind]; ok {
		s.Resources.Modify(k, delta)
		return
	}
	s.values[kind] += delta
}

// HasFlag reports whether a story flag is set.
func (s *State) HasFlag(name string) bool { return s.flags[name] }

// AddFlag sets a story flag. Setting an existing flag is a no-op.
func (s *State) AddFlag(name string) { s.flags[name] = true }

// RemoveFlag clears a story flag.
func (s *State) RemoveFlag(name string) { delete(s.flags, name) }

// Flags returns all set flags, sorted.
func (s *State) Flags() []string {
	out := make([]string, 0, len(s.flags))
	for f := range s.flags {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// ModifyOpinion shifts a character's opinion, clamped to [-100, 100].
func (s *State) ModifyOpinion(characterID string, delta int) {
	c, ok := s.Characters[characterID]
	if !ok {
		slog.Warn("unknown character", "character", characterID)
		return
	}
	c.Opinion += delta
	if c.Opinion < -100 {
		c.Opinion = -100
	}
	if c.Opinion > 100 {
		c.Opinion = 100
	}
}

// CheckGameOver evaluates the loss conditions in priority order and
// returns the ending ID, "" while the voyage continues. The first check to
// trip sticks.
func (s *State) CheckGameOver() string {
	if s.GameOver {
		return s.Ending
	}

	switch {
	case s.Resources.Get(resource.Population) <= 0:
		s.end(EndingExtinction)
	case s.Resources.Get(resource.Food) <= 0:
		s.end(EndingStarvation)
	case s.Resources.Get(resource.Fuel) <= 0 && !s.Combat.InCombat():
		s.end(EndingStranded)
	case s.Ship.Failed:
		s.end(EndingShipDestroyed)
	case len(s.Crew.Living()) == 0:
		s.end(EndingCrewLost)
	}
	return s.Ending
}

func (s *State) end(ending string) {
	s.GameOver = true
	s.Ending = ending
	slog.Info("voyage over", "ending", ending, "turn", s.Turn)
}

// TriggerVictory ends the game in success.
func (s *State) TriggerVictory(ending string) {
	if ending == "" {
		ending = EndingNewHome
	}
	s.Victory = true
	s.end(ending)
}

// Summary is the at-a-glance session overview used for save previews and
// status lines.
type Summary struct {
	Turn       int     `json:"turn"`
	Days       int     `json:"days"`
	Population float64 `json:"population"`
	Morale     float64 `json:"morale"`
	Visited    int     `json:"visited"`
	Location   string  `json:"location"`
}

func (s *State) Summary() Summary {
	visited := 0
	for _, sys := range s.Systems {
		if sys.Visited {
			visited++
		}
	}
	return Summary{
		Turn:       s.Turn,
		Days:       s.DaysPassed,
		Population: s.Resources.Get(resource.Population),
		Morale:     s.Resources.Get(resource.Morale),
		Visited:    visited,
		Location:   s.CurrentSystem,
	}
}
