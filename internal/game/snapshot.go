package game

import (
	"github.com/solfarer/last-voyage/internal/combat"
	"github.com/solfarer/last-voyage/internal/crew"
	"github.com/solfarer/last-voyage/internal/faction"
	"github.com/solfarer/last-voyage/internal/galaxy"
	"github.com/solfarer/last-voyage/internal/mission"
	"github.com/solfarer/last-voyage/internal/research"
	"github.com/solfarer/last-voyage/internal/resource"
	"github.com/solfarer/last-voyage/internal/ship"
	"github.com/solfarer/last-voyage/internal/trade"
)

// Snapshot is the full session as plain data, ready for JSON encoding. A
// restored snapshot resumes exactly, including mid-combat sessions and
// away missions in flight.
type Snapshot struct {
	Seed          int64                     `json:"seed"`
	Turn          int                       `json:"turn"`
	DaysPassed    int                       `json:"days_passed"`
	CurrentSystem string                    `json:"current_system"`
	Resources     map[resource.Kind]float64 `json:"resources"`
	Cargo         map[resource.GoodID]int   `json:"cargo,omitempty"`
	Crew          []crew.Member             `json:"crew"`
	Ship          ship.Snapshot             `json:"ship"`
	Factions      faction.Snapshot          `json:"factions"`
	Trade         trade.Snapshot            `json:"trade"`
	Research      research.Snapshot         `json:"research"`
	Combat        *combat.Session           `json:"combat,omitempty"`
	Missions      mission.Snapshot          `json:"missions"`
	Systems       []galaxy.System           `json:"systems"`
	Flags         []string                  `json:"flags,omitempty"`
	Values        map[string]float64        `json:"values,omitempty"`
	Characters    map[string]Character      `json:"characters"`
	GameOver      bool                      `json:"game_over"`
	Victory       bool                      `json:"victory"`
	Ending        string                    `json:"ending,omitempty"`
}

// Snapshot captures the session.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Seed:          s.Seed,
		Turn:          s.Turn,
		DaysPassed:    s.DaysPassed,
		CurrentSystem: s.CurrentSystem,
		Resources:     s.Resources.Snapshot(),
		Cargo:         s.Cargo.Snapshot(),
		Crew:          s.Crew.Snapshot(),
		Ship:          s.Ship.Snapshot(),
		Factions:      s.Factions.Snapshot(),
		Trade:         s.Exchange.Snapshot(),
		Research:      s.Lab.Snapshot(),
		Combat:        s.Combat.Snapshot(),
		Missions:      s.Missions.Snapshot(),
		Flags:         s.Flags(),
		Values:        make(map[string]float64, len(s.values)),
		Characters:    make(map[string]Character, len(s.Characters)),
		GameOver:      s.GameOver,
		Victory:       s.Victory,
		Ending:        s.Ending,
	}
	for _, sys := range s.Systems {
		cp := *sys
		cp.Connections = append([]string(nil), sys.Connections...)
		snap.Systems = append(snap.Systems, cp)
	}
	for k, v := range s.values {
		snap.Values[k] = v
	}
	for id, c := range s.Characters {
		snap.Characters[id] = *c
	}
	return snap
}

// Restore replaces the session with a snapshot's contents. The tuning and
// event catalog are not part of the snapshot and keep their current values.
func (s *State) Restore(snap Snapshot) {
	s.Seed = snap.Seed
	s.Turn = snap.Turn
	s.DaysPassed = snap.DaysPassed
	s.CurrentSystem = snap.CurrentSystem
	s.Resources.Restore(snap.Resources)
	s.Cargo = resource.RestoreCargo(snap.Cargo)
	s.Crew.Restore(snap.Crew)
	s.Ship.Restore(snap.Ship)
	s.Factions.Restore(snap.Factions)
	s.Exchange.Restore(snap.Trade)
	s.Lab.Restore(snap.Research)
	s.Combat.Restore(snap.Combat)
	s.Missions.Restore(snap.Missions)

	s.Systems = nil
	for i := range snap.Systems {
		cp := snap.Systems[i]
		cp.Connections = append([]string(nil), snap.Systems[i].Connections...)
		s.Systems = append(s.Systems, &cp)
	}

	s.flags = make(map[string]bool, len(snap.Flags))
	for _, f := range snap.Flags {
		s.flags[f] = true
	}
	s.values = make(map[string]float64, len(snap.Values))
	for k, v := range snap.Values {
		s.values[k] = v
	}
	s.Characters = make(map[string]*Character, len(snap.Characters))
	for id, c := range snap.Characters {
		cp := c
		s.Characters[id] = &cp
	}

	s.GameOver = snap.GameOver
	s.Victory = snap.Victory
	s.Ending = snap.Ending
}
