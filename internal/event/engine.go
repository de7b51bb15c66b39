package event

import (
	"fmt"
	"log/slog"

	"github.com/solfarer/last-voyage/internal/rng"
)

// World is the slice of game state the event engine reads and mutates. The
// game state implements it.
type World interface {
	Resource(kind string) float64
	ModifyResource(kind string, delta float64)
	HasFlag(name string) bool
	AddFlag(name string)
	RemoveFlag(name string)
	ModifyOpinion(characterID string, delta int)
	// CheckGameOver returns the ending ID, "" while the voyage continues.
	CheckGameOver() string
}

// Engine selects and resolves events against a world.
type Engine struct {
	events []Event
}

func NewEngine(events []Event) *Engine {
	return &Engine{events: events}
}

// Get looks an event up by ID.
func (e *Engine) Get(id string) *Event {
	for i := range e.events {
		if e.events[i].ID == id {
			return &e.events[i]
		}
	}
	return nil
}

// Random draws a weighted event for the context. Non-repeatable events
// already seen, events for other contexts, and events whose requirements
// or prerequisite flags fail are filtered out. Returns nil when nothing
// qualifies.
func (e *Engine) Random(context string, w World, src rng.Source) *Event {
	var available []*Event
	for i := range e.events {
		ev := &e.events[i]
		if !ev.Repeatable && w.HasFlag(ev.SeenFlag()) {
			continue
		}
		if ev.Context != "" && ev.Context != context {
			continue
		}
		if !checkRequirements(ev.Requirements, w) {
			continue
		}
		if !hasAllFlags(ev.PrerequisiteFlags, w) {
			continue
		}
		available = append(available, ev)
	}
	if len(available) == 0 {
		slog.Debug("no available events", "context", context)
		return nil
	}

	total := 0.0
	for _, ev := range available {
		total += weight(ev)
	}
	roll := src.Float64() * total
	for _, ev := range available {
		roll -= weight(ev)
		if roll <= 0 {
			return ev
		}
	}
	return available[0]
}

func weight(ev *Event) float64 {
	if ev.Weight > 0 {
		return ev.Weight
	}
	return 1
}

func checkRequirements(reqs []Requirement, w World) bool {
	for _, req := range reqs {
		v := w.Resource(req.Resource)
		var ok bool
		switch req.Operator {
		case ">=":
			ok = v >= req.Value
		case ">":
			ok = v > req.Value
		case "<=":
			ok = v <= req.Value
		case "<":
			ok = v < req.Value
		case "==":
			ok = v == req.Value
		case "!=":
			ok = v != req.Value
		default:
			slog.Error("unknown requirement operator", "operator", req.Operator)
			return false
		}
		if !ok {
			return false
		}
	}
	return true
}

func hasAllFlags(flags []string, w World) bool {
	for _, f := range flags {
		if !w.HasFlag(f) {
			return false
		}
	}
	return true
}

// ChoiceView is one choice annotated with availability for display.
type ChoiceView struct {
	Index        int           `json:"index"`
	Text         string        `json:"text"`
	Available    bool          `json:"available"`
	Requirements []Requirement `json:"requirements,omitempty"`
}

// AvailableChoices lists an event's choices with requirement checks
// applied.
func (e *Engine) AvailableChoices(ev *Event, w World) []ChoiceView {
	out := make([]ChoiceView, len(ev.Choices))
	for i, c := range ev.Choices {
		out[i] = ChoiceView{
			Index: i, Text: c.Text,
			Available:    checkRequirements(c.Requirements, w),
			Requirements: c.Requirements,
		}
	}
	return out
}

// ChoiceResult reports a resolved choice.
type ChoiceResult struct {
	Success        bool     `json:"success"`
	Message        string   `json:"message,omitempty"`
	Text           string   `json:"text,omitempty"`
	EffectsApplied []string `json:"effects_applied,omitempty"`
	GameOver       string   `json:"game_over,omitempty"`
}

// ProcessChoice resolves one choice. The outcome is drawn by cumulative
// chance with the last outcome as fallback; its effects are applied, the
// choice and seen flags are set, follow-up unlocks are flagged, and the
// game-over conditions are rechecked.
func (e *Engine) ProcessChoice(ev *Event, choiceIndex int, w World, src rng.Source) ChoiceResult {
	if choiceIndex < 0 || choiceIndex >= len(ev.Choices) {
		return ChoiceResult{Message: "invalid choice"}
	}
	choice := &ev.Choices[choiceIndex]
	if !checkRequirements(choice.Requirements, w) {
		return ChoiceResult{Message: "requirements not met for this choice"}
	}

	roll := src.Float64()
	cumulative := 0.0
	var outcome *Outcome
	for i := range choice.Outcomes {
		cumulative += choice.Outcomes[i].Chance
		if roll <= cumulative {
			outcome = &choice.Outcomes[i]
			break
		}
	}
	if outcome == nil {
		outcome = &choice.Outcomes[len(choice.Outcomes)-1]
	}

	var applied []string
	for _, eff := range outcome.Effects {
		switch eff.Type {
		case "flag":
			if eff.Value != 0 {
				w.AddFlag(eff.Flag)
				applied = append(applied, fmt.Sprintf("Flag added: %s", eff.Flag))
			} else {
				w.RemoveFlag(eff.Flag)
				applied = append(applied, fmt.Sprintf("Flag removed: %s", eff.Flag))
			}
		case "character":
			w.ModifyOpinion(eff.Character, int(eff.Value))
			applied = append(applied, fmt.Sprintf("%s opinion: %+d", eff.Character, int(eff.Value)))
		default:
			w.ModifyResource(eff.Type, eff.Value)
			applied = append(applied, fmt.Sprintf("%s: %+g", eff.Type, eff.Value))
		}
	}

	for _, f := range choice.Flags {
		w.AddFlag(f)
		applied = append(applied, fmt.Sprintf("Choice flag: %s", f))
	}

	w.AddFlag(ev.SeenFlag())
	for _, id := range outcome.Unlocks {
		w.AddFlag(UnlockFlag(id))
	}

	return ChoiceResult{
		Success:        true,
		Text:           outcome.Text,
		EffectsApplied: applied,
		GameOver:       w.CheckGameOver(),
	}
}

// Stats summarizes catalog progress.
type Stats struct {
	Total       int `json:"total"`
	Seen        int `json:"seen"`
	PercentSeen int `json:"percent_seen"`
}

func (e *Engine) Stats(w World) Stats {
	s := Stats{Total: len(e.events)}
	for i := range e.events {
		if w.HasFlag(e.events[i].SeenFlag()) {
			s.Seen++
		}
	}
	if s.Total > 0 {
		s.PercentSeen = s.Seen * 100 / s.Total
	}
	return s
}
