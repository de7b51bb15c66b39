// Package event drives narrative encounters. Events are data, loadable
// from JSON, with weighted selection gated by flags and resource
// requirements and chance-rolled outcomes per choice.
package event

import (
	"encoding/json"
	"fmt"
)

// Requirement gates an event or choice on a resource comparison.
type Requirement struct {
	Resource string  `json:"resource"`
	Operator string  `json:"operator"`
	Value    float64 `json:"value"`
}

// Effect is one consequence of an outcome. Type is a resource kind, or
// "flag" to set/clear a story flag, or "character" to shift an opinion.
type Effect struct {
	Type      string  `json:"type"`
	Value     float64 `json:"value"`
	Flag      string  `json:"flag,omitempty"`
	Character string  `json:"character,omitempty"`
}

// Outcome is one possible result of a choice, selected by cumulative
// chance roll.
type Outcome struct {
	Chance  float64  `json:"chance"`
	Text    string   `json:"text"`
	Effects []Effect `json:"effects,omitempty"`
	Unlocks []string `json:"unlocks,omitempty"`
}

// Choice is one player option within an event.
type Choice struct {
	Text         string        `json:"text"`
	Requirements []Requirement `json:"requirements,omitempty"`
	Outcomes     []Outcome     `json:"outcomes"`
	Flags        []string      `json:"flags,omitempty"`
}

// Event is one narrative encounter.
type Event struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Text              string        `json:"text"`
	Context           string        `json:"context,omitempty"`
	Weight            float64       `json:"weight,omitempty"`
	Repeatable        bool          `json:"repeatable,omitempty"`
	Requirements      []Requirement `json:"requirements,omitempty"`
	PrerequisiteFlags []string      `json:"prerequisite_flags,omitempty"`
	Choices           []Choice      `json:"choices"`
}

// SeenFlag is the story flag set once a non-repeatable event has fired.
func (e *Event) SeenFlag() string { return fmt.Sprintf("event_%s_seen", e.ID) }

// UnlockFlag marks a follow-up event as reachable.
func UnlockFlag(eventID string) string { return fmt.Sprintf("event_%s_unlocked", eventID) }

// LoadCatalog parses a JSON event array.
func LoadCatalog(data []byte) ([]Event, error) {
	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("parse event catalog: %w", err)
	}
	for i := range events {
		if events[i].ID == "" {
			return nil, fmt.Errorf("event %d: missing id", i)
		}
		if len(events[i].Choices) == 0 {
			return nil, fmt.Errorf("event %q: no choices", events[i].ID)
		}
	}
	return events, nil
}
