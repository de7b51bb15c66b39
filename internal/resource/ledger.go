// Package resource provides the ship's resource ledger: six clamped values
// that every other system draws against, plus the special-goods cargo hold.
package resource

import "log/slog"

// Kind names one of the six tracked resources.
type Kind string

const (
	Fuel       Kind = "fuel"
	Food       Kind = "food"
	Materials  Kind = "materials"
	Population Kind = "population"
	Morale     Kind = "morale"
	Technology Kind = "technology"
)

// Kinds lists every resource in declaration order.
var Kinds = []Kind{Fuel, Food, Materials, Population, Morale, Technology}

// Starting values for a fresh game.
const (
	StartingFuel       = 100
	StartingFood       = 100
	StartingMaterials  = 100
	StartingPopulation = 1000
	StartingMorale     = 75
	StartingTechnology = 0
)

// Ledger holds the current resource values. All mutation goes through Modify
// so the clamp invariants hold: no value is ever negative, morale never
// exceeds 100.
type Ledger struct {
	values map[Kind]float64
}

// NewLedger returns a ledger with the starting resource values.
func NewLedger() *Ledger {
	return &Ledger{values: map[Kind]float64{
		Fuel:       StartingFuel,
		Food:       StartingFood,
		Materials:  StartingMaterials,
		Population: StartingPopulation,
		Morale:     StartingMorale,
		Technology: StartingTechnology,
	}}
}

// Modify adds delta to the named resource and clamps the result. Unknown
// kinds are a data-authoring error: logged and ignored, never fatal.
func (l *Ledger) Modify(kind Kind, delta float64) bool {
	cur, ok := l.values[kind]
	if !ok {
		slog.Warn("unknown resource", "kind", kind)
		return false
	}

	v := cur + delta
	if v < 0 {
		v = 0
	}
	if kind == Morale && v > 100 {
		v = 100
	}
	l.values[kind] = v
	return true
}

// Get returns the current value of a resource, or 0 for an unknown kind.
func (l *Ledger) Get(kind Kind) float64 {
	return l.values[kind]
}

// Snapshot returns a plain copy of the ledger values for saving.
func (l *Ledger) Snapshot() map[Kind]float64 {
	out := make(map[Kind]float64, len(l.values))
	for k, v := range l.values {
		out[k] = v
	}
	return out
}

// Restore replaces the ledger contents from a snapshot. Unknown keys in the
// snapshot are dropped; missing keys fall back to zero.
func (l *Ledger) Restore(snap map[Kind]float64) {
	l.values = make(map[Kind]float64, len(Kinds))
	for _, k := range Kinds {
		l.values[k] = snap[k]
	}
}
