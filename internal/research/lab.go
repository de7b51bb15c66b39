package research

import (
	"log/slog"

	"github.com/solfarer/last-voyage/internal/resource"
)

// Lab tracks completed research and the folded bonuses it grants. Bonuses
// are refolded from the completion list on restore, so only the list is
// saved.
type Lab struct {
	completed []TechID
	bonuses   map[EffectKind]float64
	flags     map[Flag]bool
}

func NewLab() *Lab {
	return &Lab{
		bonuses: make(map[EffectKind]float64),
		flags:   make(map[Flag]bool),
	}
}

// Researched reports whether a technology is complete.
func (l *Lab) Researched(id TechID) bool {
	for _, c := range l.completed {
		if c == id {
			return true
		}
	}
	return false
}

// Completed returns the completion list in research order.
func (l *Lab) Completed() []TechID {
	return append([]TechID(nil), l.completed...)
}

// Available lists technologies whose prerequisites are met and which are
// not yet researched, in tree order.
func (l *Lab) Available() []*Technology {
	var out []*Technology
	for i := range Tree {
		t := &Tree[i]
		if l.Researched(t.ID) {
			continue
		}
		if l.prereqsMet(t) {
			out = append(out, t)
		}
	}
	return out
}

func (l *Lab) prereqsMet(t *Technology) bool {
	for _, req := range t.Requires {
		if !l.Researched(req) {
			return false
		}
	}
	return true
}

// StartResult reports a research attempt.
type StartResult struct {
	Success bool        `json:"success"`
	Reason  string      `json:"reason,omitempty"`
	Tech    *Technology `json:"-"`
}

// Start spends banked technology to complete a node immediately. Checks
// run in order: known node, not already researched, prerequisites met,
// affordable cost.
func (l *Lab) Start(id TechID, res *resource.Ledger) StartResult {
	t, ok := TechByID(id)
	if !ok {
		return StartResult{Reason: "technology not found"}
	}
	if l.Researched(id) {
		return StartResult{Reason: "already researched"}
	}
	if !l.prereqsMet(t) {
		return StartResult{Reason: "requirements not met"}
	}
	if res.Get(resource.Technology) < float64(t.Cost) {
		return StartResult{Reason: "insufficient technology"}
	}

	res.Modify(resource.Technology, -float64(t.Cost))
	l.complete(t)
	slog.Info("research complete", "tech", t.ID, "cost", t.Cost)
	return StartResult{Success: true, Tech: t}
}

func (l *Lab) complete(t *Technology) {
	l.completed = append(l.completed, t.ID)
	l.fold(t)
}

// fold merges one technology's effects into the bonus table using each
// kind's combination rule.
func (l *Lab) fold(t *Technology) {
	for kind, val := range t.Effects {
		switch {
		case kind.Additive():
			l.bonuses[kind] += val
		case kind.Multiplicative():
			cur, ok := l.bonuses[kind]
			if !ok {
				cur = 1
			}
			l.bonuses[kind] = cur * val
		default:
			l.bonuses[kind] = val
		}
	}
	for _, f := range t.Flags {
		l.flags[f] = true
	}
}

// Bonus returns the folded value for a kind, at its identity when no
// research contributes.
func (l *Lab) Bonus(kind EffectKind) float64 {
	if v, ok := l.bonuses[kind]; ok {
		return v
	}
	if kind.Multiplicative() {
		return 1
	}
	return 0
}

// HasFlag reports whether a capability is unlocked.
func (l *Lab) HasFlag(f Flag) bool { return l.flags[f] }

// TurnYield is the per-turn output of completed research.
type TurnYield struct {
	Food      int `json:"food"`
	Materials int `json:"materials"`
	Morale    int `json:"morale"`
	Hull      int `json:"hull"`
	Shields   int `json:"shields"`
}

// TurnEffects applies per-turn generation to the ledger and reports the
// full yield. Hull and shield regeneration are returned for the ship and
// combat systems to apply.
func (l *Lab) TurnEffects(res *resource.Ledger) TurnYield {
	y := TurnYield{
		Food:      int(l.Bonus(FoodGeneration)),
		Materials: int(l.Bonus(MaterialGeneration)),
		Morale:    int(l.Bonus(MoraleGeneration)),
		Hull:      int(l.Bonus(HullRegen)),
		Shields:   int(l.Bonus(ShieldRegen)),
	}
	if y.Food > 0 {
		res.Modify(resource.Food, float64(y.Food))
	}
	if y.Materials > 0 {
		res.Modify(resource.Materials, float64(y.Materials))
	}
	if y.Morale > 0 {
		res.Modify(resource.Morale, float64(y.Morale))
	}
	return y
}

// CategorySummary counts completions within one branch.
type CategorySummary struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Summary reports overall tree progress.
func (l *Lab) Summary() map[Category]CategorySummary {
	out := make(map[Category]CategorySummary)
	for i := range Tree {
		s := out[Tree[i].Category]
		s.Total++
		if l.Researched(Tree[i].ID) {
			s.Completed++
		}
		out[Tree[i].Category] = s
	}
	return out
}

// Snapshot captures the completion list.
type Snapshot struct {
	Completed []TechID `json:"completed,omitempty"`
}

func (l *Lab) Snapshot() Snapshot {
	return Snapshot{Completed: append([]TechID(nil), l.completed...)}
}

// Restore replaces lab state and refolds all bonuses from the completion
// list. Unknown technology IDs are dropped.
func (l *Lab) Restore(snap Snapshot) {
	l.completed = nil
	l.bonuses = make(map[EffectKind]float64)
	l.flags = make(map[Flag]bool)
	for _, id := range snap.Completed {
		if t, ok := TechByID(id); ok {
			l.complete(t)
		} else {
			slog.Warn("dropping unknown technology from save", "tech", id)
		}
	}
}
