// Package crew provides the crew roster: named members with one primary
// skill each, morale and health tracking, and the skill bonuses the rest of
// the simulation consumes.
package crew

import "github.com/google/uuid"

// Skill is a crew member's primary specialty.
type Skill string

const (
	Pilot     Skill = "pilot"     // reduces fuel consumption
	Engineer  Skill = "engineer"  // reduces ship damage
	Scientist Skill = "scientist" // increases technology gains
	Medic     Skill = "medic"     // reduces crew health loss
	Diplomat  Skill = "diplomat"  // improves faction relations
	Security  Skill = "security"  // improves combat outcomes
	Navigator Skill = "navigator" // reveals hidden systems
)

// Trait is a personality trait. Optimist and Pessimist skew morale changes;
// the rest color narrative outcomes.
type Trait string

const (
	Brave       Trait = "brave"
	Cautious    Trait = "cautious"
	Optimist    Trait = "optimist"
	Pessimist   Trait = "pessimist"
	Loyal       Trait = "loyal"
	Ambitious   Trait = "ambitious"
	Technical   Trait = "technical"
	Charismatic Trait = "charismatic"
)

// Morale thresholds at which a member becomes a risk.
const (
	MutinyThreshold = 20
	LeaveThreshold  = 10
)

// Member is one crew member. Health reaching zero marks the member dead
// permanently; all further mutation is a no-op.
type Member struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Role          string         `json:"role"`
	Skill         Skill          `json:"skill"`
	SkillLevel    int            `json:"skill_level"` // 1-5
	Traits        []Trait        `json:"traits"`
	Morale        int            `json:"morale"`                  // 0-100
	Health        int            `json:"health"`                  // 0-100
	Relationships map[string]int `json:"relationships,omitempty"` // member ID -> [-100, 100]
	Flags         []string       `json:"flags,omitempty"`         // personal story progression
	Alive         bool           `json:"alive"`
	Backstory     string         `json:"backstory,omitempty"`
	JoinedTurn    int            `json:"joined_turn"`
}

// NewMember creates a member from partial data, filling defaults the way a
// recruit joins mid-game. An empty ID gets a fresh uuid.
func NewMember(m Member) *Member {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.SkillLevel == 0 {
		m.SkillLevel = 1
	}
	if m.Morale == 0 {
		m.Morale = 50
	}
	if m.Health == 0 {
		m.Health = 100
	}
	if m.Relationships == nil {
		m.Relationships = make(map[string]int)
	}
	m.Alive = true
	return &m
}

// SkillBonus returns the member's own bonus, 0.05 per skill level.
func (m *Member) SkillBonus() float64 {
	return float64(m.SkillLevel) * 0.05
}

// HasTrait reports whether the member has the given trait.
func (m *Member) HasTrait(t Trait) bool {
	for _, have := range m.Traits {
		if have == t {
			return true
		}
	}
	return false
}

// MoraleResult describes the outcome of a morale change.
type MoraleResult struct {
	Changed    bool
	Delta      int
	NewMorale  int
	MutinyRisk bool // morale below MutinyThreshold
	LeaveRisk  bool // morale below LeaveThreshold
}

// ModifyMorale shifts morale by amount, applying trait skew (optimists gain
// an extra +5 on positive changes, pessimists an extra -5 on negative ones)
// and clamping to [0, 100]. Dead members are untouched.
func (m *Member) ModifyMorale(amount int, reason string) MoraleResult {
	if !m.Alive {
		return MoraleResult{}
	}

	old := m.Morale
	m.Morale = clamp(m.Morale+amount, 0, 100)

	if m.HasTrait(Optimist) && amount > 0 {
		m.Morale += 5
	}
	if m.HasTrait(Pessimist) && amount < 0 {
		m.Morale -= 5
	}
	m.Morale = clamp(m.Morale, 0, 100)

	return MoraleResult{
		Changed:    m.Morale != old,
		Delta:      m.Morale - old,
		NewMorale:  m.Morale,
		MutinyRisk: m.Morale < MutinyThreshold,
		LeaveRisk:  m.Morale < LeaveThreshold,
	}
}

// HealthResult describes the outcome of a health change.
type HealthResult struct {
	Died      bool
	Cause     string
	NewHealth int
}

// ModifyHealth shifts health by amount, clamped to [0, 100]. Reaching zero
// kills the member; there is no resurrection.
func (m *Member) ModifyHealth(amount int, cause string) HealthResult {
	if !m.Alive {
		return HealthResult{}
	}

	m.Health = clamp(m.Health+amount, 0, 100)
	if m.Health <= 0 {
		m.Alive = false
		return HealthResult{Died: true, Cause: cause}
	}
	return HealthResult{NewHealth: m.Health}
}

// UpdateRelationship shifts the member's opinion of another member,
// clamped to [-100, 100].
func (m *Member) UpdateRelationship(otherID string, amount int) {
	m.Relationships[otherID] = clamp(m.Relationships[otherID]+amount, -100, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
