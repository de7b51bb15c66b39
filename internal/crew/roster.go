package crew

// ActionKind names a gameplay quantity a crew skill modifies.
type ActionKind string

const (
	FuelConsumption ActionKind = "fuel_consumption" // pilot reduces
	ShipDamage      ActionKind = "ship_damage"      // engineer reduces
	TechGain        ActionKind = "tech_gain"        // scientist increases
	HealthLoss      ActionKind = "health_loss"      // medic reduces
)

// Roster owns all crew members, living and dead. Members stay on the roster
// after death for story purposes; only living members contribute bonuses.
type Roster struct {
	Members []*Member
}

// NewRoster returns a roster seeded with the six founding crew of the
// expedition.
func NewRoster() *Roster {
	r := &Roster{}
	for _, m := range startingCrew() {
		r.Members = append(r.Members, NewMember(m))
	}
	return r
}

func startingCrew() []Member {
	return []Member{
		{
			ID: "chen", Name: "Commander Sarah Chen", Role: "Ship Commander",
			Skill: Diplomat, SkillLevel: 3, Traits: []Trait{Brave, Loyal}, Morale: 70,
			Backstory: "Former military officer who volunteered to lead the expedition. Known for keeping crew morale high even in dire situations.",
		},
		{
			ID: "webb", Name: "Dr. Marcus Webb", Role: "Chief Engineer",
			Skill: Engineer, SkillLevel: 4, Traits: []Trait{Technical, Cautious}, Morale: 60,
			Backstory: "Genius engineer who designed many of the ship's systems. Worries constantly but always finds solutions.",
		},
		{
			ID: "tanaka", Name: "Lt. Kenji Tanaka", Role: "Pilot",
			Skill: Pilot, SkillLevel: 3, Traits: []Trait{Brave, Optimist}, Morale: 80,
			Backstory: "Ace pilot with years of experience. Believes they'll find a new home no matter the odds.",
		},
		{
			ID: "okafor", Name: "Dr. Amara Okafor", Role: "Chief Medical Officer",
			Skill: Medic, SkillLevel: 3, Traits: []Trait{Charismatic, Loyal}, Morale: 65,
			Backstory: "Dedicated doctor who treats every crew member like family. Her calm presence helps during crises.",
		},
		{
			ID: "volkov", Name: "Professor Elena Volkov", Role: "Chief Scientist",
			Skill: Scientist, SkillLevel: 4, Traits: []Trait{Technical, Ambitious}, Morale: 55,
			Backstory: "Brilliant but obsessive scientist. Sees this journey as humanity's greatest experiment.",
		},
		{
			ID: "riley", Name: "Sgt. James \"Ghost\" Riley", Role: "Security Chief",
			Skill: Security, SkillLevel: 3, Traits: []Trait{Cautious, Pessimist}, Morale: 50,
			Backstory: "Former spec-ops soldier. Expects the worst but always prepared to protect the crew.",
		},
	}
}

// Living returns the living members in roster order.
func (r *Roster) Living() []*Member {
	var out []*Member
	for _, m := range r.Members {
		if m.Alive {
			out = append(out, m)
		}
	}
	return out
}

// BySkill returns living members with the given primary skill.
func (r *Roster) BySkill(skill Skill) []*Member {
	var out []*Member
	for _, m := range r.Living() {
		if m.Skill == skill {
			out = append(out, m)
		}
	}
	return out
}

// Get returns the member with the given ID, dead or alive, or nil.
func (r *Roster) Get(id string) *Member {
	for _, m := range r.Members {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// Add registers a new member (an away-mission recruit, say) and returns it.
func (r *Roster) Add(m Member) *Member {
	member := NewMember(m)
	r.Members = append(r.Members, member)
	return member
}

// SkillBonus returns the roster-wide bonus for a skill: the best living
// member's level times 0.05. Bonuses do not stack across members; a second
// engineer adds nothing.
func (r *Roster) SkillBonus(skill Skill) float64 {
	best := 0
	for _, m := range r.BySkill(skill) {
		if m.SkillLevel > best {
			best = m.SkillLevel
		}
	}
	return float64(best) * 0.05
}

// ApplyEffects scales a gameplay amount by the relevant skill bonus,
// flooring to an integer. Fuel, damage and health-loss amounts shrink;
// technology gains grow.
func (r *Roster) ApplyEffects(action ActionKind, amount int) int {
	switch action {
	case FuelConsumption:
		return int(float64(amount) * (1 - r.SkillBonus(Pilot)))
	case ShipDamage:
		return int(float64(amount) * (1 - r.SkillBonus(Engineer)))
	case TechGain:
		return int(float64(amount) * (1 + r.SkillBonus(Scientist)))
	case HealthLoss:
		return int(float64(amount) * (1 - r.SkillBonus(Medic)))
	}
	return amount
}

// AverageMorale returns the floor of mean morale across living members, or 0
// with nobody left.
func (r *Roster) AverageMorale() int {
	living := r.Living()
	if len(living) == 0 {
		return 0
	}
	sum := 0
	for _, m := range living {
		sum += m.Morale
	}
	return sum / len(living)
}

// ModifyAllMorale shifts every living member's morale, returning the members
// whose morale actually changed alongside their results.
func (r *Roster) ModifyAllMorale(amount int, reason string) []MoraleResult {
	var results []MoraleResult
	for _, m := range r.Living() {
		res := m.ModifyMorale(amount, reason)
		if res.Changed {
			results = append(results, res)
		}
	}
	return results
}

// RiskKind classifies a roster-level crew event.
type RiskKind string

const (
	MutinyRisk    RiskKind = "mutiny_risk"    // three or more members below the mutiny threshold
	DepartureRisk RiskKind = "departure_risk" // members ready to leave at the next port
	InjuredCrew   RiskKind = "injured_crew"   // members below half health
)

// RosterEvent flags a crew condition the caller should surface.
type RosterEvent struct {
	Kind    RiskKind
	Members []*Member
}

// CheckEvents scans the living crew for mutiny, departure and injury risks.
func (r *Roster) CheckEvents() []RosterEvent {
	var events []RosterEvent

	var lowMorale, leaving, injured []*Member
	for _, m := range r.Living() {
		if m.Morale < MutinyThreshold {
			lowMorale = append(lowMorale, m)
		}
		if m.Morale < LeaveThreshold {
			leaving = append(leaving, m)
		}
		if m.Health < 50 {
			injured = append(injured, m)
		}
	}

	if len(lowMorale) >= 3 {
		events = append(events, RosterEvent{Kind: MutinyRisk, Members: lowMorale})
	}
	if len(leaving) > 0 {
		events = append(events, RosterEvent{Kind: DepartureRisk, Members: leaving})
	}
	if len(injured) > 0 {
		events = append(events, RosterEvent{Kind: InjuredCrew, Members: injured})
	}
	return events
}

// Snapshot returns plain copies of every member for saving.
func (r *Roster) Snapshot() []Member {
	out := make([]Member, 0, len(r.Members))
	for _, m := range r.Members {
		c := *m
		c.Traits = append([]Trait(nil), m.Traits...)
		c.Flags = append([]string(nil), m.Flags...)
		c.Relationships = make(map[string]int, len(m.Relationships))
		for k, v := range m.Relationships {
			c.Relationships[k] = v
		}
		out = append(out, c)
	}
	return out
}

// Restore replaces the roster contents from a snapshot.
func (r *Roster) Restore(snap []Member) {
	r.Members = r.Members[:0]
	for _, m := range snap {
		c := m
		if c.Relationships == nil {
			c.Relationships = make(map[string]int)
		}
		r.Members = append(r.Members, &c)
	}
}
