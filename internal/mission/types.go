// Package mission runs away missions: crews leave the ship for several
// turns, ride out field events, and return with rewards scaled by their
// skills and the mission's accumulated efficiency.
package mission

// Risk bands a mission's injury chance on return.
type Risk string

const (
	RiskNone     Risk = "none"
	RiskLow      Risk = "low"
	RiskMedium   Risk = "medium"
	RiskHigh     Risk = "high"
	RiskVeryHigh Risk = "very_high"
)

// InjuryChance is the per-crew injury probability on mission completion.
func (r Risk) InjuryChance() float64 {
	switch r {
	case RiskLow:
		return 0.05
	case RiskMedium:
		return 0.15
	case RiskHigh:
		return 0.3
	case RiskVeryHigh:
		return 0.5
	}
	return 0.1
}

// Range is a min/max reward band.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// RewardKey names a mission payout channel.
type RewardKey string

const (
	RewardMaterials  RewardKey = "materials"
	RewardFuel       RewardKey = "fuel"
	RewardTechnology RewardKey = "technology"
	RewardPopulation RewardKey = "population"
	RewardMorale     RewardKey = "morale"
	RewardFactionRep RewardKey = "faction_rep"
	RewardArtifacts  RewardKey = "artifacts"
	RewardWeapons    RewardKey = "weapons"
	RewardShipParts  RewardKey = "ship_parts"
)

// rewardOrder keeps payout application deterministic under a seeded source.
var rewardOrder = []RewardKey{
	RewardMaterials, RewardFuel, RewardTechnology, RewardPopulation,
	RewardMorale, RewardFactionRep, RewardArtifacts, RewardWeapons, RewardShipParts,
}

// TypeID names a mission archetype.
type TypeID string

const (
	ResourceSurvey     TypeID = "resource_survey"
	AlienContact       TypeID = "alien_contact"
	AncientRuins       TypeID = "ancient_ruins"
	RescueMission      TypeID = "rescue_mission"
	CombatPatrol       TypeID = "combat_patrol"
	ScientificResearch TypeID = "scientific_research"
	DerelictSalvage    TypeID = "derelict_salvage"
)

// Type is a mission archetype.
type Type struct {
	ID           TypeID
	Name         string
	Description  string
	Duration     int
	Risk         Risk
	RequiredCrew int
	Rewards      map[RewardKey]Range
}

var Types = map[TypeID]Type{
	ResourceSurvey: {
		ID: ResourceSurvey, Name: "Resource Survey",
		Description: "Survey planet for valuable resources",
		Duration:    3, Risk: RiskLow, RequiredCrew: 2,
		Rewards: map[RewardKey]Range{
			RewardMaterials: {20, 50}, RewardFuel: {10, 30},
		},
	},
	AlienContact: {
		ID: AlienContact, Name: "Alien Contact",
		Description: "Make contact with indigenous species",
		Duration:    5, Risk: RiskMedium, RequiredCrew: 3,
		Rewards: map[RewardKey]Range{
			RewardTechnology: {30, 60}, RewardFactionRep: {10, 30},
		},
	},
	AncientRuins: {
		ID: AncientRuins, Name: "Ancient Ruins Exploration",
		Description: "Explore mysterious ancient structures",
		Duration:    4, Risk: RiskHigh, RequiredCrew: 3,
		Rewards: map[RewardKey]Range{
			RewardTechnology: {50, 100}, RewardArtifacts: {1, 3},
		},
	},
	RescueMission: {
		ID: RescueMission, Name: "Rescue Mission",
		Description: "Rescue stranded survivors",
		Duration:    4, Risk: RiskMedium, RequiredCrew: 3,
		Rewards: map[RewardKey]Range{
			RewardPopulation: {5, 15}, RewardMorale: {15, 30},
		},
	},
	CombatPatrol: {
		ID: CombatPatrol, Name: "Combat Patrol",
		Description: "Clear hostile forces from area",
		Duration:    3, Risk: RiskVeryHigh, RequiredCrew: 4,
		Rewards: map[RewardKey]Range{
			RewardMaterials: {40, 80}, RewardWeapons: {1, 2},
		},
	},
	ScientificResearch: {
		ID: ScientificResearch, Name: "Scientific Research",
		Description: "Conduct field research on unique phenomena",
		Duration:    6, Risk: RiskLow, RequiredCrew: 2,
		Rewards: map[RewardKey]Range{RewardTechnology: {60, 120}},
	},
	DerelictSalvage: {
		ID: DerelictSalvage, Name: "Derelict Salvage",
		Description: "Salvage valuable tech from derelict ship",
		Duration:    4, Risk: RiskMedium, RequiredCrew: 3,
		Rewards: map[RewardKey]Range{
			RewardMaterials: {50, 100}, RewardTechnology: {20, 40}, RewardShipParts: {1, 2},
		},
	},
}

// FieldEffects is what one field-event choice does to the mission.
type FieldEffects struct {
	CrewHealth  int     `json:"crew_health,omitempty"`
	CrewMorale  int     `json:"crew_morale,omitempty"`
	Materials   int     `json:"materials,omitempty"`
	Technology  int     `json:"technology,omitempty"`
	Fuel        int     `json:"fuel,omitempty"`
	TimeLoss    int     `json:"time_loss,omitempty"`
	Efficiency  float64 `json:"efficiency,omitempty"`
	RewardBonus float64 `json:"reward_bonus,omitempty"`
	Aborts      bool    `json:"aborts,omitempty"`
}

// FieldOutcome is one choice within a field event.
type FieldOutcome struct {
	Choice  string       `json:"choice"`
	Result  string       `json:"result"`
	Effects FieldEffects `json:"effects"`
}

// FieldEvent interrupts a mission in progress.
type FieldEvent struct {
	ID          string         `json:"id"`
	Description string         `json:"description"`
	Outcomes    []FieldOutcome `json:"outcomes"`
}

var FieldEvents = []FieldEvent{
	{
		ID:          "hostile_wildlife",
		Description: "The team encounters hostile alien wildlife!",
		Outcomes: []FieldOutcome{
			{
				Choice: "Fight back", Result: "The team successfully defends themselves",
				Effects: FieldEffects{CrewHealth: -15, Materials: 10},
			},
			{
				Choice: "Retreat", Result: "The team safely returns to the ship",
				Effects: FieldEffects{Aborts: true},
			},
			{
				Choice: "Use tranquilizers", Result: "Team pacifies the creatures and continues",
				Effects: FieldEffects{CrewHealth: -5},
			},
		},
	},
	{
		ID:          "equipment_failure",
		Description: "Critical equipment malfunctions during the mission!",
		Outcomes: []FieldOutcome{
			{
				Choice: "Field repair", Result: "Engineer successfully repairs the equipment",
				Effects: FieldEffects{TimeLoss: 1},
			},
			{
				Choice: "Jury-rig solution", Result: "Team continues with improvised fix",
				Effects: FieldEffects{Efficiency: 0.7},
			},
			{
				Choice: "Abort mission", Result: "Team returns safely without completing objective",
				Effects: FieldEffects{Aborts: true},
			},
		},
	},
	{
		ID:          "unexpected_discovery",
		Description: "The team discovers something unexpected!",
		Outcomes: []FieldOutcome{
			{
				Choice: "Investigate thoroughly", Result: "Detailed investigation reveals valuable information",
				Effects: FieldEffects{Technology: 30, TimeLoss: 2},
			},
			{
				Choice: "Quick scan and continue", Result: "Team logs discovery and continues primary mission",
				Effects: FieldEffects{Technology: 10},
			},
			{
				Choice: "Focus on primary objective", Result: "Team ignores discovery to complete mission faster",
				Effects: FieldEffects{Efficiency: 1.2},
			},
		},
	},
	{
		ID:          "crew_conflict",
		Description: "Tension erupts between crew members!",
		Outcomes: []FieldOutcome{
			{
				Choice: "Intervene directly", Result: "You resolve the conflict remotely",
				Effects: FieldEffects{CrewMorale: -5},
			},
			{
				Choice: "Let team leader handle it", Result: "The senior crew member mediates successfully",
				Effects: FieldEffects{},
			},
			{
				Choice: "Recall the team", Result: "You bring them back early",
				Effects: FieldEffects{Aborts: true, CrewMorale: -10},
			},
		},
	},
	{
		ID:          "environmental_hazard",
		Description: "Dangerous environmental conditions threaten the team!",
		Outcomes: []FieldOutcome{
			{
				Choice: "Push through", Result: "Team endures harsh conditions to complete mission",
				Effects: FieldEffects{CrewHealth: -25, RewardBonus: 1.5},
			},
			{
				Choice: "Wait it out", Result: "Team finds shelter and waits for conditions to improve",
				Effects: FieldEffects{TimeLoss: 2, CrewHealth: -5},
			},
			{
				Choice: "Extract immediately", Result: "Emergency extraction saves the crew",
				Effects: FieldEffects{Aborts: true, Fuel: -15},
			},
		},
	},
}

// missionPools maps system types to the missions they can offer.
var missionPools = map[string][]TypeID{
	"habitable": {ResourceSurvey, AlienContact, RescueMission, ScientificResearch},
	"resource":  {ResourceSurvey, ScientificResearch},
	"ruins":     {AncientRuins, DerelictSalvage, ScientificResearch},
	"hostile":   {CombatPatrol, RescueMission},
	"anomaly":   {ScientificResearch, AncientRuins},
	"barren":    {ResourceSurvey, DerelictSalvage},
}
