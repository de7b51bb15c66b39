package faction

import (
	"fmt"
	"math"

	"github.com/solfarer/last-voyage/internal/resource"
	"github.com/solfarer/last-voyage/internal/rng"
)

// EncounterOption is one action the player can take during a faction
// encounter.
type EncounterOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Encounter describes meeting a faction ship in their territory.
type Encounter struct {
	Faction  ID                `json:"faction"`
	Name     string            `json:"name"`
	Tier     Tier              `json:"tier"`
	ShipType string            `json:"ship_type"`
	Options  []EncounterOption `json:"options"`
}

// NewEncounter builds the option menu for meeting the given faction at the
// player's current standing.
func (l *Ledger) NewEncounter(f *Faction) Encounter {
	e := Encounter{
		Faction:  f.ID,
		Name:     f.Name,
		Tier:     l.TierOf(f.ID),
		ShipType: f.ShipType,
	}
	switch e.Tier {
	case Hostile, Unfriendly:
		e.Options = []EncounterOption{
			{ID: "fight", Label: "Stand and fight"},
			{ID: "flee", Label: "Attempt to flee"},
			{ID: "bribe", Label: "Offer tribute (20 materials)"},
		}
	case Friendly, Allied:
		e.Options = []EncounterOption{
			{ID: "trade", Label: "Exchange goods"},
			{ID: "help", Label: "Request assistance"},
			{ID: "info", Label: "Ask for information"},
			{ID: "gift", Label: "Send a gift (15 materials)"},
		}
	default:
		e.Options = []EncounterOption{
			{ID: "trade", Label: "Propose trade"},
			{ID: "talk", Label: "Hail the ship"},
			{ID: "ignore", Label: "Pass them by"},
		}
	}
	return e
}

// EncounterResult reports what an encounter choice did.
type EncounterResult struct {
	Choice      string     `json:"choice"`
	Message     string     `json:"message"`
	StartCombat bool       `json:"start_combat,omitempty"`
	Rep         *RepChange `json:"-"`
}

// ProcessChoice applies an encounter option. Resource costs and grants go
// through the ledger; reputation shifts are recorded against the faction.
// diplomatBonus is the crew's diplomat skill bonus, 0 when none.
func (l *Ledger) ProcessChoice(f *Faction, choice string, res *resource.Ledger, diplomatBonus float64, turn int, src rng.Source) EncounterResult {
	r := EncounterResult{Choice: choice}

	switch choice {
	case "fight":
		r.Rep = l.Modify(f.ID, -20, turn, "Opened fire on their ship")
		r.StartCombat = true
		r.Message = fmt.Sprintf("You engage the %s vessel.", f.Name)

	case "flee":
		res.Modify(resource.Fuel, -5)
		r.Message = "You burn hard and slip away."

	case "bribe":
		if res.Get(resource.Materials) < 20 {
			r.Message = "You lack the materials for tribute. They open fire."
			r.StartCombat = true
			return r
		}
		res.Modify(resource.Materials, -20)
		r.Rep = l.Modify(f.ID, 15, turn, "Paid tribute")
		r.Message = fmt.Sprintf("The %s accept your tribute and let you pass.", f.Name)

	case "trade":
		r.Rep = l.Modify(f.ID, 5, turn, "Traded goods")
		r.Message = fmt.Sprintf("A brief exchange with the %s goes smoothly.", f.Name)

	case "talk":
		gain := int(math.Floor(10 * (1 + diplomatBonus)))
		r.Rep = l.Modify(f.ID, gain, turn, "Diplomatic contact")
		r.Message = fmt.Sprintf("Your envoy makes a good impression on the %s.", f.Name)

	case "help":
		res.Modify(resource.Fuel, 20)
		res.Modify(resource.Materials, 15)
		res.Modify(resource.Food, 20)
		r.Rep = l.Modify(f.ID, 10, turn, "Accepted their aid")
		r.Message = fmt.Sprintf("The %s resupply your ship.", f.Name)

	case "info":
		if src.Float64() < 0.5 {
			res.Modify(resource.Technology, 15)
			r.Message = fmt.Sprintf("The %s share useful survey data.", f.Name)
		} else {
			r.Message = fmt.Sprintf("The %s have nothing new to offer.", f.Name)
		}
		r.Rep = l.Modify(f.ID, 5, turn, "Shared information")

	case "ignore":
		r.Message = fmt.Sprintf("You hold course and the %s vessel drifts past.", f.Name)

	case "gift":
		if res.Get(resource.Materials) < 15 {
			r.Message = "You have nothing worth gifting."
			return r
		}
		res.Modify(resource.Materials, -15)
		r.Rep = l.Modify(f.ID, 20, turn, "Sent a gift")
		r.Message = fmt.Sprintf("The %s acknowledge your gesture.", f.Name)

	default:
		r.Message = "Nothing happens."
	}

	return r
}
