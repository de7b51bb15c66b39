// Package faction provides the six galactic factions, the per-faction
// reputation ledger, and territory encounters.
package faction

// ID names a faction.
type ID string

const (
	TerraRemnant     ID = "terra_remnant"
	KryllEmpire      ID = "kryll_empire"
	ZenariCollective ID = "zenari_collective"
	MerchantGuild    ID = "merchant_guild"
	Voidborn         ID = "voidborn"
	AutomataNetwork  ID = "automata_network"
)

// Faction is a static faction definition. Reputation lives on the Ledger,
// not here; definitions never change during a session.
type Faction struct {
	ID          ID
	Name        string
	Description string
	InitialRep  int
	Traits      []string
	Territory   []string // system-type tags the faction operates in
	ShipType    string   // enemy template used when an encounter turns violent
}

// Factions holds the fixed definitions in declaration order.
var Factions = []Faction{
	{
		ID: TerraRemnant, Name: "Terra Remnant Fleet",
		Description: "Other survivors from Earth, scattered across the galaxy",
		InitialRep:  50,
		Traits:      []string{"friendly", "desperate", "resourceful"},
		Territory:   []string{"habitable", "ruins"},
		ShipType:    "PIRATE_SCOUT",
	},
	{
		ID: KryllEmpire, Name: "Kryll Empire",
		Description: "Aggressive insectoid species expanding their territory",
		InitialRep:  -20,
		Traits:      []string{"hostile", "militaristic", "territorial"},
		Territory:   []string{"hostile", "inhabited"},
		ShipType:    "ALIEN_WARSHIP",
	},
	{
		ID: ZenariCollective, Name: "Zenari Collective",
		Description: "Advanced telepathic beings focused on knowledge",
		InitialRep:  0,
		Traits:      []string{"neutral", "scientific", "mysterious"},
		Territory:   []string{"anomaly", "inhabited"},
		ShipType:    "ALIEN_PATROL",
	},
	{
		ID: MerchantGuild, Name: "Galactic Merchant Guild",
		Description: "Inter-species trading network",
		InitialRep:  20,
		Traits:      []string{"neutral", "opportunistic", "wealthy"},
		Territory:   []string{"inhabited", "resource"},
		ShipType:    "PIRATE_RAIDER",
	},
	{
		ID: Voidborn, Name: "The Voidborn",
		Description: "Enigmatic species that evolved in deep space",
		InitialRep:  -10,
		Traits:      []string{"mysterious", "unpredictable", "ancient"},
		Territory:   []string{"anomaly", "barren"},
		ShipType:    "ALIEN_PATROL",
	},
	{
		ID: AutomataNetwork, Name: "Automata Network",
		Description: "Self-replicating AI constructs from a dead civilization",
		InitialRep:  -30,
		Traits:      []string{"hostile", "logical", "relentless"},
		Territory:   []string{"ruins", "barren"},
		ShipType:    "SCAVENGER_DRONE",
	},
}

// Get returns the definition for an ID, or nil for an unknown faction.
func Get(id ID) *Faction {
	for i := range Factions {
		if Factions[i].ID == id {
			return &Factions[i]
		}
	}
	return nil
}

// Tier is the banded view of a reputation scalar.
type Tier string

const (
	Hostile    Tier = "Hostile"    // [-100, -50]
	Unfriendly Tier = "Unfriendly" // [-49, -20]
	Neutral    Tier = "Neutral"    // [-19, 20]
	Friendly   Tier = "Friendly"   // [21, 50]
	Allied     Tier = "Allied"     // [51, 100]
)

// TierFor maps a reputation value onto its band.
func TierFor(rep int) Tier {
	switch {
	case rep <= -50:
		return Hostile
	case rep <= -20:
		return Unfriendly
	case rep <= 20:
		return Neutral
	case rep <= 50:
		return Friendly
	default:
		return Allied
	}
}
