// Package trade implements station markets with fluctuating prices, a
// materials-denominated currency, and a per-voyage trade history.
package trade

import "github.com/solfarer/last-voyage/internal/resource"

// Availability bands control how much stock a market generates.
type Availability string

const (
	Common   Availability = "common"
	Uncommon Availability = "uncommon"
	Rare     Availability = "rare"
)

// Good describes a tradeable commodity.
type Good struct {
	ID           resource.GoodID
	BasePrice    int
	Volatility   float64
	Availability Availability
	Special      bool
	Illegal      bool
}

// Goods is the full commodity table. The first four entries map onto ship
// resources; the rest are special cargo.
var Goods = []Good{
	{ID: "fuel", BasePrice: 10, Volatility: 0.3, Availability: Common},
	{ID: "food", BasePrice: 8, Volatility: 0.4, Availability: Common},
	{ID: "materials", BasePrice: 5, Volatility: 0.2, Availability: Common},
	{ID: "technology", BasePrice: 20, Volatility: 0.5, Availability: Rare},

	{ID: "medical_supplies", BasePrice: 15, Volatility: 0.4, Availability: Uncommon, Special: true},
	{ID: "luxury_goods", BasePrice: 30, Volatility: 0.6, Availability: Rare, Special: true},
	{ID: "weapons", BasePrice: 25, Volatility: 0.5, Availability: Uncommon, Special: true, Illegal: true},
	{ID: "alien_artifacts", BasePrice: 50, Volatility: 0.8, Availability: Rare, Special: true},
	{ID: "ship_parts", BasePrice: 20, Volatility: 0.3, Availability: Uncommon, Special: true},
}

// GoodByID looks up a commodity definition.
func GoodByID(id resource.GoodID) (Good, bool) {
	for _, g := range Goods {
		if g.ID == id {
			return g, true
		}
	}
	return Good{}, false
}

// resourceKinds maps basic goods onto ledger resources. Special goods live
// in the cargo hold instead.
var resourceKinds = map[resource.GoodID]resource.Kind{
	"fuel":       resource.Fuel,
	"food":       resource.Food,
	"materials":  resource.Materials,
	"technology": resource.Technology,
}

// MarketKind identifies a market archetype.
type MarketKind string

const (
	BlackMarket   MarketKind = "black_market"
	TradeStation  MarketKind = "trade_station"
	ResourceDepot MarketKind = "resource_depot"
	ColonyMarket  MarketKind = "colony_market"
)

// MarketType describes a market archetype's pricing and stocking behavior.
type MarketType struct {
	ID              MarketKind
	Name            string
	Description     string
	PriceMultiplier float64
	RareGoods       bool
	Specialization  resource.GoodID
}

var MarketTypes = map[MarketKind]MarketType{
	BlackMarket: {
		ID: BlackMarket, Name: "Black Market",
		Description:     "Illicit trading hub with rare goods",
		PriceMultiplier: 1.5, RareGoods: true,
	},
	TradeStation: {
		ID: TradeStation, Name: "Trade Station",
		Description:     "Standard commercial trading post",
		PriceMultiplier: 1.0,
	},
	ResourceDepot: {
		ID: ResourceDepot, Name: "Resource Depot",
		Description:     "Specializes in raw materials",
		PriceMultiplier: 0.8, Specialization: "materials",
	},
	ColonyMarket: {
		ID: ColonyMarket, Name: "Colony Market",
		Description:     "Settlement marketplace",
		PriceMultiplier: 1.2, Specialization: "food",
	},
}
