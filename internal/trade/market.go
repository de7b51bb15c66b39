package trade

import (
	"math"

	"github.com/solfarer/last-voyage/internal/resource"
	"github.com/solfarer/last-voyage/internal/rng"
)

// Stock tracks a commodity's quantity at a market. MaxQuantity is the
// restock ceiling used for supply pricing.
type Stock struct {
	Quantity    int `json:"quantity"`
	MaxQuantity int `json:"max_quantity"`
}

// Market is one station's inventory and price board. Markets are generated
// fresh on docking and discarded on departure.
type Market struct {
	Type      MarketType
	Inventory map[resource.GoodID]*Stock
	Prices    map[resource.GoodID]int
}

// NewMarket stocks a market of the given type and rolls initial prices.
func NewMarket(kind MarketKind, turn int, src rng.Source) *Market {
	typ, ok := MarketTypes[kind]
	if !ok {
		typ = MarketTypes[TradeStation]
	}
	m := &Market{
		Type:      typ,
		Inventory: make(map[resource.GoodID]*Stock),
		Prices:    make(map[resource.GoodID]int),
	}
	m.generateInventory(src)
	m.UpdatePrices(turn, src)
	return m
}

func (m *Market) generateInventory(src rng.Source) {
	for _, g := range Goods {
		if !m.stocks(g, src) {
			continue
		}
		var qty int
		switch g.Availability {
		case Common:
			qty = 50 + src.IntN(100)
		case Uncommon:
			qty = 20 + src.IntN(50)
		case Rare:
			qty = 5 + src.IntN(20)
		}
		m.Inventory[g.ID] = &Stock{Quantity: qty, MaxQuantity: qty}
	}
}

// stocks decides whether a market carries a commodity. Black markets carry
// everything; illegal goods appear nowhere else. Specialized markets always
// carry their specialty but only half of everything else.
func (m *Market) stocks(g Good, src rng.Source) bool {
	if m.Type.ID == BlackMarket {
		return true
	}
	if g.Illegal {
		return false
	}
	if m.Type.Specialization != "" {
		if g.ID == m.Type.Specialization {
			return true
		}
		return src.Float64() < 0.5
	}
	if g.Availability == Rare && !m.Type.RareGoods {
		return src.Float64() < 0.3
	}
	return true
}

// UpdatePrices rerolls the price board. Low supply raises prices, each good
// fluctuates within its volatility, and every fifth turn carries a 20%
// chance of a spike or crash.
func (m *Market) UpdatePrices(turn int, src rng.Source) {
	for _, g := range Goods {
		stock, ok := m.Inventory[g.ID]
		if !ok {
			continue
		}

		price := float64(g.BasePrice) * m.Type.PriceMultiplier

		supply := float64(stock.Quantity) / float64(stock.MaxQuantity)
		price *= 2 - supply

		price *= 1 + (src.Float64()*2-1)*g.Volatility

		if turn%5 == 0 && src.Float64() < 0.2 {
			if src.Float64() < 0.5 {
				price *= 1.5
			} else {
				price *= 0.7
			}
		}

		if price < 1 {
			price = 1
		}
		m.Prices[g.ID] = int(math.Floor(price))
	}
}

// Listing is one row of the market's board.
type Listing struct {
	ID       resource.GoodID `json:"id"`
	Quantity int             `json:"quantity"`
	Price    int             `json:"price"`
	Special  bool            `json:"special"`
}

// AvailableGoods returns in-stock commodities in table order.
func (m *Market) AvailableGoods() []Listing {
	var out []Listing
	for _, g := range Goods {
		stock, ok := m.Inventory[g.ID]
		if !ok || stock.Quantity <= 0 {
			continue
		}
		out = append(out, Listing{
			ID: g.ID, Quantity: stock.Quantity,
			Price: m.Prices[g.ID], Special: g.Special,
		})
	}
	return out
}

// SellPrice is what the market pays per unit, 80% of the buy price.
func (m *Market) SellPrice(id resource.GoodID) (int, bool) {
	p, ok := m.Prices[id]
	if !ok {
		return 0, false
	}
	return int(math.Floor(float64(p) * 0.8)), true
}
