package trade

import (
	"github.com/solfarer/last-voyage/internal/resource"
	"github.com/solfarer/last-voyage/internal/rng"
)

// Record is one completed transaction.
type Record struct {
	Kind     string          `json:"kind"`
	Good     resource.GoodID `json:"good"`
	Quantity int             `json:"quantity"`
	Total    int             `json:"total"`
	Turn     int             `json:"turn"`
	Market   string          `json:"market"`
}

// Result reports a buy or sell attempt. Failed trades carry a reason and
// leave all state untouched.
type Result struct {
	Success      bool            `json:"success"`
	Reason       string          `json:"reason,omitempty"`
	Good         resource.GoodID `json:"good,omitempty"`
	Quantity     int             `json:"quantity,omitempty"`
	Total        int             `json:"total,omitempty"`
	PricePerUnit int             `json:"price_per_unit,omitempty"`
}

// Exchange drives trading against the currently docked market. Materials
// are the currency on both sides of every trade.
type Exchange struct {
	market  *Market
	History []Record
}

// NewExchange returns an exchange with no open market.
func NewExchange() *Exchange { return &Exchange{} }

// Open generates a fresh market of the given kind and docks at it.
func (e *Exchange) Open(kind MarketKind, turn int, src rng.Source) *Market {
	e.market = NewMarket(kind, turn, src)
	return e.market
}

// Close undocks from the current market. Its inventory and prices are
// discarded.
func (e *Exchange) Close() { e.market = nil }

// Market returns the docked market, nil when in transit.
func (e *Exchange) Market() *Market { return e.market }

// Buy purchases quantity units of a good, paying in materials. Basic goods
// land in the resource ledger, special goods in the cargo hold.
func (e *Exchange) Buy(id resource.GoodID, quantity, turn int, res *resource.Ledger, cargo resource.Cargo) Result {
	if e.market == nil {
		return Result{Reason: "no market available"}
	}
	stock, ok := e.market.Inventory[id]
	if !ok {
		return Result{Reason: "good not available"}
	}
	if stock.Quantity < quantity {
		return Result{Reason: "insufficient stock"}
	}

	price := e.market.Prices[id]
	total := price * quantity
	if res.Get(resource.Materials) < float64(total) {
		return Result{Reason: "insufficient materials", Total: total}
	}

	stock.Quantity -= quantity
	res.Modify(resource.Materials, -float64(total))
	if kind, basic := resourceKinds[id]; basic {
		res.Modify(kind, float64(quantity))
	} else {
		cargo.Add(id, quantity)
	}

	e.History = append(e.History, Record{
		Kind: "buy", Good: id, Quantity: quantity,
		Total: total, Turn: turn, Market: e.market.Type.Name,
	})
	return Result{Success: true, Good: id, Quantity: quantity, Total: total, PricePerUnit: price}
}

// Sell hands quantity units of a good to the market at 80% of its buy
// price, paid in materials. Goods the market doesn't stock are accepted
// into a fresh inventory line.
func (e *Exchange) Sell(id resource.GoodID, quantity, turn int, res *resource.Ledger, cargo resource.Cargo) Result {
	if e.market == nil {
		return Result{Reason: "no market available"}
	}

	if kind, basic := resourceKinds[id]; basic {
		if res.Get(kind) < float64(quantity) {
			return Result{Reason: "insufficient goods to sell"}
		}
	} else if cargo.Count(id) < quantity {
		return Result{Reason: "insufficient goods to sell"}
	}

	sellPrice, ok := e.market.SellPrice(id)
	if !ok {
		return Result{Reason: "market not buying this good"}
	}
	total := sellPrice * quantity

	if stock, exists := e.market.Inventory[id]; exists {
		stock.Quantity += quantity
	} else {
		e.market.Inventory[id] = &Stock{Quantity: quantity, MaxQuantity: 100}
	}

	if kind, basic := resourceKinds[id]; basic {
		res.Modify(kind, -float64(quantity))
	} else {
		cargo.Remove(id, quantity)
	}
	res.Modify(resource.Materials, float64(total))

	e.History = append(e.History, Record{
		Kind: "sell", Good: id, Quantity: quantity,
		Total: total, Turn: turn, Market: e.market.Type.Name,
	})
	return Result{Success: true, Good: id, Quantity: quantity, Total: total, PricePerUnit: sellPrice}
}

// Recommendation flags a good priced well away from its base value.
type Recommendation struct {
	Kind    string          `json:"kind"`
	Good    resource.GoodID `json:"good"`
	Percent int             `json:"percent"`
}

// Recommendations lists goods worth buying below 80% of base price or
// selling above 120%.
func (e *Exchange) Recommendations() []Recommendation {
	if e.market == nil {
		return nil
	}
	var out []Recommendation
	for _, listing := range e.market.AvailableGoods() {
		g, _ := GoodByID(listing.ID)
		base := float64(g.BasePrice)
		cur := float64(listing.Price)
		if cur < base*0.8 {
			out = append(out, Recommendation{
				Kind: "buy", Good: listing.ID,
				Percent: int((base - cur) / base * 100),
			})
		}
		if cur > base*1.2 {
			out = append(out, Recommendation{
				Kind: "sell", Good: listing.ID,
				Percent: int((cur - base) / base * 100),
			})
		}
	}
	return out
}

// TriggerEvent applies a market-wide price shock to the docked market.
func (e *Exchange) TriggerEvent(event string) {
	if e.market == nil {
		return
	}
	scale := func(id resource.GoodID, f float64) {
		if p, ok := e.market.Prices[id]; ok {
			e.market.Prices[id] = int(float64(p) * f)
		}
	}
	switch event {
	case "fuel_shortage":
		scale("fuel", 2)
	case "tech_boom":
		scale("technology", 0.5)
	case "food_crisis":
		scale("food", 1.8)
	}
}

// Snapshot captures the trade history. Markets are ephemeral and are not
// saved.
type Snapshot struct {
	History []Record `json:"history,omitempty"`
}

func (e *Exchange) Snapshot() Snapshot {
	return Snapshot{History: append([]Record(nil), e.History...)}
}

func (e *Exchange) Restore(snap Snapshot) {
	e.market = nil
	e.History = append([]Record(nil), snap.History...)
}
