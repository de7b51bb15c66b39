package trade

import (
	"testing"

	"github.com/solfarer/last-voyage/internal/resource"
	"github.com/solfarer/last-voyage/internal/rng"
)

func TestMarketStocking(t *testing.T) {
	// A fixed 0.5 roll fails both the rare-goods (0.3) and the
	// half-of-everything-else (0.5) checks.
	station := NewMarket(TradeStation, 1, rng.Fixed(0.5))

	if _, ok := station.Inventory["weapons"]; ok {
		t.Errorf("Expected no illegal goods outside the black market")
	}
	if _, ok := station.Inventory["technology"]; ok {
		t.Errorf("Expected rare goods to miss the 30%% roll at a trade station")
	}
	if _, ok := station.Inventory["fuel"]; !ok {
		t.Errorf("Expected common goods always stocked")
	}

	// The black market carries everything, including illegal goods.
	black := NewMarket(BlackMarket, 1, rng.Fixed(0.5))
	for _, g := range Goods {
		if _, ok := black.Inventory[g.ID]; !ok {
			t.Errorf("Expected black market to stock %s", g.ID)
		}
	}

	// Resource depots always carry their specialty.
	depot := NewMarket(ResourceDepot, 1, rng.Fixed(0.9))
	if _, ok := depot.Inventory["materials"]; !ok {
		t.Errorf("Expected resource depot to stock its specialty")
	}
}

func TestMarketPricing(t *testing.T) {
	// Fixed 0.5: no volatility swing, full supply, no spike on turn 1.
	// Price is floor(base * market multiplier).
	black := NewMarket(BlackMarket, 1, rng.Fixed(0.5))
	if got := black.Prices["fuel"]; got != 15 {
		t.Errorf("Expected black market fuel at 15, got %d", got)
	}

	station := NewMarket(TradeStation, 1, rng.Fixed(0.5))
	if got := station.Prices["fuel"]; got != 10 {
		t.Errorf("Expected trade station fuel at base 10, got %d", got)
	}

	// Sell price is 80% of the board price, floored.
	if got, ok := black.SellPrice("fuel"); !ok || got != 12 {
		t.Errorf("Expected sell price 12, got %d", got)
	}
}

func TestBuySellRoundTripLosesMaterials(t *testing.T) {
	e := NewExchange()
	e.Open(BlackMarket, 1, rng.Fixed(0.5))
	res := resource.NewLedger()
	cargo := resource.Cargo{}

	startMats := res.Get(resource.Materials)
	startFuel := res.Get(resource.Fuel)

	buy := e.Buy("fuel", 5, 1, res, cargo)
	if !buy.Success || buy.Total != 75 {
		t.Fatalf("Expected buy of 5 fuel for 75, got %+v", buy)
	}
	if got := res.Get(resource.Fuel); got != startFuel+5 {
		t.Errorf("Expected fuel credited to ledger, got %v", got)
	}

	sell := e.Sell("fuel", 5, 1, res, cargo)
	if !sell.Success || sell.Total != 60 {
		t.Fatalf("Expected sell of 5 fuel for 60, got %+v", sell)
	}

	// The 80% spread guarantees a same-market round trip never profits.
	if got := res.Get(resource.Materials); got >= startMats {
		t.Errorf("Expected round trip to lose materials, started %v ended %v", startMats, got)
	}
	if got := res.Get(resource.Fuel); got != startFuel {
		t.Errorf("Expected fuel back to start, got %v", got)
	}
	if len(e.History) != 2 {
		t.Errorf("Expected two history records, got %d", len(e.History))
	}
}

func TestBuyValidation(t *testing.T) {
	e := NewExchange()
	res := resource.NewLedger()
	cargo := resource.Cargo{}

	// No market docked.
	if r := e.Buy("fuel", 1, 1, res, cargo); r.Success {
		t.Errorf("Expected buy to fail with no market")
	}

	e.Open(BlackMarket, 1, rng.Fixed(0.5))

	// More than the station holds.
	if r := e.Buy("alien_artifacts", 9999, 1, res, cargo); r.Success || r.Reason != "insufficient stock" {
		t.Errorf("Expected insufficient stock, got %+v", r)
	}

	// More than the player can pay: artifacts at 75 each.
	if r := e.Buy("alien_artifacts", 2, 1, res, cargo); r.Success || r.Reason != "insufficient materials" {
		t.Errorf("Expected insufficient materials, got %+v", r)
	}
	if got := res.Get(resource.Materials); got != resource.StartingMaterials {
		t.Errorf("Failed buy must not spend materials, got %v", got)
	}
}

func TestSpecialGoodsGoToCargo(t *testing.T) {
	e := NewExchange()
	e.Open(BlackMarket, 1, rng.Fixed(0.5))
	res := resource.NewLedger()
	cargo := resource.Cargo{}

	buy := e.Buy("medical_supplies", 2, 1, res, cargo)
	if !buy.Success {
		t.Fatalf("Expected buy to succeed, got %+v", buy)
	}
	if got := cargo.Count("medical_supplies"); got != 2 {
		t.Errorf("Expected 2 medical supplies in cargo, got %d", got)
	}

	// Selling cargo goods the player doesn't hold enough of fails.
	if r := e.Sell("medical_supplies", 5, 1, res, cargo); r.Success {
		t.Errorf("Expected sell beyond cargo holdings to fail")
	}
}

func TestSellUnpricedGood(t *testing.T) {
	e := NewExchange()
	e.Open(TradeStation, 1, rng.Fixed(0.5))
	res := resource.NewLedger()
	cargo := resource.Cargo{}
	cargo.Add("alien_artifacts", 1)

	// The station never stocked artifacts, so it has no price for them.
	if r := e.Sell("alien_artifacts", 1, 1, res, cargo); r.Success {
		t.Errorf("Expected sell of unpriced good to fail, got %+v", r)
	}
}

func TestRecommendations(t *testing.T) {
	e := NewExchange()
	e.Open(BlackMarket, 1, rng.Fixed(0.5))

	// At the 1.5x black-market multiplier every good sits 50% above base.
	recs := e.Recommendations()
	if len(recs) == 0 {
		t.Fatalf("Expected sell recommendations at an expensive market")
	}
	for _, r := range recs {
		if r.Kind != "sell" {
			t.Errorf("Expected only sell recommendations, got %+v", r)
		}
	}
	if recs[0].Good != "fuel" || recs[0].Percent != 50 {
		t.Errorf("Expected fuel flagged 50%% over base, got %+v", recs[0])
	}
}

func TestTriggerEvent(t *testing.T) {
	e := NewExchange()
	e.Open(BlackMarket, 1, rng.Fixed(0.5))

	before := e.Market().Prices["fuel"]
	e.TriggerEvent("fuel_shortage")
	if got := e.Market().Prices["fuel"]; got != before*2 {
		t.Errorf("Expected fuel price doubled, got %d from %d", got, before)
	}
}
