// Command voyage runs the Last Voyage simulation headless: it resumes or
// starts a session, plays a number of turns with a seeded policy, and
// autosaves after every turn.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"github.com/solfarer/last-voyage/internal/combat"
	"github.com/solfarer/last-voyage/internal/config"
	"github.com/solfarer/last-voyage/internal/event"
	"github.com/solfarer/last-voyage/internal/galaxy"
	"github.com/solfarer/last-voyage/internal/game"
	"github.com/solfarer/last-voyage/internal/research"
	"github.com/solfarer/last-voyage/internal/resource"
	"github.com/solfarer/last-voyage/internal/save"
	"github.com/solfarer/last-voyage/internal/trade"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file, using system environment")
	}

	seed := envInt64("VOYAGE_SEED", 42)
	turns := int(envInt64("VOYAGE_TURNS", 50))
	slot := int(envInt64("VOYAGE_SLOT", 1))
	dbPath := envStr("VOYAGE_DB", "data/voyage.db")

	tuning := config.Default()
	if path := os.Getenv("VOYAGE_TUNING"); path != "" {
		var err error
		tuning, err = config.Load(path)
		if err != nil {
			slog.Error("failed to load tuning", "path", path, "error", err)
			os.Exit(1)
		}
		slog.Info("tuning loaded", "path", path)
	}

	os.MkdirAll("data", 0755)
	store, err := save.Open(dbPath)
	if err != nil {
		slog.Error("failed to open save store", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("save store opened", "path", dbPath)

	state := game.New(seed, tuning)
	snap, err := store.Load(slot)
	switch {
	case err == nil:
		state.Restore(snap)
		slog.Info("session resumed", "slot", slot, "turn", state.Turn)
	case errors.Is(err, save.ErrSlotEmpty):
		slog.Info("no save in slot, starting fresh", "slot", slot, "seed", seed)
	default:
		slog.Error("failed to load save", "slot", slot, "error", err)
		os.Exit(1)
	}

	for i := 0; i < turns && !state.GameOver; i++ {
		playTurn(state)

		if err := store.Save(slot, state.Snapshot()); err != nil {
			slog.Error("autosave failed", "error", err)
			os.Exit(1)
		}
	}

	report(state)
}

// playTurn runs one step of the driver policy: dock and trade where there
// is a market, research when affordable, resolve any encounter, then jump
// to the cheapest reachable neighbor.
func playTurn(state *game.State) {
	here := state.Here()

	if here.Type == galaxy.Inhabited || here.Type == galaxy.Habitable {
		dockAndTrade(state)
	}

	for _, tech := range state.Lab.Available() {
		if state.Resources.Get(resource.Technology) >= float64(tech.Cost) {
			r := state.StartResearch(tech.ID)
			if r.Success {
				slog.Info("researched", "tech", r.Tech.Name)
			}
			break
		}
	}

	if ev := state.RollEvent(contextFor(here)); ev != nil {
		resolveEvent(state, ev)
	}

	if state.Combat.InCombat() {
		fightOut(state)
	}
	if state.GameOver {
		return
	}

	jumpSomewhere(state)
}

func contextFor(here *galaxy.System) string {
	if here.HasEvent {
		return "system"
	}
	return "random"
}

func dockAndTrade(state *game.State) {
	state.OpenMarket(trade.TradeStation)
	defer state.Exchange.Close()

	for _, rec := range state.Exchange.Recommendations() {
		switch rec.Kind {
		case "buy":
			if r := state.Exchange.Buy(rec.Good, 5, state.Turn, state.Resources, state.Cargo); r.Success {
				slog.Info("bought", "good", r.Good, "qty", r.Quantity, "cost", r.Total)
			}
		case "sell":
			if r := state.Exchange.Sell(rec.Good, 5, state.Turn, state.Resources, state.Cargo); r.Success {
				slog.Info("sold", "good", r.Good, "qty", r.Quantity, "gain", r.Total)
			}
		}
	}
}

// resolveEvent picks the first available choice.
func resolveEvent(state *game.State, ev *event.Event) {
	for _, choice := range state.Events.AvailableChoices(ev, state) {
		if !choice.Available {
			continue
		}
		r := state.ResolveEvent(ev, choice.Index)
		if r.Success {
			slog.Info("event resolved", "event", ev.ID, "choice", choice.Text, "outcome", r.Text)
		}
		return
	}
}

// fightOut attacks until the session ends, trying a special attack when
// the super weapon is unlocked.
func fightOut(state *game.State) {
	for state.Combat.InCombat() {
		action := combat.Attack
		if state.Lab.HasFlag(research.SuperWeapon) {
			action = combat.Special
		}
		r := state.Combat.ExecuteTurn(action, state.Resources, state.Crew, state.Rand)
		if r == nil || !r.Ongoing {
			return
		}
	}
}

func jumpSomewhere(state *game.State) {
	here := state.Here()
	var best *galaxy.System
	bestCost := 0
	for _, id := range here.Connections {
		dest := state.System(id)
		if dest == nil {
			continue
		}
		cost := galaxy.FuelCost(here, dest)
		if best == nil || (!dest.Visited && best.Visited) || (dest.Visited == best.Visited && cost < bestCost) {
			best, bestCost = dest, cost
		}
	}
	if best == nil {
		state.AdvanceTurn()
		return
	}
	if r := state.Travel(best.ID); !r.Success {
		slog.Warn("jump refused", "to", best.ID, "reason", r.Reason)
		state.AdvanceTurn()
	}
}

func report(state *game.State) {
	sum := state.Summary()
	fmt.Println()
	fmt.Printf("Voyage report after %s\n", humanize.Comma(int64(sum.Turn))+" turns")
	fmt.Printf("  days elapsed:    %s\n", humanize.Comma(int64(sum.Days)))
	fmt.Printf("  population:      %s souls\n", humanize.Comma(int64(sum.Population)))
	fmt.Printf("  morale:          %.0f\n", sum.Morale)
	fmt.Printf("  systems visited: %d\n", sum.Visited)
	fmt.Printf("  location:        %s\n", sum.Location)
	if state.GameOver {
		verdict := "defeat"
		if state.Victory {
			verdict = "victory"
		}
		fmt.Printf("  outcome:         %s (%s)\n", verdict, state.Ending)
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		slog.Warn("bad numeric env value", "key", key, "value", v)
		return fallback
	}
	return n
}
