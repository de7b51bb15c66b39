// Package galaxy generates the star map: a seeded scatter of systems with
// weighted types, jump connections to their nearest neighbors, and
// noise-derived richness and hazard fields.
package galaxy

import (
	"fmt"
	"math"
	"sort"

	"github.com/ojrac/opensimplex-go"
	"github.com/solfarer/last-voyage/internal/rng"
)

// SystemType classifies what a system holds.
type SystemType string

const (
	Start     SystemType = "start"
	Barren    SystemType = "barren"
	Resource  SystemType = "resource"
	Inhabited SystemType = "inhabited"
	Anomaly   SystemType = "anomaly"
	Ruins     SystemType = "ruins"
	Habitable SystemType = "habitable"
	Hostile   SystemType = "hostile"
	Haven     SystemType = "haven"
)

// System is one star system on the map.
type System struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	X           float64    `json:"x"`
	Y           float64    `json:"y"`
	Type        SystemType `json:"type"`
	Visited     bool       `json:"visited"`
	Discovered  bool       `json:"discovered"`
	Description string     `json:"description"`
	HasEvent    bool       `json:"has_event"`
	Special     bool       `json:"special,omitempty"`
	Connections []string   `json:"connections"`
	// Richness scales resource yields, Hazard scales encounter threat.
	// Both are sampled from the noise field at the system's position.
	Richness float64 `json:"richness"`
	Hazard   float64 `json:"hazard"`
}

const (
	defaultSystems = 35
	mapWidth       = 1100.0
	mapHeight      = 600.0
)

var namePrefixes = []string{
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta",
	"Iota", "Kappa", "Lambda", "Mu", "Nu", "Xi", "Omicron", "Pi",
}

var nameSuffixes = []string{
	"Centauri", "Prime", "Secundus", "Major", "Minor", "Proxima", "Ultima",
	"Nova", "Nebula", "Void", "Expanse", "Reach", "Haven", "Drift",
}

var nameNumerals = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}

var descriptions = map[SystemType]string{
	Start:     "Humanity's birthplace. Earth fades behind you.",
	Barren:    "An empty system. No planets of note.",
	Resource:  "Rich in asteroids and mineable resources.",
	Inhabited: "Signs of alien activity detected.",
	Anomaly:   "Strange readings. Proceed with caution.",
	Ruins:     "Ancient structures orbit a dead star.",
	Habitable: "Potentially habitable worlds present!",
	Hostile:   "Danger detected. High radiation levels.",
	Haven:     "A paradise world. Could this be home?",
}

// Generator builds galaxies deterministically from a seed. The scatter uses
// an LCG so the same seed always yields the same map.
type Generator struct {
	seed  int64
	src   rng.Source
	noise opensimplex.Noise
}

func NewGenerator(seed int64) *Generator {
	return &Generator{
		seed:  seed,
		src:   rng.NewLCG(seed),
		noise: opensimplex.New(seed),
	}
}

// Generate lays out the full map: Sol at center, a scatter of typed
// systems, the two story systems, and jump connections.
func (g *Generator) Generate() []*System {
	systems := []*System{{
		ID: "sol", Name: "Sol System",
		X: mapWidth / 2, Y: mapHeight / 2,
		Type: Start, Visited: true, Discovered: true,
		Description: descriptions[Start],
	}}

	for i := 0; i < defaultSystems; i++ {
		t := g.chooseType()
		s := &System{
			ID:          fmt.Sprintf("system_%d", i),
			Name:        g.generateName(),
			X:           g.src.Float64() * mapWidth,
			Y:           g.src.Float64() * mapHeight,
			Type:        t,
			Description: descriptions[t],
			HasEvent:    g.src.Float64() > 0.5,
		}
		systems = append(systems, s)
	}

	systems = append(systems,
		&System{
			ID: "new_earth", Name: "Kepler Haven",
			X: mapWidth * 0.85, Y: mapHeight * 0.15,
			Type:        Haven,
			Description: "Long-range scans show a world with liquid water and breathable atmosphere. Could this be humanity's new home?",
			HasEvent:    true, Special: true,
		},
		&System{
			ID: "ancient_core", Name: "The Architect Core",
			X: mapWidth * 0.3, Y: mapHeight * 0.8,
			Type:        Ruins,
			Description: "A massive artificial structure at the heart of a dead system. Who built this?",
			HasEvent:    true, Special: true,
		},
	)

	for _, s := range systems {
		s.Richness = g.field(s.X, s.Y, 0)
		s.Hazard = g.field(s.X, s.Y, 100)
	}

	connect(systems)
	return systems
}

// field samples the noise at a map position, normalized to [0, 1]. The z
// offset separates the richness and hazard layers.
func (g *Generator) field(x, y, z float64) float64 {
	v := g.noise.Eval3(x/200, y/200, z)
	return (v + 1) / 2
}

func (g *Generator) chooseType() SystemType {
	r := g.src.Float64()
	switch {
	case r < 0.25:
		return Barren
	case r < 0.45:
		return Resource
	case r < 0.60:
		return Inhabited
	case r < 0.75:
		return Anomaly
	case r < 0.88:
		return Ruins
	case r < 0.95:
		return Habitable
	}
	return Hostile
}

func (g *Generator) generateName() string {
	prefix := namePrefixes[g.src.IntN(len(namePrefixes))]
	if g.src.Float64() > 0.7 {
		return prefix + " " + nameNumerals[g.src.IntN(len(nameNumerals))]
	}
	return prefix + " " + nameSuffixes[g.src.IntN(len(nameSuffixes))]
}

// connect links every system to its five nearest neighbors.
func connect(systems []*System) {
	for _, s := range systems {
		type pair struct {
			id   string
			dist float64
		}
		var dists []pair
		for _, other := range systems {
			if other.ID == s.ID {
				continue
			}
			dists = append(dists, pair{other.ID, Distance(s, other)})
		}
		sort.Slice(dists, func(i, j int) bool { return dists[i].dist < dists[j].dist })

		n := 5
		if len(dists) < n {
			n = len(dists)
		}
		s.Connections = make([]string, n)
		for i := 0; i < n; i++ {
			s.Connections[i] = dists[i].id
		}
	}
}

// Distance is the straight-line map distance between two systems.
func Distance(a, b *System) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// FuelCost is the fuel needed to travel between two systems, at least 5.
func FuelCost(a, b *System) int {
	cost := int(math.Floor(Distance(a, b) / 20))
	if cost < 5 {
		cost = 5
	}
	return cost
}

// InRange lists systems reachable from current with the available fuel.
func InRange(current *System, systems []*System, fuel float64) []*System {
	var out []*System
	for _, s := range systems {
		if s.ID == current.ID {
			continue
		}
		if float64(FuelCost(current, s)) <= fuel {
			out = append(out, s)
		}
	}
	return out
}
