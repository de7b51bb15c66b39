package resource

// GoodID names a special trade good held in the cargo hold rather than on
// the ledger (medical supplies, artifacts, salvaged ship parts and so on).
type GoodID string

// Cargo tracks quantities of special goods. The zero value is usable.
type Cargo map[GoodID]int

// Add increases the held quantity of a good.
func (c Cargo) Add(id GoodID, qty int) {
	if qty <= 0 {
		return
	}
	c[id] += qty
}

// Remove decreases the held quantity, returning false if the hold does not
// contain enough. A failed remove changes nothing.
func (c Cargo) Remove(id GoodID, qty int) bool {
	if qty <= 0 {
		return true
	}
	if c[id] < qty {
		return false
	}
	c[id] -= qty
	if c[id] == 0 {
		delete(c, id)
	}
	return true
}

// Count returns the held quantity of a good.
func (c Cargo) Count(id GoodID) int { return c[id] }

// Snapshot returns a plain copy for saving.
func (c Cargo) Snapshot() map[GoodID]int {
	out := make(map[GoodID]int, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// RestoreCargo rebuilds a Cargo from a snapshot, dropping non-positive
// quantities.
func RestoreCargo(snap map[GoodID]int) Cargo {
	c := make(Cargo, len(snap))
	for k, v := range snap {
		if v > 0 {
			c[k] = v
		}
	}
	return c
}
