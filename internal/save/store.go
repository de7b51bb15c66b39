// Package save provides the SQLite save-slot store. Each of the five slots
// holds one JSON-encoded session snapshot plus preview columns so a load
// menu can list saves without decoding them.
package save

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/solfarer/last-voyage/internal/game"
)

// MaxSlots is the number of save slots.
const MaxSlots = 5

// ErrSlotEmpty is returned when loading from a slot with no save.
var ErrSlotEmpty = errors.New("save slot is empty")

// Store wraps a SQLite connection for session persistence.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates a save database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS saves (
		slot INTEGER PRIMARY KEY,
		saved_at TEXT NOT NULL,
		turn INTEGER NOT NULL,
		days INTEGER NOT NULL,
		population REAL NOT NULL,
		location TEXT NOT NULL,
		snapshot_json TEXT NOT NULL
	);
	`
	_, err := s.conn.Exec(schema)
	return err
}

func validSlot(slot int) error {
	if slot < 1 || slot > MaxSlots {
		return fmt.Errorf("slot %d out of range 1..%d", slot, MaxSlots)
	}
	return nil
}

// Save writes a session snapshot into a slot, replacing any previous save.
func (s *Store) Save(slot int, snap game.Snapshot) error {
	if err := validSlot(slot); err != nil {
		return err
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	population := snap.Resources["population"]
	_, err = s.conn.Exec(`INSERT OR REPLACE INTO saves
		(slot, saved_at, turn, days, population, location, snapshot_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		slot, time.Now().UTC().Format(time.RFC3339),
		snap.Turn, snap.DaysPassed, population, snap.CurrentSystem, string(data),
	)
	if err != nil {
		return fmt.Errorf("write slot %d: %w", slot, err)
	}

	slog.Info("session saved", "slot", slot, "turn", snap.Turn)
	return nil
}

// Load reads the snapshot in a slot.
func (s *Store) Load(slot int) (game.Snapshot, error) {
	var snap game.Snapshot
	if err := validSlot(slot); err != nil {
		return snap, err
	}

	var data string
	err := s.conn.Get(&data, "SELECT snapshot_json FROM saves WHERE slot = ?", slot)
	if errors.Is(err, sql.ErrNoRows) {
		return snap, ErrSlotEmpty
	}
	if err != nil {
		return snap, fmt.Errorf("read slot %d: %w", slot, err)
	}

	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return snap, fmt.Errorf("decode slot %d: %w", slot, err)
	}
	return snap, nil
}

// Delete clears a slot. Deleting an empty slot is a no-op.
func (s *Store) Delete(slot int) error {
	if err := validSlot(slot); err != nil {
		return err
	}
	_, err := s.conn.Exec("DELETE FROM saves WHERE slot = ?", slot)
	return err
}

// Has reports whether a slot holds a save.
func (s *Store) Has(slot int) (bool, error) {
	if err := validSlot(slot); err != nil {
		return false, err
	}
	var n int
	if err := s.conn.Get(&n, "SELECT COUNT(*) FROM saves WHERE slot = ?", slot); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Preview is one save slot's listing row.
type Preview struct {
	Slot       int     `db:"slot" json:"slot"`
	SavedAt    string  `db:"saved_at" json:"saved_at"`
	Turn       int     `db:"turn" json:"turn"`
	Days       int     `db:"days" json:"days"`
	Population float64 `db:"population" json:"population"`
	Location   string  `db:"location" json:"location"`
}

// List returns previews of all occupied slots in slot order.
func (s *Store) List() ([]Preview, error) {
	var out []Preview
	err := s.conn.Select(&out,
		"SELECT slot, saved_at, turn, days, population, location FROM saves ORDER BY slot")
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	return out, nil
}
