package save

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/solfarer/last-voyage/internal/config"
	"github.com/solfarer/last-voyage/internal/game"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := openStore(t)
	session := game.New(42, config.Default())
	session.AdvanceTurn()
	session.AdvanceTurn()

	if err := store.Save(1, session.Snapshot()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	snap, err := store.Load(1)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snap.Turn != 2 || snap.CurrentSystem != "sol" || snap.Seed != 42 {
		t.Errorf("Loaded snapshot mismatch: turn %d system %s seed %d",
			snap.Turn, snap.CurrentSystem, snap.Seed)
	}

	restored := game.New(1, config.Default())
	restored.Restore(snap)
	if restored.Turn != 2 || restored.Summary().Population != 1000 {
		t.Errorf("Restored session mismatch: %+v", restored.Summary())
	}
}

func TestSlotValidation(t *testing.T) {
	store := openStore(t)
	snap := game.New(1, config.Default()).Snapshot()

	for _, slot := range []int{0, 6, -1} {
		if err := store.Save(slot, snap); err == nil {
			t.Errorf("Expected save to slot %d refused", slot)
		}
		if _, err := store.Load(slot); err == nil {
			t.Errorf("Expected load from slot %d refused", slot)
		}
	}
}

func TestLoadEmptySlot(t *testing.T) {
	store := openStore(t)
	if _, err := store.Load(3); !errors.Is(err, ErrSlotEmpty) {
		t.Errorf("Expected ErrSlotEmpty, got %v", err)
	}
}

func TestOverwriteAndDelete(t *testing.T) {
	store := openStore(t)
	session := game.New(7, config.Default())

	if err := store.Save(2, session.Snapshot()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	session.AdvanceTurn()
	if err := store.Save(2, session.Snapshot()); err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}

	snap, err := store.Load(2)
	if err != nil || snap.Turn != 1 {
		t.Errorf("Expected overwritten save at turn 1, got turn %d err %v", snap.Turn, err)
	}

	if err := store.Delete(2); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if has, _ := store.Has(2); has {
		t.Errorf("Expected slot empty after delete")
	}
	// Deleting an empty slot is a no-op.
	if err := store.Delete(2); err != nil {
		t.Errorf("Expected idempotent delete, got %v", err)
	}
}

func TestListPreviews(t *testing.T) {
	store := openStore(t)
	session := game.New(9, config.Default())

	store.Save(4, session.Snapshot())
	store.Save(1, session.Snapshot())

	previews, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(previews) != 2 || previews[0].Slot != 1 || previews[1].Slot != 4 {
		t.Errorf("Expected slots 1 and 4 in order, got %+v", previews)
	}
	if previews[0].Population != 1000 || previews[0].Location != "sol" {
		t.Errorf("Preview columns mismatch: %+v", previews[0])
	}
}
