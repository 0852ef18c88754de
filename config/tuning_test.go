package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseTuningOverlaysOnlyGivenFields(t *testing.T) {
	base := CurrentTuning()
	doc := []byte(`
boss:
  maxHealth: 1000
slash:
  damage: 7
`)
	got, err := ParseTuning(doc, base)
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}
	if got.Boss.MaxHealth != 1000 {
		t.Errorf("boss max health = %d, want 1000", got.Boss.MaxHealth)
	}
	if got.Slash.Damage != 7 {
		t.Errorf("slash damage = %d, want 7", got.Slash.Damage)
	}
	if got.Boss.Phase2Threshold != base.Boss.Phase2Threshold {
		t.Errorf("phase2 threshold changed to %v", got.Boss.Phase2Threshold)
	}
	if got.Player != base.Player {
		t.Errorf("player config changed without being mentioned")
	}
	if Boss.MaxHealth != base.Boss.MaxHealth {
		t.Errorf("ParseTuning must not apply the overlay")
	}
}

func TestParseTuningVectors(t *testing.T) {
	got, err := ParseTuning([]byte("boss:\n  spawn: [1, 2, 3]\n"), CurrentTuning())
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}
	if got.Boss.Spawn.X() != 1 || got.Boss.Spawn.Y() != 2 || got.Boss.Spawn.Z() != 3 {
		t.Errorf("spawn = %v, want [1 2 3]", got.Boss.Spawn)
	}
}

func TestParseTuningRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", "boss: [unclosed"},
		{"zero boss health", "boss:\n  maxHealth: 0\n"},
		{"threshold above one", "boss:\n  phase2Threshold: 1.5\n"},
		{"empty combo", "slash:\n  maxCombo: 0\n"},
		{"zero missile interval", "missile:\n  intervalPhase2: 0\n"},
		{"negative delta cap", "sim:\n  maxDelta: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := CurrentTuning()
			got, err := ParseTuning([]byte(tt.doc), base)
			if err == nil {
				t.Fatalf("expected error")
			}
			if got != base {
				t.Errorf("failed parse must return the base tuning")
			}
		})
	}
}

func TestApplyRoundTrip(t *testing.T) {
	saved := CurrentTuning()
	defer saved.Apply()

	next := saved
	next.Missile.BurstCount = 3
	next.Apply()
	if Missile.BurstCount != 3 {
		t.Fatalf("Apply did not update missile config")
	}
	if CurrentTuning() != next {
		t.Fatalf("CurrentTuning does not reflect applied overlay")
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWatchTuningDeliversUpdates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("boss:\n  maxHealth: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchTuning(path, CurrentTuning())
	if err != nil {
		t.Fatalf("WatchTuning: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("boss:\n  maxHealth: 42\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Updates:
		if got.Boss.MaxHealth != 42 {
			t.Errorf("boss max health = %d, want 42", got.Boss.MaxHealth)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for tuning update")
	}
}

func TestWatchTuningDeliversFinalWriteOfBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("boss:\n  maxHealth: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchTuning(path, CurrentTuning())
	if err != nil {
		t.Fatalf("WatchTuning: %v", err)
	}
	defer w.Close()

	// Each write lands inside the previous one's quiet window.
	for _, health := range []string{"11", "12", "13"} {
		if err := os.WriteFile(path, []byte("boss:\n  maxHealth: "+health+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(w.debounce / 3)
	}

	var last *Tuning
	deadline := time.After(5 * time.Second)
	for last == nil || last.Boss.MaxHealth != 13 {
		select {
		case got := <-w.Updates:
			last = &got
		case err := <-w.Errors:
			t.Fatalf("watch error: %v", err)
		case <-deadline:
			if last == nil {
				t.Fatal("timed out waiting for tuning update")
			}
			t.Fatalf("last delivered boss max health = %d, want 13", last.Boss.MaxHealth)
		}
	}
}
