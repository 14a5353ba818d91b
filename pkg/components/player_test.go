package components

import "testing"

func TestShotBudget(t *testing.T) {
	p := &PlayerComponent{ShotLimit: 1, MaxShots: 2}

	if !p.ConsumeShot() {
		t.Fatal("Expected a shot to be available")
	}
	if p.ConsumeShot() {
		t.Fatal("Empty budget should refuse a shot")
	}
	if p.ShotLimit != 0 {
		t.Errorf("ShotLimit should not go negative, got %d", p.ShotLimit)
	}

	p.RestoreShot()
	p.RestoreShot()
	if p.RestoreShot() {
		t.Error("RestoreShot should refuse past MaxShots")
	}
	if p.ShotLimit != 2 {
		t.Errorf("Expected ShotLimit 2, got %d", p.ShotLimit)
	}
}
