package services_test

import (
	"testing"
	"time"

	"signage-backend/internal/services"
)

func TestPulseReloadAutoReverts(t *testing.T) {
	signals := services.NewSignals(50 * time.Millisecond)

	if signals.State().Reload {
		t.Fatal("reload should start false")
	}
	state := signals.PulseReload()
	if !state.Reload {
		t.Fatal("reload should be true right after a pulse")
	}

	time.Sleep(150 * time.Millisecond)
	if signals.State().Reload {
		t.Error("reload should have reverted after the pulse window")
	}
}

func TestPulseReloadLastSetWins(t *testing.T) {
	signals := services.NewSignals(80 * time.Millisecond)

	signals.PulseReload()
	time.Sleep(50 * time.Millisecond)
	signals.PulseReload() // replaces the pending revert

	// Past the first pulse's expiry but within the second's window.
	time.Sleep(50 * time.Millisecond)
	if !signals.State().Reload {
		t.Error("second pulse should have replaced the first timer")
	}

	time.Sleep(100 * time.Millisecond)
	if signals.State().Reload {
		t.Error("reload should have reverted after the second window")
	}
}

func TestPulseReloadRepulseAtExpiry(t *testing.T) {
	signals := services.NewSignals(5 * time.Millisecond)

	// Pulse repeatedly right around the expiry boundary so fired timers
	// contend with fresh pulses for the lock.
	for i := 0; i < 40; i++ {
		signals.PulseReload()
		time.Sleep(4 * time.Millisecond)
	}
	if state := signals.PulseReload(); !state.Reload {
		t.Fatal("fresh pulse should report reload true")
	}
	if !signals.State().Reload {
		t.Error("a replaced timer must not clear a newer pulse")
	}

	time.Sleep(50 * time.Millisecond)
	if signals.State().Reload {
		t.Error("reload should revert after the final window")
	}
}

func TestToggleNumbers(t *testing.T) {
	signals := services.NewSignals(time.Second)

	if signals.State().ShowNumbers {
		t.Fatal("numbers overlay should start off")
	}
	if state := signals.ToggleNumbers(); !state.ShowNumbers {
		t.Error("first toggle should turn the overlay on")
	}
	if state := signals.ToggleNumbers(); state.ShowNumbers {
		t.Error("second toggle should turn the overlay off")
	}
}
