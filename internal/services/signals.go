package services

import (
	"sync"
	"time"
)

// Signals owns the transient viewer flags: a pulsed reload request that
// auto-reverts after the configured delay, and the TV-numbers overlay
// toggle. Viewers poll State alongside the screen list.
type Signals struct {
	mu          sync.Mutex
	reload      bool
	showNumbers bool
	pulse       time.Duration
	timer       *time.Timer
	pulseGen    uint64
}

func NewSignals(pulse time.Duration) *Signals {
	if pulse <= 0 {
		pulse = 10 * time.Second
	}
	return &Signals{pulse: pulse}
}

type SignalState struct {
	Reload      bool `json:"reload"`
	ShowNumbers bool `json:"show_numbers"`
}

func (s *Signals) State() SignalState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SignalState{Reload: s.reload, ShowNumbers: s.showNumbers}
}

// PulseReload raises the reload flag and schedules its revert. Pulsing
// while a revert is pending replaces the previous timer; last set wins.
// The generation counter keeps a timer that already fired, but had not yet
// taken the lock, from clearing a newer pulse.
func (s *Signals) PulseReload() SignalState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.pulseGen++
	gen := s.pulseGen
	s.reload = true
	s.timer = time.AfterFunc(s.pulse, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.pulseGen != gen {
			return
		}
		s.reload = false
		s.timer = nil
	})
	return SignalState{Reload: s.reload, ShowNumbers: s.showNumbers}
}

// ToggleNumbers flips the TV-numbers overlay flag.
func (s *Signals) ToggleNumbers() SignalState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showNumbers = !s.showNumbers
	return SignalState{Reload: s.reload, ShowNumbers: s.showNumbers}
}
