// Package signaling drives the LED and buzzer blink/tone state machines.
// Each Signal owns its timer state explicitly; the controller ticks both
// every fast-cadence iteration so the 200 ms warning toggle stays
// time-accurate regardless of the slower cadences.
package signaling

import (
	"github.com/smartroom/controller/internal/clock"
	"github.com/smartroom/controller/internal/model"
)

// WarningTogglePeriodMs is the shared toggle granularity for both devices
// while in Warning.
const WarningTogglePeriodMs = 200

// Signal is one output device's state machine.
type Signal struct {
	active       bool
	lastToggleMs uint64
	followBase   bool // LED tracks base output when Normal; buzzer stays silent
}

// NewLED returns the signal for the room light. In Normal it follows the
// base lighting decision exactly.
func NewLED() *Signal {
	return &Signal{followBase: true}
}

// NewBuzzer returns the signal for the buzzer. In Normal it is silent.
func NewBuzzer() *Signal {
	return &Signal{}
}

// Tick evaluates the device output for this iteration. Priority is strict
// and unlatched: Critical forces steady on, Warning toggles at the fixed
// period, Normal yields to the base output (LED) or silence (buzzer).
func (s *Signal) Tick(level model.AlarmLevel, baseOutput bool, nowMs uint64) bool {
	switch level {
	case model.AlarmCritical:
		s.active = true
		s.lastToggleMs = nowMs
	case model.AlarmWarning:
		if clock.Elapsed(nowMs, s.lastToggleMs) >= WarningTogglePeriodMs {
			s.active = !s.active
			s.lastToggleMs = nowMs
		}
	default:
		s.active = s.followBase && baseOutput
		s.lastToggleMs = nowMs
	}
	return s.active
}

// Active returns the output computed by the last Tick.
func (s *Signal) Active() bool {
	return s.active
}
