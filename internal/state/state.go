// Package state owns the aggregate mutable state of the controller. One
// SystemState is created at startup and passed by exclusive reference into
// each component call from the single control-loop context; nothing else
// holds a mutable reference, so there is no locking.
package state

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/smartroom/controller/internal/config"
	"github.com/smartroom/controller/internal/model"
)

type SystemState struct {
	Mode             model.Mode
	ManualLED        bool
	NightWindow      model.NightWindow
	ReportIntervalMs uint64

	// Recomputed every sense cadence.
	Readings   model.Readings
	WallTime   time.Time
	AlarmLevel model.AlarmLevel
	BaseOutput bool

	// Post-alarm-override outputs, updated every fast tick.
	LEDOn    bool
	BuzzerOn bool
}

func New(cfg *config.Config) *SystemState {
	return &SystemState{
		Mode:             model.ModeAuto,
		NightWindow:      model.NightWindow{StartHour: cfg.NightStartHour, EndHour: cfg.NightEndHour},
		ReportIntervalMs: cfg.ReportIntervalMs,
	}
}

// SetMode switches the operating mode. Switching into Manual resets the
// manual LED request so a stale Auto-derived state is never inherited.
func (s *SystemState) SetMode(m model.Mode) {
	if m == s.Mode {
		return
	}
	if m == model.ModeManual {
		s.ManualLED = false
	}
	s.Mode = m
	log.Info().Str("mode", string(m)).Msg("Operating mode changed")
}

// Snapshot produces the immutable read-only view for the status feed and
// recorder. Valid until the next evaluation cycle overwrites the source.
func (s *SystemState) Snapshot() model.Snapshot {
	return model.Snapshot{
		Mode:             s.Mode,
		BaseOutput:       s.BaseOutput,
		LEDOn:            s.LEDOn,
		BuzzerOn:         s.BuzzerOn,
		AlarmLevel:       s.AlarmLevel,
		NightWindow:      s.NightWindow,
		ReportIntervalMs: s.ReportIntervalMs,
		Readings:         s.Readings,
		WallTime:         s.WallTime,
	}
}
