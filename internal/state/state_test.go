package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartroom/controller/internal/model"
)

func TestSetMode_EnteringManualResetsLEDRequest(t *testing.T) {
	s := &SystemState{Mode: model.ModeAuto, ManualLED: true, BaseOutput: true}

	s.SetMode(model.ModeManual)

	assert.Equal(t, model.ModeManual, s.Mode)
	assert.False(t, s.ManualLED)
}

func TestSetMode_ReassertingManualKeepsRequest(t *testing.T) {
	s := &SystemState{Mode: model.ModeManual, ManualLED: true}

	s.SetMode(model.ModeManual)

	assert.True(t, s.ManualLED)
}

func TestSetMode_LeavingManualKeepsRequestForNothing(t *testing.T) {
	// The request survives the switch to Auto but is cleared again on the
	// next entry into Manual.
	s := &SystemState{Mode: model.ModeManual, ManualLED: true}

	s.SetMode(model.ModeAuto)
	s.SetMode(model.ModeManual)

	assert.False(t, s.ManualLED)
}

func TestSnapshot_IsDetachedCopy(t *testing.T) {
	s := &SystemState{
		Mode:             model.ModeAuto,
		NightWindow:      model.NightWindow{StartHour: 22, EndHour: 6},
		ReportIntervalMs: 1000,
		AlarmLevel:       model.AlarmWarning,
	}

	snap := s.Snapshot()
	s.AlarmLevel = model.AlarmCritical
	s.NightWindow.StartHour = 3

	assert.Equal(t, model.AlarmWarning, snap.AlarmLevel)
	assert.Equal(t, 22, snap.NightWindow.StartHour)
}
