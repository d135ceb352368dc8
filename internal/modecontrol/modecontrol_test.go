package modecontrol

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartroom/controller/internal/model"
)

func TestBaseOutput(t *testing.T) {
	tests := []struct {
		name      string
		mode      model.Mode
		manualLED bool
		dark      bool
		night     bool
		want      bool
	}{
		{"Auto - bright day outside night window", model.ModeAuto, false, false, false, false},
		{"Auto - dark", model.ModeAuto, false, true, false, true},
		{"Auto - night window active", model.ModeAuto, false, false, true, true},
		{"Auto - both dark and night", model.ModeAuto, false, true, true, true},
		{"Auto - manual request ignored", model.ModeAuto, true, false, false, false},
		{"Manual - request off overrides darkness", model.ModeManual, false, true, true, false},
		{"Manual - request on in bright room", model.ModeManual, true, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BaseOutput(tt.mode, tt.manualLED, tt.dark, tt.night)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNightWindowContains_WrapsPastMidnight(t *testing.T) {
	w := model.NightWindow{StartHour: 20, EndHour: 6}
	assert.True(t, w.Contains(23))
	assert.True(t, w.Contains(0))
	assert.True(t, w.Contains(5))
	assert.False(t, w.Contains(6)) // end hour is exclusive
	assert.False(t, w.Contains(10))
	assert.True(t, w.Contains(20))
}

func TestNightWindowContains_SameDay(t *testing.T) {
	w := model.NightWindow{StartHour: 8, EndHour: 18}
	assert.True(t, w.Contains(12))
	assert.True(t, w.Contains(8))
	assert.False(t, w.Contains(18))
	assert.False(t, w.Contains(20))
	assert.False(t, w.Contains(3))
}

func TestAmbientDark(t *testing.T) {
	assert.True(t, AmbientDark(120, 300))
	assert.False(t, AmbientDark(300, 300))
	assert.False(t, AmbientDark(812, 300))
}
