// Package modecontrol resolves the base lighting decision before any alarm
// override is applied.
package modecontrol

import "github.com/smartroom/controller/internal/model"

// BaseOutput computes the lighting decision for the current mode. In Auto
// the light is on when the room is dark or the night window is active; in
// Manual it is entirely user-controlled.
func BaseOutput(mode model.Mode, manualLED bool, ambientDark bool, nightNow bool) bool {
	if mode == model.ModeManual {
		return manualLED
	}
	return ambientDark || nightNow
}

// AmbientDark interprets the raw light reading against the darkness
// threshold. Lower raw values mean less light.
func AmbientDark(lightRaw, darkThreshold int) bool {
	return lightRaw < darkThreshold
}
