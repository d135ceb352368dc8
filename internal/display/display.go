// Package display assembles the frame the pixel renderer draws once per
// sense cadence. The renderer itself lives with the hardware drivers; this
// package only decides what is visible, including the blink gating of the
// hour under edit.
package display

import (
	"github.com/smartroom/controller/internal/clock"
	"github.com/smartroom/controller/internal/model"
	"github.com/smartroom/controller/internal/nighteditor"
	"github.com/smartroom/controller/internal/state"
)

// EditBlinkPeriodMs is the half-period of the edited digit's blink.
const EditBlinkPeriodMs = 500

// Frame is the read-only render input.
type Frame struct {
	Mode       model.Mode
	Time       string
	TempC      float64
	Humidity   float64
	AlarmLevel model.AlarmLevel

	// Committed hours, or the in-progress draft while editing.
	NightStart int
	NightEnd   int

	EditState model.EditState
	// EditDigitVisible gates the digit under edit; the renderer hides it
	// during the blink-off half-period.
	EditDigitVisible bool
}

// Blink owns the edit-digit blink phase.
type Blink struct {
	phaseStartMs uint64
}

// ResetPhase restarts the blink so the digit is immediately visible. Called
// on every edit action and on entering the editor.
func (b *Blink) ResetPhase(nowMs uint64) {
	b.phaseStartMs = nowMs
}

// Visible reports whether the blink is currently in its on half-period.
func (b *Blink) Visible(nowMs uint64) bool {
	return clock.Elapsed(nowMs, b.phaseStartMs)%(2*EditBlinkPeriodMs) < EditBlinkPeriodMs
}

// BuildFrame snapshots the render state. While editing, the night hours come
// from the editor's draft instead of the committed window.
func BuildFrame(st *state.SystemState, ed *nighteditor.Editor, blink *Blink, nowMs uint64) Frame {
	f := Frame{
		Mode:             st.Mode,
		Time:             st.WallTime.Format("15:04:05"),
		TempC:            st.Readings.TempC,
		Humidity:         st.Readings.Humidity,
		AlarmLevel:       st.AlarmLevel,
		NightStart:       st.NightWindow.StartHour,
		NightEnd:         st.NightWindow.EndHour,
		EditState:        ed.State(),
		EditDigitVisible: true,
	}
	if ed.Editing() {
		draft := ed.Draft()
		f.NightStart = draft.DraftStart
		f.NightEnd = draft.DraftEnd
		f.EditDigitVisible = blink.Visible(nowMs)
	}
	return f
}
