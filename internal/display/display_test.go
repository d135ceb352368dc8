package display

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/smartroom/controller/internal/model"
	"github.com/smartroom/controller/internal/nighteditor"
	"github.com/smartroom/controller/internal/state"
)

func testState() *state.SystemState {
	return &state.SystemState{
		Mode:        model.ModeAuto,
		NightWindow: model.NightWindow{StartHour: 22, EndHour: 6},
		Readings:    model.Readings{TempC: 21.3, Humidity: 44},
		WallTime:    time.Date(2026, 1, 2, 8, 15, 0, 0, time.UTC),
	}
}

func TestBuildFrame_ShowsCommittedWindowWhenNotEditing(t *testing.T) {
	st := testState()
	ed := nighteditor.New()
	var blink Blink

	f := BuildFrame(st, ed, &blink, 0)

	assert.Equal(t, 22, f.NightStart)
	assert.Equal(t, 6, f.NightEnd)
	assert.Equal(t, model.EditOff, f.EditState)
	assert.True(t, f.EditDigitVisible)
	assert.Equal(t, "08:15:00", f.Time)
}

func TestBuildFrame_ShowsDraftWhileEditing(t *testing.T) {
	st := testState()
	ed := nighteditor.New()
	var blink Blink

	ed.Advance(st.NightWindow)
	ed.Increment()

	f := BuildFrame(st, ed, &blink, 0)
	assert.Equal(t, 23, f.NightStart)
	assert.Equal(t, 6, f.NightEnd)
	assert.Equal(t, model.EditEditingStart, f.EditState)
}

func TestBlink_AlternatesHalfPeriods(t *testing.T) {
	var b Blink
	b.ResetPhase(1000)

	assert.True(t, b.Visible(1000))
	assert.True(t, b.Visible(1499))
	assert.False(t, b.Visible(1500))
	assert.False(t, b.Visible(1999))
	assert.True(t, b.Visible(2000))
}

func TestBlink_ResetMakesDigitImmediatelyVisible(t *testing.T) {
	var b Blink
	b.ResetPhase(0)

	// Mid blink-off; an edit resets the phase so the change is seen at once.
	assert.False(t, b.Visible(1700))
	b.ResetPhase(1700)
	assert.True(t, b.Visible(1700))
	assert.True(t, b.Visible(2100))
}
