package command

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartroom/controller/internal/model"
	"github.com/smartroom/controller/internal/state"
)

func newState() *state.SystemState {
	return &state.SystemState{
		Mode:             model.ModeAuto,
		NightWindow:      model.NightWindow{StartHour: 22, EndHour: 6},
		ReportIntervalMs: 1000,
	}
}

func TestApply_ModeAndLED(t *testing.T) {
	st := newState()

	assert.True(t, Apply(TokModeManual, st))
	assert.Equal(t, model.ModeManual, st.Mode)
	assert.False(t, st.ManualLED) // reset on entry into manual

	assert.True(t, Apply(TokLEDOn, st))
	assert.True(t, st.ManualLED)

	assert.True(t, Apply(TokLEDOff, st))
	assert.False(t, st.ManualLED)

	assert.True(t, Apply(TokModeAuto, st))
	assert.Equal(t, model.ModeAuto, st.Mode)
}

func TestApply_NightWindowAdjustmentsWrap(t *testing.T) {
	st := newState()
	st.NightWindow = model.NightWindow{StartHour: 23, EndHour: 0}

	Apply(TokNightStartInc, st)
	assert.Equal(t, 0, st.NightWindow.StartHour)

	Apply(TokNightEndDec, st)
	assert.Equal(t, 23, st.NightWindow.EndHour)

	Apply(TokNightStartDec, st)
	Apply(TokNightStartDec, st)
	assert.Equal(t, 22, st.NightWindow.StartHour)

	Apply(TokNightEndInc, st)
	assert.Equal(t, 0, st.NightWindow.EndHour)
}

func TestApply_IntervalSelection(t *testing.T) {
	st := newState()

	tests := []struct {
		token string
		want  uint64
	}{
		{TokInterval2500, 2500},
		{TokInterval5000, 5000},
		{TokInterval10000, 10000},
		{TokInterval1000, 1000},
	}
	for _, tt := range tests {
		assert.True(t, Apply(tt.token, st))
		assert.Equal(t, tt.want, st.ReportIntervalMs)
	}
}

func TestApply_UnrecognizedTokensAreNoOps(t *testing.T) {
	st := newState()
	before := *st

	for _, token := range []string{"", "ma", "XX", "LOFF", "I3", "SNI "} {
		assert.False(t, Apply(token, st), "token %q should be ignored", token)
	}
	assert.Equal(t, before, *st)
}

func TestLineBuffer_SplitsChunksIntoLines(t *testing.T) {
	var lb LineBuffer

	assert.Empty(t, lb.Feed([]byte("M")))
	assert.Equal(t, []string{"MA"}, lb.Feed([]byte("A\n")))
	assert.Equal(t, []string{"LO", "LOF"}, lb.Feed([]byte("LO\r\nLOF\n")))
}

func TestLineBuffer_DiscardsOverlongLine(t *testing.T) {
	var lb LineBuffer

	long := make([]byte, MaxLineLen+8)
	for i := range long {
		long[i] = 'A'
	}
	assert.Empty(t, lb.Feed(long))

	// The rest of the runaway line keeps being discarded, and parsing
	// resumes after its terminator.
	assert.Empty(t, lb.Feed([]byte("BBBB")))
	assert.Equal(t, []string{"MA"}, lb.Feed([]byte("\nMA\n")))
}

func TestLineBuffer_DropsEmptyLines(t *testing.T) {
	var lb LineBuffer
	assert.Empty(t, lb.Feed([]byte("\n\r\n  \n")))
}

func TestQueue_OfferDropsWhenFull(t *testing.T) {
	q := NewQueue(2)

	assert.True(t, q.Offer("MA"))
	assert.True(t, q.Offer("ML"))
	assert.False(t, q.Offer("LO"))

	assert.Equal(t, []string{"MA", "ML"}, q.Drain(8))
	assert.Empty(t, q.Drain(8))
}

func TestQueue_DrainRespectsMax(t *testing.T) {
	q := NewQueue(4)
	q.Offer("MA")
	q.Offer("ML")
	q.Offer("LO")

	assert.Len(t, q.Drain(2), 2)
	assert.Len(t, q.Drain(2), 1)
}
