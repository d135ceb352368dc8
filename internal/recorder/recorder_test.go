package recorder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartroom/controller/internal/model"
)

func TestRecorder_RoundTrip(t *testing.T) {
	r, err := Open(":memory:")
	require.NoError(t, err)
	defer r.Close()

	snap := model.Snapshot{
		Mode:             model.ModeManual,
		LEDOn:            true,
		AlarmLevel:       model.AlarmWarning,
		NightWindow:      model.NightWindow{StartHour: 22, EndHour: 6},
		ReportIntervalMs: 2500,
		Readings:         model.Readings{TempC: 16.2, Humidity: 41.0, Light: 230},
		WallTime:         time.Date(2026, 3, 14, 14, 3, 22, 0, time.UTC),
	}

	require.NoError(t, r.Record(snap, time.Now()))
	require.NoError(t, r.Record(snap, time.Now()))

	var count int
	var temp float64
	var alarm, mode, session string
	row := r.db.QueryRow(`SELECT COUNT(*), temp_c, alarm, mode, session_id FROM readings`)
	require.NoError(t, row.Scan(&count, &temp, &alarm, &mode, &session))

	assert.Equal(t, 2, count)
	assert.Equal(t, 16.2, temp)
	assert.Equal(t, "warning", alarm)
	assert.Equal(t, "MANUAL", mode)
	assert.Equal(t, r.SessionID(), session)
}

func TestRecorder_SessionIDsDiffer(t *testing.T) {
	a, err := Open(":memory:")
	require.NoError(t, err)
	defer a.Close()

	b, err := Open(":memory:")
	require.NoError(t, err)
	defer b.Close()

	assert.NotEqual(t, a.SessionID(), b.SessionID())
}
