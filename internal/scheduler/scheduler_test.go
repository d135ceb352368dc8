package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCadence_FiresOnSchedule(t *testing.T) {
	c := NewCadence(250, 0)

	assert.False(t, c.Due(100))
	assert.False(t, c.Due(249))
	assert.True(t, c.Due(250))

	c.Fire(250)
	assert.False(t, c.Due(400))
	assert.True(t, c.Due(500))
}

func TestCadence_RebaseAvoidsCatchUpBurst(t *testing.T) {
	c := NewCadence(1000, 0)

	// Loop stalls for 3.5 intervals; exactly one fire, then back on schedule
	// measured from the late fire.
	assert.True(t, c.TickDue(3500))
	assert.False(t, c.TickDue(3600))
	assert.False(t, c.TickDue(4499))
	assert.True(t, c.TickDue(4500))
}

func TestCadence_IndependentCadencesKeepTheirOwnSchedule(t *testing.T) {
	report := NewCadence(5000, 0)
	sense := NewCadence(SenseIntervalMs, 0)

	var reports, senses int
	// Simulate one minute of a 5 ms loop.
	for now := uint64(5); now <= 60_000; now += 5 {
		if sense.TickDue(now) {
			senses++
		}
		if report.TickDue(now) {
			reports++
		}
	}

	assert.InDelta(t, 60_000/5000, reports, 1)
	assert.InDelta(t, 60_000/SenseIntervalMs, senses, 1)
}

func TestCadence_WorksAcrossTimebaseWrap(t *testing.T) {
	start := ^uint64(0) - 100
	c := NewCadence(250, start)

	assert.False(t, c.Due(start+249)) // wrapped past zero
	assert.True(t, c.Due(start+250))
}

func TestCadence_SetIntervalKeepsAnchor(t *testing.T) {
	c := NewCadence(1000, 0)
	c.Fire(1000)

	c.SetInterval(2500)
	assert.False(t, c.Due(2000))
	assert.True(t, c.Due(3500))
}
