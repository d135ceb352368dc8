// Package alarm computes the combined alarm level from sensor readings
// against nested warning/critical bands.
package alarm

import "github.com/smartroom/controller/internal/model"

// Thresholds carries the per-metric band pairs. The warning band sits
// strictly inside the critical band; config validation enforces the nesting.
type Thresholds struct {
	Temperature model.Bands
	Humidity    model.Bands
}

// Evaluate recomputes the combined level from scratch. Critical if any
// metric breaches its critical band, else Warning if any breaches its
// warning band, else Normal. No latching: clearing the condition
// de-escalates on the next evaluation.
func Evaluate(t Thresholds, r model.Readings) model.AlarmLevel {
	level := metricLevel(t.Temperature, r.TempC)
	if h := metricLevel(t.Humidity, r.Humidity); h > level {
		level = h
	}
	return level
}

func metricLevel(b model.Bands, v float64) model.AlarmLevel {
	if b.Crit.Outside(v) {
		return model.AlarmCritical
	}
	if b.Warn.Outside(v) {
		return model.AlarmWarning
	}
	return model.AlarmNormal
}
