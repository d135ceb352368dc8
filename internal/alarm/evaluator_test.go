package alarm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartroom/controller/internal/model"
)

// Default bands: temperature warn [18,27] crit [12,32], humidity warn
// [30,70] crit [20,80].
var thresholds = Thresholds{
	Temperature: model.Bands{
		Warn: model.Band{Low: 18, High: 27},
		Crit: model.Band{Low: 12, High: 32},
	},
	Humidity: model.Bands{
		Warn: model.Band{Low: 30, High: 70},
		Crit: model.Band{Low: 20, High: 80},
	},
}

func TestEvaluate_TemperatureLevels(t *testing.T) {
	tests := []struct {
		name  string
		tempC float64
		want  model.AlarmLevel
	}{
		{"Far below critical low", 11.0, model.AlarmCritical},
		{"Between crit low and warn low", 15.0, model.AlarmWarning},
		{"Comfortable", 20.0, model.AlarmNormal},
		{"Between warn high and crit high", 29.0, model.AlarmWarning},
		{"Above critical high", 33.0, model.AlarmCritical},
		{"Exactly at warn low", 18.0, model.AlarmNormal},
		{"Just below warn low", 17.9, model.AlarmWarning},
		{"Exactly at crit low", 12.0, model.AlarmWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(thresholds, model.Readings{TempC: tt.tempC, Humidity: 50})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_TemperatureCriticalIndependentOfHumidity(t *testing.T) {
	// Temperature alone drives Critical even with perfect humidity.
	got := Evaluate(thresholds, model.Readings{TempC: 11.0, Humidity: 50})
	assert.Equal(t, model.AlarmCritical, got)
}

func TestEvaluate_CombinedLevelIsMaxSeverity(t *testing.T) {
	// Humidity warning + temperature normal -> Warning.
	got := Evaluate(thresholds, model.Readings{TempC: 22, Humidity: 75})
	assert.Equal(t, model.AlarmWarning, got)

	// Humidity critical trumps temperature warning.
	got = Evaluate(thresholds, model.Readings{TempC: 15, Humidity: 85})
	assert.Equal(t, model.AlarmCritical, got)
}

func TestEvaluate_NoLatching(t *testing.T) {
	// Same thresholds, fresh evaluation each call: a reading back inside the
	// bands immediately de-escalates.
	assert.Equal(t, model.AlarmCritical, Evaluate(thresholds, model.Readings{TempC: 10, Humidity: 50}))
	assert.Equal(t, model.AlarmNormal, Evaluate(thresholds, model.Readings{TempC: 21, Humidity: 50}))
}
