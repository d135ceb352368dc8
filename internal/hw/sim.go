package hw

import (
	"math"
	"time"

	"github.com/smartroom/controller/internal/model"
)

// SimSensors synthesizes slowly drifting readings for bench runs without
// hardware (-sim). Temperature and humidity follow slow sine waves around a
// comfortable setpoint; light follows the wall clock.
type SimSensors struct {
	start time.Time
	src   TimeSource
}

func NewSimSensors(src TimeSource) *SimSensors {
	return &SimSensors{start: src.Now(), src: src}
}

func (s *SimSensors) Read() (model.Readings, error) {
	now := s.src.Now()
	t := now.Sub(s.start).Seconds()

	light := 80
	if h := now.Hour(); h >= 7 && h < 20 {
		light = 700
	}

	return model.Readings{
		TempC:    21.5 + 4.0*math.Sin(t/120.0),
		Humidity: 45.0 + 12.0*math.Sin(t/300.0),
		Light:    light,
	}, nil
}

func (s *SimSensors) Close() error {
	return nil
}

// SimButtons never reports a press; the sim run is driven over MQTT/stdin.
type SimButtons struct{}

func (SimButtons) Read() (ButtonLevels, error) {
	return ButtonLevels{}, nil
}

func (SimButtons) Close() error {
	return nil
}

// LogOutputs is the -sim output driver; state changes only show up in the
// status feed and logs.
type LogOutputs struct{}

func (LogOutputs) SetLED(bool) error {
	return nil
}

func (LogOutputs) SetBuzzer(bool) error {
	return nil
}

func (LogOutputs) Close() error {
	return nil
}
