package hw

import (
	"errors"
	"time"

	"github.com/smartroom/controller/internal/model"
)

// FakeSensors is a test double that returns scripted readings.
type FakeSensors struct {
	// Samples are consumed one per Read; the last sample repeats once
	// exhausted.
	Samples []model.Readings

	// ReadError, if set, is returned by Read.
	ReadError error

	index  int
	Closed bool
}

func (f *FakeSensors) Read() (model.Readings, error) {
	if f.ReadError != nil {
		return model.Readings{}, f.ReadError
	}
	if len(f.Samples) == 0 {
		return model.Readings{}, errors.New("no samples configured")
	}
	r := f.Samples[f.index]
	if f.index < len(f.Samples)-1 {
		f.index++
	}
	return r, nil
}

func (f *FakeSensors) Close() error {
	f.Closed = true
	return nil
}

// FakeButtons returns scripted raw button levels.
type FakeButtons struct {
	Levels ButtonLevels
	Closed bool
}

func (f *FakeButtons) Read() (ButtonLevels, error) {
	return f.Levels, nil
}

func (f *FakeButtons) Close() error {
	f.Closed = true
	return nil
}

// FakeOutputs records every output change.
type FakeOutputs struct {
	LED    bool
	Buzzer bool

	LEDChanges    int
	BuzzerChanges int
	Closed        bool
}

func (f *FakeOutputs) SetLED(on bool) error {
	if f.LED != on {
		f.LEDChanges++
	}
	f.LED = on
	return nil
}

func (f *FakeOutputs) SetBuzzer(on bool) error {
	if f.Buzzer != on {
		f.BuzzerChanges++
	}
	f.Buzzer = on
	return nil
}

func (f *FakeOutputs) Close() error {
	f.Closed = true
	return nil
}

// FixedTime is a TimeSource pinned to a settable instant.
type FixedTime struct {
	T time.Time
}

func (f *FixedTime) Now() time.Time {
	return f.T
}
