// Package hw abstracts the board's sensors, buttons, and output devices.
// The real implementations sit on the kernel's w1/iio sysfs entries and the
// GPIO character device; the fakes allow testing and bench runs without
// hardware.
package hw

import (
	"time"

	"github.com/smartroom/controller/internal/model"
)

// SensorReader supplies one set of converted readings per sense cadence.
type SensorReader interface {
	Read() (model.Readings, error)
	Close() error
}

// ButtonLevels are the raw electrical levels, true = pressed.
type ButtonLevels struct {
	Mode  bool
	Light bool
	Night bool
}

// ButtonReader samples the three buttons every fast-cadence tick.
type ButtonReader interface {
	Read() (ButtonLevels, error)
	Close() error
}

// OutputDriver sets the room LED and the buzzer.
type OutputDriver interface {
	SetLED(on bool) error
	SetBuzzer(on bool) error
	Close() error
}

// TimeSource reads the wall clock. The RTC sync behind it is a driver
// concern; the core only consumes the result.
type TimeSource interface {
	Now() time.Time
}

// SystemTime is the default TimeSource.
type SystemTime struct{}

func (SystemTime) Now() time.Time {
	return time.Now()
}
