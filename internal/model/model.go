package model

import "time"

type Mode string

const (
	ModeAuto   Mode = "AUTO"
	ModeManual Mode = "MANUAL"
)

// EditState is the night-schedule editor's position in its cycle. The editor
// only ever moves Off -> EditingStart -> EditingEnd -> Off.
type EditState string

const (
	EditOff          EditState = "off"
	EditEditingStart EditState = "editing_start"
	EditEditingEnd   EditState = "editing_end"
)

// AlarmLevel orders severities so the combined level is a plain max.
type AlarmLevel int

const (
	AlarmNormal AlarmLevel = iota
	AlarmWarning
	AlarmCritical
)

func (l AlarmLevel) String() string {
	switch l {
	case AlarmWarning:
		return "warning"
	case AlarmCritical:
		return "critical"
	default:
		return "normal"
	}
}

// NightWindow is the committed hour range during which automatic lighting is
// forced on. StartHour >= EndHour means the window crosses midnight.
type NightWindow struct {
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

// Contains reports whether the given hour falls inside the window:
// [start, end) same-day, or hour >= start OR hour < end when wrapping.
func (w NightWindow) Contains(hour int) bool {
	if w.StartHour < w.EndHour {
		return hour >= w.StartHour && hour < w.EndHour
	}
	return hour >= w.StartHour || hour < w.EndHour
}

// EditBuffer is the working copy of the night window during an edit. It is
// only committed when the editor completes its cycle.
type EditBuffer struct {
	DraftStart int
	DraftEnd   int
}

// WrapHour normalizes an hour into 0..23, wrapping in both directions.
func WrapHour(h int) int {
	return ((h % 24) + 24) % 24
}

// Band is an inclusive comfort range; a reading outside it breaches the band.
type Band struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

func (b Band) Outside(v float64) bool {
	return v < b.Low || v > b.High
}

// Bands pairs the warning band with the wider critical band for one metric.
type Bands struct {
	Warn Band `json:"warn"`
	Crit Band `json:"crit"`
}

// Readings is one sense-cadence sample of the physical sensors, already
// converted to physical units by the drivers.
type Readings struct {
	TempC    float64
	Humidity float64
	Light    int
}

type ButtonID string

const (
	ButtonMode  ButtonID = "mode"
	ButtonLight ButtonID = "light"
	ButtonNight ButtonID = "night"
)

// PressEvent is a single debounced press; releases never produce one.
type PressEvent struct {
	Button ButtonID
	AtMs   uint64
}

// Snapshot is the read-only aggregate view produced once per report cycle.
type Snapshot struct {
	Mode             Mode
	BaseOutput       bool
	LEDOn            bool
	BuzzerOn         bool
	AlarmLevel       AlarmLevel
	NightWindow      NightWindow
	ReportIntervalMs uint64
	Readings         Readings
	WallTime         time.Time
}

// ReportIntervals lists the selectable report cadence intervals in ms.
var ReportIntervals = []uint64{1000, 2500, 5000, 10000}

// ValidReportInterval reports whether ms is one of the selectable intervals.
func ValidReportInterval(ms uint64) bool {
	for _, v := range ReportIntervals {
		if v == ms {
			return true
		}
	}
	return false
}
