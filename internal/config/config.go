package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/rs/zerolog"

	"github.com/smartroom/controller/internal/model"
)

// GPIO holds the BCM pin assignments for the board. Pointers so a missing
// field is distinguishable from pin 0.
type GPIO struct {
	// buttons
	ModeButton  *int `json:"mode_button"`
	LightButton *int `json:"light_button"`
	NightButton *int `json:"night_button"`

	// outputs
	LED    *int `json:"led"`
	Buzzer *int `json:"buzzer"`
}

// Sensors points the drivers at the kernel sysfs entries for the probes.
type Sensors struct {
	TempBus     string `json:"temp_bus"`      // w1 slave directory, e.g. 28-00000a1b2c3d
	IIODeviceDir string `json:"iio_device_dir"` // e.g. /sys/bus/iio/devices/iio:device0
}

type Config struct {
	ConfigFile string
	LogLevel   zerolog.Level
	Sim        bool

	DarkThreshold    int    `json:"dark_threshold"`
	NightStartHour   int    `json:"night_start_hour"`
	NightEndHour     int    `json:"night_end_hour"`
	ReportIntervalMs uint64 `json:"report_interval_ms"`

	Temperature model.Bands `json:"temperature"`
	Humidity    model.Bands `json:"humidity"`

	MQTTBroker  string `json:"mqtt_broker"` // empty disables the bridge
	StatusTopic string `json:"status_topic"`
	CommandTopic string `json:"command_topic"`

	DDAgentAddr string   `json:"dd_agent_addr"` // empty disables metrics
	DDNamespace string   `json:"dd_namespace"`
	DDTags      []string `json:"dd_tags"`

	RecordFile string `json:"record_file"` // empty disables the recorder

	GPIO    GPIO    `json:"gpio"`
	Sensors Sensors `json:"sensors"`
}

func Load() Config {
	var cfg Config
	var logLevel string

	flag.StringVar(&cfg.ConfigFile, "config-file", "config.json", "Path to controller config file")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&cfg.Sim, "sim", false, "Run against simulated sensors and buttons instead of hardware")
	flag.Parse()

	cfg.LogLevel = parseLogLevel(logLevel)

	file, err := os.Open(cfg.ConfigFile)
	if err != nil {
		panic("Failed to load config file: " + err.Error())
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		panic("Failed to parse config file: " + err.Error())
	}

	cfg.applyDefaults()
	cfg.validate()
	return cfg
}

func parseLogLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (cfg *Config) applyDefaults() {
	if cfg.ReportIntervalMs == 0 {
		cfg.ReportIntervalMs = 1000
	}
	if cfg.DarkThreshold == 0 {
		cfg.DarkThreshold = 300
	}
	if cfg.StatusTopic == "" {
		cfg.StatusTopic = "smartroom/status"
	}
	if cfg.CommandTopic == "" {
		cfg.CommandTopic = "smartroom/cmd"
	}
	zero := model.Bands{}
	if cfg.Temperature == zero {
		cfg.Temperature = model.Bands{
			Warn: model.Band{Low: 18, High: 27},
			Crit: model.Band{Low: 12, High: 32},
		}
	}
	if cfg.Humidity == zero {
		cfg.Humidity = model.Bands{
			Warn: model.Band{Low: 30, High: 70},
			Crit: model.Band{Low: 20, High: 80},
		}
	}
}

func (cfg *Config) validate() {
	if !model.ValidReportInterval(cfg.ReportIntervalMs) {
		panic(fmt.Sprintf("report_interval_ms must be one of %v, got %d", model.ReportIntervals, cfg.ReportIntervalMs))
	}
	if cfg.NightStartHour < 0 || cfg.NightStartHour > 23 || cfg.NightEndHour < 0 || cfg.NightEndHour > 23 {
		panic(fmt.Sprintf("night window hours must be 0..23, got start=%d end=%d", cfg.NightStartHour, cfg.NightEndHour))
	}

	validateBands("temperature", cfg.Temperature)
	validateBands("humidity", cfg.Humidity)

	// Simulated hardware needs no pins.
	if !cfg.Sim {
		cfg.validateGPIO()
	}
}

// validateBands enforces the nesting the alarm evaluator assumes: the
// warning band sits inside the critical band.
func validateBands(name string, b model.Bands) {
	if b.Warn.Low >= b.Warn.High {
		panic(fmt.Sprintf("%s warn band is empty: [%v, %v]", name, b.Warn.Low, b.Warn.High))
	}
	if b.Crit.Low > b.Warn.Low || b.Warn.High > b.Crit.High {
		panic(fmt.Sprintf("%s warn band [%v, %v] must sit inside crit band [%v, %v]",
			name, b.Warn.Low, b.Warn.High, b.Crit.Low, b.Crit.High))
	}
}

func (cfg *Config) validateGPIO() {
	var (
		missingFields []string
		usedPins      = map[int]string{}
		conflicts     []string
	)

	v := reflect.ValueOf(cfg.GPIO)
	t := reflect.TypeOf(cfg.GPIO)

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldName := t.Field(i).Tag.Get("json")

		if field.IsNil() {
			missingFields = append(missingFields, "gpio."+fieldName)
			continue
		}

		pin := int(field.Elem().Int())
		if other, exists := usedPins[pin]; exists {
			conflicts = append(conflicts, fmt.Sprintf("gpio.%s and gpio.%s both use pin %d", fieldName, other, pin))
		} else {
			usedPins[pin] = fieldName
		}
	}

	if len(missingFields) > 0 {
		panic("Missing required GPIO config fields: " + strings.Join(missingFields, ", "))
	}
	if len(conflicts) > 0 {
		panic("Conflicting GPIO pins: " + strings.Join(conflicts, ", "))
	}
}
