package hw

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/smartroom/controller/internal/config"
	"github.com/smartroom/controller/internal/model"
)

// SysfsSensors reads temperature from a w1 slave and humidity/light from an
// IIO device, all through sysfs. Conversion to physical units follows the
// kernel's milli-unit conventions.
type SysfsSensors struct {
	tempFile     string
	humidityFile string
	lightFile    string
}

func NewSysfsSensors(cfg config.Sensors) *SysfsSensors {
	return &SysfsSensors{
		tempFile:     filepath.Join("/sys/bus/w1/devices", cfg.TempBus, "w1_slave"),
		humidityFile: filepath.Join(cfg.IIODeviceDir, "in_humidityrelative_input"),
		lightFile:    filepath.Join(cfg.IIODeviceDir, "in_illuminance_raw"),
	}
}

func (s *SysfsSensors) Read() (model.Readings, error) {
	temp, err := readW1Temp(s.tempFile)
	if err != nil {
		return model.Readings{}, fmt.Errorf("temperature: %w", err)
	}
	hum, err := readScaledMilli(s.humidityFile)
	if err != nil {
		return model.Readings{}, fmt.Errorf("humidity: %w", err)
	}
	light, err := readInt(s.lightFile)
	if err != nil {
		return model.Readings{}, fmt.Errorf("light: %w", err)
	}
	return model.Readings{TempC: temp, Humidity: hum, Light: light}, nil
}

func (s *SysfsSensors) Close() error {
	return nil
}

func readW1Temp(file string) (float64, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return 0, err
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) < 2 || !strings.Contains(lines[1], "t=") {
		return 0, fmt.Errorf("temperature data missing or malformed")
	}

	parts := strings.Split(lines[1], "t=")
	if len(parts) != 2 {
		return 0, fmt.Errorf("could not parse temperature line")
	}

	milliC, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("convert temperature: %w", err)
	}
	return float64(milliC) / 1000.0, nil
}

func readScaledMilli(file string) (float64, error) {
	v, err := readInt(file)
	if err != nil {
		return 0, err
	}
	return float64(v) / 1000.0, nil
}

func readInt(file string) (int, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", filepath.Base(file), err)
	}
	return v, nil
}
