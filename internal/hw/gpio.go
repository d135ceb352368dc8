package hw

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"

	"github.com/smartroom/controller/internal/config"
)

const chipName = "gpiochip0"

// GpiodButtons reads the three buttons through the GPIO character device.
// Buttons are wired active-low with the internal pull-up.
type GpiodButtons struct {
	mode  *gpiocdev.Line
	light *gpiocdev.Line
	night *gpiocdev.Line
}

func NewGpiodButtons(cfg config.GPIO) (*GpiodButtons, error) {
	b := &GpiodButtons{}
	var err error

	if b.mode, err = requestInput(*cfg.ModeButton); err != nil {
		return nil, fmt.Errorf("mode button: %w", err)
	}
	if b.light, err = requestInput(*cfg.LightButton); err != nil {
		b.Close()
		return nil, fmt.Errorf("light button: %w", err)
	}
	if b.night, err = requestInput(*cfg.NightButton); err != nil {
		b.Close()
		return nil, fmt.Errorf("night button: %w", err)
	}
	return b, nil
}

func requestInput(pin int) (*gpiocdev.Line, error) {
	return gpiocdev.RequestLine(chipName, pin,
		gpiocdev.AsInput,
		gpiocdev.WithPullUp,
		gpiocdev.WithConsumer("smartroom-controller"))
}

func (b *GpiodButtons) Read() (ButtonLevels, error) {
	var levels ButtonLevels
	for _, probe := range []struct {
		line *gpiocdev.Line
		dst  *bool
	}{
		{b.mode, &levels.Mode},
		{b.light, &levels.Light},
		{b.night, &levels.Night},
	} {
		v, err := probe.line.Value()
		if err != nil {
			return ButtonLevels{}, fmt.Errorf("read button line: %w", err)
		}
		*probe.dst = v == 0 // active low
	}
	return levels, nil
}

func (b *GpiodButtons) Close() error {
	for _, line := range []*gpiocdev.Line{b.mode, b.light, b.night} {
		if line != nil {
			line.Close()
		}
	}
	return nil
}

// GpiodOutputs drives the LED and buzzer lines, active high.
type GpiodOutputs struct {
	led    *gpiocdev.Line
	buzzer *gpiocdev.Line
}

func NewGpiodOutputs(cfg config.GPIO) (*GpiodOutputs, error) {
	led, err := gpiocdev.RequestLine(chipName, *cfg.LED,
		gpiocdev.AsOutput(0),
		gpiocdev.WithConsumer("smartroom-controller"))
	if err != nil {
		return nil, fmt.Errorf("led line: %w", err)
	}
	buzzer, err := gpiocdev.RequestLine(chipName, *cfg.Buzzer,
		gpiocdev.AsOutput(0),
		gpiocdev.WithConsumer("smartroom-controller"))
	if err != nil {
		led.Close()
		return nil, fmt.Errorf("buzzer line: %w", err)
	}
	return &GpiodOutputs{led: led, buzzer: buzzer}, nil
}

func (o *GpiodOutputs) SetLED(on bool) error {
	return o.led.SetValue(levelValue(on))
}

func (o *GpiodOutputs) SetBuzzer(on bool) error {
	return o.buzzer.SetValue(levelValue(on))
}

func (o *GpiodOutputs) Close() error {
	// Leave both outputs off.
	o.led.SetValue(0)
	o.buzzer.SetValue(0)
	o.led.Close()
	o.buzzer.Close()
	return nil
}

func levelValue(on bool) int {
	if on {
		return 1
	}
	return 0
}
