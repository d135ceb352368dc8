// Package controller runs the cooperative control loop. Every iteration is
// one Tick: drain pending commands, poll the buttons, drive the output
// signals, and fire the slower sense and report cadences when due. All state
// mutation happens inside Tick on the loop goroutine; the transports only
// ever touch the command queue.
package controller

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/smartroom/controller/internal/alarm"
	"github.com/smartroom/controller/internal/clock"
	"github.com/smartroom/controller/internal/command"
	"github.com/smartroom/controller/internal/config"
	"github.com/smartroom/controller/internal/display"
	"github.com/smartroom/controller/internal/feed"
	"github.com/smartroom/controller/internal/hw"
	"github.com/smartroom/controller/internal/input"
	"github.com/smartroom/controller/internal/metrics"
	"github.com/smartroom/controller/internal/model"
	"github.com/smartroom/controller/internal/modecontrol"
	"github.com/smartroom/controller/internal/nighteditor"
	"github.com/smartroom/controller/internal/recorder"
	"github.com/smartroom/controller/internal/scheduler"
	"github.com/smartroom/controller/internal/signaling"
	"github.com/smartroom/controller/internal/state"
)

// commandDrainMax bounds how many queued command lines one tick applies, so
// a chatty transport cannot starve the cadences.
const commandDrainMax = 8

// Deps are the controller's effectful collaborators. Recorder may be nil.
type Deps struct {
	Sensors  hw.SensorReader
	Buttons  hw.ButtonReader
	Outputs  hw.OutputDriver
	Time     hw.TimeSource
	Pub      feed.Publisher
	Commands *command.Queue
	Recorder *recorder.Recorder
}

type Controller struct {
	st    *state.SystemState
	ed    *nighteditor.Editor
	blink *display.Blink

	modeBtn  *input.Button
	lightBtn *input.Button
	nightBtn *input.Button

	led    *signaling.Signal
	buzzer *signaling.Signal

	sense  *scheduler.Cadence
	report *scheduler.Cadence

	thresholds    alarm.Thresholds
	darkThreshold int

	deps Deps

	frame  display.Frame
	pushed bool // outputs written to the driver at least once
}

func New(cfg *config.Config, st *state.SystemState, deps Deps, nowMs uint64) *Controller {
	return &Controller{
		st:       st,
		ed:       nighteditor.New(),
		blink:    &display.Blink{},
		modeBtn:  input.NewButton(model.ButtonMode),
		lightBtn: input.NewButton(model.ButtonLight),
		nightBtn: input.NewButton(model.ButtonNight),
		led:      signaling.NewLED(),
		buzzer:   signaling.NewBuzzer(),
		sense:    scheduler.NewCadence(scheduler.SenseIntervalMs, nowMs),
		report:   scheduler.NewCadence(st.ReportIntervalMs, nowMs),
		thresholds: alarm.Thresholds{
			Temperature: cfg.Temperature,
			Humidity:    cfg.Humidity,
		},
		darkThreshold: cfg.DarkThreshold,
		deps:          deps,
	}
}

// Tick runs one loop iteration at the given timebase value.
func (c *Controller) Tick(nowMs uint64) {
	c.applyCommands()
	c.pollButtons(nowMs)

	if c.sense.TickDue(nowMs) {
		c.senseAndEvaluate(nowMs)
	}

	c.driveOutputs(nowMs)

	// Command tokens and config both set the interval on the state; the
	// cadence follows it without disturbing the fire anchor.
	if c.report.IntervalMs() != c.st.ReportIntervalMs {
		c.report.SetInterval(c.st.ReportIntervalMs)
	}
	if c.report.TickDue(nowMs) {
		c.publishReport()
	}
}

// Run drives Tick from a wall-clock ticker until the context is cancelled.
func (c *Controller) Run(ctx context.Context, tickEvery time.Duration, millis clock.Millis) {
	ticker := time.NewTicker(tickEvery)
	defer ticker.Stop()

	log.Info().Dur("tick_every", tickEvery).Msg("Control loop started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Control loop stopped")
			return
		case <-ticker.C:
			c.Tick(millis())
		}
	}
}

// Frame returns the render input assembled by the last sense cycle.
func (c *Controller) Frame() display.Frame {
	return c.frame
}

func (c *Controller) applyCommands() {
	if c.deps.Commands == nil {
		return
	}
	for _, line := range c.deps.Commands.Drain(commandDrainMax) {
		command.Apply(line, c.st)
	}
}

func (c *Controller) pollButtons(nowMs uint64) {
	levels, err := c.deps.Buttons.Read()
	if err != nil {
		log.Warn().Err(err).Msg("Button read failed")
		return
	}
	if ev := c.modeBtn.Poll(levels.Mode, nowMs); ev != nil {
		c.handlePress(*ev)
	}
	if ev := c.lightBtn.Poll(levels.Light, nowMs); ev != nil {
		c.handlePress(*ev)
	}
	if ev := c.nightBtn.Poll(levels.Night, nowMs); ev != nil {
		c.handlePress(*ev)
	}
}

// handlePress routes one debounced press. The night button always drives the
// editor; while the editor is open it owns the other two buttons as
// decrement (mode) and increment (light).
func (c *Controller) handlePress(ev model.PressEvent) {
	metrics.Count("button.press", 1, "button:"+string(ev.Button))

	if ev.Button == model.ButtonNight {
		if w := c.ed.Advance(c.st.NightWindow); w != nil {
			c.st.NightWindow = *w
		}
		if c.ed.Editing() {
			c.blink.ResetPhase(ev.AtMs)
		}
		return
	}

	if c.ed.Editing() {
		switch ev.Button {
		case model.ButtonMode:
			c.ed.Decrement()
		case model.ButtonLight:
			c.ed.Increment()
		}
		c.blink.ResetPhase(ev.AtMs)
		return
	}

	switch ev.Button {
	case model.ButtonMode:
		if c.st.Mode == model.ModeAuto {
			c.st.SetMode(model.ModeManual)
		} else {
			c.st.SetMode(model.ModeAuto)
		}
	case model.ButtonLight:
		if c.st.Mode == model.ModeManual {
			c.st.ManualLED = !c.st.ManualLED
			log.Info().Bool("on", c.st.ManualLED).Msg("Manual light toggled")
		}
	}
}

func (c *Controller) senseAndEvaluate(nowMs uint64) {
	readings, err := c.deps.Sensors.Read()
	if err != nil {
		// Keep the previous readings and alarm level for this cycle.
		log.Warn().Err(err).Msg("Sensor read failed")
		return
	}

	c.st.Readings = readings
	c.st.WallTime = c.deps.Time.Now()

	level := alarm.Evaluate(c.thresholds, readings)
	if level != c.st.AlarmLevel {
		log.Info().
			Str("from", c.st.AlarmLevel.String()).
			Str("to", level.String()).
			Float64("temp_c", readings.TempC).
			Float64("humidity", readings.Humidity).
			Msg("Alarm level changed")
		metrics.Count("alarm.transition", 1, "to:"+level.String())
	}
	c.st.AlarmLevel = level

	dark := modecontrol.AmbientDark(readings.Light, c.darkThreshold)
	night := c.st.NightWindow.Contains(c.st.WallTime.Hour())
	c.st.BaseOutput = modecontrol.BaseOutput(c.st.Mode, c.st.ManualLED, dark, night)

	metrics.Gauge("sensor.temp_c", readings.TempC)
	metrics.Gauge("sensor.humidity_pct", readings.Humidity)
	metrics.Gauge("sensor.light_raw", float64(readings.Light))
	metrics.Gauge("alarm.level", float64(level))

	c.frame = display.BuildFrame(c.st, c.ed, c.blink, nowMs)
}

func (c *Controller) driveOutputs(nowMs uint64) {
	ledOn := c.led.Tick(c.st.AlarmLevel, c.st.BaseOutput, nowMs)
	buzzOn := c.buzzer.Tick(c.st.AlarmLevel, false, nowMs)

	if !c.pushed || ledOn != c.st.LEDOn {
		if err := c.deps.Outputs.SetLED(ledOn); err != nil {
			log.Warn().Err(err).Msg("LED write failed")
		}
	}
	if !c.pushed || buzzOn != c.st.BuzzerOn {
		if err := c.deps.Outputs.SetBuzzer(buzzOn); err != nil {
			log.Warn().Err(err).Msg("Buzzer write failed")
		}
	}
	c.pushed = true
	c.st.LEDOn = ledOn
	c.st.BuzzerOn = buzzOn
}

func (c *Controller) publishReport() {
	snap := c.st.Snapshot()
	line := feed.FormatStatusLine(snap)

	if err := c.deps.Pub.Publish(line); err != nil {
		log.Warn().Err(err).Msg("Status publish failed")
	}
	metrics.Count("feed.report", 1)

	if c.deps.Recorder != nil {
		if err := c.deps.Recorder.Record(snap, c.deps.Time.Now()); err != nil {
			log.Warn().Err(err).Msg("Telemetry record failed")
		}
	}
}
