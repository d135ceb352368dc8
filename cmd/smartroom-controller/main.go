package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/smartroom/controller/internal/clock"
	"github.com/smartroom/controller/internal/command"
	"github.com/smartroom/controller/internal/config"
	"github.com/smartroom/controller/internal/controller"
	"github.com/smartroom/controller/internal/feed"
	"github.com/smartroom/controller/internal/hw"
	"github.com/smartroom/controller/internal/logging"
	"github.com/smartroom/controller/internal/metrics"
	"github.com/smartroom/controller/internal/recorder"
	"github.com/smartroom/controller/internal/state"
)

// tickEvery paces the control loop. 5 ms keeps the debounce and warning
// toggle timings comfortably oversampled.
const tickEvery = 5 * time.Millisecond

func main() {
	cfg := config.Load()
	logging.Init(cfg.LogLevel)
	metrics.Init(cfg.DDAgentAddr, cfg.DDNamespace, cfg.DDTags)

	log.Info().Bool("sim", cfg.Sim).Msg("Starting smartroom controller")

	timeSrc := hw.SystemTime{}

	var (
		sensors hw.SensorReader
		buttons hw.ButtonReader
		outputs hw.OutputDriver
		err     error
	)
	if cfg.Sim {
		sensors = hw.NewSimSensors(timeSrc)
		buttons = hw.SimButtons{}
		outputs = hw.LogOutputs{}
	} else {
		sensors = hw.NewSysfsSensors(cfg.Sensors)
		if buttons, err = hw.NewGpiodButtons(cfg.GPIO); err != nil {
			log.Fatal().Err(err).Msg("Failed to acquire button lines")
		}
		if outputs, err = hw.NewGpiodOutputs(cfg.GPIO); err != nil {
			buttons.Close()
			log.Fatal().Err(err).Msg("Failed to acquire output lines")
		}
	}
	defer sensors.Close()
	defer buttons.Close()
	defer outputs.Close()

	cmds := command.NewQueue(64)
	go readConsole(cmds)

	publishers := feed.MultiPublisher{feed.NewWriterPublisher(os.Stdout)}
	if cfg.MQTTBroker != "" {
		mq, err := feed.NewMQTTPublisher(cfg.MQTTBroker, cfg.StatusTopic, cfg.CommandTopic, cmds)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect MQTT bridge")
		}
		publishers = append(publishers, mq)
	}
	defer publishers.Close()

	var rec *recorder.Recorder
	if cfg.RecordFile != "" {
		if rec, err = recorder.Open(cfg.RecordFile); err != nil {
			log.Fatal().Err(err).Msg("Failed to open telemetry recording")
		}
		defer rec.Close()
	}

	millis := clock.System()
	st := state.New(&cfg)
	ctl := controller.New(&cfg, st, controller.Deps{
		Sensors:  sensors,
		Buttons:  buttons,
		Outputs:  outputs,
		Time:     timeSrc,
		Pub:      publishers,
		Commands: cmds,
		Recorder: rec,
	}, millis())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctl.Run(ctx, tickEvery, millis)
}

// readConsole feeds command lines from stdin into the loop's queue. Stdin is
// the serial console when the controller runs under getty.
func readConsole(cmds *command.Queue) {
	var lb command.LineBuffer
	buf := make([]byte, 64)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			for _, line := range lb.Feed(buf[:n]) {
				if !cmds.Offer(line) {
					log.Warn().Str("line", line).Msg("Command queue full, dropping console command")
				}
			}
		}
		if err != nil {
			log.Debug().Err(err).Msg("Console input closed")
			return
		}
	}
}
