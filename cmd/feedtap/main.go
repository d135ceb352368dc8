// feedtap is a bench utility: it subscribes to the controller's MQTT status
// topic and prints each report line, and can optionally publish a single
// command token first. Useful when the board's serial console is busy.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	broker := flag.String("broker", "tcp://localhost:1883", "MQTT broker URL")
	statusTopic := flag.String("status-topic", "smartroom/status", "Status topic to print")
	cmdTopic := flag.String("cmd-topic", "smartroom/cmd", "Command topic")
	send := flag.String("send", "", "Command token to publish before tapping (e.g. ML, LO, I2)")
	flag.Parse()

	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	opts := paho.NewClientOptions().
		AddBroker(*broker).
		SetClientID(fmt.Sprintf("smartroom-feedtap-%d", os.Getpid()))

	client := paho.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		log.Fatal().Msg("Broker connection timeout")
	}
	if err := token.Error(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to broker")
	}
	defer client.Disconnect(250)

	if *send != "" {
		if token := client.Publish(*cmdTopic, 1, false, []byte(*send)); token.Wait() && token.Error() != nil {
			log.Fatal().Err(token.Error()).Str("token", *send).Msg("Failed to publish command")
		}
		log.Info().Str("token", *send).Msg("Command published")
	}

	handler := func(_ paho.Client, msg paho.Message) {
		fmt.Print(string(msg.Payload()))
	}
	if token := client.Subscribe(*statusTopic, 0, handler); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("Failed to subscribe to status topic")
	}
	log.Info().Str("topic", *statusTopic).Msg("Tapping status feed, Ctrl-C to stop")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
}
