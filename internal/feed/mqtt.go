package feed

import (
	"fmt"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/smartroom/controller/internal/command"
)

// MQTTPublisher bridges the status feed onto an MQTT broker and feeds
// command tokens from the command topic into the control loop's queue.
type MQTTPublisher struct {
	client      paho.Client
	statusTopic string
}

// NewMQTTPublisher connects to the broker and, when cmds is non-nil,
// subscribes to cmdTopic. Incoming payloads run through the same bounded
// line assembly as the serial console.
func NewMQTTPublisher(broker, statusTopic, cmdTopic string, cmds *command.Queue) (*MQTTPublisher, error) {
	opts := paho.NewClientOptions().
		AddBroker(broker).
		SetClientID("smartroom-controller").
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second)

	client := paho.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("connection timeout")
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to broker: %w", err)
	}

	p := &MQTTPublisher{client: client, statusTopic: statusTopic}

	if cmds != nil {
		handler := func(_ paho.Client, msg paho.Message) {
			var lb command.LineBuffer
			payload := msg.Payload()
			if !strings.HasSuffix(string(payload), "\n") {
				payload = append(payload, '\n')
			}
			for _, line := range lb.Feed(payload) {
				if !cmds.Offer(line) {
					log.Warn().Str("line", line).Msg("Command queue full, dropping MQTT command")
				}
			}
		}
		if token := client.Subscribe(cmdTopic, 1, handler); token.Wait() && token.Error() != nil {
			client.Disconnect(250)
			return nil, fmt.Errorf("subscribe %s: %w", cmdTopic, token.Error())
		}
		log.Info().Str("topic", cmdTopic).Msg("Subscribed to MQTT command topic")
	}

	return p, nil
}

// Publish sends one status line, QoS 0: a lost sample is replaced by the
// next report cadence anyway.
func (p *MQTTPublisher) Publish(line string) error {
	token := p.client.Publish(p.statusTopic, 0, false, []byte(line))
	if !token.WaitTimeout(2 * time.Second) {
		return fmt.Errorf("publish timeout")
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}

func (p *MQTTPublisher) Close() error {
	p.client.Disconnect(250)
	return nil
}
