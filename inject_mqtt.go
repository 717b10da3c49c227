package main

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	mqttConnectTimeout = 10 * time.Second
	mqttPublishTimeout = 2 * time.Second
	mqttQuiesceMillis  = 250
)

type mqttKeyMessage struct {
	Key       string `json:"key"`
	Type      string `json:"type"`
	ScanCode  int    `json:"scan_code"`
	LinuxCode int    `json:"linux_code,omitempty"`
}

// publisher abstracts the MQTT client for testing
type publisher interface {
	Publish(topic string, payload []byte) error
	Disconnect()
}

type pahoPublisher struct {
	client mqtt.Client
}

func (p *pahoPublisher) Publish(topic string, payload []byte) error {
	token := p.client.Publish(topic, 0, false, payload)
	if !token.WaitTimeout(mqttPublishTimeout) {
		return fmt.Errorf("timed out publishing to %s", topic)
	}
	return token.Error()
}

func (p *pahoPublisher) Disconnect() {
	p.client.Disconnect(mqttQuiesceMillis)
}

// mqttInjector publishes key events for home automation consumers.
type mqttInjector struct {
	pub   publisher
	topic string
}

func newMQTTInjector(broker, clientID, topic string) (*mqttInjector, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectTimeout(mqttConnectTimeout)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(mqttConnectTimeout) {
		return nil, fmt.Errorf("timed out connecting to %s", broker)
	}
	if err := token.Error(); err != nil {
		return nil, err
	}
	return &mqttInjector{pub: &pahoPublisher{client: client}, topic: topic}, nil
}

func (m *mqttInjector) HandleExtendedKeyEvent(ev KeyEvent) error {
	msg := mqttKeyMessage{
		Key:      ev.Key.String(),
		Type:     ev.Type.String(),
		ScanCode: ev.ScanCode,
	}
	if code, ok := ev.Key.LinuxCode(); ok {
		msg.LinuxCode = code
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return m.pub.Publish(m.topic, payload)
}

func (m *mqttInjector) Close() error {
	m.pub.Disconnect()
	return nil
}
