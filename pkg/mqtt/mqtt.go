// Package mqtt publishes bot telemetry to an MQTT broker: moderation
// audit events and periodic heartbeats consumed by the network panel.
package mqtt

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/logger"
	"github.com/google/uuid"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Topics consumed by the DarkMC network panel
const (
	TopicAudit     = "darkmc/audit"
	TopicHeartbeat = "darkmc/heartbeat"
)

// AuditEvent is one moderation or economy action published to the broker
type AuditEvent struct {
	GuildID   string `json:"guildId"`
	Line      string `json:"line"`
	Timestamp int64  `json:"timestamp"`
}

// Heartbeat is the periodic liveness message
type Heartbeat struct {
	ClientID  string `json:"clientId"`
	Guilds    int    `json:"guilds"`
	Timestamp int64  `json:"timestamp"`
}

// MqttCommunicator handles MQTT communication
type MqttCommunicator struct {
	client   mqtt.Client
	clientID string

	stopHeartbeat chan struct{}
	stopOnce      sync.Once
}

var (
	communicator *MqttCommunicator
	once         sync.Once
)

// Init initializes the global MQTT communicator
func Init(host, port, username, password, clientID string) *MqttCommunicator {
	once.Do(func() {
		communicator = NewMqttCommunicator(host, port, username, password, clientID)
	})
	return communicator
}

// Get returns the global MQTT communicator, nil when MQTT is not configured
func Get() *MqttCommunicator {
	return communicator
}

// NewMqttCommunicator creates a new MQTT communicator
func NewMqttCommunicator(host, port, username, password, clientID string) *MqttCommunicator {
	mc := &MqttCommunicator{
		clientID:      clientID,
		stopHeartbeat: make(chan struct{}),
	}

	uniqueID := fmt.Sprintf("%s_%s", clientID, uuid.New().String())

	opts := mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%s", host, port)).
		SetClientID(uniqueID).
		SetUsername(username).
		SetPassword(password).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetOnConnectHandler(func(c mqtt.Client) {
			logger.Success(fmt.Sprintf("Conectado al broker MQTT como %s", clientID), "MQTT")
		}).
		SetConnectionLostHandler(func(c mqtt.Client, err error) {
			logger.Error(fmt.Sprintf("Conexión MQTT perdida: %v", err), "MQTT")
		})

	mc.client = mqtt.NewClient(opts)

	token := mc.client.Connect()
	if token.Wait() && token.Error() != nil {
		logger.Error(fmt.Sprintf("Error de conexión MQTT: %v", token.Error()), "MQTT")
	}

	return mc
}

// Destroy stops the heartbeat and closes the MQTT connection
func (mc *MqttCommunicator) Destroy() {
	mc.stopOnce.Do(func() { close(mc.stopHeartbeat) })

	if mc.client != nil && mc.client.IsConnected() {
		mc.client.Disconnect(250)
		logger.System("Conexión MQTT cerrada exitosamente.", "MQTT")
	} else {
		logger.Warn("El cliente MQTT no estaba conectado, no se necesita cerrar.", "MQTT")
	}
}

// IsConnected returns true if connected to the broker
func (mc *MqttCommunicator) IsConnected() bool {
	return mc.client != nil && mc.client.IsConnected()
}

// Publish sends a message to a topic
func (mc *MqttCommunicator) Publish(topic string, payload interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	token := mc.client.Publish(topic, 0, false, jsonData)
	token.Wait()
	return token.Error()
}

// PublishAudit publishes one audit line. Failures are logged, never
// surfaced: telemetry must not interfere with the action itself.
func (mc *MqttCommunicator) PublishAudit(guildID, line string) {
	event := AuditEvent{
		GuildID:   guildID,
		Line:      line,
		Timestamp: time.Now().Unix(),
	}
	if err := mc.Publish(TopicAudit, event); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo publicar evento de auditoría: %v", err), "MQTT")
	}
}

// StartHeartbeat publishes a liveness message every interval until
// Destroy is called. guilds reports the current guild count.
func (mc *MqttCommunicator) StartHeartbeat(interval time.Duration, guilds func() int) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				beat := Heartbeat{
					ClientID:  mc.clientID,
					Guilds:    guilds(),
					Timestamp: time.Now().Unix(),
				}
				if err := mc.Publish(TopicHeartbeat, beat); err != nil {
					logger.Warn(fmt.Sprintf("No se pudo publicar heartbeat: %v", err), "MQTT")
				}
			case <-mc.stopHeartbeat:
				return
			}
		}
	}()
}

// Subscribe subscribes to a topic with a message handler
func (mc *MqttCommunicator) Subscribe(topic string, handler func(topic string, payload []byte)) error {
	token := mc.client.Subscribe(topic, 0, func(c mqtt.Client, msg mqtt.Message) {
		handler(msg.Topic(), msg.Payload())
	})
	token.Wait()
	return token.Error()
}

// Unsubscribe unsubscribes from a topic
func (mc *MqttCommunicator) Unsubscribe(topic string) error {
	token := mc.client.Unsubscribe(topic)
	token.Wait()
	return token.Error()
}
