// Package events is the typed change registry for rooms: every successful
// write is announced on a NATS subject keyed by room id and topic, replacing
// ad-hoc in-process listener maps with explicit subscribe/unsubscribe handles.
// Delivery is best-effort; the polling contract remains the source of truth.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

// Topic selects which of a room's records changed.
type Topic string

const (
	TopicGame    Topic = "game"
	TopicBuzzer  Topic = "buzzer"
	TopicPlayers Topic = "players"
)

type Config struct {
	URL           string
	SubjectPrefix string
	MaxReconnects int
	ReconnectWait time.Duration
}

func DefaultConfig() Config {
	return Config{
		URL:           nats.DefaultURL,
		SubjectPrefix: "huroof.rooms",
		MaxReconnects: -1, // Infinite
		ReconnectWait: 2 * time.Second,
	}
}

// Publisher fans room changes out over NATS. A nil Publisher is valid and
// drops everything, so the service runs without a broker.
type Publisher struct {
	nc     *nats.Conn
	prefix string
}

func NewPublisher(cfg Config) (*Publisher, error) {
	opts := []nats.Option{
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Error().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			log.Error().Err(err).Msg("NATS error")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	return &Publisher{nc: nc, prefix: cfg.SubjectPrefix}, nil
}

func (p *Publisher) Close() {
	if p == nil || p.nc == nil {
		return
	}
	p.nc.Close()
}

// Publish announces a change on the room's topic subject. Failures are logged
// and swallowed: a missed notification never fails the mutation behind it.
func (p *Publisher) Publish(roomID string, topic Topic, payload any) {
	if p == nil || p.nc == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Str("topic", string(topic)).Msg("failed to marshal event")
		return
	}
	if err := p.nc.Publish(Subject(p.prefix, roomID, topic), data); err != nil {
		log.Error().Err(err).Str("room_id", roomID).Str("topic", string(topic)).Msg("failed to publish event")
	}
}

// PublishGame announces a change to the room's game record.
func (p *Publisher) PublishGame(roomID string, payload any) {
	p.Publish(roomID, TopicGame, payload)
}

// PublishBuzzer announces a change to the room's buzzer state.
func (p *Publisher) PublishBuzzer(roomID string, payload any) {
	p.Publish(roomID, TopicBuzzer, payload)
}

// PublishPlayers announces a change to the room's player set.
func (p *Publisher) PublishPlayers(roomID string, payload any) {
	p.Publish(roomID, TopicPlayers, payload)
}

// Subject builds the NATS subject for a room topic.
func Subject(prefix, roomID string, topic Topic) string {
	return fmt.Sprintf("%s.%s.%s", prefix, roomID, topic)
}
