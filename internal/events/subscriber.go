package events

import (
	"fmt"

	"github.com/nats-io/nats.go"
)

// Subscription is an active registration for one room topic; Unsubscribe
// releases it.
type Subscription struct {
	sub *nats.Subscription
}

func (s *Subscription) Unsubscribe() error {
	if s == nil || s.sub == nil {
		return nil
	}
	return s.sub.Unsubscribe()
}

// Subscriber lets a client register handlers for room change events.
type Subscriber struct {
	nc     *nats.Conn
	prefix string
}

func NewSubscriber(cfg Config) (*Subscriber, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	return &Subscriber{nc: nc, prefix: cfg.SubjectPrefix}, nil
}

func (s *Subscriber) Close() {
	if s == nil || s.nc == nil {
		return
	}
	s.nc.Close()
}

// Subscribe registers a handler for one room topic and returns the handle to
// drop it again.
func (s *Subscriber) Subscribe(roomID string, topic Topic, handler func(payload []byte)) (*Subscription, error) {
	sub, err := s.nc.Subscribe(Subject(s.prefix, roomID, topic), func(m *nats.Msg) {
		handler(m.Data)
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe to %s/%s: %w", roomID, topic, err)
	}
	return &Subscription{sub: sub}, nil
}
