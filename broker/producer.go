package broker

import (
	"encoding/json"
	"log"

	"github.com/nats-io/nats.go"
)

// Producer publishes domain events to NATS. A nil Producer is a valid
// no-op, so callers degrade gracefully when the broker is unavailable.
type Producer struct {
	conn *nats.Conn
}

func NewProducer(url string) (*Producer, error) {
	conn, err := nats.Connect(url, nats.Name("daylist-api"))
	if err != nil {
		return nil, err
	}
	log.Println("NATS producer initialized")
	return &Producer{conn: conn}, nil
}

func (p *Producer) Publish(subject string, event *Event) error {
	if p == nil || p.conn == nil {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.conn.Publish(subject, data)
}

func (p *Producer) Close() {
	if p == nil || p.conn == nil {
		return
	}
	if err := p.conn.Drain(); err != nil {
		log.Printf("Failed to drain NATS connection: %v", err)
	}
}
