package broker

import (
	"encoding/json"
	"log"

	"github.com/nats-io/nats.go"
)

// Consumer subscribes to event subjects on behalf of in-process listeners.
type Consumer struct {
	conn *nats.Conn
	subs []*nats.Subscription
}

func NewConsumer(url string) (*Consumer, error) {
	conn, err := nats.Connect(url, nats.Name("daylist-stream"))
	if err != nil {
		return nil, err
	}
	return &Consumer{conn: conn}, nil
}

// Subscribe decodes each message on subject into an Event and hands it to
// handler. Malformed payloads are logged and dropped.
func (c *Consumer) Subscribe(subject string, handler func(*Event)) error {
	if c == nil || c.conn == nil {
		return nil
	}

	sub, err := c.conn.Subscribe(subject, func(msg *nats.Msg) {
		var event Event
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			log.Printf("Dropping malformed event on %s: %v", subject, err)
			return
		}
		handler(&event)
	})
	if err != nil {
		return err
	}

	c.subs = append(c.subs, sub)
	return nil
}

func (c *Consumer) Close() {
	if c == nil || c.conn == nil {
		return
	}
	for _, sub := range c.subs {
		if err := sub.Unsubscribe(); err != nil {
			log.Printf("Failed to unsubscribe from %s: %v", sub.Subject, err)
		}
	}
	c.conn.Close()
}
