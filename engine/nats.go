package engine

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

const auditSubjectPrefix = "auction.events."

// NATSAudit publishes audit events to a NATS subject per topic, e.g.
// auction.events.new_bid_placed. Downstream consumers (archival, broadcast)
// subscribe with auction.events.*.
type NATSAudit struct {
	conn *nats.Conn
}

func NewNATSAudit(url string) (*NATSAudit, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSAudit{conn: conn}, nil
}

func (n *NATSAudit) Publish(event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode audit event: %w", err)
	}
	if err := n.conn.Publish(auditSubjectPrefix+event.Topic(), data); err != nil {
		return fmt.Errorf("failed to publish audit event: %w", err)
	}
	return nil
}

func (n *NATSAudit) Close() {
	n.conn.Close()
}
