package engine

import (
	"log/slog"

	"github.com/shopspring/decimal"
)

// Event is an audit record emitted after a lifecycle operation commits.
// Topics and payloads mirror the persisted state transition; consumers must
// treat them as notifications, not as the source of truth.
type Event interface {
	Topic() string
}

// AuditLog receives audit events. Publishing happens after the state change
// has been persisted; a publish failure is logged but does not roll the
// operation back.
type AuditLog interface {
	Publish(event Event) error
}

type AuctionCreated struct {
	EventID   string `json:"event_id"`
	AuctionID uint32 `json:"auction_id"`
	Owner     string `json:"owner"`
	StartTime int64  `json:"start_time"`
	EndTime   int64  `json:"end_time"`
}

func (AuctionCreated) Topic() string { return "auction_created" }

type NewBidPlaced struct {
	EventID   string          `json:"event_id"`
	AuctionID uint32          `json:"auction_id"`
	Bidder    string          `json:"bidder"`
	BidAmount decimal.Decimal `json:"bid_amount"`
	Timestamp int64           `json:"timestamp"`

	// Digest lets consumers verify the record integrity offline.
	Digest string `json:"digest"`
}

func (NewBidPlaced) Topic() string { return "new_bid_placed" }

type AuctionCanceled struct {
	EventID   string `json:"event_id"`
	AuctionID uint32 `json:"auction_id"`
	Owner     string `json:"owner"`
	Timestamp int64  `json:"timestamp"`
}

func (AuctionCanceled) Topic() string { return "auction_canceled" }

type AuctionCompleted struct {
	EventID   string `json:"event_id"`
	AuctionID uint32 `json:"auction_id"`

	// Winner and FinalPrice are absent when the auction completed with no
	// bids.
	Winner     *string          `json:"winner,omitempty"`
	FinalPrice *decimal.Decimal `json:"final_price,omitempty"`

	Timestamp int64  `json:"timestamp"`
	Digest    string `json:"digest"`
}

func (AuctionCompleted) Topic() string { return "auction_completed" }

// SlogAudit writes audit events to a structured logger. The default sink
// when no broker is configured.
type SlogAudit struct {
	logger *slog.Logger
}

func NewSlogAudit(logger *slog.Logger) *SlogAudit {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAudit{logger: logger.With("pkg", "audit")}
}

func (s *SlogAudit) Publish(event Event) error {
	s.logger.Info(event.Topic(), "event", event)
	return nil
}
