package api

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bidwell/auctiond/core"
)

// CreateAuctionRequest is the wire form of an auction creation. The optional
// fields configure termination conditions; absent means not configured.
type CreateAuctionRequest struct {
	Owner       string `json:"owner"`
	Asset       string `json:"asset"`
	Title       string `json:"title"`
	Description string `json:"description"`

	Strategy      string           `json:"strategy"`
	FloorPrice    *decimal.Decimal `json:"floor_price,omitempty"`
	EndTime       int64            `json:"end_time"`
	StartingPrice decimal.Decimal  `json:"starting_price"`

	MaxBidCount          *uint32          `json:"max_bid_count,omitempty"`
	TargetPrice          *decimal.Decimal `json:"target_price,omitempty"`
	MaxInactivitySeconds *int64           `json:"max_inactivity_seconds,omitempty"`
	FixedSequenceNumber  *uint32          `json:"fixed_sequence_number,omitempty"`
	MinParticipants      *uint32          `json:"min_participants,omitempty"`
	MaxParticipants      *uint32          `json:"max_participants,omitempty"`
}

// ParseStrategy maps the wire strategy name onto the core configuration.
func (r *CreateAuctionRequest) ParseStrategy() (core.PricingStrategy, error) {
	switch r.Strategy {
	case "regular":
		return core.RegularStrategy(), nil
	case "reverse":
		return core.ReverseStrategy(), nil
	case "dutch":
		var floor decimal.Decimal
		if r.FloorPrice != nil {
			floor = *r.FloorPrice
		}
		return core.DutchStrategy(floor), nil
	default:
		return core.PricingStrategy{}, fmt.Errorf("unknown strategy %q", r.Strategy)
	}
}

// Conditions assembles the core conditions from the request.
func (r *CreateAuctionRequest) Conditions() (core.AuctionConditions, error) {
	strategy, err := r.ParseStrategy()
	if err != nil {
		return core.AuctionConditions{}, err
	}

	return core.AuctionConditions{
		Strategy:             strategy,
		EndTime:              r.EndTime,
		StartingPrice:        r.StartingPrice,
		MaxBidCount:          r.MaxBidCount,
		TargetPrice:          r.TargetPrice,
		MaxInactivitySeconds: r.MaxInactivitySeconds,
		FixedSequenceNumber:  r.FixedSequenceNumber,
		MinParticipants:      r.MinParticipants,
		MaxParticipants:      r.MaxParticipants,
	}, nil
}

type CreateAuctionResponse struct {
	AuctionID uint32 `json:"auction_id"`
}

type BidRequest struct {
	Bidder string          `json:"bidder"`
	Amount decimal.Decimal `json:"amount"`
}

// CallerRequest identifies the caller of cancel and end operations.
type CallerRequest struct {
	Caller string `json:"caller"`
}

type PriceResponse struct {
	AuctionID uint32          `json:"auction_id"`
	Price     decimal.Decimal `json:"price"`
}

type StatusResponse struct {
	AuctionID uint32 `json:"auction_id"`
	Status    string `json:"status"`
}
