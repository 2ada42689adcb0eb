package core

import (
	"github.com/shopspring/decimal"
)

// Status tracks the lifecycle of an auction. Transitions are one-way:
// Active -> Cancelled or Active -> Completed.
type Status int

const (
	StatusActive Status = iota
	StatusCancelled
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusCancelled:
		return "cancelled"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// StrategyKind selects the pricing rule applied to incoming bids.
type StrategyKind int

const (
	// StrategyRegular is an ascending-price auction: each bid must exceed
	// the current best bid, highest bid wins.
	StrategyRegular StrategyKind = iota

	// StrategyReverse is a descending-price auction: each bid must undercut
	// the current best bid, lowest bid wins.
	StrategyReverse

	// StrategyDutch accepts a single bid matching a linearly decaying offer
	// price that falls from the starting price to a floor price.
	StrategyDutch
)

func (k StrategyKind) String() string {
	switch k {
	case StrategyRegular:
		return "regular"
	case StrategyReverse:
		return "reverse"
	case StrategyDutch:
		return "dutch"
	default:
		return "unknown"
	}
}

// PricingStrategy is the strategy configuration attached to an auction.
// FloorPrice is meaningful for Dutch auctions only.
type PricingStrategy struct {
	Kind       StrategyKind    `json:"kind"`
	FloorPrice decimal.Decimal `json:"floor_price"`
}

func RegularStrategy() PricingStrategy {
	return PricingStrategy{Kind: StrategyRegular}
}

func ReverseStrategy() PricingStrategy {
	return PricingStrategy{Kind: StrategyReverse}
}

func DutchStrategy(floorPrice decimal.Decimal) PricingStrategy {
	return PricingStrategy{Kind: StrategyDutch, FloorPrice: floorPrice}
}

// ItemMetadata describes the item being sold. Immutable after creation.
type ItemMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AuctionConditions is the full auction configuration, set once at creation.
// The optional fields are termination triggers: nil means "not configured",
// and a configured bound must be positive.
type AuctionConditions struct {
	Strategy      PricingStrategy `json:"strategy"`
	EndTime       int64           `json:"end_time"`
	StartingPrice decimal.Decimal `json:"starting_price"`

	MaxBidCount          *uint32          `json:"max_bid_count,omitempty"`
	TargetPrice          *decimal.Decimal `json:"target_price,omitempty"`
	MaxInactivitySeconds *int64           `json:"max_inactivity_seconds,omitempty"`
	FixedSequenceNumber  *uint32          `json:"fixed_sequence_number,omitempty"`
	MinParticipants      *uint32          `json:"min_participants,omitempty"`
	MaxParticipants      *uint32          `json:"max_participants,omitempty"`
}

// Bid is the currently winning bid on an auction. Bidder and Amount are
// always set together.
type Bid struct {
	Bidder string          `json:"bidder"`
	Amount decimal.Decimal `json:"amount"`
}

// Auction is the central record. All mutation goes through the lifecycle
// manager; the store only moves whole records.
type Auction struct {
	ID           uint32            `json:"id"`
	Owner        string            `json:"owner"`
	ItemMetadata ItemMetadata      `json:"item_metadata"`
	Conditions   AuctionConditions `json:"conditions"`
	Asset        string            `json:"asset"`
	StartTime    int64             `json:"start_time"`

	// CurrentBid is nil until the first accepted bid.
	CurrentBid *Bid `json:"current_bid,omitempty"`

	BidCount         uint32 `json:"bid_count"`
	ParticipantCount uint32 `json:"participant_count"`

	// LastBidTime is 0 until the first accepted bid.
	LastBidTime int64 `json:"last_bid_time"`

	Status Status `json:"status"`
}

func (a *Auction) IsCancelled() bool {
	return a.Status == StatusCancelled
}

func (a *Auction) IsCompleted() bool {
	return a.Status == StatusCompleted
}

// CanCancel reports whether the auction may still be cancelled: it must be
// active and no bid may have been accepted yet.
func (a *Auction) CanCancel() bool {
	return a.Status == StatusActive && a.BidCount == 0
}
