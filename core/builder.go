package core

import (
	"github.com/shopspring/decimal"
)

// ConditionsBuilder assembles an AuctionConditions value. The required
// fields come in through NewConditions; termination triggers are opt-in.
type ConditionsBuilder struct {
	conditions AuctionConditions
}

// NewConditions starts a builder with the mandatory fields.
func NewConditions(strategy PricingStrategy, endTime int64, startingPrice decimal.Decimal) *ConditionsBuilder {
	return &ConditionsBuilder{
		conditions: AuctionConditions{
			Strategy:      strategy,
			EndTime:       endTime,
			StartingPrice: startingPrice,
		},
	}
}

// OnBidCount closes the auction after count accepted bids.
func (b *ConditionsBuilder) OnBidCount(count uint32) *ConditionsBuilder {
	b.conditions.MaxBidCount = &count
	return b
}

// OnTargetPrice closes the auction once the standing bid crosses price.
func (b *ConditionsBuilder) OnTargetPrice(price decimal.Decimal) *ConditionsBuilder {
	b.conditions.TargetPrice = &price
	return b
}

// OnInactivity closes the auction after seconds without a bid.
func (b *ConditionsBuilder) OnInactivity(seconds int64) *ConditionsBuilder {
	b.conditions.MaxInactivitySeconds = &seconds
	return b
}

// OnSequenceNumber closes the auction at a fixed external sequence number.
func (b *ConditionsBuilder) OnSequenceNumber(seq uint32) *ConditionsBuilder {
	b.conditions.FixedSequenceNumber = &seq
	return b
}

// OnMinParticipants closes the auction once min distinct bidders have bid.
func (b *ConditionsBuilder) OnMinParticipants(min uint32) *ConditionsBuilder {
	b.conditions.MinParticipants = &min
	return b
}

// OnMaxParticipants caps the number of distinct bidders at max.
func (b *ConditionsBuilder) OnMaxParticipants(max uint32) *ConditionsBuilder {
	b.conditions.MaxParticipants = &max
	return b
}

func (b *ConditionsBuilder) Build() AuctionConditions {
	return b.conditions
}
