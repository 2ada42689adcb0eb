package core

import (
	"github.com/shopspring/decimal"
)

// Validate checks the creation-time structural rules for item metadata.
func (m ItemMetadata) Validate() error {
	if m.Title == "" {
		return ErrTitleEmpty
	}
	if m.Description == "" {
		return ErrDescriptionEmpty
	}
	return nil
}

// Validate checks the creation-time structural rules for auction conditions.
// Configured optional bounds must be positive; unset bounds are skipped.
func (c AuctionConditions) Validate(now int64) error {
	if c.EndTime < now {
		return ErrEndTimeInPast
	}

	if !c.StartingPrice.IsPositive() {
		return ErrStartingPriceNotPositive
	}

	if c.MaxBidCount != nil && *c.MaxBidCount == 0 {
		return ErrZeroBidCountBound
	}
	if c.TargetPrice != nil && !c.TargetPrice.IsPositive() {
		return ErrZeroTargetPrice
	}
	if c.MaxInactivitySeconds != nil && *c.MaxInactivitySeconds == 0 {
		return ErrZeroInactivityBound
	}
	if c.FixedSequenceNumber != nil && *c.FixedSequenceNumber == 0 {
		return ErrZeroSequenceBound
	}
	if c.MinParticipants != nil && *c.MinParticipants == 0 {
		return ErrZeroMinParticipants
	}
	if c.MaxParticipants != nil && *c.MaxParticipants == 0 {
		return ErrZeroMaxParticipants
	}

	if c.Strategy.Kind == StrategyDutch && !c.Strategy.FloorPrice.IsPositive() {
		return ErrZeroDutchFloorPrice
	}

	return nil
}

// CheckCanBid evaluates whether a new bid may be admitted. Every configured
// condition acts as a guard rail here: all of them must hold, in order, and
// the first failing check aborts the call. The strategy price rule runs last.
func (a *Auction) CheckCanBid(now int64, seq uint32, amount decimal.Decimal) error {
	c := a.Conditions

	if now > c.EndTime {
		return ErrAuctionEnded
	}

	if c.MaxBidCount != nil && a.BidCount+1 > *c.MaxBidCount {
		return ErrMaxBidCountReached
	}

	// The target-price guard fires once the standing bid has crossed the
	// target. Dutch auctions are exempt: their single bid is matched
	// against the decayed offer price instead.
	if c.TargetPrice != nil && a.CurrentBid != nil {
		switch c.Strategy.Kind {
		case StrategyRegular:
			if a.CurrentBid.Amount.GreaterThanOrEqual(*c.TargetPrice) {
				return ErrTargetPriceReached
			}
		case StrategyReverse:
			if a.CurrentBid.Amount.LessThanOrEqual(*c.TargetPrice) {
				return ErrTargetPriceReached
			}
		}
	}

	// LastBidTime starts at 0, so before the first bid the elapsed time is
	// measured from the epoch. Kept as-is: the window is meant to keep an
	// auction alive only while bids keep arriving.
	if c.MaxInactivitySeconds != nil && now-a.LastBidTime >= *c.MaxInactivitySeconds {
		return ErrMaxInactivityExceeded
	}

	if c.FixedSequenceNumber != nil && seq >= *c.FixedSequenceNumber {
		return ErrTargetSequenceReached
	}

	// Conservative bound: evaluated before we know whether the bidder is a
	// repeat participant, so a full auction rejects repeat bidders too.
	if c.MaxParticipants != nil && a.ParticipantCount+1 >= *c.MaxParticipants {
		return ErrMaxParticipantsReached
	}

	return a.CheckBidPrice(amount, now)
}

// CheckCanEnd evaluates whether the auction may be closed. The hard deadline
// always permits closure. Before the deadline, the first configured optional
// condition decides alone: if it is satisfied the auction may end, and if not
// the call fails with that condition's error even when a later condition
// would be satisfied. With nothing configured the auction cannot end early.
func (a *Auction) CheckCanEnd(now int64, seq uint32) error {
	c := a.Conditions

	if now >= c.EndTime {
		return nil
	}

	if c.MaxBidCount != nil {
		if a.BidCount < *c.MaxBidCount {
			return ErrMaxBidCountNotReached
		}
		return nil
	}

	// A configured target price only decides once a bid exists; with no
	// bid yet, evaluation falls through to the next condition.
	if c.TargetPrice != nil && a.CurrentBid != nil {
		if a.CurrentBid.Amount.LessThan(*c.TargetPrice) {
			return ErrTargetPriceNotReached
		}
		return nil
	}

	if c.MaxInactivitySeconds != nil {
		if now-a.LastBidTime < *c.MaxInactivitySeconds {
			return ErrInactivityNotReached
		}
		return nil
	}

	if c.FixedSequenceNumber != nil {
		if seq < *c.FixedSequenceNumber {
			return ErrTargetSequenceNotReached
		}
		return nil
	}

	if c.MinParticipants != nil {
		if a.ParticipantCount < *c.MinParticipants {
			return ErrMinParticipantsNotReached
		}
		return nil
	}

	if c.MaxParticipants != nil {
		if a.ParticipantCount < *c.MaxParticipants {
			return ErrMaxParticipantsNotReached
		}
		return nil
	}

	// Dutch auctions may close early once their single bid has landed.
	if c.Strategy.Kind == StrategyDutch {
		if a.CurrentBid == nil {
			return ErrNoBidsRegistered
		}
		return nil
	}

	return ErrAuctionNotEnded
}
