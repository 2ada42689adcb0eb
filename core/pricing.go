package core

import (
	"github.com/shopspring/decimal"
)

// CurrentDutchPrice computes the offer price of a Dutch auction at time now.
// The price decays linearly from the starting price at startTime down to the
// floor price at the end time, and is clamped to the floor once the end time
// has passed:
//
//	price(t) = starting - (starting - floor) * (t - start) / (end - start)
//
// Uses decimal arithmetic to avoid floating-point drift; the result is
// monotonically non-increasing in now.
func CurrentDutchPrice(c AuctionConditions, startTime, now int64) decimal.Decimal {
	if now >= c.EndTime {
		return c.Strategy.FloorPrice
	}

	duration := decimal.NewFromInt(c.EndTime - startTime)
	elapsed := decimal.NewFromInt(now - startTime)
	priceDiff := c.StartingPrice.Sub(c.Strategy.FloorPrice)

	decrease := priceDiff.Mul(elapsed).Div(duration)

	return c.StartingPrice.Sub(decrease)
}

// CurrentPrice exposes the live offer price of an auction. Only Dutch
// auctions have a time-derived price; other strategies report zero.
func (a *Auction) CurrentPrice(now int64) decimal.Decimal {
	if a.Conditions.Strategy.Kind == StrategyDutch {
		return CurrentDutchPrice(a.Conditions, a.StartTime, now)
	}
	return decimal.Zero
}

// CheckBidPrice applies the strategy-specific price rule to a candidate bid.
func (a *Auction) CheckBidPrice(amount decimal.Decimal, now int64) error {
	startingPrice := a.Conditions.StartingPrice

	switch a.Conditions.Strategy.Kind {
	case StrategyRegular:
		// Ascending: each bid must exceed the current best, or the
		// starting price while no bid exists.
		if a.CurrentBid != nil {
			if a.CurrentBid.Amount.GreaterThanOrEqual(amount) {
				return ErrBidMustBeHigherThanCurrentBid
			}
		} else if startingPrice.GreaterThanOrEqual(amount) {
			return ErrBidMustBeHigherThanStartingPrice
		}

	case StrategyReverse:
		// Descending: each bid must undercut the current best, or the
		// starting price while no bid exists.
		if a.CurrentBid != nil {
			if amount.GreaterThanOrEqual(a.CurrentBid.Amount) {
				return ErrBidMustBeLowerThanCurrentBid
			}
		} else if amount.GreaterThanOrEqual(startingPrice) {
			return ErrBidMustBeLowerThanStartingPrice
		}

	case StrategyDutch:
		// A Dutch auction accepts exactly one bid, at exactly the
		// current offer price.
		if a.CurrentBid != nil {
			return ErrDutchBidAlreadyRegistered
		}
		if !amount.Equal(CurrentDutchPrice(a.Conditions, a.StartTime, now)) {
			return ErrBidMustMatchDutchPrice
		}
	}

	return nil
}
