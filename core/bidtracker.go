package core

import (
	"github.com/shopspring/decimal"
)

// ApplyBid records an accepted bid on the auction: the standing bid and
// bidder are replaced, the bid count and last-bid time always advance, and
// the participant count advances only when this is the bidder's first bid on
// this auction. Callers decide firstBid from the per-(bidder, auction)
// has-bid marker.
func ApplyBid(a *Auction, bidder string, amount decimal.Decimal, now int64, firstBid bool) {
	a.CurrentBid = &Bid{Bidder: bidder, Amount: amount}
	a.BidCount++
	a.LastBidTime = now

	if firstBid {
		a.ParticipantCount++
	}
}
