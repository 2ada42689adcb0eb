package core

import (
	"testing"

	"github.com/peterldowns/testy/check"
	"github.com/shopspring/decimal"
)

func decPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func TestApplyBid_Bookkeeping(t *testing.T) {
	a := newTestAuction(RegularStrategy(), 100, 0, 1000)

	ApplyBid(a, "alice", dec(150), 10, true)

	check.NotNil(t, a.CurrentBid)
	check.Equal(t, "alice", a.CurrentBid.Bidder)
	check.True(t, a.CurrentBid.Amount.Equal(dec(150)))
	check.Equal(t, uint32(1), a.BidCount)
	check.Equal(t, uint32(1), a.ParticipantCount)
	check.Equal(t, int64(10), a.LastBidTime)
}

func TestApplyBid_RepeatBidderDoesNotAddParticipant(t *testing.T) {
	a := newTestAuction(RegularStrategy(), 100, 0, 1000)

	ApplyBid(a, "alice", dec(150), 10, true)
	ApplyBid(a, "alice", dec(200), 20, false)
	ApplyBid(a, "bob", dec(250), 30, true)
	ApplyBid(a, "alice", dec(300), 40, false)

	check.Equal(t, uint32(4), a.BidCount)
	check.Equal(t, uint32(2), a.ParticipantCount)
	check.Equal(t, "alice", a.CurrentBid.Bidder)
	check.True(t, a.CurrentBid.Amount.Equal(dec(300)))
	check.Equal(t, int64(40), a.LastBidTime)
}
