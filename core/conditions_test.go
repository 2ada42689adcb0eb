package core

import (
	"testing"

	"github.com/peterldowns/testy/check"
)

func TestItemMetadataValidate(t *testing.T) {
	check.NoError(t, ItemMetadata{Title: "Clock", Description: "Brass"}.Validate())
	checkErr(t, ErrTitleEmpty, ItemMetadata{Description: "Brass"}.Validate())
	checkErr(t, ErrDescriptionEmpty, ItemMetadata{Title: "Clock"}.Validate())
}

func TestConditionsValidate(t *testing.T) {
	base := NewConditions(RegularStrategy(), 1000, dec(100)).Build()
	check.NoError(t, base.Validate(500))

	// End time in the past.
	checkErr(t, ErrEndTimeInPast, base.Validate(1001))
	// End time exactly now is still allowed.
	check.NoError(t, base.Validate(1000))

	zeroPrice := NewConditions(RegularStrategy(), 1000, dec(0)).Build()
	checkErr(t, ErrStartingPriceNotPositive, zeroPrice.Validate(0))

	negPrice := NewConditions(RegularStrategy(), 1000, dec(-5)).Build()
	checkErr(t, ErrStartingPriceNotPositive, negPrice.Validate(0))

	checkErr(t, ErrZeroBidCountBound,
		NewConditions(RegularStrategy(), 1000, dec(100)).OnBidCount(0).Build().Validate(0))
	checkErr(t, ErrZeroTargetPrice,
		NewConditions(RegularStrategy(), 1000, dec(100)).OnTargetPrice(dec(0)).Build().Validate(0))
	checkErr(t, ErrZeroInactivityBound,
		NewConditions(RegularStrategy(), 1000, dec(100)).OnInactivity(0).Build().Validate(0))
	checkErr(t, ErrZeroSequenceBound,
		NewConditions(RegularStrategy(), 1000, dec(100)).OnSequenceNumber(0).Build().Validate(0))
	checkErr(t, ErrZeroMinParticipants,
		NewConditions(RegularStrategy(), 1000, dec(100)).OnMinParticipants(0).Build().Validate(0))
	checkErr(t, ErrZeroMaxParticipants,
		NewConditions(RegularStrategy(), 1000, dec(100)).OnMaxParticipants(0).Build().Validate(0))

	checkErr(t, ErrZeroDutchFloorPrice,
		NewConditions(DutchStrategy(dec(0)), 1000, dec(100)).Build().Validate(0))
	check.NoError(t,
		NewConditions(DutchStrategy(dec(10)), 1000, dec(100)).Build().Validate(0))
}

func TestCheckCanBid_Deadline(t *testing.T) {
	a := newTestAuction(RegularStrategy(), 100, 0, 1000)

	check.NoError(t, a.CheckCanBid(1000, 0, dec(150)))
	checkErr(t, ErrAuctionEnded, a.CheckCanBid(1001, 0, dec(150)))
}

func TestCheckCanBid_MaxBidCount(t *testing.T) {
	a := newTestAuction(RegularStrategy(), 100, 0, 1000)
	a.Conditions = NewConditions(RegularStrategy(), 1000, dec(100)).OnBidCount(1).Build()

	check.NoError(t, a.CheckCanBid(10, 0, dec(500)))

	ApplyBid(a, "alice", dec(500), 10, true)
	checkErr(t, ErrMaxBidCountReached, a.CheckCanBid(20, 0, dec(1500)))
}

func TestCheckCanBid_TargetPrice(t *testing.T) {
	a := newTestAuction(RegularStrategy(), 100, 0, 1000)
	a.Conditions = NewConditions(RegularStrategy(), 1000, dec(100)).OnTargetPrice(dec(500)).Build()

	// No bid yet: the guard is dormant.
	check.NoError(t, a.CheckCanBid(10, 0, dec(200)))

	a.CurrentBid = &Bid{Bidder: "alice", Amount: dec(400)}
	check.NoError(t, a.CheckCanBid(10, 0, dec(450)))

	a.CurrentBid = &Bid{Bidder: "alice", Amount: dec(500)}
	checkErr(t, ErrTargetPriceReached, a.CheckCanBid(10, 0, dec(600)))

	// Reverse auctions trip the guard from the other side.
	r := newTestAuction(ReverseStrategy(), 1000, 0, 1000)
	r.Conditions = NewConditions(ReverseStrategy(), 1000, dec(1000)).OnTargetPrice(dec(500)).Build()
	r.CurrentBid = &Bid{Bidder: "alice", Amount: dec(450)}
	checkErr(t, ErrTargetPriceReached, r.CheckCanBid(10, 0, dec(400)))

	// Dutch auctions are exempt from the target-price guard.
	d := newTestAuction(DutchStrategy(dec(100)), 1000, 0, 1000)
	d.Conditions.TargetPrice = decPtr(dec(500))
	d.CurrentBid = &Bid{Bidder: "alice", Amount: dec(900)}
	checkErr(t, ErrDutchBidAlreadyRegistered, d.CheckCanBid(10, 0, dec(900)))
}

func TestCheckCanBid_Inactivity(t *testing.T) {
	a := newTestAuction(RegularStrategy(), 100, 0, 10000)
	a.Conditions = NewConditions(RegularStrategy(), 10000, dec(100)).OnInactivity(60).Build()

	ApplyBid(a, "alice", dec(200), 100, true)

	check.NoError(t, a.CheckCanBid(159, 0, dec(300)))
	checkErr(t, ErrMaxInactivityExceeded, a.CheckCanBid(160, 0, dec(300)))
}

func TestCheckCanBid_SequenceNumber(t *testing.T) {
	a := newTestAuction(RegularStrategy(), 100, 0, 1000)
	a.Conditions = NewConditions(RegularStrategy(), 1000, dec(100)).OnSequenceNumber(50).Build()

	check.NoError(t, a.CheckCanBid(10, 49, dec(200)))
	checkErr(t, ErrTargetSequenceReached, a.CheckCanBid(10, 50, dec(200)))
}

func TestCheckCanBid_MaxParticipants(t *testing.T) {
	a := newTestAuction(RegularStrategy(), 100, 0, 1000)
	a.Conditions = NewConditions(RegularStrategy(), 1000, dec(100)).OnMaxParticipants(2).Build()

	check.NoError(t, a.CheckCanBid(10, 0, dec(200)))
	ApplyBid(a, "alice", dec(200), 10, true)

	// The bound is conservative: with one participant and a cap of two,
	// every further bid is rejected, repeat bidders included.
	checkErr(t, ErrMaxParticipantsReached, a.CheckCanBid(20, 0, dec(300)))
}

func TestCheckCanEnd_Deadline(t *testing.T) {
	a := newTestAuction(RegularStrategy(), 100, 0, 1000)

	checkErr(t, ErrAuctionNotEnded, a.CheckCanEnd(999, 0))
	check.NoError(t, a.CheckCanEnd(1000, 0))
	check.NoError(t, a.CheckCanEnd(2000, 0))
}

func TestCheckCanEnd_BidCount(t *testing.T) {
	a := newTestAuction(RegularStrategy(), 100, 0, 1000)
	a.Conditions = NewConditions(RegularStrategy(), 1000, dec(100)).OnBidCount(2).Build()

	checkErr(t, ErrMaxBidCountNotReached, a.CheckCanEnd(10, 0))

	ApplyBid(a, "alice", dec(200), 5, true)
	checkErr(t, ErrMaxBidCountNotReached, a.CheckCanEnd(10, 0))

	ApplyBid(a, "bob", dec(300), 8, true)
	check.NoError(t, a.CheckCanEnd(10, 0))
}

func TestCheckCanEnd_TargetPrice(t *testing.T) {
	a := newTestAuction(RegularStrategy(), 100, 0, 1000)
	a.Conditions = NewConditions(RegularStrategy(), 1000, dec(100)).OnTargetPrice(dec(500)).Build()

	// With no bid the target-price condition is skipped entirely and, with
	// nothing else configured, the auction cannot end early.
	checkErr(t, ErrAuctionNotEnded, a.CheckCanEnd(10, 0))

	ApplyBid(a, "alice", dec(400), 5, true)
	checkErr(t, ErrTargetPriceNotReached, a.CheckCanEnd(10, 0))

	ApplyBid(a, "bob", dec(500), 8, true)
	check.NoError(t, a.CheckCanEnd(10, 0))
}

func TestCheckCanEnd_Inactivity(t *testing.T) {
	a := newTestAuction(RegularStrategy(), 100, 0, 10000)
	a.Conditions = NewConditions(RegularStrategy(), 10000, dec(100)).OnInactivity(60).Build()

	ApplyBid(a, "alice", dec(200), 100, true)

	checkErr(t, ErrInactivityNotReached, a.CheckCanEnd(159, 0))
	check.NoError(t, a.CheckCanEnd(160, 0))
}

func TestCheckCanEnd_SequenceNumber(t *testing.T) {
	a := newTestAuction(RegularStrategy(), 100, 0, 1000)
	a.Conditions = NewConditions(RegularStrategy(), 1000, dec(100)).OnSequenceNumber(50).Build()

	checkErr(t, ErrTargetSequenceNotReached, a.CheckCanEnd(10, 49))
	check.NoError(t, a.CheckCanEnd(10, 50))
}

func TestCheckCanEnd_Participants(t *testing.T) {
	a := newTestAuction(RegularStrategy(), 100, 0, 1000)
	a.Conditions = NewConditions(RegularStrategy(), 1000, dec(100)).OnMinParticipants(2).Build()

	checkErr(t, ErrMinParticipantsNotReached, a.CheckCanEnd(10, 0))
	a.ParticipantCount = 2
	check.NoError(t, a.CheckCanEnd(10, 0))

	b := newTestAuction(RegularStrategy(), 100, 0, 1000)
	b.Conditions = NewConditions(RegularStrategy(), 1000, dec(100)).OnMaxParticipants(3).Build()

	checkErr(t, ErrMaxParticipantsNotReached, b.CheckCanEnd(10, 0))
	b.ParticipantCount = 3
	check.NoError(t, b.CheckCanEnd(10, 0))
}

func TestCheckCanEnd_FirstConfiguredConditionWins(t *testing.T) {
	// Both a bid-count trigger and a min-participants trigger are
	// configured. The bid-count condition is evaluated first, so even when
	// the participant condition is already satisfied the auction cannot
	// end until the bid count catches up.
	a := newTestAuction(RegularStrategy(), 100, 0, 1000)
	a.Conditions = NewConditions(RegularStrategy(), 1000, dec(100)).
		OnBidCount(5).
		OnMinParticipants(1).
		Build()

	ApplyBid(a, "alice", dec(200), 5, true)

	checkErr(t, ErrMaxBidCountNotReached, a.CheckCanEnd(10, 0))
}

func TestCheckCanEnd_DutchSingleBid(t *testing.T) {
	a := newTestAuction(DutchStrategy(dec(500)), 1000, 0, 1000)

	checkErr(t, ErrNoBidsRegistered, a.CheckCanEnd(10, 0))

	a.CurrentBid = &Bid{Bidder: "alice", Amount: dec(995)}
	check.NoError(t, a.CheckCanEnd(10, 0))
}

func TestCanCancel(t *testing.T) {
	a := newTestAuction(RegularStrategy(), 100, 0, 1000)
	check.True(t, a.CanCancel())

	ApplyBid(a, "alice", dec(200), 5, true)
	check.False(t, a.CanCancel())

	b := newTestAuction(RegularStrategy(), 100, 0, 1000)
	b.Status = StatusCompleted
	check.False(t, b.CanCancel())
}
