package core

// The engine reports failures as one of three enumerable error families.
// Every precondition failure aborts the whole call; nothing is retried
// internally and no partial state is ever persisted.

// ValidationError covers structural problems detected at auction creation.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

const (
	ErrTitleEmpty               = ValidationError("auction title cannot be empty")
	ErrDescriptionEmpty         = ValidationError("auction description cannot be empty")
	ErrStartingPriceNotPositive = ValidationError("starting price must be greater than zero")
	ErrEndTimeInPast            = ValidationError("end time must not be in the past")
	ErrZeroBidCountBound        = ValidationError("max bid count must be greater than zero")
	ErrZeroTargetPrice          = ValidationError("target price must be greater than zero")
	ErrZeroInactivityBound      = ValidationError("max inactivity seconds must be greater than zero")
	ErrZeroSequenceBound        = ValidationError("fixed sequence number must be greater than zero")
	ErrZeroMinParticipants      = ValidationError("min participants must be greater than zero")
	ErrZeroMaxParticipants      = ValidationError("max participants must be greater than zero")
	ErrZeroDutchFloorPrice      = ValidationError("dutch floor price must be greater than zero")
)

// ConditionError covers termination-condition and pricing-rule failures,
// raised both when admitting a bid and when deciding whether an auction
// may end.
type ConditionError string

func (e ConditionError) Error() string { return string(e) }

const (
	// Bid-admission failures.
	ErrAuctionEnded                     = ConditionError("auction end time has passed")
	ErrMaxBidCountReached               = ConditionError("max bid count reached")
	ErrTargetPriceReached               = ConditionError("target price reached")
	ErrMaxInactivityExceeded            = ConditionError("max inactivity seconds exceeded")
	ErrTargetSequenceReached            = ConditionError("target sequence number reached")
	ErrMaxParticipantsReached           = ConditionError("max number of participants reached")
	ErrBidMustBeHigherThanCurrentBid    = ConditionError("bid must be higher than current bid")
	ErrBidMustBeHigherThanStartingPrice = ConditionError("bid must be higher than starting price")
	ErrBidMustBeLowerThanCurrentBid     = ConditionError("bid must be lower than current bid")
	ErrBidMustBeLowerThanStartingPrice  = ConditionError("bid must be lower than starting price")
	ErrDutchBidAlreadyRegistered        = ConditionError("dutch auction already has a registered bid")
	ErrBidMustMatchDutchPrice           = ConditionError("bid must match current dutch price")

	// End-permission failures.
	ErrAuctionNotEnded            = ConditionError("auction has not ended")
	ErrMaxBidCountNotReached      = ConditionError("max bid count not reached")
	ErrTargetPriceNotReached      = ConditionError("target price not reached")
	ErrInactivityNotReached       = ConditionError("max inactivity seconds not reached")
	ErrTargetSequenceNotReached   = ConditionError("target sequence number not reached")
	ErrMinParticipantsNotReached  = ConditionError("min number of participants not reached")
	ErrMaxParticipantsNotReached  = ConditionError("max number of participants not reached")
	ErrNoBidsRegistered           = ConditionError("no bids registered yet")
)

// AuctionError covers record-level failures in the lifecycle operations.
type AuctionError string

func (e AuctionError) Error() string { return string(e) }

const (
	ErrAuctionNotFound     = AuctionError("auction not found")
	ErrAuctionCanceled     = AuctionError("auction is cancelled")
	ErrAuctionCompleted    = AuctionError("auction is completed")
	ErrCannotCancelAuction = AuctionError("auction cannot be cancelled once bids exist")
	ErrNotAuctionOwner     = AuctionError("caller is not the auction owner")
)
