// Package store provides durable keyed storage for auction records, the
// global auction counter, and the per-(bidder, auction) has-bid markers.
// The lifecycle manager is the only writer; implementations move whole
// records and never interpret them.
package store

import (
	"encoding/binary"
	"fmt"

	"github.com/bidwell/auctiond/core"
)

// Store is the persistence boundary of the auction engine.
type Store interface {
	// GetAuction loads an auction record. The boolean reports presence;
	// a missing record is not an error.
	GetAuction(id uint32) (*core.Auction, bool, error)

	// PutAuction writes an auction record, replacing any previous version.
	PutAuction(a *core.Auction) error

	// TotalAuctions returns the global auction counter, 0 before any
	// auction has been created. Counter values are never reused.
	TotalAuctions() (uint32, error)

	// SetTotalAuctions persists the global auction counter.
	SetTotalAuctions(n uint32) error

	// HasBid reports whether the bidder has ever had a bid accepted on
	// the given auction. Markers are never cleared.
	HasBid(bidder string, auctionID uint32) (bool, error)

	// SetHasBid records that the bidder has bid on the given auction.
	SetHasBid(bidder string, auctionID uint32) error
}

var (
	auctionPrefix = []byte("a/")
	hasBidPrefix  = []byte("hb/")
	totalKey      = []byte("meta/total_auctions")
)

func auctionKey(id uint32) []byte {
	key := make([]byte, len(auctionPrefix)+4)
	copy(key, auctionPrefix)
	binary.BigEndian.PutUint32(key[len(auctionPrefix):], id)
	return key
}

func hasBidKey(bidder string, auctionID uint32) []byte {
	return []byte(fmt.Sprintf("%s%d/%s", hasBidPrefix, auctionID, bidder))
}

func encodeCounter(n uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, n)
	return buf
}

func decodeCounter(buf []byte) (uint32, error) {
	if len(buf) != 4 {
		return 0, fmt.Errorf("malformed counter value: %d bytes", len(buf))
	}
	return binary.BigEndian.Uint32(buf), nil
}
