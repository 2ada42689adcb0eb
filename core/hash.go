package core

import (
	"crypto/sha256"
	"fmt"

	"github.com/shopspring/decimal"
)

// ComputeBidDigest computes the integrity digest attached to bid audit
// records, so downstream consumers can verify a record was not altered in
// transit.
//
// Formula: SHA256(auction_id + "|" + bidder + "|" + amount + "|" + timestamp)
//
// The amount is rendered with decimal string formatting so the digest is
// independent of any in-memory float representation.
func ComputeBidDigest(auctionID uint32, bidder string, amount decimal.Decimal, timestamp int64) string {
	data := fmt.Sprintf("%d|%s|%s|%d", auctionID, bidder, amount.String(), timestamp)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// ComputeSettlementDigest computes the integrity digest attached to
// completion audit records.
//
// Formula: SHA256(auction_id + "|" + winner + "|" + final_price + "|" + timestamp)
//
// Winner and final price may be absent when an auction completes without
// bids; both render as empty strings in that case.
func ComputeSettlementDigest(auctionID uint32, winner string, finalPrice string, timestamp int64) string {
	data := fmt.Sprintf("%d|%s|%s|%d", auctionID, winner, finalPrice, timestamp)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
