package store

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/bidwell/auctiond/core"
)

// Auction records are persisted as CBOR. Decimal amounts round-trip through
// their binary encoding, so no precision is lost between writes and reads.

func encodeAuction(a *core.Auction) ([]byte, error) {
	data, err := cbor.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to encode auction %d: %w", a.ID, err)
	}
	return data, nil
}

func decodeAuction(data []byte) (*core.Auction, error) {
	var a core.Auction
	if err := cbor.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to decode auction record: %w", err)
	}
	return &a, nil
}
