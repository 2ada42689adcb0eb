package store

import (
	"github.com/bidwell/auctiond/core"
)

// MemStore is an in-memory Store keeping records in their encoded form, so
// callers never share live pointers with the store. Used by tests and for
// ephemeral daemon runs.
type MemStore struct {
	records map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{records: make(map[string][]byte)}
}

func (s *MemStore) GetAuction(id uint32) (*core.Auction, bool, error) {
	data, ok := s.records[string(auctionKey(id))]
	if !ok {
		return nil, false, nil
	}
	auction, err := decodeAuction(data)
	if err != nil {
		return nil, false, err
	}
	return auction, true, nil
}

func (s *MemStore) PutAuction(a *core.Auction) error {
	data, err := encodeAuction(a)
	if err != nil {
		return err
	}
	s.records[string(auctionKey(a.ID))] = data
	return nil
}

func (s *MemStore) TotalAuctions() (uint32, error) {
	data, ok := s.records[string(totalKey)]
	if !ok {
		return 0, nil
	}
	return decodeCounter(data)
}

func (s *MemStore) SetTotalAuctions(n uint32) error {
	s.records[string(totalKey)] = encodeCounter(n)
	return nil
}

func (s *MemStore) HasBid(bidder string, auctionID uint32) (bool, error) {
	_, ok := s.records[string(hasBidKey(bidder, auctionID))]
	return ok, nil
}

func (s *MemStore) SetHasBid(bidder string, auctionID uint32) error {
	s.records[string(hasBidKey(bidder, auctionID))] = []byte{1}
	return nil
}
