package store

import (
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	lerrors "github.com/syndtr/goleveldb/leveldb/errors"

	"github.com/bidwell/auctiond/core"
)

// LevelDBStore is the durable Store used by the daemon. Records live under
// prefixed keys in a single leveldb database; see store.go for the layout.
type LevelDBStore struct {
	db *leveldb.DB
}

// OpenLevelDB opens (or creates) the database at path.
func OpenLevelDB(path string) (*LevelDBStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open leveldb at %s: %w", path, err)
	}
	return &LevelDBStore{db: db}, nil
}

func (s *LevelDBStore) Close() error {
	return s.db.Close()
}

func (s *LevelDBStore) GetAuction(id uint32) (*core.Auction, bool, error) {
	data, err := s.db.Get(auctionKey(id), nil)
	if errors.Is(err, lerrors.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read auction %d: %w", id, err)
	}
	auction, err := decodeAuction(data)
	if err != nil {
		return nil, false, err
	}
	return auction, true, nil
}

func (s *LevelDBStore) PutAuction(a *core.Auction) error {
	data, err := encodeAuction(a)
	if err != nil {
		return err
	}
	if err := s.db.Put(auctionKey(a.ID), data, nil); err != nil {
		return fmt.Errorf("failed to write auction %d: %w", a.ID, err)
	}
	return nil
}

func (s *LevelDBStore) TotalAuctions() (uint32, error) {
	data, err := s.db.Get(totalKey, nil)
	if errors.Is(err, lerrors.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read auction counter: %w", err)
	}
	return decodeCounter(data)
}

func (s *LevelDBStore) SetTotalAuctions(n uint32) error {
	if err := s.db.Put(totalKey, encodeCounter(n), nil); err != nil {
		return fmt.Errorf("failed to write auction counter: %w", err)
	}
	return nil
}

func (s *LevelDBStore) HasBid(bidder string, auctionID uint32) (bool, error) {
	ok, err := s.db.Has(hasBidKey(bidder, auctionID), nil)
	if err != nil {
		return false, fmt.Errorf("failed to read has-bid marker: %w", err)
	}
	return ok, nil
}

func (s *LevelDBStore) SetHasBid(bidder string, auctionID uint32) error {
	if err := s.db.Put(hasBidKey(bidder, auctionID), []byte{1}, nil); err != nil {
		return fmt.Errorf("failed to write has-bid marker: %w", err)
	}
	return nil
}
