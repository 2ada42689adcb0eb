package engine

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bidwell/auctiond/core"
	"github.com/bidwell/auctiond/store"
)

// Manager orchestrates the auction lifecycle. Every public operation is
// call-atomic: a mutex serializes operations, and each one either persists
// all of its state changes or aborts with no persisted side effect. Failed
// calls return exactly one of the core error families (or a wrapped
// infrastructure error); nothing is retried internally.
type Manager struct {
	mu sync.Mutex

	store    store.Store
	ledger   LedgerSource
	auth     Authenticator
	transfer AssetTransfer
	audit    AuditLog
	logger   *slog.Logger

	// escrowAccount is the account settlements pay out of. Bid collateral
	// is collected into it by an external subsystem; the engine itself
	// never moves funds at bid time.
	escrowAccount string
}

// ManagerConfig carries the collaborators for NewManager. Store, Ledger,
// Auth and Transfer are required; Audit and Logger fall back to slog.
type ManagerConfig struct {
	Store         store.Store
	Ledger        LedgerSource
	Auth          Authenticator
	Transfer      AssetTransfer
	Audit         AuditLog
	Logger        *slog.Logger
	EscrowAccount string
}

func NewManager(cfg ManagerConfig) *Manager {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("pkg", "engine")

	audit := cfg.Audit
	if audit == nil {
		audit = NewSlogAudit(logger)
	}

	return &Manager{
		store:         cfg.Store,
		ledger:        cfg.Ledger,
		auth:          cfg.Auth,
		transfer:      cfg.Transfer,
		audit:         audit,
		logger:        logger,
		escrowAccount: cfg.EscrowAccount,
	}
}

// CreateAuction validates the item metadata and conditions, assigns the next
// auction id and stores the new record in the Active state. Returns the
// assigned id. No funds move.
func (m *Manager) CreateAuction(owner, asset string, meta core.ItemMetadata, conditions core.AuctionConditions) (uint32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.auth.RequireAuth(owner); err != nil {
		return 0, fmt.Errorf("authentication failed: %w", err)
	}

	now := m.ledger.Now()

	if err := meta.Validate(); err != nil {
		return 0, err
	}
	if err := conditions.Validate(now); err != nil {
		return 0, err
	}

	total, err := m.store.TotalAuctions()
	if err != nil {
		return 0, err
	}
	auctionID := total + 1

	auction := &core.Auction{
		ID:           auctionID,
		Owner:        owner,
		ItemMetadata: meta,
		Conditions:   conditions,
		Asset:        asset,
		StartTime:    now,
		Status:       core.StatusActive,
	}

	if err := m.store.PutAuction(auction); err != nil {
		return 0, err
	}
	if err := m.store.SetTotalAuctions(auctionID); err != nil {
		return 0, err
	}

	auctionsCreatedCounter.Inc()
	m.publish(AuctionCreated{
		EventID:   uuid.NewString(),
		AuctionID: auctionID,
		Owner:     owner,
		StartTime: now,
		EndTime:   conditions.EndTime,
	})

	m.logger.Info("auction created",
		"auction_id", auctionID, "owner", owner, "strategy", conditions.Strategy.Kind.String())

	return auctionID, nil
}

// MakeBid admits a bid on an active auction. All configured termination
// conditions act as guards, then the strategy price rule applies; the first
// failing check aborts the call with no mutation. No funds move at bid time:
// a bid is a promise settled at end_auction.
func (m *Manager) MakeBid(auctionID uint32, bidder string, amount decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.auth.RequireAuth(bidder); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	auction, err := m.loadActive(auctionID)
	if err != nil {
		bidsRejectedCounter.WithLabelValues(errFamily(err)).Inc()
		return err
	}

	now := m.ledger.Now()
	seq := m.ledger.Sequence()

	if err := auction.CheckCanBid(now, seq, amount); err != nil {
		bidsRejectedCounter.WithLabelValues(errFamily(err)).Inc()
		return err
	}

	hasBid, err := m.store.HasBid(bidder, auctionID)
	if err != nil {
		return err
	}
	firstBid := !hasBid

	core.ApplyBid(auction, bidder, amount, now, firstBid)

	if firstBid {
		if err := m.store.SetHasBid(bidder, auctionID); err != nil {
			return err
		}
	}
	if err := m.store.PutAuction(auction); err != nil {
		return err
	}

	bidsAcceptedCounter.Inc()
	m.publish(NewBidPlaced{
		EventID:   uuid.NewString(),
		AuctionID: auctionID,
		Bidder:    bidder,
		BidAmount: amount,
		Timestamp: now,
		Digest:    core.ComputeBidDigest(auctionID, bidder, amount, now),
	})

	m.logger.Info("bid placed",
		"auction_id", auctionID, "bidder", bidder, "amount", amount.String(), "bid_count", auction.BidCount)

	return nil
}

// CancelAuction cancels an active auction. Only the owner may cancel, and
// only while no bid has been accepted.
func (m *Manager) CancelAuction(auctionID uint32, caller string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.auth.RequireAuth(caller); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	auction, err := m.loadActive(auctionID)
	if err != nil {
		return err
	}
	if caller != auction.Owner {
		return core.ErrNotAuctionOwner
	}
	if !auction.CanCancel() {
		return core.ErrCannotCancelAuction
	}

	auction.Status = core.StatusCancelled
	if err := m.store.PutAuction(auction); err != nil {
		return err
	}

	now := m.ledger.Now()

	auctionsCanceledCounter.Inc()
	m.publish(AuctionCanceled{
		EventID:   uuid.NewString(),
		AuctionID: auctionID,
		Owner:     auction.Owner,
		Timestamp: now,
	})

	m.logger.Info("auction cancelled", "auction_id", auctionID, "owner", auction.Owner)

	return nil
}

// EndAuction closes an auction once the deadline or its deciding termination
// condition permits. With a standing bid, the winning amount moves from the
// escrow account to the previous owner and ownership transfers to the
// winning bidder; without one, ownership is unchanged and no funds move.
// A failed transfer aborts the whole call and the auction stays Active.
func (m *Manager) EndAuction(auctionID uint32, caller string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.auth.RequireAuth(caller); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	auction, err := m.loadActive(auctionID)
	if err != nil {
		return err
	}
	if caller != auction.Owner {
		return core.ErrNotAuctionOwner
	}

	now := m.ledger.Now()
	seq := m.ledger.Sequence()

	if err := auction.CheckCanEnd(now, seq); err != nil {
		return err
	}

	var winner *string
	var finalPrice *decimal.Decimal

	if auction.CurrentBid != nil {
		prevOwner := auction.Owner
		amount := auction.CurrentBid.Amount

		if err := m.transfer.Transfer(m.escrowAccount, prevOwner, amount, auction.Asset); err != nil {
			return fmt.Errorf("settlement transfer failed: %w", err)
		}

		auction.Owner = auction.CurrentBid.Bidder
		winner = &auction.CurrentBid.Bidder
		finalPrice = &amount
	}

	auction.Status = core.StatusCompleted
	if err := m.store.PutAuction(auction); err != nil {
		return err
	}

	winnerName := ""
	priceText := ""
	if winner != nil {
		winnerName = *winner
		priceText = finalPrice.String()
	}

	auctionsCompletedCounter.Inc()
	m.publish(AuctionCompleted{
		EventID:    uuid.NewString(),
		AuctionID:  auctionID,
		Winner:     winner,
		FinalPrice: finalPrice,
		Timestamp:  now,
		Digest:     core.ComputeSettlementDigest(auctionID, winnerName, priceText, now),
	})

	m.logger.Info("auction completed",
		"auction_id", auctionID, "winner", winnerName, "final_price", priceText)

	return nil
}

// GetAuction is a read-only lookup; no authorization required. The boolean
// reports presence.
func (m *Manager) GetAuction(auctionID uint32) (*core.Auction, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.store.GetAuction(auctionID)
}

// GetCurrentPrice reports the live offer price of an auction: the decayed
// Dutch price, or zero for other strategies.
func (m *Manager) GetCurrentPrice(auctionID uint32) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	auction, found, err := m.store.GetAuction(auctionID)
	if err != nil {
		return decimal.Zero, err
	}
	if !found {
		return decimal.Zero, core.ErrAuctionNotFound
	}

	return auction.CurrentPrice(m.ledger.Now()), nil
}

// loadActive fetches an auction and rejects terminal states.
func (m *Manager) loadActive(auctionID uint32) (*core.Auction, error) {
	auction, found, err := m.store.GetAuction(auctionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, core.ErrAuctionNotFound
	}
	if auction.IsCancelled() {
		return nil, core.ErrAuctionCanceled
	}
	if auction.IsCompleted() {
		return nil, core.ErrAuctionCompleted
	}
	return auction, nil
}

func (m *Manager) publish(event Event) {
	if err := m.audit.Publish(event); err != nil {
		m.logger.Warn("failed to publish audit event", "topic", event.Topic(), "err", err)
	}
}
