package engine

import (
	"sync"

	"github.com/shopspring/decimal"
)

// AssetTransfer moves value between accounts. A transfer is all-or-nothing:
// when it returns an error nothing has moved, and the engine aborts the
// surrounding operation without persisting anything.
type AssetTransfer interface {
	Transfer(from, to string, amount decimal.Decimal, asset string) error
}

type ledgerKey struct {
	account string
	asset   string
}

// MemoryLedger is an in-process AssetTransfer that tracks per-account
// balances, so settlements are observable in a single process. It performs
// no overdraft checks: collateral management lives with the real asset
// subsystem, not here.
type MemoryLedger struct {
	mu       sync.Mutex
	balances map[ledgerKey]decimal.Decimal
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{balances: make(map[ledgerKey]decimal.Decimal)}
}

func (l *MemoryLedger) Transfer(from, to string, amount decimal.Decimal, asset string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	fromKey := ledgerKey{account: from, asset: asset}
	toKey := ledgerKey{account: to, asset: asset}

	l.balances[fromKey] = l.balances[fromKey].Sub(amount)
	l.balances[toKey] = l.balances[toKey].Add(amount)
	return nil
}

// Deposit credits an account out of thin air. Test and bootstrap helper.
func (l *MemoryLedger) Deposit(account string, amount decimal.Decimal, asset string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := ledgerKey{account: account, asset: asset}
	l.balances[key] = l.balances[key].Add(amount)
}

// BalanceOf returns the current balance of an account, zero if untouched.
func (l *MemoryLedger) BalanceOf(account, asset string) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.balances[ledgerKey{account: account, asset: asset}]
}
