// Package wallet exposes the engine's read-only view of user balances.
// A positive balance is advisory: the engine never reserves funds.
package wallet

import (
	"sync"

	"github.com/shopspring/decimal"
)

// BalanceOracle is a point-in-time balance lookup. Results may be stale by
// up to the oracle's own consistency window.
type BalanceOracle interface {
	BalanceOf(userID string) (decimal.Decimal, error)
}

// MemoryWallet is a concurrency-safe in-memory BalanceOracle. Unknown users
// report a zero balance.
type MemoryWallet struct {
	mu       sync.RWMutex
	balances map[string]decimal.Decimal
}

// NewMemoryWallet creates an empty in-memory wallet oracle.
func NewMemoryWallet() *MemoryWallet {
	return &MemoryWallet{
		balances: make(map[string]decimal.Decimal),
	}
}

// BalanceOf returns the user's current balance.
func (w *MemoryWallet) BalanceOf(userID string) (decimal.Decimal, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.balances[userID], nil
}

// SetBalance overwrites the user's balance.
func (w *MemoryWallet) SetBalance(userID string, balance decimal.Decimal) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.balances[userID] = balance
}
