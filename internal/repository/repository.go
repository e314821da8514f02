package repository

import (
	"fmt"
	"sync"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
)

// AuctionDB defines the auction storage contract. Every mutating method is
// all-or-nothing: it either applies fully or leaves the auction untouched.
type AuctionDB interface {
	CreateAuction(auction model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	ListAuctions(status model.AuctionStatus) ([]model.Auction, error)
	DueScheduled(now time.Time) ([]model.Auction, error)
	DueRunning(now time.Time) ([]model.Auction, error)

	// CompareAndSetCurrentBid appends the bid and advances currentBid in one
	// atomic step, conditioned on the auction still RUNNING and currentBid
	// still below the bid amount. A lost race returns ErrBidSuperseded.
	CompareAndSetCurrentBid(bid model.Bid) (model.Auction, error)

	// TransitionStatus moves the auction from one status to another,
	// conditioned on the current status. Re-running a sweep finds the
	// condition false and returns ErrStatusConflict.
	TransitionStatus(auctionID string, from, to model.AuctionStatus) (model.Auction, error)

	// SettleAuction ends a RUNNING auction, picking the winner (highest
	// amount, earliest creation time on ties) from the bid log in the same
	// atomic step. The returned bid is zero-valued when there were no bids.
	SettleAuction(auctionID string) (model.Auction, model.Bid, bool, error)

	// FinalizeBuyNow ends a RUNNING auction immediately at its buy-now price
	// with the buyer as winner.
	FinalizeBuyNow(auctionID, buyerID string) (model.Auction, error)

	// CancelAuction cancels a SCHEDULED or RUNNING auction, conditioned on
	// the bid log still being empty.
	CancelAuction(auctionID string) (model.Auction, error)

	ExtendEndTime(auctionID string, newEndTime time.Time) (model.Auction, error)

	GetBidsByAuction(auctionID string) ([]model.Bid, error)
	GetBidsByUser(userID, auctionID string) ([]model.Bid, error)
	GetWinningBid(auctionID string) (model.Bid, error)
}

// auctionRecord pairs one auction with its bid log under a dedicated lock,
// so operations on different auctions never serialize against each other.
type auctionRecord struct {
	mu      sync.Mutex
	auction model.Auction
	bids    []model.Bid
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB.
// The registry mutex guards only the map; each record has its own lock.
type MemoryRepo struct {
	mu       sync.RWMutex
	auctions map[string]*auctionRecord
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions: make(map[string]*auctionRecord),
	}
}

func (r *MemoryRepo) record(auctionID string) (*auctionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.auctions[auctionID]
	if !ok {
		return nil, fmt.Errorf("auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return rec, nil
}

// CreateAuction registers a new auction record.
func (r *MemoryRepo) CreateAuction(auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auction.AuctionID]; ok {
		return fmt.Errorf("auction %s already exists: %w", auction.AuctionID, auctionerrors.ErrInvalidInput)
	}
	r.auctions[auction.AuctionID] = &auctionRecord{auction: auction}
	return nil
}

// GetAuction returns a snapshot of one auction.
func (r *MemoryRepo) GetAuction(auctionID string) (model.Auction, error) {
	rec, err := r.record(auctionID)
	if err != nil {
		return model.Auction{}, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.auction, nil
}

// ListAuctions returns snapshots of all auctions in the given status, or all
// auctions when status is empty.
func (r *MemoryRepo) ListAuctions(status model.AuctionStatus) ([]model.Auction, error) {
	out := make([]model.Auction, 0)
	for _, rec := range r.snapshotRecords() {
		rec.mu.Lock()
		if status == "" || rec.auction.Status == status {
			out = append(out, rec.auction)
		}
		rec.mu.Unlock()
	}
	return out, nil
}

// DueScheduled returns SCHEDULED auctions whose start time has been reached.
func (r *MemoryRepo) DueScheduled(now time.Time) ([]model.Auction, error) {
	out := make([]model.Auction, 0)
	for _, rec := range r.snapshotRecords() {
		rec.mu.Lock()
		if rec.auction.Status == model.StatusScheduled && !rec.auction.StartTime.After(now) {
			out = append(out, rec.auction)
		}
		rec.mu.Unlock()
	}
	return out, nil
}

// DueRunning returns RUNNING auctions whose end time has been reached.
func (r *MemoryRepo) DueRunning(now time.Time) ([]model.Auction, error) {
	out := make([]model.Auction, 0)
	for _, rec := range r.snapshotRecords() {
		rec.mu.Lock()
		if rec.auction.Status == model.StatusRunning && !rec.auction.EndTime.After(now) {
			out = append(out, rec.auction)
		}
		rec.mu.Unlock()
	}
	return out, nil
}

// CompareAndSetCurrentBid appends the bid and advances currentBid atomically.
func (r *MemoryRepo) CompareAndSetCurrentBid(bid model.Bid) (model.Auction, error) {
	rec, err := r.record(bid.AuctionID)
	if err != nil {
		return model.Auction{}, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.auction.Status != model.StatusRunning {
		return model.Auction{}, fmt.Errorf("auction %s: %w", bid.AuctionID, auctionerrors.ErrNotRunning)
	}
	// The conditional-update guard: a concurrent bid at or above this amount
	// already advanced currentBid, so this bid lost the race.
	if bid.Amount.LessThanOrEqual(rec.auction.CurrentBid) {
		return model.Auction{}, fmt.Errorf("auction %s at %s: %w",
			bid.AuctionID, rec.auction.CurrentBid.String(), auctionerrors.ErrBidSuperseded)
	}

	rec.bids = append(rec.bids, bid)
	rec.auction.CurrentBid = bid.Amount
	return rec.auction, nil
}

// TransitionStatus conditionally moves the auction between statuses.
func (r *MemoryRepo) TransitionStatus(auctionID string, from, to model.AuctionStatus) (model.Auction, error) {
	rec, err := r.record(auctionID)
	if err != nil {
		return model.Auction{}, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.auction.Status != from {
		return model.Auction{}, fmt.Errorf("auction %s is %s, expected %s: %w",
			auctionID, rec.auction.Status, from, auctionerrors.ErrStatusConflict)
	}
	rec.auction.Status = to
	return rec.auction, nil
}

// SettleAuction ends a RUNNING auction, choosing the winner from the bid log.
func (r *MemoryRepo) SettleAuction(auctionID string) (model.Auction, model.Bid, bool, error) {
	rec, err := r.record(auctionID)
	if err != nil {
		return model.Auction{}, model.Bid{}, false, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.auction.Status != model.StatusRunning {
		return model.Auction{}, model.Bid{}, false, fmt.Errorf("auction %s is %s: %w",
			auctionID, rec.auction.Status, auctionerrors.ErrStatusConflict)
	}

	rec.auction.Status = model.StatusEnded

	winning, ok := winningBid(rec.bids)
	if ok {
		winnerID := winning.UserID
		rec.auction.WinnerID = &winnerID
	}
	return rec.auction, winning, ok, nil
}

// FinalizeBuyNow ends a RUNNING auction at its buy-now price.
func (r *MemoryRepo) FinalizeBuyNow(auctionID, buyerID string) (model.Auction, error) {
	rec, err := r.record(auctionID)
	if err != nil {
		return model.Auction{}, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.auction.Status != model.StatusRunning {
		return model.Auction{}, fmt.Errorf("auction %s: %w", auctionID, auctionerrors.ErrNotRunning)
	}
	if rec.auction.BuyNowPrice == nil {
		return model.Auction{}, fmt.Errorf("auction %s: %w", auctionID, auctionerrors.ErrBuyNowUnavailable)
	}

	rec.auction.Status = model.StatusEnded
	rec.auction.WinnerID = &buyerID
	rec.auction.CurrentBid = *rec.auction.BuyNowPrice
	return rec.auction, nil
}

// CancelAuction cancels the auction unless it is terminal or has bids.
func (r *MemoryRepo) CancelAuction(auctionID string) (model.Auction, error) {
	rec, err := r.record(auctionID)
	if err != nil {
		return model.Auction{}, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.auction.Status == model.StatusEnded || rec.auction.Status == model.StatusCancelled {
		return model.Auction{}, fmt.Errorf("auction %s: %w", auctionID, auctionerrors.ErrAlreadyEnded)
	}
	if len(rec.bids) > 0 {
		return model.Auction{}, fmt.Errorf("auction %s: %w", auctionID, auctionerrors.ErrHasBids)
	}

	rec.auction.Status = model.StatusCancelled
	return rec.auction, nil
}

// ExtendEndTime pushes a RUNNING auction's end time forward.
func (r *MemoryRepo) ExtendEndTime(auctionID string, newEndTime time.Time) (model.Auction, error) {
	rec, err := r.record(auctionID)
	if err != nil {
		return model.Auction{}, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.auction.Status != model.StatusRunning {
		return model.Auction{}, fmt.Errorf("auction %s: %w", auctionID, auctionerrors.ErrNotRunning)
	}
	if newEndTime.After(rec.auction.EndTime) {
		rec.auction.EndTime = newEndTime
	}
	return rec.auction, nil
}

// GetBidsByAuction returns all bids for an auction in placement order.
func (r *MemoryRepo) GetBidsByAuction(auctionID string) ([]model.Bid, error) {
	rec, err := r.record(auctionID)
	if err != nil {
		return nil, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	return append([]model.Bid(nil), rec.bids...), nil
}

// GetBidsByUser returns one user's bids on an auction in placement order.
func (r *MemoryRepo) GetBidsByUser(userID, auctionID string) ([]model.Bid, error) {
	rec, err := r.record(auctionID)
	if err != nil {
		return nil, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	out := make([]model.Bid, 0)
	for _, b := range rec.bids {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

// GetWinningBid returns the highest bid for an auction.
func (r *MemoryRepo) GetWinningBid(auctionID string) (model.Bid, error) {
	rec, err := r.record(auctionID)
	if err != nil {
		return model.Bid{}, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	winning, ok := winningBid(rec.bids)
	if !ok {
		return model.Bid{}, fmt.Errorf("auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	return winning, nil
}

// snapshotRecords copies the registry pointers so sweeps iterate without
// holding the registry lock during per-record work.
func (r *MemoryRepo) snapshotRecords() []*auctionRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*auctionRecord, 0, len(r.auctions))
	for _, rec := range r.auctions {
		out = append(out, rec)
	}
	return out
}

// winningBid picks the highest-amount bid, breaking ties in favor of the
// earliest-created bid. The caller must hold the record lock.
func winningBid(bids []model.Bid) (model.Bid, bool) {
	if len(bids) == 0 {
		return model.Bid{}, false
	}

	winning := bids[0]
	for _, b := range bids[1:] {
		if b.Amount.GreaterThan(winning.Amount) ||
			(b.Amount.Equal(winning.Amount) && b.CreatedAt.Before(winning.CreatedAt)) {
			winning = b
		}
	}
	return winning, true
}
