package bidding

import (
	"fmt"
	"time"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/events"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/internal/wallet"
	"auction-engine/utils"

	"github.com/shopspring/decimal"
)

// MinIncrement is the minimum amount a bid must exceed the current bid by.
var MinIncrement = decimal.NewFromInt(1)

// ExtendWindow is both the remaining-time threshold that triggers an
// auto-extension and the amount of time added to the deadline.
const ExtendWindow = 5 * time.Minute

// BiddingService resolves manual bids, proxy bids, and buy-now purchases
// against the auction store.
type BiddingService struct {
	repo   repository.AuctionDB
	oracle wallet.BalanceOracle
	bus    events.Bus
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB, oracle wallet.BalanceOracle, bus events.Bus) *BiddingService {
	return &BiddingService{
		repo:   repo,
		oracle: oracle,
		bus:    bus,
	}
}

// PlaceBid validates and atomically records a bid. The check-then-set on
// currentBid happens inside the store's conditional update, so two racing
// bids can never both be accepted against the same stale value; the loser
// gets ErrBidSuperseded and should retry with fresh auction state.
func (s *BiddingService) PlaceBid(userID, auctionID string, amount decimal.Decimal, isAutoBid bool, maxAutoBid *decimal.Decimal) (models.Bid, models.Auction, error) {
	if userID == "" || auctionID == "" {
		return models.Bid{}, models.Auction{}, fmt.Errorf("service: %w - missing userID or auctionID", auctionerrors.ErrInvalidInput)
	}
	if !amount.IsPositive() {
		return models.Bid{}, models.Auction{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidInput)
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Bid{}, models.Auction{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	if auction.Status != models.StatusRunning {
		return models.Bid{}, models.Auction{}, fmt.Errorf("service: auction %s is %s: %w", auctionID, auction.Status, auctionerrors.ErrNotRunning)
	}
	if auction.SellerID == userID {
		return models.Bid{}, models.Auction{}, fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrSellerCannotBid)
	}
	if amount.LessThanOrEqual(auction.CurrentBid.Add(MinIncrement)) {
		return models.Bid{}, models.Auction{}, fmt.Errorf("service: %w - current bid is %s", auctionerrors.ErrBidTooLow, auction.CurrentBid.String())
	}

	// Advisory check only: the oracle may be stale and no funds are reserved.
	balance, err := s.oracle.BalanceOf(userID)
	if err != nil {
		return models.Bid{}, models.Auction{}, fmt.Errorf("service: failed to check balance for user %s: %w", userID, err)
	}
	if balance.LessThan(amount) {
		return models.Bid{}, models.Auction{}, fmt.Errorf("service: user %s: %w", userID, auctionerrors.ErrInsufficientBalance)
	}

	bid := models.Bid{
		BidID:      utils.GenerateID(),
		AuctionID:  auctionID,
		UserID:     userID,
		Amount:     amount,
		IsAutoBid:  isAutoBid,
		MaxAutoBid: maxAutoBid,
		CreatedAt:  time.Now().UTC(),
	}

	updated, err := s.repo.CompareAndSetCurrentBid(bid)
	if err != nil {
		return models.Bid{}, models.Auction{}, fmt.Errorf("service: failed to record bid on auction %s: %w", auctionID, err)
	}

	if updated.AutoExtend && time.Until(updated.EndTime) < ExtendWindow {
		extended, err := s.repo.ExtendEndTime(auctionID, updated.EndTime.Add(ExtendWindow))
		if err != nil {
			// The bid is already accepted; a failed extension (e.g. a racing
			// buy-now ending the auction) must not fail the call.
			utils.Warn("failed to auto-extend auction", map[string]any{
				"auction_id": auctionID,
				"error":      err.Error(),
			})
		} else {
			updated = extended
			s.bus.Publish(events.New(events.AuctionExtended, events.AuctionExtendedPayload{
				AuctionID:  auctionID,
				NewEndTime: extended.EndTime,
			}))
		}
	}

	s.bus.Publish(events.New(events.BidPlaced, events.BidPlacedPayload{
		AuctionID:  auctionID,
		BidID:      bid.BidID,
		UserID:     userID,
		Amount:     amount,
		CurrentBid: updated.CurrentBid,
		IsAutoBid:  isAutoBid,
	}))

	return bid, updated, nil
}

// BuyNow ends the auction immediately at its buy-now price, bypassing the
// time-based settlement.
func (s *BiddingService) BuyNow(userID, auctionID string) (models.Auction, error) {
	if userID == "" || auctionID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing userID or auctionID", auctionerrors.ErrInvalidInput)
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	if auction.Status != models.StatusRunning {
		return models.Auction{}, fmt.Errorf("service: auction %s is %s: %w", auctionID, auction.Status, auctionerrors.ErrNotRunning)
	}
	if auction.BuyNowPrice == nil {
		return models.Auction{}, fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrBuyNowUnavailable)
	}
	if auction.SellerID == userID {
		return models.Auction{}, fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrSellerCannotBuy)
	}

	balance, err := s.oracle.BalanceOf(userID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to check balance for user %s: %w", userID, err)
	}
	if balance.LessThan(*auction.BuyNowPrice) {
		return models.Auction{}, fmt.Errorf("service: user %s: %w", userID, auctionerrors.ErrInsufficientBalance)
	}

	ended, err := s.repo.FinalizeBuyNow(auctionID, userID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to finalize buy-now on auction %s: %w", auctionID, err)
	}

	s.bus.Publish(events.New(events.AuctionBuyNow, events.BuyNowPayload{
		AuctionID: auctionID,
		WinnerID:  userID,
		Amount:    ended.CurrentBid,
	}))

	return ended, nil
}

// GetBidsForAuction returns all bids for a specific auction
func (s *BiddingService) GetBidsForAuction(auctionID string) ([]models.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}

	bids, err := s.repo.GetBidsByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// GetWinningBid returns the highest bid for a specific auction
func (s *BiddingService) GetWinningBid(auctionID string) (models.Bid, error) {
	if auctionID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}

	winningBid, err := s.repo.GetWinningBid(auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for auction %s: %w", auctionID, err)
	}
	return winningBid, nil
}
