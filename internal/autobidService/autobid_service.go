package autobid

import (
	"fmt"
	"sync"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/events"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/internal/wallet"
	"auction-engine/utils"

	"github.com/shopspring/decimal"
)

// BidPlacer is the slice of the bidding service the resolver needs to submit
// proxy bids on a holder's behalf.
type BidPlacer interface {
	PlaceBid(userID, auctionID string, amount decimal.Decimal, isAutoBid bool, maxAutoBid *decimal.Decimal) (models.Bid, models.Auction, error)
}

// AutoBidService holds per-auction proxy-bid configurations and reacts to
// BID_PLACED events by placing competing proxy bids. Configs are process-local
// and discarded when their auction leaves RUNNING.
type AutoBidService struct {
	mu      sync.Mutex
	configs map[string][]models.AutoBidConfig // auctionID -> configs, insertion order

	repo   repository.AuctionDB
	oracle wallet.BalanceOracle
	bidder BidPlacer
}

// NewAutoBidService creates the resolver and subscribes it to the bus: one
// cascade step per BID_PLACED, config teardown on every terminal event.
func NewAutoBidService(repo repository.AuctionDB, oracle wallet.BalanceOracle, bidder BidPlacer, bus events.Bus) *AutoBidService {
	s := &AutoBidService{
		configs: make(map[string][]models.AutoBidConfig),
		repo:    repo,
		oracle:  oracle,
		bidder:  bidder,
	}

	bus.Subscribe(events.BidPlaced, s.handleBidPlaced)
	bus.Subscribe(events.AuctionEnded, s.handleAuctionClosed)
	bus.Subscribe(events.AuctionBuyNow, s.handleAuctionClosed)
	bus.Subscribe(events.AuctionCancelled, s.handleAuctionClosed)

	return s
}

// EnableAutoBid inserts or replaces the caller's proxy-bid config for the
// auction. An increment of zero or less falls back to 1.
func (s *AutoBidService) EnableAutoBid(userID, auctionID string, maxBid, increment decimal.Decimal) (models.AutoBidConfig, error) {
	if userID == "" || auctionID == "" {
		return models.AutoBidConfig{}, fmt.Errorf("service: %w - missing userID or auctionID", auctionerrors.ErrInvalidInput)
	}
	if !maxBid.IsPositive() {
		return models.AutoBidConfig{}, fmt.Errorf("service: %w - non-positive max bid", auctionerrors.ErrInvalidInput)
	}
	if !increment.IsPositive() {
		increment = decimal.NewFromInt(1)
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.AutoBidConfig{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	if auction.Status != models.StatusRunning {
		return models.AutoBidConfig{}, fmt.Errorf("service: auction %s is %s: %w", auctionID, auction.Status, auctionerrors.ErrNotRunning)
	}
	if auction.SellerID == userID {
		return models.AutoBidConfig{}, fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrSellerCannotBid)
	}

	balance, err := s.oracle.BalanceOf(userID)
	if err != nil {
		return models.AutoBidConfig{}, fmt.Errorf("service: failed to check balance for user %s: %w", userID, err)
	}
	if balance.LessThan(maxBid) {
		return models.AutoBidConfig{}, fmt.Errorf("service: user %s: %w", userID, auctionerrors.ErrInsufficientBalance)
	}

	config := models.AutoBidConfig{
		UserID:    userID,
		AuctionID: auctionID,
		MaxBid:    maxBid,
		Increment: increment,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.configs[auctionID]
	for i, c := range existing {
		if c.UserID == userID {
			existing[i] = config
			return config, nil
		}
	}
	s.configs[auctionID] = append(existing, config)
	return config, nil
}

// DisableAutoBid removes the caller's config. Removing an absent config is
// not an error.
func (s *AutoBidService) DisableAutoBid(userID, auctionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(userID, auctionID)
}

// GetAutoBidStatus returns the caller's config for the auction, if any.
func (s *AutoBidService) GetAutoBidStatus(userID, auctionID string) (models.AutoBidConfig, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.configs[auctionID] {
		if c.UserID == userID {
			return c, true
		}
	}
	return models.AutoBidConfig{}, false
}

// handleBidPlaced runs one cascade step: scan configs in insertion order,
// skip the triggering bidder, drop configs that cannot cover the candidate
// amount, and place at most one proxy bid. The proxy bid's own BID_PLACED
// event drives the next step, so a long chain never deepens the stack.
func (s *AutoBidService) handleBidPlaced(event events.Event) {
	payload, ok := event.Payload.(events.BidPlacedPayload)
	if !ok {
		return
	}

	s.mu.Lock()
	candidates := append([]models.AutoBidConfig(nil), s.configs[payload.AuctionID]...)
	s.mu.Unlock()

	for _, config := range candidates {
		if config.UserID == payload.UserID {
			// Never auto-bid against oneself.
			continue
		}

		candidate := payload.Amount.Add(config.Increment)
		if candidate.GreaterThan(config.MaxBid) {
			s.disable(config, "ceiling exceeded", candidate)
			continue
		}

		// Balance is re-checked per step, never cached across the cascade.
		balance, err := s.oracle.BalanceOf(config.UserID)
		if err != nil || balance.LessThan(candidate) {
			s.disable(config, "insufficient balance", candidate)
			continue
		}

		maxBid := config.MaxBid
		if _, _, err := s.bidder.PlaceBid(config.UserID, config.AuctionID, candidate, true, &maxBid); err != nil {
			utils.Warn("auto-bid failed", map[string]any{
				"auction_id": config.AuctionID,
				"user_id":    config.UserID,
				"amount":     candidate.String(),
				"error":      err.Error(),
			})
			s.DisableAutoBid(config.UserID, config.AuctionID)
			continue
		}

		// Exactly one proxy bid per triggering event.
		return
	}
}

// handleAuctionClosed drops every config for an auction leaving RUNNING.
func (s *AutoBidService) handleAuctionClosed(event events.Event) {
	var auctionID string
	switch payload := event.Payload.(type) {
	case events.AuctionEndedPayload:
		auctionID = payload.AuctionID
	case events.BuyNowPayload:
		auctionID = payload.AuctionID
	case events.AuctionCancelledPayload:
		auctionID = payload.AuctionID
	default:
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.configs, auctionID)
}

func (s *AutoBidService) disable(config models.AutoBidConfig, reason string, candidate decimal.Decimal) {
	utils.Info("auto-bid config disabled", map[string]any{
		"auction_id": config.AuctionID,
		"user_id":    config.UserID,
		"max_bid":    config.MaxBid.String(),
		"candidate":  candidate.String(),
		"reason":     reason,
	})
	s.DisableAutoBid(config.UserID, config.AuctionID)
}

// removeLocked deletes one config; the caller holds the mutex.
func (s *AutoBidService) removeLocked(userID, auctionID string) {
	configs := s.configs[auctionID]
	for i, c := range configs {
		if c.UserID == userID {
			s.configs[auctionID] = append(configs[:i], configs[i+1:]...)
			if len(s.configs[auctionID]) == 0 {
				delete(s.configs, auctionID)
			}
			return
		}
	}
}
