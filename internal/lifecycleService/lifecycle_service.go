package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/catalog"
	"auction-engine/internal/events"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"

	"github.com/shopspring/decimal"
)

// LifecycleService owns the SCHEDULED -> RUNNING -> ENDED/CANCELLED state
// machine and the time-driven transitions.
type LifecycleService struct {
	repo    repository.AuctionDB
	catalog catalog.ProductCatalog
	bus     events.Bus
}

// NewLifecycleService creates a new LifecycleService instance
func NewLifecycleService(repo repository.AuctionDB, productCatalog catalog.ProductCatalog, bus events.Bus) *LifecycleService {
	return &LifecycleService{
		repo:    repo,
		catalog: productCatalog,
		bus:     bus,
	}
}

// CreateAuctionInput carries the seller's listing parameters.
type CreateAuctionInput struct {
	ProductID   string
	StartPrice  decimal.Decimal
	BuyNowPrice *decimal.Decimal
	StartTime   time.Time
	EndTime     time.Time
	AutoExtend  bool
}

// CreateAuction validates the listing and registers a SCHEDULED auction.
func (s *LifecycleService) CreateAuction(sellerID string, input CreateAuctionInput) (models.Auction, error) {
	if sellerID == "" || input.ProductID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing sellerID or productID", auctionerrors.ErrInvalidInput)
	}
	if !input.StartPrice.IsPositive() {
		return models.Auction{}, fmt.Errorf("service: %w - non-positive start price", auctionerrors.ErrInvalidInput)
	}
	if input.BuyNowPrice != nil && input.BuyNowPrice.LessThanOrEqual(input.StartPrice) {
		return models.Auction{}, fmt.Errorf("service: %w - buy-now price must exceed start price", auctionerrors.ErrInvalidInput)
	}

	product, err := s.catalog.GetProduct(input.ProductID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to resolve product %s: %w", input.ProductID, err)
	}
	if product.SellerID != sellerID {
		return models.Auction{}, fmt.Errorf("service: product %s: %w", input.ProductID, auctionerrors.ErrProductNotOwned)
	}
	if product.Status != models.ProductPublished {
		return models.Auction{}, fmt.Errorf("service: product %s is %s: %w", input.ProductID, product.Status, auctionerrors.ErrProductNotEligible)
	}

	if !input.StartTime.Before(input.EndTime) {
		return models.Auction{}, fmt.Errorf("service: %w", auctionerrors.ErrInvalidTimeRange)
	}
	if input.StartTime.Before(time.Now().UTC()) {
		return models.Auction{}, fmt.Errorf("service: %w", auctionerrors.ErrStartTimeInPast)
	}

	auction := models.Auction{
		AuctionID:   utils.GenerateID(),
		ProductID:   input.ProductID,
		SellerID:    sellerID,
		StartPrice:  input.StartPrice,
		CurrentBid:  input.StartPrice,
		BuyNowPrice: input.BuyNowPrice,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		AutoExtend:  input.AutoExtend,
		Status:      models.StatusScheduled,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.CreateAuction(auction); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction for product %s: %w", input.ProductID, err)
	}

	s.bus.Publish(events.New(events.AuctionCreated, events.AuctionCreatedPayload{
		AuctionID: auction.AuctionID,
		SellerID:  sellerID,
	}))

	return auction, nil
}

// PromoteScheduled transitions every SCHEDULED auction whose start time has
// been reached to RUNNING. Re-running finds nothing to promote because the
// conditional transition fails once the status has changed.
func (s *LifecycleService) PromoteScheduled() (int, error) {
	due, err := s.repo.DueScheduled(time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("service: failed to list due scheduled auctions: %w", err)
	}

	promoted := 0
	for _, auction := range due {
		if _, err := s.repo.TransitionStatus(auction.AuctionID, models.StatusScheduled, models.StatusRunning); err != nil {
			// Lost to a concurrent promote or cancel; nothing to do.
			if errors.Is(err, auctionerrors.ErrStatusConflict) {
				continue
			}
			return promoted, fmt.Errorf("service: failed to promote auction %s: %w", auction.AuctionID, err)
		}
		promoted++

		s.bus.Publish(events.New(events.AuctionStarted, events.AuctionStartedPayload{
			AuctionID: auction.AuctionID,
		}))
	}
	return promoted, nil
}

// SettleExpired ends every RUNNING auction whose end time has been reached,
// assigning the winner from the bid log.
func (s *LifecycleService) SettleExpired() (int, error) {
	due, err := s.repo.DueRunning(time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("service: failed to list due running auctions: %w", err)
	}

	settled := 0
	for _, auction := range due {
		_, winning, hasWinner, err := s.repo.SettleAuction(auction.AuctionID)
		if err != nil {
			// Already settled by buy-now or a concurrent sweep.
			if errors.Is(err, auctionerrors.ErrStatusConflict) {
				continue
			}
			return settled, fmt.Errorf("service: failed to settle auction %s: %w", auction.AuctionID, err)
		}
		settled++

		payload := events.AuctionEndedPayload{AuctionID: auction.AuctionID}
		if hasWinner {
			winnerID := winning.UserID
			amount := winning.Amount
			payload.WinnerID = &winnerID
			payload.WinningAmount = &amount
		}
		s.bus.Publish(events.New(events.AuctionEnded, payload))

		utils.Info("auction settled", map[string]any{
			"auction_id": auction.AuctionID,
			"has_winner": hasWinner,
		})
	}
	return settled, nil
}

// CancelAuction cancels a bid-free auction on behalf of its seller.
func (s *LifecycleService) CancelAuction(auctionID, sellerID string) (models.Auction, error) {
	if auctionID == "" || sellerID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing auctionID or sellerID", auctionerrors.ErrInvalidInput)
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	if auction.SellerID != sellerID {
		return models.Auction{}, fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrForbidden)
	}

	cancelled, err := s.repo.CancelAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to cancel auction %s: %w", auctionID, err)
	}

	s.bus.Publish(events.New(events.AuctionCancelled, events.AuctionCancelledPayload{
		AuctionID: auctionID,
		SellerID:  sellerID,
	}))

	return cancelled, nil
}

// GetAuction returns a snapshot of one auction.
func (s *LifecycleService) GetAuction(auctionID string) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// ListAuctions returns auctions in the given status, or all when empty.
func (s *LifecycleService) ListAuctions(status models.AuctionStatus) ([]models.Auction, error) {
	auctions, err := s.repo.ListAuctions(status)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return auctions, nil
}

// GetUserBids returns one user's bids on an auction.
func (s *LifecycleService) GetUserBids(userID, auctionID string) ([]models.Bid, error) {
	if userID == "" || auctionID == "" {
		return nil, fmt.Errorf("service: %w - missing userID or auctionID", auctionerrors.ErrInvalidInput)
	}

	bids, err := s.repo.GetBidsByUser(userID, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for user %s on auction %s: %w", userID, auctionID, err)
	}
	return bids, nil
}
