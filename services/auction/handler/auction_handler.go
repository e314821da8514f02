package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"auction-engine/internal/auctionerrors"
	lifecycle "auction-engine/internal/lifecycleService"
	model "auction-engine/internal/models"
	"auction-engine/services/auction/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// userIDHeader carries the already-authenticated caller identity; the engine
// performs no authentication of its own.
const userIDHeader = "X-User-ID"

type LifecycleServiceInterface interface {
	CreateAuction(sellerID string, input lifecycle.CreateAuctionInput) (model.Auction, error)
	CancelAuction(auctionID, sellerID string) (model.Auction, error)
	GetAuction(auctionID string) (model.Auction, error)
	ListAuctions(status model.AuctionStatus) ([]model.Auction, error)
	GetUserBids(userID, auctionID string) ([]model.Bid, error)
}

type BiddingServiceInterface interface {
	PlaceBid(userID, auctionID string, amount decimal.Decimal, isAutoBid bool, maxAutoBid *decimal.Decimal) (model.Bid, model.Auction, error)
	BuyNow(userID, auctionID string) (model.Auction, error)
	GetBidsForAuction(auctionID string) ([]model.Bid, error)
	GetWinningBid(auctionID string) (model.Bid, error)
}

type AutoBidServiceInterface interface {
	EnableAutoBid(userID, auctionID string, maxBid, increment decimal.Decimal) (model.AutoBidConfig, error)
	DisableAutoBid(userID, auctionID string)
	GetAutoBidStatus(userID, auctionID string) (model.AutoBidConfig, bool)
}

type AuctionHandler struct {
	lifecycle LifecycleServiceInterface
	bidding   BiddingServiceInterface
	autobid   AutoBidServiceInterface
}

func NewAuctionHandler(lifecycleSvc LifecycleServiceInterface, biddingSvc BiddingServiceInterface, autobidSvc AutoBidServiceInterface) *AuctionHandler {
	return &AuctionHandler{
		lifecycle: lifecycleSvc,
		bidding:   biddingSvc,
		autobid:   autobidSvc,
	}
}

// callerID extracts the authenticated caller from the request headers.
func callerID(c *gin.Context) (string, bool) {
	userID := c.GetHeader(userIDHeader)
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, errors.New("missing "+userIDHeader+" header"), "caller identity required")
		return "", false
	}
	return userID, true
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	sellerID, ok := callerID(c)
	if !ok {
		return
	}

	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", fmt.Errorf("start_time: %w", err))
		return
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", fmt.Errorf("end_time: %w", err))
		return
	}

	auction, err := h.lifecycle.CreateAuction(sellerID, lifecycle.CreateAuctionInput{
		ProductID:   req.ProductID,
		StartPrice:  req.StartPrice,
		BuyNowPrice: req.BuyNowPrice,
		StartTime:   startTime,
		EndTime:     endTime,
		AutoExtend:  req.AutoExtend,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"product_id": req.ProductID,
			"seller_id":  sellerID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToAuctionResponse(auction), "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"seller_id":  sellerID,
	})
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	status := model.AuctionStatus(c.Query("status"))

	auctions, err := h.lifecycle.ListAuctions(status)
	if err != nil {
		httpStatus, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, httpStatus, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	out := make([]helpers.AuctionResponse, 0, len(auctions))
	for _, a := range auctions {
		out = append(out, helpers.ToAuctionResponse(a))
	}
	utils.JSONResponse(c, http.StatusOK, out, "auctions retrieved successfully")
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	auction, err := h.lifecycle.GetAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(auction), "auction retrieved successfully")
}

// CancelAuctionHandler handles POST /auctions/:auction_id/cancel
func (h *AuctionHandler) CancelAuctionHandler(c *gin.Context) {
	sellerID, ok := callerID(c)
	if !ok {
		return
	}
	auctionID := c.Param("auction_id")

	auction, err := h.lifecycle.CancelAuction(auctionID, sellerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CancelAuctionHandler: failed to cancel auction", map[string]any{
			"auction_id": auctionID,
			"seller_id":  sellerID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(auction), "auction cancelled successfully")
	helpers.LogSuccess("CancelAuctionHandler", "auction cancelled successfully", map[string]any{
		"auction_id": auctionID,
		"seller_id":  sellerID,
	})
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	auctionID := c.Param("auction_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, auction, err := h.bidding.PlaceBid(userID, auctionID, req.Amount, false, nil)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PlaceBidHandler: failed to place bid", map[string]any{
			"auction_id": auctionID,
			"user_id":    userID,
			"amount":     req.Amount.String(),
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{
		"bid":     helpers.ToBidResponse(bid),
		"auction": helpers.ToAuctionResponse(auction),
	}, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":      bid.BidID,
		"auction_id":  auctionID,
		"user_id":     userID,
		"amount":      bid.Amount.String(),
		"current_bid": auction.CurrentBid.String(),
	})
}

// BuyNowHandler handles POST /auctions/:auction_id/buy-now
func (h *AuctionHandler) BuyNowHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	auctionID := c.Param("auction_id")

	auction, err := h.bidding.BuyNow(userID, auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("BuyNowHandler: failed to buy now", map[string]any{
			"auction_id": auctionID,
			"user_id":    userID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(auction), "auction purchased successfully")
	helpers.LogSuccess("BuyNowHandler", "auction purchased successfully", map[string]any{
		"auction_id": auctionID,
		"winner_id":  userID,
		"amount":     auction.CurrentBid.String(),
	})
}

// GetBidsHandler handles GET /auctions/:auction_id/bids
func (h *AuctionHandler) GetBidsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	bids, err := h.bidding.GetBidsForAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponses(bids), "bids retrieved successfully")
}

// GetWinningBidHandler handles GET /auctions/:auction_id/winning
func (h *AuctionHandler) GetWinningBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	bid, err := h.bidding.GetWinningBid(auctionID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "winning bid retrieved successfully")
}

// GetUserBidsHandler handles GET /auctions/:auction_id/my-bids
func (h *AuctionHandler) GetUserBidsHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	auctionID := c.Param("auction_id")

	bids, err := h.lifecycle.GetUserBids(userID, auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponses(bids), "bids retrieved successfully")
}

// EnableAutoBidHandler handles PUT /auctions/:auction_id/autobid
func (h *AuctionHandler) EnableAutoBidHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	auctionID := c.Param("auction_id")

	var req helpers.AutoBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "EnableAutoBidHandler", err)
		return
	}

	config, err := h.autobid.EnableAutoBid(userID, auctionID, req.MaxBid, req.Increment)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("EnableAutoBidHandler: failed to enable auto-bid", map[string]any{
			"auction_id": auctionID,
			"user_id":    userID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.AutoBidResponse{
		AuctionID: config.AuctionID,
		UserID:    config.UserID,
		MaxBid:    config.MaxBid.String(),
		Increment: config.Increment.String(),
		Active:    true,
	}, "auto-bid enabled successfully")
	helpers.LogSuccess("EnableAutoBidHandler", "auto-bid enabled successfully", map[string]any{
		"auction_id": auctionID,
		"user_id":    userID,
		"max_bid":    config.MaxBid.String(),
	})
}

// DisableAutoBidHandler handles DELETE /auctions/:auction_id/autobid
func (h *AuctionHandler) DisableAutoBidHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	auctionID := c.Param("auction_id")

	h.autobid.DisableAutoBid(userID, auctionID)

	utils.JSONResponse(c, http.StatusOK, gin.H{"active": false}, "auto-bid disabled")
}

// GetAutoBidStatusHandler handles GET /auctions/:auction_id/autobid
func (h *AuctionHandler) GetAutoBidStatusHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	auctionID := c.Param("auction_id")

	config, active := h.autobid.GetAutoBidStatus(userID, auctionID)
	if !active {
		utils.JSONResponse(c, http.StatusOK, helpers.AutoBidResponse{
			AuctionID: auctionID,
			UserID:    userID,
			Active:    false,
		}, "no auto-bid configured")
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.AutoBidResponse{
		AuctionID: config.AuctionID,
		UserID:    config.UserID,
		MaxBid:    config.MaxBid.String(),
		Increment: config.Increment.String(),
		Active:    true,
	}, "auto-bid status retrieved")
}
