package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrProductNotFound):
		return http.StatusNotFound, "product not found"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found for auction"
	case errors.Is(err, auctionerrors.ErrInvalidInput),
		errors.Is(err, auctionerrors.ErrInvalidTimeRange),
		errors.Is(err, auctionerrors.ErrStartTimeInPast):
		return http.StatusBadRequest, "invalid auction details"
	case errors.Is(err, auctionerrors.ErrProductNotOwned),
		errors.Is(err, auctionerrors.ErrForbidden),
		errors.Is(err, auctionerrors.ErrSellerCannotBid),
		errors.Is(err, auctionerrors.ErrSellerCannotBuy):
		return http.StatusForbidden, "operation not permitted"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrBidSuperseded):
		return http.StatusConflict, "bid superseded, retry with fresh auction state"
	case errors.Is(err, auctionerrors.ErrNotRunning),
		errors.Is(err, auctionerrors.ErrAlreadyEnded),
		errors.Is(err, auctionerrors.ErrHasBids),
		errors.Is(err, auctionerrors.ErrBuyNowUnavailable),
		errors.Is(err, auctionerrors.ErrProductNotEligible),
		errors.Is(err, auctionerrors.ErrStatusConflict):
		return http.StatusConflict, "auction state does not allow this operation"
	case errors.Is(err, auctionerrors.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity, "insufficient wallet balance"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ToAuctionResponse converts an auction model into its wire shape.
func ToAuctionResponse(a model.Auction) AuctionResponse {
	resp := AuctionResponse{
		AuctionID:  a.AuctionID,
		ProductID:  a.ProductID,
		SellerID:   a.SellerID,
		StartPrice: a.StartPrice.String(),
		CurrentBid: a.CurrentBid.String(),
		StartTime:  a.StartTime.UTC().Format(time.RFC3339),
		EndTime:    a.EndTime.UTC().Format(time.RFC3339),
		AutoExtend: a.AutoExtend,
		Status:     string(a.Status),
		WinnerID:   a.WinnerID,
		CreatedAt:  a.CreatedAt.UTC().Format(time.RFC3339),
	}
	if a.BuyNowPrice != nil {
		price := a.BuyNowPrice.String()
		resp.BuyNowPrice = &price
	}
	return resp
}

// ToBidResponse converts a bid model into its wire shape.
func ToBidResponse(b model.Bid) BidResponse {
	return BidResponse{
		BidID:     b.BidID,
		AuctionID: b.AuctionID,
		UserID:    b.UserID,
		Amount:    b.Amount.String(),
		IsAutoBid: b.IsAutoBid,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToBidResponses converts a bid slice, never returning nil.
func ToBidResponses(bids []model.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, ToBidResponse(b))
	}
	return out
}
