package helpers

import (
	"github.com/shopspring/decimal"
)

// Request/Response DTOs
type CreateAuctionRequest struct {
	ProductID   string           `json:"product_id" binding:"required"`
	StartPrice  decimal.Decimal  `json:"start_price"`
	BuyNowPrice *decimal.Decimal `json:"buy_now_price,omitempty"`
	StartTime   string           `json:"start_time" binding:"required"`
	EndTime     string           `json:"end_time" binding:"required"`
	AutoExtend  bool             `json:"auto_extend"`
}

type PlaceBidRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type AutoBidRequest struct {
	MaxBid    decimal.Decimal `json:"max_bid"`
	Increment decimal.Decimal `json:"increment"`
}

type AuctionResponse struct {
	AuctionID   string  `json:"auction_id"`
	ProductID   string  `json:"product_id"`
	SellerID    string  `json:"seller_id"`
	StartPrice  string  `json:"start_price"`
	CurrentBid  string  `json:"current_bid"`
	BuyNowPrice *string `json:"buy_now_price,omitempty"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	AutoExtend  bool    `json:"auto_extend"`
	Status      string  `json:"status"`
	WinnerID    *string `json:"winner_id,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

type BidResponse struct {
	BidID     string `json:"bid_id"`
	AuctionID string `json:"auction_id"`
	UserID    string `json:"user_id"`
	Amount    string `json:"amount"`
	IsAutoBid bool   `json:"is_auto_bid"`
	CreatedAt string `json:"created_at"`
}

type AutoBidResponse struct {
	AuctionID string `json:"auction_id"`
	UserID    string `json:"user_id"`
	MaxBid    string `json:"max_bid"`
	Increment string `json:"increment"`
	Active    bool   `json:"active"`
}
