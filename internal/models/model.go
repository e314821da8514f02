package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionStatus is the lifecycle state of an auction.
type AuctionStatus string

const (
	StatusScheduled AuctionStatus = "SCHEDULED"
	StatusRunning   AuctionStatus = "RUNNING"
	StatusEnded     AuctionStatus = "ENDED"
	StatusCancelled AuctionStatus = "CANCELLED"
)

// ProductStatus is the listing state of a product in the catalog.
type ProductStatus string

const (
	ProductDraft      ProductStatus = "DRAFT"
	ProductPending    ProductStatus = "PENDING"
	ProductApproved   ProductStatus = "APPROVED"
	ProductPublished  ProductStatus = "PUBLISHED"
	ProductArchived   ProductStatus = "ARCHIVED"
	ProductRejected   ProductStatus = "REJECTED"
	ProductOutOfStock ProductStatus = "OUT_OF_STOCK"
)

// Product is the slice of the catalog the engine needs: ownership and
// eligibility. Catalog management itself lives elsewhere.
type Product struct {
	ProductID string        `json:"product_id"`
	SellerID  string        `json:"seller_id"`
	Title     string        `json:"title"`
	Status    ProductStatus `json:"status"`
}

// Auction is the durable auction record. CurrentBid never decreases and is
// always >= StartPrice; status transitions are one-directional.
type Auction struct {
	AuctionID   string           `json:"auction_id"`
	ProductID   string           `json:"product_id"`
	SellerID    string           `json:"seller_id"`
	StartPrice  decimal.Decimal  `json:"start_price"`
	CurrentBid  decimal.Decimal  `json:"current_bid"`
	BuyNowPrice *decimal.Decimal `json:"buy_now_price,omitempty"`
	StartTime   time.Time        `json:"start_time"`
	EndTime     time.Time        `json:"end_time"`
	AutoExtend  bool             `json:"auto_extend"`
	Status      AuctionStatus    `json:"status"`
	WinnerID    *string          `json:"winner_id,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// Bid is one entry in an auction's append-only bid log. Bids are never
// edited or deleted, only superseded by higher bids.
type Bid struct {
	BidID      string           `json:"bid_id"`
	AuctionID  string           `json:"auction_id"`
	UserID     string           `json:"user_id"`
	Amount     decimal.Decimal  `json:"amount"`
	IsAutoBid  bool             `json:"is_auto_bid"`
	MaxAutoBid *decimal.Decimal `json:"max_auto_bid,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

// AutoBidConfig is one bidder's proxy-bid ceiling for one auction. It lives
// only in the resolver's memory for as long as the auction is RUNNING.
type AutoBidConfig struct {
	UserID    string          `json:"user_id"`
	AuctionID string          `json:"auction_id"`
	MaxBid    decimal.Decimal `json:"max_bid"`
	Increment decimal.Decimal `json:"increment"`
}
