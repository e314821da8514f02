// Package events defines the engine's domain events and an in-process bus
// for delivering them. Events are fire-and-forget notifications; nothing in
// the engine's own state depends on an event having been observed.
package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type tags a domain event.
type Type string

const (
	AuctionCreated   Type = "AUCTION_CREATED"
	AuctionStarted   Type = "AUCTION_STARTED"
	AuctionExtended  Type = "AUCTION_EXTENDED"
	BidPlaced        Type = "BID_PLACED"
	AuctionBuyNow    Type = "AUCTION_BUY_NOW"
	AuctionEnded     Type = "AUCTION_ENDED"
	AuctionCancelled Type = "AUCTION_CANCELLED"
)

// Event is one domain event with its typed payload.
type Event struct {
	Type      Type      `json:"type"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

// AuctionCreatedPayload accompanies AUCTION_CREATED.
type AuctionCreatedPayload struct {
	AuctionID string `json:"auction_id"`
	SellerID  string `json:"seller_id"`
}

// AuctionStartedPayload accompanies AUCTION_STARTED.
type AuctionStartedPayload struct {
	AuctionID string `json:"auction_id"`
}

// AuctionExtendedPayload accompanies AUCTION_EXTENDED.
type AuctionExtendedPayload struct {
	AuctionID  string    `json:"auction_id"`
	NewEndTime time.Time `json:"new_end_time"`
}

// BidPlacedPayload accompanies BID_PLACED.
type BidPlacedPayload struct {
	AuctionID  string          `json:"auction_id"`
	BidID      string          `json:"bid_id"`
	UserID     string          `json:"user_id"`
	Amount     decimal.Decimal `json:"amount"`
	CurrentBid decimal.Decimal `json:"current_bid"`
	IsAutoBid  bool            `json:"is_auto_bid"`
}

// BuyNowPayload accompanies AUCTION_BUY_NOW.
type BuyNowPayload struct {
	AuctionID string          `json:"auction_id"`
	WinnerID  string          `json:"winner_id"`
	Amount    decimal.Decimal `json:"amount"`
}

// AuctionEndedPayload accompanies AUCTION_ENDED. WinnerID and WinningAmount
// are nil when the auction ended with no bids.
type AuctionEndedPayload struct {
	AuctionID     string           `json:"auction_id"`
	WinnerID      *string          `json:"winner_id,omitempty"`
	WinningAmount *decimal.Decimal `json:"winning_amount,omitempty"`
}

// AuctionCancelledPayload accompanies AUCTION_CANCELLED.
type AuctionCancelledPayload struct {
	AuctionID string `json:"auction_id"`
	SellerID  string `json:"seller_id"`
}

// New builds an event stamped with the current time.
func New(t Type, payload any) Event {
	return Event{Type: t, Payload: payload, Timestamp: time.Now().UTC()}
}
