package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrNoBids          = errors.New("no bids found for auction")
	ErrStatusConflict  = errors.New("auction is not in the expected status")
)

// Business-rule errors surfaced to callers as typed failures
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrProductNotFound     = errors.New("product not found")
	ErrProductNotOwned     = errors.New("product is not owned by the caller")
	ErrProductNotEligible  = errors.New("product is not in a listable state")
	ErrInvalidTimeRange    = errors.New("start time must be before end time")
	ErrStartTimeInPast     = errors.New("start time is in the past")
	ErrNotRunning          = errors.New("auction is not running")
	ErrForbidden           = errors.New("caller is not the auction's seller")
	ErrAlreadyEnded        = errors.New("auction has already ended")
	ErrHasBids             = errors.New("auction with bids cannot be cancelled")
	ErrSellerCannotBid     = errors.New("seller cannot bid on their own auction")
	ErrSellerCannotBuy     = errors.New("seller cannot buy their own product")
	ErrBidTooLow           = errors.New("bid amount too low")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrBuyNowUnavailable   = errors.New("auction has no buy-now price")
)

// ErrBidSuperseded means another bid won the race for the same currentBid.
// It is retryable: the caller should reload the auction and bid again.
var ErrBidSuperseded = errors.New("bid superseded by a concurrent higher bid")
