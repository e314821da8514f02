package integrationtests

import (
	"net/http"
	"testing"
	"time"

	"auction-engine/services/auction/helpers"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

// CreateAuctionHandler Tests
func TestCreateAuctionAPI(t *testing.T) {
	start := time.Now().UTC().Add(time.Hour)
	end := start.Add(24 * time.Hour)

	validRequest := func() helpers.CreateAuctionRequest {
		return helpers.CreateAuctionRequest{
			ProductID:  "product1",
			StartPrice: decimal.NewFromInt(50),
			StartTime:  start.Format(time.RFC3339),
			EndTime:    end.Format(time.RFC3339),
			AutoExtend: true,
		}
	}

	tests := []struct {
		name       string
		caller     string
		request    any
		wantStatus int
	}{
		{
			name:       "Valid_Auction",
			caller:     "seller1",
			request:    validRequest(),
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Missing_Identity_Header",
			caller:     "",
			request:    validRequest(),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Invalid_JSON",
			caller:     "seller1",
			request:    "{product_id: 'missing quotes'}",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Product_Not_Owned",
			caller:     "seller2",
			request:    validRequest(),
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "Product_Not_Found",
			caller: "seller1",
			request: func() helpers.CreateAuctionRequest {
				r := validRequest()
				r.ProductID = "nonexistent"
				return r
			}(),
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "Start_After_End",
			caller: "seller1",
			request: func() helpers.CreateAuctionRequest {
				r := validRequest()
				r.StartTime = end.Format(time.RFC3339)
				r.EndTime = start.Format(time.RFC3339)
				return r
			}(),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "Start_In_Past",
			caller: "seller1",
			request: func() helpers.CreateAuctionRequest {
				r := validRequest()
				r.StartTime = time.Now().UTC().Add(-time.Hour).Format(time.RFC3339)
				return r
			}(),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := SetupTestEnv()
			env.SeedProduct("product1", "seller1")

			resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions", tt.caller, tt.request)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				auction := data(t, resp)
				require.NotEmpty(t, auction["auction_id"])
				require.Equal(t, "product1", auction["product_id"])
				require.Equal(t, "seller1", auction["seller_id"])
				require.Equal(t, "SCHEDULED", auction["status"])
				require.Equal(t, "50", auction["start_price"])
				require.Equal(t, "50", auction["current_bid"])
				require.Equal(t, true, auction["auto_extend"])

				_, err := time.Parse(time.RFC3339, auction["start_time"].(string))
				require.NoError(t, err)
			}
		})
	}
}

// PlaceBidHandler Tests
func TestPlaceBidAPI(t *testing.T) {
	tests := []struct {
		name       string
		caller     string
		auctionID  string
		request    any
		wantStatus int
	}{
		{
			name:       "Valid_Bid",
			caller:     "user1",
			auctionID:  "auction1",
			request:    helpers.PlaceBidRequest{Amount: decimal.NewFromInt(100)},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Missing_Identity_Header",
			caller:     "",
			auctionID:  "auction1",
			request:    helpers.PlaceBidRequest{Amount: decimal.NewFromInt(100)},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Auction_Not_Found",
			caller:     "user1",
			auctionID:  "nonexistent",
			request:    helpers.PlaceBidRequest{Amount: decimal.NewFromInt(100)},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "Bid_Too_Low",
			caller:     "user1",
			auctionID:  "auction1",
			request:    helpers.PlaceBidRequest{Amount: decimal.NewFromInt(50)},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "Seller_Cannot_Bid",
			caller:     "seller1",
			auctionID:  "auction1",
			request:    helpers.PlaceBidRequest{Amount: decimal.NewFromInt(100)},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "Insufficient_Balance",
			caller:     "pauper",
			auctionID:  "auction1",
			request:    helpers.PlaceBidRequest{Amount: decimal.NewFromInt(100)},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := SetupTestEnv()
			env.SeedRunningAuction(t, "auction1", "seller1", 50, nil)
			env.SeedBalance("user1", 10000)
			env.SeedBalance("pauper", 10)

			resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions/"+tt.auctionID+"/bids", tt.caller, tt.request)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				d := data(t, resp)
				bid := d["bid"].(map[string]any)
				auction := d["auction"].(map[string]any)

				require.NotEmpty(t, bid["bid_id"])
				require.Equal(t, "user1", bid["user_id"])
				require.Equal(t, "100", bid["amount"])
				require.Equal(t, false, bid["is_auto_bid"])
				require.Equal(t, "100", auction["current_bid"])

				_, err := time.Parse(time.RFC3339, bid["created_at"].(string))
				require.NoError(t, err)
			}
		})
	}
}

// A full scheduled-to-settled pass through the HTTP surface plus the
// lifecycle sweeps.
func TestAuctionLifecycleFlow(t *testing.T) {
	env := SetupTestEnv()
	env.SeedProduct("product1", "seller1")
	env.SeedBalance("user1", 10000)

	start := time.Now().UTC().Add(200 * time.Millisecond)
	end := start.Add(1 * time.Second)
	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions", "seller1", helpers.CreateAuctionRequest{
		ProductID:  "product1",
		StartPrice: decimal.NewFromInt(50),
		StartTime:  start.Format(time.RFC3339Nano),
		EndTime:    end.Format(time.RFC3339Nano),
	})
	require.Equal(t, http.StatusCreated, w.Code)
	auctionID := data(t, resp)["auction_id"].(string)

	// Bids are rejected before the start time passes.
	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions/"+auctionID+"/bids", "user1", helpers.PlaceBidRequest{Amount: decimal.NewFromInt(100)})
	require.Equal(t, http.StatusConflict, w.Code)

	time.Sleep(250 * time.Millisecond)
	promoted, err := env.Lifecycle.PromoteScheduled()
	require.NoError(t, err)
	require.Equal(t, 1, promoted)

	resp, w = ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/auctions/"+auctionID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "RUNNING", data(t, resp)["status"])

	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions/"+auctionID+"/bids", "user1", helpers.PlaceBidRequest{Amount: decimal.NewFromInt(100)})
	require.Equal(t, http.StatusCreated, w.Code)

	// Wait out the deadline, then settle.
	time.Sleep(time.Until(end) + 100*time.Millisecond)
	settled, err := env.Lifecycle.SettleExpired()
	require.NoError(t, err)
	require.Equal(t, 1, settled)

	resp, w = ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/auctions/"+auctionID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	auction := data(t, resp)
	require.Equal(t, "ENDED", auction["status"])
	require.Equal(t, "user1", auction["winner_id"])
	require.Equal(t, "100", auction["current_bid"])
}

// Auto-bid through the API: a holder's proxy answers a rival's bid in the
// same request, and the config survives until it is outbid past its ceiling.
func TestAutoBidFlow(t *testing.T) {
	env := SetupTestEnv()
	env.SeedRunningAuction(t, "auction1", "seller1", 40, nil)
	env.SeedBalance("holder", 1000)
	env.SeedBalance("rival", 10000)

	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodPut, "/auctions/auction1/autobid", "holder", helpers.AutoBidRequest{
		MaxBid:    decimal.NewFromInt(100),
		Increment: decimal.NewFromInt(5),
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, data(t, resp)["active"])

	// Rival bids 50; the holder's proxy answers with 55 before the response.
	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions/auction1/bids", "rival", helpers.PlaceBidRequest{Amount: decimal.NewFromInt(50)})
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w = ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/auctions/auction1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "55", data(t, resp)["current_bid"])

	resp, w = ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/auctions/auction1/winning", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	winning := data(t, resp)
	require.Equal(t, "holder", winning["user_id"])
	require.Equal(t, true, winning["is_auto_bid"])

	// Rival blows past the ceiling; the config is dropped.
	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions/auction1/bids", "rival", helpers.PlaceBidRequest{Amount: decimal.NewFromInt(150)})
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w = ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/auctions/auction1/autobid", "holder", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, false, data(t, resp)["active"])

	// Disabling again is a no-op.
	resp, w = ExecuteRequestAndParse(t, env.Router, http.MethodDelete, "/auctions/auction1/autobid", "holder", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, false, data(t, resp)["active"])
}

// BuyNowHandler Tests
func TestBuyNowAPI(t *testing.T) {
	env := SetupTestEnv()
	env.SeedRunningAuction(t, "auction1", "seller1", 50, int64Ptr(500))
	env.SeedRunningAuction(t, "auction2", "seller1", 50, nil)
	env.SeedBalance("buyer1", 10000)
	env.SeedBalance("buyer2", 10000)

	// No buy-now price configured.
	_, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions/auction2/buy-now", "buyer1", nil)
	require.Equal(t, http.StatusConflict, w.Code)

	// The seller cannot buy their own auction.
	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions/auction1/buy-now", "seller1", nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions/auction1/buy-now", "buyer1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	auction := data(t, resp)
	require.Equal(t, "ENDED", auction["status"])
	require.Equal(t, "buyer1", auction["winner_id"])
	require.Equal(t, "500", auction["current_bid"])

	// The auction is gone for everyone else.
	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions/auction1/buy-now", "buyer2", nil)
	require.Equal(t, http.StatusConflict, w.Code)
	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions/auction1/bids", "buyer2", helpers.PlaceBidRequest{Amount: decimal.NewFromInt(600)})
	require.Equal(t, http.StatusConflict, w.Code)
}

// CancelAuctionHandler Tests
func TestCancelAuctionAPI(t *testing.T) {
	env := SetupTestEnv()
	env.SeedRunningAuction(t, "auction1", "seller1", 50, nil)
	env.SeedRunningAuction(t, "auction2", "seller1", 50, nil)
	env.SeedBalance("user1", 10000)

	// Only the seller may cancel.
	_, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions/auction1/cancel", "user1", nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions/auction1/cancel", "seller1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "CANCELLED", data(t, resp)["status"])

	// An auction with bids cannot be cancelled.
	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions/auction2/bids", "user1", helpers.PlaceBidRequest{Amount: decimal.NewFromInt(100)})
	require.Equal(t, http.StatusCreated, w.Code)
	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions/auction2/cancel", "seller1", nil)
	require.Equal(t, http.StatusConflict, w.Code)
}

// GetBidsHandler / GetWinningBidHandler / GetUserBidsHandler Tests
func TestBidQueryAPI(t *testing.T) {
	env := SetupTestEnv()
	env.SeedRunningAuction(t, "auction1", "seller1", 50, nil)
	env.SeedBalance("user1", 10000)
	env.SeedBalance("user2", 10000)

	for _, bid := range []struct {
		user   string
		amount int64
	}{
		{"user1", 100},
		{"user2", 120},
		{"user1", 150},
	} {
		_, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions/auction1/bids", bid.user, helpers.PlaceBidRequest{Amount: decimal.NewFromInt(bid.amount)})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/auctions/auction1/bids", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, dataList(t, resp), 3)

	resp, w = ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/auctions/auction1/winning", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	winning := data(t, resp)
	require.Equal(t, "user1", winning["user_id"])
	require.Equal(t, "150", winning["amount"])

	resp, w = ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/auctions/auction1/my-bids", "user2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	myBids := dataList(t, resp)
	require.Len(t, myBids, 1)
	require.Equal(t, "120", myBids[0].(map[string]any)["amount"])

	// No winning bid on a fresh auction.
	env.SeedRunningAuction(t, "auction2", "seller1", 50, nil)
	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/auctions/auction2/winning", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

// ListAuctionsHandler Tests
func TestListAuctionsAPI(t *testing.T) {
	env := SetupTestEnv()
	env.SeedRunningAuction(t, "auction1", "seller1", 50, nil)
	env.SeedRunningAuction(t, "auction2", "seller1", 50, nil)
	env.SeedProduct("product1", "seller1")

	start := time.Now().UTC().Add(time.Hour)
	_, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions", "seller1", helpers.CreateAuctionRequest{
		ProductID:  "product1",
		StartPrice: decimal.NewFromInt(10),
		StartTime:  start.Format(time.RFC3339),
		EndTime:    start.Add(time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/auctions", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, dataList(t, resp), 3)

	resp, w = ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/auctions?status=RUNNING", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, dataList(t, resp), 2)

	resp, w = ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/auctions?status=SCHEDULED", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, dataList(t, resp), 1)
}
