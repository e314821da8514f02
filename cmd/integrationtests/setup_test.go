package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	autobid "auction-engine/internal/autobidService"
	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/catalog"
	"auction-engine/internal/events"
	lifecycle "auction-engine/internal/lifecycleService"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/internal/server"
	"auction-engine/internal/wallet"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TestEnv wires the full engine against in-memory backends. Tests drive it
// through the router and reach into the repo or lifecycle service only to
// arrange state the HTTP surface cannot (promoting, seeding running auctions).
type TestEnv struct {
	Router    *gin.Engine
	Repo      *repository.MemoryRepo
	Catalog   *catalog.MemoryCatalog
	Wallets   *wallet.MemoryWallet
	Lifecycle *lifecycle.LifecycleService
}

// SetupTestEnv initializes the full stack with in-memory backends for
// integration testing.
func SetupTestEnv() *TestEnv {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	wallets := wallet.NewMemoryWallet()
	products := catalog.NewMemoryCatalog()
	bus := events.NewInMemoryBus()

	lifecycleSvc := lifecycle.NewLifecycleService(repo, products, bus)
	biddingSvc := bidding.NewBiddingService(repo, wallets, bus)
	autobidSvc := autobid.NewAutoBidService(repo, wallets, biddingSvc, bus)

	router := server.SetupRouter(lifecycleSvc, biddingSvc, autobidSvc)

	return &TestEnv{
		Router:    router,
		Repo:      repo,
		Catalog:   products,
		Wallets:   wallets,
		Lifecycle: lifecycleSvc,
	}
}

// SeedProduct registers a published product for the given seller.
func (env *TestEnv) SeedProduct(productID, sellerID string) {
	env.Catalog.AddProduct(model.Product{
		ProductID: productID,
		SellerID:  sellerID,
		Title:     "product " + productID,
		Status:    model.ProductPublished,
	})
}

// SeedBalance funds a bidder.
func (env *TestEnv) SeedBalance(userID string, amount int64) {
	env.Wallets.SetBalance(userID, decimal.NewFromInt(amount))
}

// SeedRunningAuction puts an already-running auction straight into the store,
// bypassing the scheduled phase.
func (env *TestEnv) SeedRunningAuction(t *testing.T, auctionID, sellerID string, startBid int64, buyNow *int64) {
	t.Helper()

	now := time.Now().UTC()
	auction := model.Auction{
		AuctionID:  auctionID,
		ProductID:  auctionID + "-product",
		SellerID:   sellerID,
		StartPrice: decimal.NewFromInt(startBid),
		CurrentBid: decimal.NewFromInt(startBid),
		StartTime:  now.Add(-time.Hour),
		EndTime:    now.Add(time.Hour),
		Status:     model.StatusRunning,
		CreatedAt:  now,
	}
	if buyNow != nil {
		price := decimal.NewFromInt(*buyNow)
		auction.BuyNowPrice = &price
	}
	if err := env.Repo.CreateAuction(auction); err != nil {
		t.Fatalf("failed to seed auction: %v", err)
	}
}

// ExecuteRequest executes an HTTP request as the given user and returns the
// response recorder. An empty userID sends no identity header.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, userID string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request and parses the response
// envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, userID string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, userID, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// data unwraps the success envelope's data object.
func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()

	d, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return d
}

// dataList unwraps the success envelope's data array.
func dataList(t *testing.T, resp map[string]any) []any {
	t.Helper()

	d, ok := resp["data"].([]any)
	if !ok {
		t.Fatalf("response has no data array: %v", resp)
	}
	return d
}
