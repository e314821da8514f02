package main

import (
	"fmt"
	"os"

	autobid "auction-engine/internal/autobidService"
	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/catalog"
	"auction-engine/internal/config"
	"auction-engine/internal/events"
	lifecycle "auction-engine/internal/lifecycleService"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/internal/scheduler"
	"auction-engine/internal/server"
	"auction-engine/internal/wallet"
	"auction-engine/utils"

	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.LogLevel)

	repo := repository.NewMemoryRepo()
	wallets := wallet.NewMemoryWallet()
	products := catalog.NewMemoryCatalog()
	bus := events.NewInMemoryBus()

	prepopulate(products, wallets)

	lifecycleSvc := lifecycle.NewLifecycleService(repo, products, bus)
	biddingSvc := bidding.NewBiddingService(repo, wallets, bus)
	autobidSvc := autobid.NewAutoBidService(repo, wallets, biddingSvc, bus)

	sweeps, err := scheduler.New(lifecycleSvc, cfg.PromoteInterval, cfg.SettleInterval)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build scheduler: %v\n", err)
		os.Exit(1)
	}
	sweeps.Start()
	defer sweeps.Stop()

	router := server.SetupRouter(lifecycleSvc, biddingSvc, autobidSvc)

	addr := ":" + cfg.Port
	fmt.Printf("Starting auction engine on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulate seeds the in-memory catalog and wallets with sample data
func prepopulate(products *catalog.MemoryCatalog, wallets *wallet.MemoryWallet) {
	samples := []model.Product{
		{ProductID: "product1", SellerID: "seller1", Title: "Vintage camera", Status: model.ProductPublished},
		{ProductID: "product2", SellerID: "seller1", Title: "Mechanical watch", Status: model.ProductPublished},
		{ProductID: "product3", SellerID: "seller2", Title: "Oil painting", Status: model.ProductPublished},
	}
	for _, p := range samples {
		products.AddProduct(p)
	}

	for _, userID := range []string{"user1", "user2", "user3"} {
		wallets.SetBalance(userID, decimal.NewFromInt(10000))
	}
}
