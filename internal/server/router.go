package server

import (
	handler "auction-engine/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(lifecycleSvc handler.LifecycleServiceInterface, biddingSvc handler.BiddingServiceInterface, autobidSvc handler.AutoBidServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(lifecycleSvc, biddingSvc, autobidSvc)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/cancel", auctionHandler.CancelAuctionHandler)

		auctions.POST("/:auction_id/bids", auctionHandler.PlaceBidHandler)
		auctions.GET("/:auction_id/bids", auctionHandler.GetBidsHandler)
		auctions.GET("/:auction_id/winning", auctionHandler.GetWinningBidHandler)
		auctions.GET("/:auction_id/my-bids", auctionHandler.GetUserBidsHandler)
		auctions.POST("/:auction_id/buy-now", auctionHandler.BuyNowHandler)

		auctions.PUT("/:auction_id/autobid", auctionHandler.EnableAutoBidHandler)
		auctions.DELETE("/:auction_id/autobid", auctionHandler.DisableAutoBidHandler)
		auctions.GET("/:auction_id/autobid", auctionHandler.GetAutoBidStatusHandler)
	}

	return router
}
