package transport

import (
	"net/http"

	"majestic-art-be/internal/logger"
	"majestic-art-be/internal/metrics"
	"majestic-art-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware lets the storefront origin talk to the API with
// credentials (the cart session cookie).
func CORSMiddleware(siteURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", siteURL)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware(h.Cfg.SiteURL))
	router.Use(logger.RequestIDMiddleware())
	router.Use(logger.LoggingMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	v1 := router.Group("/v1")
	{
		v1.GET("/health", h.Health)
		v1.GET("/metrics", func(c *gin.Context) {
			c.JSON(http.StatusOK, metrics.Snapshot())
		})

		// --- Catalog (Public) ---
		v1.GET("/artworks", h.ListArtworks)
		v1.GET("/print-options", h.ListPrintOptions)

		// --- Cart ---
		v1.GET("/cart", h.GetCart)
		v1.POST("/cart/items", h.AddCartItem)
		v1.PATCH("/cart/items/:id", h.UpdateCartItem)
		v1.DELETE("/cart/items/:id", h.RemoveCartItem)
		v1.DELETE("/cart", h.ClearCart)

		// --- Checkout ---
		v1.POST("/checkout/session", h.CreateCheckoutSession)
		v1.GET("/checkout/success", h.CheckoutSuccess)

		// --- Webhooks ---
		v1.POST("/webhook/stripe", h.Webhook.StripeWebhookHandler)

		// --- Newsletter / Commissions ---
		v1.POST("/newsletter/subscribe", h.SubscribeNewsletter)
		v1.GET("/commissions/tiers", h.ListCommissionTiers)
		v1.POST("/commissions", h.SubmitCommission)

		// --- Admin ---
		v1.POST("/admin/login", h.AdminLogin)

		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware(h.Cfg.JWTSecret))
		{
			admin.GET("/artworks", h.AdminListArtworks)
			admin.POST("/artworks", h.AdminCreateArtwork)
			admin.PUT("/artworks/:id", h.AdminUpdateArtwork)
			admin.DELETE("/artworks/:id", h.AdminDeleteArtwork)
			admin.POST("/artworks/:id/image", h.AdminUploadArtworkImage)
		}
	}

	return router
}
