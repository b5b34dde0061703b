package transport

import (
	"net/http"
	"strings"

	"majestic-art-be/internal/cart"
	"majestic-art-be/internal/catalog"
	"majestic-art-be/internal/checkout"
	"majestic-art-be/internal/commission"
	"majestic-art-be/internal/config"
	"majestic-art-be/internal/fulfillment"
	"majestic-art-be/internal/newsletter"
	"majestic-art-be/internal/payment/webhook"
	"majestic-art-be/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const cartCookieName = "cart_session"

// Handlers bundles the services behind the HTTP surface.
type Handlers struct {
	Cfg        *config.Config
	Catalog    catalog.Service
	Carts      *cart.Store
	Checkout   checkout.Service
	Fulfill    fulfillment.Service
	Newsletter newsletter.Service
	Commission commission.Service
	Webhook    *webhook.Handler
	Uploader   storage.Uploader
}

// secureCookies reports whether cookies must carry the Secure flag. It
// follows the scheme the storefront is served on.
func (h *Handlers) secureCookies() bool {
	return strings.HasPrefix(h.Cfg.SiteURL, "https://")
}

// cartForRequest resolves the per-visitor cart, minting a session cookie
// on first contact.
func (h *Handlers) cartForRequest(c *gin.Context) *cart.Cart {
	sessionID, err := c.Cookie(cartCookieName)
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()
		c.SetCookie(cartCookieName, sessionID, 0, "/", "", h.secureCookies(), true)
	}
	return h.Carts.Get(sessionID)
}

func cartResponse(crt *cart.Cart) gin.H {
	items, totalItems, totalCents := crt.Snapshot()
	return gin.H{
		"items":           items,
		"totalItems":      totalItems,
		"totalPriceCents": totalCents,
	}
}

func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
