package main

import (
	"database/sql"
	"net/http"

	"majestic-art-be/internal/cart"
	"majestic-art-be/internal/catalog"
	"majestic-art-be/internal/checkout"
	"majestic-art-be/internal/commission"
	"majestic-art-be/internal/config"
	"majestic-art-be/internal/db"
	"majestic-art-be/internal/fulfillment"
	"majestic-art-be/internal/logger"
	"majestic-art-be/internal/mailer"
	"majestic-art-be/internal/newsletter"
	"majestic-art-be/internal/payment"
	"majestic-art-be/internal/payment/webhook"
	"majestic-art-be/internal/storage"
	"majestic-art-be/internal/transport"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// swapped out in tests
var (
	initDBFunc      = db.InitDB
	startServerFunc = func(addr string, handler http.Handler) error {
		return http.ListenAndServe(addr, handler)
	}
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("Server exited", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	router := newServer(cfg, database)

	logger.L().Info("Storefront API listening", zap.String("port", cfg.AppPort))
	return startServerFunc(":"+cfg.AppPort, router)
}

func newServer(cfg *config.Config, database *sql.DB) *gin.Engine {
	gateway := payment.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret, cfg.SiteURL)

	catalogRepo := catalog.NewRepository(database)
	catalogSvc := catalog.NewService(catalogRepo)

	fulfillRepo := fulfillment.NewRepository(database)
	fulfillSvc := fulfillment.NewService(fulfillRepo)

	mail := mailer.NewResendMailer(cfg.ResendAPIKey, cfg.MailFrom)

	newsletterRepo := newsletter.NewRepository(database)
	newsletterSvc := newsletter.NewService(newsletterRepo, mail)

	commissionRepo := commission.NewRepository(database)
	commissionSvc := commission.NewService(commissionRepo, mail)

	h := &transport.Handlers{
		Cfg:        cfg,
		Catalog:    catalogSvc,
		Carts:      cart.NewStore(),
		Checkout:   checkout.NewService(gateway),
		Fulfill:    fulfillSvc,
		Newsletter: newsletterSvc,
		Commission: commissionSvc,
		Webhook:    webhook.NewWebhookHandler(gateway, fulfillSvc),
		Uploader:   storage.NewSupabaseStorage(cfg.StorageURL, cfg.StorageKey, cfg.StorageBucket),
	}

	return transport.SetupRouter(h)
}
