package services

import (
	"homifyhub_server/database"
	"homifyhub_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService         *AuthService
	CacheService        *CacheService
	NotificationService *NotificationService
	OtpService          *OtpService
	HealthService       *HealthService
	CatalogService      *CatalogService
	CartService         *CartService
	CheckoutService     *CheckoutService
	OrderService        *OrderService
	PaymentService      *PaymentService
	InvoiceService      *InvoiceService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)
	notificationService := NewNotificationService(logger, cfg)
	authService := NewAuthService(cfg, logger, db, cacheService)
	otpService := NewOtpService(logger, cfg, cacheService, notificationService)
	healthService := NewHealthService(logger, db, cacheService)
	catalogService := NewCatalogService(logger, cfg, db, cacheService)
	cartService := NewCartService(logger, db, cacheService)
	checkoutService := NewCheckoutService(logger, cfg, db, cartService, otpService, notificationService)
	orderService := NewOrderService(logger, db, notificationService)
	paymentService := NewPaymentService(logger, cfg, db, notificationService)
	invoiceService := NewInvoiceService(logger, cfg, db)

	return &ServiceManager{
		AuthService:         authService,
		CacheService:        cacheService,
		NotificationService: notificationService,
		OtpService:          otpService,
		HealthService:       healthService,
		CatalogService:      catalogService,
		CartService:         cartService,
		CheckoutService:     checkoutService,
		OrderService:        orderService,
		PaymentService:      paymentService,
		InvoiceService:      invoiceService,
	}
}
