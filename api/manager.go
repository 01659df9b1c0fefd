package api

import (
	"homifyhub_server/api/admin"
	"homifyhub_server/api/auth"
	"homifyhub_server/api/cart"
	"homifyhub_server/api/health"
	"homifyhub_server/api/middleware"
	"homifyhub_server/api/orders"
	"homifyhub_server/api/products"
	"homifyhub_server/services"
	"homifyhub_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	productRoutes *products.ProductRoutesManager
	cartRoutes    *cart.CartRoutesManager
	orderRoutes   *orders.OrderRoutesManager
	authRoutes    *auth.AuthRoutesManager
	adminRoutes   *admin.AdminRoutesManager
	healthRoutes  *health.HealthRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	sm *services.ServiceManager,
	mw *middleware.Middleware,
) *routerManager {
	return &routerManager{
		productRoutes: products.NewProductRoutesManager(logger, sm.CatalogService, mw),
		cartRoutes:    cart.NewCartRoutesManager(logger, sm.CartService, mw),
		orderRoutes: orders.NewOrderRoutesManager(
			logger,
			sm.AuthService,
			sm.OtpService,
			sm.CheckoutService,
			sm.OrderService,
			sm.PaymentService,
			sm.InvoiceService,
			mw,
		),
		authRoutes: auth.NewAuthRoutesManager(logger, cfg, sm.AuthService, mw),
		adminRoutes: admin.NewAdminRoutesManager(
			logger,
			sm.CatalogService,
			sm.OrderService,
			sm.PaymentService,
			sm.InvoiceService,
			mw,
		),
		healthRoutes: health.NewHealthRoutesManager(sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.productRoutes.RegisterRoutes(r)
	rm.cartRoutes.RegisterRoutes(r)
	rm.orderRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
