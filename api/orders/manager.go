package orders

import (
	"homifyhub_server/api/middleware"
	"homifyhub_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type OrderRoutesManager struct {
	logger          *gecho.Logger
	authService     *services.AuthService
	otpService      *services.OtpService
	checkoutService *services.CheckoutService
	orderService    *services.OrderService
	paymentService  *services.PaymentService
	invoiceService  *services.InvoiceService
	mw              *middleware.Middleware
}

func NewOrderRoutesManager(
	logger *gecho.Logger,
	authService *services.AuthService,
	otpService *services.OtpService,
	checkoutService *services.CheckoutService,
	orderService *services.OrderService,
	paymentService *services.PaymentService,
	invoiceService *services.InvoiceService,
	mw *middleware.Middleware,
) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:          logger,
		authService:     authService,
		otpService:      otpService,
		checkoutService: checkoutService,
		orderService:    orderService,
		paymentService:  paymentService,
		invoiceService:  invoiceService,
		mw:              mw,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	// Checkout reference data is public so the storefront can render the
	// checkout page before login.
	r.Get("/checkout/delivery-methods", orm.HandleListDeliveryMethods)
	r.Get("/checkout/payment-methods", orm.HandleListPaymentMethods)

	r.Route("/orders", func(r chi.Router) {
		r.Use(orm.mw.UserAuthMiddleware)
		r.Post("/checkout/otp", orm.HandleRequestOtp)
		r.Post("/checkout", orm.HandleCheckout)
		r.Get("/", orm.HandleListOrders)
		r.Get("/{id}", orm.HandleGetOrder)
		r.Get("/{id}/tracking", orm.HandleGetTracking)
		r.Get("/{id}/invoice", orm.HandleGetInvoice)
		r.Post("/{id}/cancel", orm.HandleCancelOrder)
	})

	r.Route("/payments", func(r chi.Router) {
		r.Use(orm.mw.UserAuthMiddleware)
		r.Post("/", orm.HandleSubmitPayment)
	})
}
