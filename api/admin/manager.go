package admin

import (
	"homifyhub_server/api/middleware"
	"homifyhub_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AdminRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
	orderService   *services.OrderService
	paymentService *services.PaymentService
	invoiceService *services.InvoiceService
	mw             *middleware.Middleware
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	catalogService *services.CatalogService,
	orderService *services.OrderService,
	paymentService *services.PaymentService,
	invoiceService *services.InvoiceService,
	mw *middleware.Middleware,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:         logger,
		catalogService: catalogService,
		orderService:   orderService,
		paymentService: paymentService,
		invoiceService: invoiceService,
		mw:             mw,
	}
}

func (adm *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(adm.mw.AdminAuthMiddleware)

		// Catalog management
		r.Post("/products", adm.HandleCreateProduct)
		r.Patch("/products/{id}", adm.HandleUpdateProduct)
		r.Delete("/products/{id}", adm.HandleDeleteProduct)
		r.Post("/products/{id}/images", adm.HandleUploadImage)
		r.Post("/products/{id}/variants", adm.HandleCreateVariant)
		r.Patch("/variants/{id}", adm.HandleUpdateVariant)
		r.Delete("/variants/{id}", adm.HandleDeleteVariant)
		r.Get("/variants/{id}/stock", adm.HandleGetVariantStock)
		r.Post("/stock", adm.HandleAddStock)
		r.Post("/categories", adm.HandleCreateCategory)
		r.Post("/tags", adm.HandleCreateTag)
		r.Post("/bundles", adm.HandleCreateBundle)

		// Order management
		r.Get("/orders", adm.HandleListOrders)
		r.Get("/orders/{id}", adm.HandleGetOrder)
		r.Patch("/orders/{id}/status", adm.HandleUpdateOrderStatus)
		r.Put("/orders/{id}/tracking", adm.HandleUpsertTracking)
		r.Post("/orders/{id}/allocate", adm.HandleAllocateStock)

		// Payment review
		r.Get("/payments/pending", adm.HandleListPendingPayments)
		r.Post("/payments/{id}/approve", adm.HandleApprovePayment)
		r.Post("/payments/{id}/reject", adm.HandleRejectPayment)
		r.Patch("/payments/{id}/status", adm.HandleUpdatePaymentStatus)

		// Reporting
		r.Get("/reports/sales", adm.HandleSalesReport)
	})
}
