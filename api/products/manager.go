package products

import (
	"homifyhub_server/api/middleware"
	"homifyhub_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
	mw             *middleware.Middleware
}

func NewProductRoutesManager(
	logger *gecho.Logger,
	catalogService *services.CatalogService,
	mw *middleware.Middleware,
) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		catalogService: catalogService,
		mw:             mw,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/products", prm.FetchAllProducts)
	r.Get("/products/{slug}", prm.FetchProductBySlug)
	r.Get("/products/{slug}/reviews", prm.FetchReviews)
	r.Get("/categories", prm.FetchCategories)
	r.Get("/tags", prm.FetchTags)
	r.Get("/bundles", prm.FetchBundles)
	r.Get("/bundles/{slug}", prm.FetchBundleBySlug)

	r.Group(func(r chi.Router) {
		r.Use(prm.mw.UserAuthMiddleware)
		r.Post("/products/{slug}/reviews", prm.CreateReview)
	})
}
