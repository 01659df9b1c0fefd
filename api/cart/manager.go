package cart

import (
	"homifyhub_server/api/middleware"
	"homifyhub_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CartRoutesManager struct {
	logger      *gecho.Logger
	cartService *services.CartService
	mw          *middleware.Middleware
}

func NewCartRoutesManager(
	logger *gecho.Logger,
	cartService *services.CartService,
	mw *middleware.Middleware,
) *CartRoutesManager {
	return &CartRoutesManager{
		logger:      logger,
		cartService: cartService,
		mw:          mw,
	}
}

func (crm *CartRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Use(crm.mw.UserAuthMiddleware)
		r.Get("/", crm.HandleGetCart)
		r.Post("/items", crm.HandleAddItem)
		r.Patch("/items/{id}", crm.HandleUpdateItem)
		r.Delete("/items/{id}", crm.HandleRemoveItem)
		r.Delete("/", crm.HandleClearCart)
	})

	r.Route("/wishlist", func(r chi.Router) {
		r.Use(crm.mw.UserAuthMiddleware)
		r.Get("/", crm.HandleGetWishlist)
		r.Post("/toggle", crm.HandleToggleWishlist)
	})

	// Guest sessions carry their own cart and wishlist in the cache.
	r.Route("/guest", func(r chi.Router) {
		r.Use(crm.mw.GuestSessionMiddleware)
		r.Get("/cart", crm.HandleGetGuestCart)
		r.Post("/cart/items", crm.HandleAddGuestItem)
		r.Delete("/cart/items/{productId}", crm.HandleRemoveGuestItem)
		r.Get("/wishlist", crm.HandleGetGuestWishlist)
		r.Post("/wishlist/toggle", crm.HandleToggleGuestWishlist)
	})
}
