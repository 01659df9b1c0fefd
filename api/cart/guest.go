package cart

import (
	"homifyhub_server/api/middleware"
	"homifyhub_server/handling"
	"homifyhub_server/lib"
	"homifyhub_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (crm *CartRoutesManager) HandleGetGuestCart(w http.ResponseWriter, r *http.Request) {
	sessionId, ok := middleware.GetGuestSessionFromContext(r.Context())
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("No guest session"), gecho.Send())
		return
	}

	cart, err := crm.cartService.GetGuestCart(r.Context(), sessionId)
	if err != nil {
		handling.RespondError(err, crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"items": cart}),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) HandleAddGuestItem(w http.ResponseWriter, r *http.Request) {
	sessionId, ok := middleware.GetGuestSessionFromContext(r.Context())
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("No guest session"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.GuestCartItemRequest](r)
	if err != nil {
		handling.RespondError(err, crm.logger, w)
		return
	}

	cart, err := crm.cartService.AddGuestItem(r.Context(), sessionId, body.ProductId)
	if err != nil {
		handling.RespondError(err, crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Item added"),
		gecho.WithData(map[string]any{"items": cart}),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) HandleRemoveGuestItem(w http.ResponseWriter, r *http.Request) {
	sessionId, ok := middleware.GetGuestSessionFromContext(r.Context())
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("No guest session"), gecho.Send())
		return
	}

	productId, err := uuid.Parse(chi.URLParam(r, "productId"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	cart, err := crm.cartService.RemoveGuestItem(r.Context(), sessionId, productId)
	if err != nil {
		handling.RespondError(err, crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Item removed"),
		gecho.WithData(map[string]any{"items": cart}),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) HandleGetGuestWishlist(w http.ResponseWriter, r *http.Request) {
	sessionId, ok := middleware.GetGuestSessionFromContext(r.Context())
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("No guest session"), gecho.Send())
		return
	}

	list, err := crm.cartService.GetGuestWishlist(r.Context(), sessionId)
	if err != nil {
		handling.RespondError(err, crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"products": list}),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) HandleToggleGuestWishlist(w http.ResponseWriter, r *http.Request) {
	sessionId, ok := middleware.GetGuestSessionFromContext(r.Context())
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("No guest session"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.WishlistToggleRequest](r)
	if err != nil {
		handling.RespondError(err, crm.logger, w)
		return
	}

	added, err := crm.cartService.ToggleGuestWishlist(r.Context(), sessionId, body.ProductId)
	if err != nil {
		handling.RespondError(err, crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]bool{"in_wishlist": added}),
		gecho.Send(),
	)
}
