package cart

import (
	"homifyhub_server/api/middleware"
	"homifyhub_server/handling"
	"homifyhub_server/lib"
	"homifyhub_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (crm *CartRoutesManager) HandleGetWishlist(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.GetUserIdFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	wishlist, err := crm.cartService.GetWishlist(r.Context(), userId)
	if err != nil {
		handling.RespondError(err, crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(wishlist),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) HandleToggleWishlist(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.GetUserIdFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.WishlistToggleRequest](r)
	if err != nil {
		handling.RespondError(err, crm.logger, w)
		return
	}

	added, err := crm.cartService.ToggleWishlist(r.Context(), userId, body.ProductId)
	if err != nil {
		handling.RespondError(err, crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]bool{"in_wishlist": added}),
		gecho.Send(),
	)
}
