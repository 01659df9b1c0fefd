package cart

import (
	"homifyhub_server/api/middleware"
	"homifyhub_server/handling"
	"homifyhub_server/lib"
	"homifyhub_server/structs"
	"homifyhub_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (crm *CartRoutesManager) HandleGetCart(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.GetUserIdFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	cart, err := crm.cartService.GetOrCreateCart(r.Context(), userId)
	if err != nil {
		handling.RespondError(err, crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(structs.CartSummary{
			Id:        cart.Id,
			Items:     cart.Items,
			ItemCount: cart.ItemCount(),
			Total:     crm.cartService.Total(cart),
		}),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.GetUserIdFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.AddCartItemRequest](r)
	if err != nil {
		handling.RespondError(err, crm.logger, w)
		return
	}

	ref := tables.ItemRef{VariantId: body.VariantId, BundleId: body.BundleId}
	item, err := crm.cartService.AddItem(r.Context(), userId, ref, body.Quantity, body.Customization)
	if err != nil {
		handling.RespondError(err, crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Item added to cart"),
		gecho.WithData(item),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.GetUserIdFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	itemId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid cart item id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateCartItemRequest](r)
	if err != nil {
		handling.RespondError(err, crm.logger, w)
		return
	}

	if err := crm.cartService.UpdateQuantity(r.Context(), userId, itemId, body.Quantity); err != nil {
		handling.RespondError(err, crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Cart updated"),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.GetUserIdFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	itemId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid cart item id"), gecho.Send())
		return
	}

	if err := crm.cartService.RemoveItem(r.Context(), userId, itemId); err != nil {
		handling.RespondError(err, crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Item removed"),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) HandleClearCart(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.GetUserIdFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	if err := crm.cartService.ClearCart(r.Context(), userId); err != nil {
		handling.RespondError(err, crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Cart cleared"),
		gecho.Send(),
	)
}
