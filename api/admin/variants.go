package admin

import (
	"homifyhub_server/handling"
	"homifyhub_server/lib"
	"homifyhub_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (adm *AdminRoutesManager) HandleCreateVariant(w http.ResponseWriter, r *http.Request) {
	productId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CreateVariantRequest](r)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	variant, err := adm.catalogService.CreateVariant(r.Context(), productId, body)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Variant created"),
		gecho.WithData(variant),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) HandleUpdateVariant(w http.ResponseWriter, r *http.Request) {
	variantId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid variant id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateVariantRequest](r)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	variant, err := adm.catalogService.UpdateVariant(r.Context(), variantId, body)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Variant updated"),
		gecho.WithData(variant),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) HandleDeleteVariant(w http.ResponseWriter, r *http.Request) {
	variantId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid variant id"), gecho.Send())
		return
	}

	if err := adm.catalogService.DeleteVariant(r.Context(), variantId); err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Variant deleted"),
		gecho.Send(),
	)
}

// HandleGetVariantStock returns a variant with its batches and total.
func (adm *AdminRoutesManager) HandleGetVariantStock(w http.ResponseWriter, r *http.Request) {
	variantId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid variant id"), gecho.Send())
		return
	}

	variant, err := adm.catalogService.GetVariantWithStock(r.Context(), variantId)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"variant":     variant,
			"total_stock": variant.TotalStock(),
		}),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) HandleAddStock(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.AddStockRequest](r)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	stock, err := adm.catalogService.AddStock(r.Context(), body)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Stock batch recorded"),
		gecho.WithData(stock),
		gecho.Send(),
	)
}
