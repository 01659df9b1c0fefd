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

func (adm *AdminRoutesManager) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CreateProductRequest](r)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	product, err := adm.catalogService.CreateProduct(r.Context(), body)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product created"),
		gecho.WithData(product),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) HandleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	productId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateProductRequest](r)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	product, err := adm.catalogService.UpdateProduct(r.Context(), productId, body)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product updated"),
		gecho.WithData(product),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) HandleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	productId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	if err := adm.catalogService.DeleteProduct(r.Context(), productId); err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product deleted"),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) HandleUploadImage(w http.ResponseWriter, r *http.Request) {
	productId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UploadImageRequest](r)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	image, err := adm.catalogService.UploadProductImage(r.Context(), productId, body)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Image uploaded"),
		gecho.WithData(image),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CategoryRequest](r)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	category, err := adm.catalogService.CreateCategory(r.Context(), body)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category created"),
		gecho.WithData(category),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) HandleCreateTag(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.TagRequest](r)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	tag, err := adm.catalogService.CreateTag(r.Context(), body)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Tag created"),
		gecho.WithData(tag),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) HandleCreateBundle(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CreateBundleRequest](r)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	bundle, err := adm.catalogService.CreateBundle(r.Context(), body)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Bundle created"),
		gecho.WithData(bundle),
		gecho.Send(),
	)
}
