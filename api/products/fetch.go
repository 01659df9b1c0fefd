package products

import (
	"homifyhub_server/handling"
	"net/http"
	"strconv"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// FetchAllProducts handles GET /products with filtering, pagination and
// sorting.
func (prm *ProductRoutesManager) FetchAllProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		prm.logger.Warn("Invalid query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid query parameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	result, err := prm.catalogService.ListProducts(ctx, opts)
	if err != nil {
		handling.RespondError(err, prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products":   result.Data,
			"pagination": result.Pagination,
		}),
		gecho.Send(),
	)
}

// FetchProductBySlug handles GET /products/{slug}.
func (prm *ProductRoutesManager) FetchProductBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		gecho.BadRequest(w, gecho.WithMessage("Product slug required"), gecho.Send())
		return
	}

	product, err := prm.catalogService.GetProductBySlug(r.Context(), slug)
	if err != nil {
		handling.RespondError(err, prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"product": product}),
		gecho.Send(),
	)
}

func (prm *ProductRoutesManager) FetchCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := prm.catalogService.ListCategories(r.Context())
	if err != nil {
		handling.RespondError(err, prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"categories": categories}),
		gecho.Send(),
	)
}

func (prm *ProductRoutesManager) FetchTags(w http.ResponseWriter, r *http.Request) {
	tags, err := prm.catalogService.ListTags(r.Context())
	if err != nil {
		handling.RespondError(err, prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"tags": tags}),
		gecho.Send(),
	)
}

func (prm *ProductRoutesManager) FetchBundles(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := prm.catalogService.ListBundles(r.Context(), page, pageSize)
	if err != nil {
		handling.RespondError(err, prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"bundles":    result.Data,
			"pagination": result.Pagination,
		}),
		gecho.Send(),
	)
}

func (prm *ProductRoutesManager) FetchBundleBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		gecho.BadRequest(w, gecho.WithMessage("Bundle slug required"), gecho.Send())
		return
	}

	bundle, err := prm.catalogService.GetBundleBySlug(r.Context(), slug)
	if err != nil {
		handling.RespondError(err, prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"bundle": bundle}),
		gecho.Send(),
	)
}

func parsePagination(r *http.Request) (page, pageSize int) {
	if val, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && val > 0 {
		page = val
	}
	if val, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && val > 0 {
		pageSize = val
	}
	return page, pageSize
}
