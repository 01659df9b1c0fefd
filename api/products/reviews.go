package products

import (
	"homifyhub_server/api/middleware"
	"homifyhub_server/handling"
	"homifyhub_server/lib"
	"homifyhub_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

func (prm *ProductRoutesManager) FetchReviews(w http.ResponseWriter, r *http.Request) {
	product, err := prm.catalogService.GetProductBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		handling.RespondError(err, prm.logger, w)
		return
	}

	page, pageSize := parsePagination(r)
	result, err := prm.catalogService.ListReviews(r.Context(), product.Id, page, pageSize)
	if err != nil {
		handling.RespondError(err, prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"reviews":    result.Data,
			"pagination": result.Pagination,
		}),
		gecho.Send(),
	)
}

// CreateReview handles POST /products/{slug}/reviews. One review per user per
// product.
func (prm *ProductRoutesManager) CreateReview(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.GetUserIdFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	product, err := prm.catalogService.GetProductBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		handling.RespondError(err, prm.logger, w)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.ReviewRequest](r)
	if err != nil {
		handling.RespondError(err, prm.logger, w)
		return
	}

	review, err := prm.catalogService.CreateReview(r.Context(), product.Id, userId, body)
	if err != nil {
		handling.RespondError(err, prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Review saved"),
		gecho.WithData(review),
		gecho.Send(),
	)
}
