package admin

import (
	"homifyhub_server/handling"
	"homifyhub_server/lib"
	"homifyhub_server/structs"
	"homifyhub_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (adm *AdminRoutesManager) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	opts, err := handling.ParseOrderListOptions(r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid query parameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	result, err := adm.orderService.AdminList(r.Context(), opts)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"orders":     result.Data,
			"pagination": result.Pagination,
		}),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	orderId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	order, err := adm.orderService.GetByID(r.Context(), orderId, nil)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(order),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) HandleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateOrderStatusRequest](r)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	order, err := adm.orderService.UpdateStatus(r.Context(), orderId, tables.OrderStatus(body.Status))
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order status updated"),
		gecho.WithData(order),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) HandleUpsertTracking(w http.ResponseWriter, r *http.Request) {
	orderId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.TrackingRequest](r)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	tracking, err := adm.orderService.UpsertTracking(r.Context(), orderId, body)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Tracking updated"),
		gecho.WithData(tracking),
		gecho.Send(),
	)
}

// HandleAllocateStock consumes stock batches for the order's items, oldest
// first.
func (adm *AdminRoutesManager) HandleAllocateStock(w http.ResponseWriter, r *http.Request) {
	orderId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	order, err := adm.orderService.AllocateStock(r.Context(), orderId)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Stock allocated"),
		gecho.WithData(order),
		gecho.Send(),
	)
}
