package orders

import (
	"fmt"
	"homifyhub_server/api/middleware"
	"homifyhub_server/handling"
	"homifyhub_server/lib"
	"homifyhub_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (orm *OrderRoutesManager) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.GetUserIdFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	orders, err := orm.orderService.ListForUser(r.Context(), userId)
	if err != nil {
		handling.RespondError(err, orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"orders": orders}),
		gecho.Send(),
	)
}

func (orm *OrderRoutesManager) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.GetUserIdFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	orderId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	order, err := orm.orderService.GetByID(r.Context(), orderId, &userId)
	if err != nil {
		handling.RespondError(err, orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(order),
		gecho.Send(),
	)
}

func (orm *OrderRoutesManager) HandleGetTracking(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.GetUserIdFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	orderId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	tracking, err := orm.orderService.GetTracking(r.Context(), userId, orderId)
	if err != nil {
		handling.RespondError(err, orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(tracking),
		gecho.Send(),
	)
}

// HandleGetInvoice streams the invoice PDF for a delivered order.
func (orm *OrderRoutesManager) HandleGetInvoice(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.GetUserIdFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	orderId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	pdf, err := orm.invoiceService.GenerateInvoice(r.Context(), orderId, &userId)
	if err != nil {
		handling.RespondError(err, orm.logger, w)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice-%s.pdf"`, orderId))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		orm.logger.Warn("Failed to stream invoice", gecho.Field("order_id", orderId), gecho.Field("error", err))
	}
}

func (orm *OrderRoutesManager) HandleCancelOrder(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.GetUserIdFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	orderId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CancelOrderRequest](r)
	if err != nil {
		handling.RespondError(err, orm.logger, w)
		return
	}

	order, err := orm.orderService.Cancel(r.Context(), userId, orderId, body.Reason)
	if err != nil {
		handling.RespondError(err, orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order cancelled"),
		gecho.WithData(order),
		gecho.Send(),
	)
}
