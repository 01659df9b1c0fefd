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

func (adm *AdminRoutesManager) HandleListPendingPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := adm.paymentService.ListPending(r.Context())
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"payments": payments}),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) HandleApprovePayment(w http.ResponseWriter, r *http.Request) {
	paymentId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid payment id"), gecho.Send())
		return
	}

	payment, err := adm.paymentService.Approve(r.Context(), paymentId)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Payment approved"),
		gecho.WithData(payment),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) HandleRejectPayment(w http.ResponseWriter, r *http.Request) {
	paymentId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid payment id"), gecho.Send())
		return
	}

	payment, err := adm.paymentService.Reject(r.Context(), paymentId)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Payment rejected"),
		gecho.WithData(payment),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) HandleUpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	paymentId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid payment id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdatePaymentStatusRequest](r)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	payment, err := adm.paymentService.UpdateStatus(r.Context(), paymentId, tables.PaymentStatus(body.Status))
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Payment status updated"),
		gecho.WithData(payment),
		gecho.Send(),
	)
}
