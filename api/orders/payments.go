package orders

import (
	"homifyhub_server/api/middleware"
	"homifyhub_server/handling"
	"homifyhub_server/lib"
	"homifyhub_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleSubmitPayment records the customer's manual payment claim for one of
// their orders.
func (orm *OrderRoutesManager) HandleSubmitPayment(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.GetUserIdFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.SubmitPaymentRequest](r)
	if err != nil {
		handling.RespondError(err, orm.logger, w)
		return
	}

	payment, err := orm.paymentService.Submit(r.Context(), userId, body)
	if err != nil {
		handling.RespondError(err, orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Payment submitted for review"),
		gecho.WithData(payment),
		gecho.Send(),
	)
}
