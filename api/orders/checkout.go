package orders

import (
	"homifyhub_server/api/middleware"
	"homifyhub_server/handling"
	"homifyhub_server/lib"
	"homifyhub_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) HandleListDeliveryMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := orm.checkoutService.ListDeliveryMethods(r.Context())
	if err != nil {
		handling.RespondError(err, orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"delivery_methods": methods}),
		gecho.Send(),
	)
}

func (orm *OrderRoutesManager) HandleListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := orm.checkoutService.ListPaymentMethods(r.Context())
	if err != nil {
		handling.RespondError(err, orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"payment_methods": methods}),
		gecho.Send(),
	)
}

// HandleRequestOtp sends a fresh checkout verification code to the user's
// phone.
func (orm *OrderRoutesManager) HandleRequestOtp(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.GetUserIdFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	user, err := orm.authService.GetUserById(r.Context(), userId)
	if err != nil {
		handling.RespondError(err, orm.logger, w)
		return
	}

	if err := orm.otpService.Send(r.Context(), user); err != nil {
		handling.RespondError(err, orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Verification code sent"),
		gecho.Send(),
	)
}

// HandleCheckout turns the user's cart into an order.
func (orm *OrderRoutesManager) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.GetUserIdFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	user, err := orm.authService.GetUserById(r.Context(), userId)
	if err != nil {
		handling.RespondError(err, orm.logger, w)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CheckoutRequest](r)
	if err != nil {
		handling.RespondError(err, orm.logger, w)
		return
	}

	order, err := orm.checkoutService.Checkout(r.Context(), user, body)
	if err != nil {
		handling.RespondError(err, orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order placed"),
		gecho.WithData(order),
		gecho.Send(),
	)
}
