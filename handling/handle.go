package handling

import (
	"errors"
	"homifyhub_server/lib"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) {
	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))

	gecho.InternalServerError(w, gecho.Send())
}

// RespondError maps service errors onto HTTP responses. Business rule
// violations become 4xx with their message; anything unrecognized is logged
// and returned as a 500.
func RespondError(err error, logger *gecho.Logger, w http.ResponseWriter) {
	var validationErr *lib.ValidationError
	if errors.As(err, &validationErr) {
		gecho.BadRequest(w,
			gecho.WithMessage("Validation failed"),
			gecho.WithData(validationErr.Errors),
			gecho.Send(),
		)
		return
	}

	var failure *lib.ValidationFailure
	if errors.As(err, &failure) {
		gecho.BadRequest(w,
			gecho.WithMessage(failure.Message),
			gecho.WithData(map[string]string{"field": failure.Field}),
			gecho.Send(),
		)
		return
	}

	switch {
	case errors.Is(err, lib.ErrNotFound):
		gecho.NotFound(w, gecho.WithMessage("Not found"), gecho.Send())
		return

	case errors.Is(err, lib.ErrConflict),
		errors.Is(err, lib.ErrDuplicatePayment):
		gecho.Conflict(w, gecho.WithMessage(err.Error()), gecho.Send())
		return

	case errors.Is(err, lib.ErrOutOfStock),
		errors.Is(err, lib.ErrInsufficientStock),
		errors.Is(err, lib.ErrInvalidOTP),
		errors.Is(err, lib.ErrInvalidCoupon),
		errors.Is(err, lib.ErrAmountMismatch),
		errors.Is(err, lib.ErrOrderNotCancellable),
		errors.Is(err, lib.ErrPaymentNotPending):
		gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
		return

	case errors.Is(err, lib.ErrInvalidCredentials),
		errors.Is(err, lib.ErrInvalidToken),
		errors.Is(err, lib.ErrExpiredToken):
		gecho.Unauthorized(w, gecho.WithMessage(err.Error()), gecho.Send())
		return
	}

	HandleError(err, "unhandled service error", logger, w)
}
