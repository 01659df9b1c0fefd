package auth

import (
	"homifyhub_server/api/middleware"
	"homifyhub_server/handling"
	"homifyhub_server/lib"
	"homifyhub_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (arm *AuthRoutesManager) HandleListAddresses(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.GetUserIdFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	addresses, err := arm.authService.ListAddresses(r.Context(), userId)
	if err != nil {
		handling.RespondError(err, arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"addresses": addresses}),
		gecho.Send(),
	)
}

func (arm *AuthRoutesManager) HandleCreateAddress(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.GetUserIdFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.AddressRequest](r)
	if err != nil {
		handling.RespondError(err, arm.logger, w)
		return
	}

	address, err := arm.authService.CreateAddress(r.Context(), userId, body)
	if err != nil {
		handling.RespondError(err, arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Address saved"),
		gecho.WithData(address),
		gecho.Send(),
	)
}

func (arm *AuthRoutesManager) HandleDeleteAddress(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.GetUserIdFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	addressId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid address id"), gecho.Send())
		return
	}

	if err := arm.authService.DeleteAddress(r.Context(), userId, addressId); err != nil {
		handling.RespondError(err, arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Address deleted"),
		gecho.Send(),
	)
}
