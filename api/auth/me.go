package auth

import (
	"homifyhub_server/api/middleware"
	"homifyhub_server/handling"
	"homifyhub_server/lib"
	"homifyhub_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleMe(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.GetUserIdFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	user, err := arm.authService.GetUserById(r.Context(), userId)
	if err != nil {
		handling.RespondError(err, arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(user),
		gecho.Send(),
	)
}

func (arm *AuthRoutesManager) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userId, ok := middleware.GetUserIdFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateProfileRequest](r)
	if err != nil {
		handling.RespondError(err, arm.logger, w)
		return
	}

	user, err := arm.authService.UpdateProfile(r.Context(), userId, body)
	if err != nil {
		handling.RespondError(err, arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Profile updated"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
