package auth

import (
	"homifyhub_server/handling"
	"homifyhub_server/lib"
	"homifyhub_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleRegister(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.RegisterRequest](r)
	if err != nil {
		arm.logger.Warn("Invalid registration payload", gecho.Field("error", err))
		handling.RespondError(err, arm.logger, w)
		return
	}

	user, err := arm.authService.Register(r.Context(), body)
	if err != nil {
		if lib.IsUniqueViolation(err) {
			gecho.Conflict(w, gecho.WithMessage("An account with that email or username already exists"), gecho.Send())
			return
		}
		handling.RespondError(err, arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Account created"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
