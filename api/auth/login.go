package auth

import (
	"homifyhub_server/handling"
	"homifyhub_server/lib"
	"homifyhub_server/structs"
	"net/http"
	"time"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleLogin(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.AuthRequest](r)
	if err != nil {
		arm.logger.Warn("Invalid login payload", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check your login information and try again"), gecho.Send())
		return
	}

	user, err := arm.authService.Login(r.Context(), body)
	if err != nil {
		arm.logger.Warn("Login failed", gecho.Field("error", err))
		gecho.Unauthorized(w, gecho.WithMessage("Invalid credentials"), gecho.Send())
		return
	}

	accessToken, refreshToken, err := arm.authService.GenerateTokens(user)
	if err != nil {
		handling.HandleError(err, "failed to generate tokens", arm.logger, w)
		return
	}

	lib.SetCookie(lib.AccessCookieName, accessToken, time.Now().Add(arm.cfg.Auth.AccessTokenExpiry), w)
	lib.SetCookie(lib.RefreshCookieName, refreshToken, time.Now().Add(arm.cfg.Auth.RefreshTokenExpiry), w)

	gecho.Success(w,
		gecho.WithMessage("Login successful"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
