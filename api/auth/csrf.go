package auth

import (
	"homifyhub_server/lib"
	"net/http"
	"time"

	"github.com/MonkyMars/gecho"
)

// HandleCSRF issues a CSRF token in a JS-readable cookie. The storefront
// echoes it back in the X-CSRF-Token header on mutating requests.
func (arm *AuthRoutesManager) HandleCSRF(w http.ResponseWriter, r *http.Request) {
	token, err := lib.GenerateCSRFToken()
	if err != nil {
		arm.logger.Error("Failed to generate CSRF token", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.Send())
		return
	}

	lib.SetCSRFCookie(token, time.Now().Add(24*time.Hour), w)

	gecho.Success(w,
		gecho.WithData(map[string]string{"csrf_token": token}),
		gecho.Send(),
	)
}
