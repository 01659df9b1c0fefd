package middleware

import (
	"context"
	"homifyhub_server/lib"
	"net/http"
	"time"
)

// GuestSessionMiddleware gives anonymous visitors a session cookie so their
// cart and wishlist survive between requests. The cookie carries an opaque
// random token; the session itself lives in the cache.
func (mw *Middleware) GuestSessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionId, err := lib.GetCookieValue(lib.GuestSessionCookieName, r)
		if err != nil || sessionId == "" {
			sessionId, err = lib.GenerateRandomToken()
			if err != nil {
				http.Error(w, "failed to start session", http.StatusInternalServerError)
				return
			}
			lib.SetCookie(lib.GuestSessionCookieName, sessionId, time.Now().Add(mw.cfg.Cache.GuestSessionTTL), w)
		}

		ctx := context.WithValue(r.Context(), GuestSessionContextKey, sessionId)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetGuestSessionFromContext returns the guest session id set by
// GuestSessionMiddleware.
func GetGuestSessionFromContext(ctx context.Context) (string, bool) {
	sessionId, ok := ctx.Value(GuestSessionContextKey).(string)
	return sessionId, ok && sessionId != ""
}
