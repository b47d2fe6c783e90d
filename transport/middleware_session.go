package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/easyfind/storefront/constant"
	sessionrepo "github.com/easyfind/storefront/repository/session"
	"github.com/easyfind/storefront/utils/errors"
	"github.com/easyfind/storefront/utils/logger"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// SessionMiddleware ensures every request carries an opaque session id: an
// httpOnly cookie backed by a redis key with a sliding TTL. Unknown or
// missing cookies get a fresh uuid. The id lands on the request context for
// the handlers.
func SessionMiddleware(sessionRepo sessionrepo.Repository, cookieName string, ttl time.Duration) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""

			if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
				known, err := sessionRepo.Exists(r.Context(), c.Value)
				if err != nil {
					logger.Error("session lookup", zap.String("error", err.Error()))
					writeError(w, errors.SetCustomError(constant.ErrInternal))
					return
				}
				if known {
					sessionID = c.Value
					if err := sessionRepo.Touch(r.Context(), sessionID, ttl); err != nil {
						logger.Warn("session touch", zap.String("error", err.Error()))
					}
				}
			}

			if sessionID == "" {
				sessionID = uuid.NewString()
				if err := sessionRepo.Create(r.Context(), sessionID, ttl); err != nil {
					logger.Error("session create", zap.String("error", err.Error()))
					writeError(w, errors.SetCustomError(constant.ErrInternal))
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(ttl.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteStrictMode,
				})
			}

			ctx := context.WithValue(r.Context(), constant.SessionIDKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
