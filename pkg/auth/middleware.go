package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/Pinarr/pkg/model"
)

// Middleware rejects requests without a valid session and stores the
// authenticated user in the request context under UserKey.
func (a *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := a.CurrentIdentity(c.Request.Context(), c.Request)
		if errors.Is(err, ErrUnauthenticated) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": ErrUnauthenticated.Error()})

			return
		}

		if err != nil {
			a.logger.Error("error authenticating user", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})

			return
		}

		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), UserKey{}, user))
		c.Next()
	}
}

func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(UserKey{}).(*model.User)

	return user, ok && user != nil
}

func (a *Manager) SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     a.conf.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(a.conf.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   a.conf.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (a *Manager) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     a.conf.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.conf.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
