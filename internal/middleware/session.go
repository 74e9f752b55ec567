package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickfunds/loanflow_backend/internal/utils"
)

// SessionCookieName is the cookie carrying the anonymous browsing
// session ID that keys wizard state.
const SessionCookieName = "loanapp_session"

const sessionIDBytes = 16

// SessionMiddleware ensures every request carries a browsing session ID,
// minting one in a cookie when absent. The ID is stored in the request
// context for handlers.
func SessionMiddleware(secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			sessionID, err = utils.GenerateSecureRandomString(sessionIDBytes)
			if err != nil {
				GetLoggerFromCtx(c.Request.Context()).Error("Failed to generate session ID", slog.String("error", err.Error()))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookieName, sessionID, 0, "/", "", secureCookies, true)
		}

		ctx := context.WithValue(c.Request.Context(), sessionIDKey, sessionID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
