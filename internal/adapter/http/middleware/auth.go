package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"taskhub/internal/adapter/http/helper"
	"taskhub/internal/core/apperr"
	"taskhub/internal/core/domain"
	"taskhub/internal/core/port"
)

// CurrentUserKey is the gin context key holding the authenticated user.
const CurrentUserKey = "current_user"

// AuthRequired verifies the bearer token and loads the matching user onto
// the request context. A token whose user no longer exists is rejected the
// same way a forged one would be.
func AuthRequired(users port.UserRepository, tokens port.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractToken(c)
		if err != nil {
			helper.Error(c, err)
			return
		}

		userUUID, err := tokens.Verify(token)
		if err != nil {
			helper.Error(c, err)
			return
		}

		user, err := users.GetByUUID(c.Request.Context(), userUUID)
		if err != nil {
			helper.Error(c, apperr.InvalidToken())
			return
		}

		c.Set(CurrentUserKey, user.Sanitized())
		c.Next()
	}
}

func extractToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", apperr.MissingToken()
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", apperr.MissingToken()
	}

	return parts[1], nil
}

// CurrentUser returns the authenticated user stored by AuthRequired.
func CurrentUser(c *gin.Context) (domain.User, bool) {
	value, ok := c.Get(CurrentUserKey)
	if !ok {
		return domain.User{}, false
	}

	user, ok := value.(domain.User)
	return user, ok
}
