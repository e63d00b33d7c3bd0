package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AntonMilev36/fitness-service/internal/models"
	"github.com/AntonMilev36/fitness-service/internal/repositories"
	"github.com/AntonMilev36/fitness-service/internal/services"
)

const (
	invalidTokenMessage     = "Invalid or missing token"
	permissionDeniedMessage = "You don't have permission to do this task"
)

// AuthMiddleware verifies the bearer token and loads the current user
// from the database, so a demoted or deleted account loses access on
// its next request even while its token is still within its lifetime.
func AuthMiddleware(tokenService services.TokenService, repo repositories.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Message: invalidTokenMessage})
			c.Abort()
			return
		}

		identity, err := tokenService.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Message: invalidTokenMessage})
			c.Abort()
			return
		}

		user, err := repo.User().GetByPK(c.Request.Context(), identity.UserPK)
		if err != nil {
			// A token for a user that no longer exists is treated the
			// same as a bad token.
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, ErrorResponse{Message: invalidTokenMessage})
			} else {
				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "An error occurred while saving data. Please try again later",
				})
			}
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("user_pk", user.PK)
		c.Set("user_role", user.Role)
		c.Next()
	}
}

// RequireRoleMiddleware admits only the listed roles. Membership is
// checked against the role stored in the database, not the one in the
// token, and no role is admitted implicitly.
func RequireRoleMiddleware(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("user_role")
		if !exists {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Message: invalidTokenMessage})
			c.Abort()
			return
		}

		role, ok := value.(models.UserRole)
		if !ok {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Message: invalidTokenMessage})
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, ErrorResponse{Message: permissionDeniedMessage})
		c.Abort()
	}
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
