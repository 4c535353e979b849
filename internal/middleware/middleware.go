package middleware

import (
	"career-service/internal/models"
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"
)

const (
	// Career permissions
	ReadCareerPermission  = "read:career"
	WriteCareerPermission = "write:career"
	AdminPermission       = "admin:career"
)

// Request headers set after token validation, read by handlers.
const (
	HeaderUserID      = "X-User-ID"
	HeaderUsername    = "X-User-Name"
	HeaderEmail       = "X-User-Email"
	HeaderPermissions = "X-User-Permissions"
)

type TokenVerifier interface {
	VerifyToken(tokenString string) (*models.Claims, error)
}

// AuthRequired validates the bearer token and stamps identity headers
// on the request for downstream handlers.
func AuthRequired(verifier TokenVerifier) fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization token",
			})
		}

		tokenString := authHeader
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = authHeader[7:]
		}

		claims, err := verifier.VerifyToken(tokenString)
		if err != nil {
			log.Printf("Token validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		c.Request().Header.Set(HeaderUserID, claims.UserID)
		c.Request().Header.Set(HeaderUsername, claims.Username)
		c.Request().Header.Set(HeaderEmail, claims.Email)
		c.Request().Header.Set(HeaderPermissions, strings.Join(claims.Permissions, ","))

		return c.Next()
	}
}

// PermissionRequired gates a route on one permission from the
// validated token.
func PermissionRequired(permission string) fiber.Handler {
	return func(c fiber.Ctx) error {
		granted := strings.Split(c.Get(HeaderPermissions), ",")
		for _, p := range granted {
			if p == permission {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Insufficient permissions",
		})
	}
}

func AdminRequired() fiber.Handler {
	return PermissionRequired(AdminPermission)
}
