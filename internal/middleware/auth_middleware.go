package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	autherrors "hr-portal/internal/auth/errors"
	"hr-portal/internal/identity"
	"hr-portal/internal/shared/contextutil"
	"hr-portal/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const principalKey = "principal"

// AuthMiddleware resolves the acting principal from a bearer token (or the
// access_token cookie) and stores it in both the gin context and the request
// context. Everything downstream receives the principal explicitly; no
// handler re-parses the token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Subject not found in token", nil)
			c.Abort()
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Role not found in token", nil)
			c.Abort()
			return
		}

		name, _ := claims["name"].(string)
		email, _ := claims["email"].(string)

		p := identity.Principal{ID: sub, Role: role, Name: name, Email: email}

		c.Set(principalKey, p)
		c.Set("employee_id", p.ID)
		c.Set("role", p.Role)

		ctx := contextutil.WithPrincipal(c.Request.Context(), p)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetPrincipal returns the principal stored by AuthMiddleware. The zero
// principal with ok=false means the route was registered without auth.
func GetPrincipal(c *gin.Context) (identity.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return identity.Principal{}, false
	}
	p, ok := v.(identity.Principal)
	return p, ok
}
