package middleware

import (
	"hr-portal/internal/identity"
	"hr-portal/internal/shared/apperror"
	"hr-portal/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Authorize gates a route on a role policy check. Services re-check the same
// policy on every call, so this is a fast-fail in front of the handler, not
// the only enforcement point.
func Authorize(authz identity.Authorizer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			httpErr := apperror.ToHTTP(apperror.ErrForbidden)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		if err := authz.Can(p, resource, action); err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// AuthorizeAny passes when the principal holds at least one of the listed
// actions on the resource. Used for list endpoints where admins read all and
// employees read their own slice.
func AuthorizeAny(authz identity.Authorizer, resource string, actions ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			httpErr := apperror.ToHTTP(apperror.ErrForbidden)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		for _, action := range actions {
			if authz.Can(p, resource, action) == nil {
				c.Next()
				return
			}
		}

		httpErr := apperror.ToHTTP(apperror.ErrForbidden)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		c.Abort()
	}
}
