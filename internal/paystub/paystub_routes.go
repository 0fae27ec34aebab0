package paystub

import (
	"hr-portal/internal/identity"
	"hr-portal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authz identity.Authorizer,
) {
	stubs := r.Group("/paystubs")
	stubs.Use(middleware.AuthMiddleware())
	{
		stubs.POST("", middleware.Authorize(authz, identity.ResourcePaystub, identity.ActionCreate), handler.Create)
		stubs.GET("", middleware.AuthorizeAny(authz, identity.ResourcePaystub, identity.ActionReadAll, identity.ActionReadOwn), handler.List)
	}
}
