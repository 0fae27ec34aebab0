package employee

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
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", middleware.Authorize(authz, identity.ResourceEmployee, identity.ActionRead), handler.Directory)
		employees.GET("/:id", middleware.Authorize(authz, identity.ResourceEmployee, identity.ActionRead), handler.GetById)
		employees.POST("", middleware.Authorize(authz, identity.ResourceEmployee, identity.ActionCreate), handler.Create)
		employees.PATCH("/:id", middleware.Authorize(authz, identity.ResourceEmployee, identity.ActionUpdate), handler.Update)
		employees.DELETE("/:id", middleware.Authorize(authz, identity.ResourceEmployee, identity.ActionDelete), handler.Delete)
	}
}
