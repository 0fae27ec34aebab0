package onboarding

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
	ob := r.Group("/onboarding")
	ob.Use(middleware.AuthMiddleware())
	ob.Use(middleware.Authorize(authz, identity.ResourceOnboarding, identity.ActionManage))
	{
		ob.POST("/employees/:employeeId", handler.Ensure)
		ob.PATCH("/:id/blocks/:block", handler.SaveBlock)
		ob.PATCH("/:id/step", handler.Advance)
		ob.POST("/:id/documents", handler.AddDocument)
	}
}
