package leave

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
	leaves := r.Group("/leave-requests")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.POST("", middleware.Authorize(authz, identity.ResourceLeave, identity.ActionSubmit), handler.Submit)
		leaves.GET("", middleware.AuthorizeAny(authz, identity.ResourceLeave, identity.ActionReadAll, identity.ActionReadOwn), handler.Mine)
		leaves.GET("/pending", middleware.Authorize(authz, identity.ResourceLeave, identity.ActionReadAll), handler.Pending)
		leaves.POST("/:id/approve", middleware.Authorize(authz, identity.ResourceLeave, identity.ActionDecide), handler.Approve)
		leaves.POST("/:id/deny", middleware.Authorize(authz, identity.ResourceLeave, identity.ActionDecide), handler.Deny)
	}
}
