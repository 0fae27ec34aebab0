package profilechange

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
	changes := r.Group("/profile-change-requests")
	changes.Use(middleware.AuthMiddleware())
	{
		changes.POST("", middleware.Authorize(authz, identity.ResourceProfileChange, identity.ActionSubmit), handler.Submit)
		changes.GET("", middleware.AuthorizeAny(authz, identity.ResourceProfileChange, identity.ActionReadAll, identity.ActionReadOwn), handler.Mine)
		changes.GET("/pending", middleware.Authorize(authz, identity.ResourceProfileChange, identity.ActionReadAll), handler.Pending)
		changes.POST("/:id/approve", middleware.Authorize(authz, identity.ResourceProfileChange, identity.ActionDecide), handler.Approve)
		changes.POST("/:id/deny", middleware.Authorize(authz, identity.ResourceProfileChange, identity.ActionDecide), handler.Deny)
	}
}
