package onboarding

import (
	"net/http"

	"hr-portal/internal/middleware"
	"hr-portal/internal/shared/apperror"
	"hr-portal/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("onboarding.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("onboarding.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("onboarding request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Ensure returns the employee's onboarding record, creating it on first
// access. Safe to call repeatedly.
func (h *Handler) Ensure(c *gin.Context) {
	actor, _ := middleware.GetPrincipal(c)
	employeeID := c.Param("employeeId")

	resp, err := h.service.EnsureRecord(c.Request.Context(), actor, employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) SaveBlock(c *gin.Context) {
	actor, _ := middleware.GetPrincipal(c)
	recordID := c.Param("id")
	blockName := c.Param("block")

	var req SaveBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http save block validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.SaveBlock(c.Request.Context(), actor, recordID, blockName, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Advance(c *gin.Context) {
	actor, _ := middleware.GetPrincipal(c)
	recordID := c.Param("id")

	var req AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http advance step validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Advance(c.Request.Context(), actor, recordID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) AddDocument(c *gin.Context) {
	actor, _ := middleware.GetPrincipal(c)
	recordID := c.Param("id")

	var req AddDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http add document validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.AddDocument(c.Request.Context(), actor, recordID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}
