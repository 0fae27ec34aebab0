package profilechange

import (
	"errors"
	"io"
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
	l := zap.L().Named("profilechange.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profilechange.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("profile change request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func bindDecision(c *gin.Context, req *DecideChangeRequest) error {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		return apperror.MapValidationError(err)
	}
	return nil
}

func (h *Handler) Submit(c *gin.Context) {
	actor, _ := middleware.GetPrincipal(c)

	var req SubmitChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http submit profile change validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) Pending(c *gin.Context) {
	actor, _ := middleware.GetPrincipal(c)

	resp, err := h.service.PendingQueue(c.Request.Context(), actor)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Mine(c *gin.Context) {
	actor, _ := middleware.GetPrincipal(c)

	employeeID := c.DefaultQuery("employeeId", actor.ID)

	resp, err := h.service.Mine(c.Request.Context(), actor, employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Approve(c *gin.Context) {
	actor, _ := middleware.GetPrincipal(c)
	id := c.Param("id")

	var req DecideChangeRequest
	if err := bindDecision(c, &req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.Approve(c.Request.Context(), actor, id, req.DecisionNote)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Deny(c *gin.Context) {
	actor, _ := middleware.GetPrincipal(c)
	id := c.Param("id")

	var req DecideChangeRequest
	if err := bindDecision(c, &req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.Deny(c.Request.Context(), actor, id, req.DecisionNote)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
