package handler

import (
	"net/http"
	"strconv"
	"time"

	"goodwill/internal/config"
	"goodwill/internal/domain/model"
	"goodwill/internal/middleware"
	"goodwill/internal/repository"
	"goodwill/internal/usecase"

	"github.com/labstack/echo/v4"
)

// GET /audit-logs（管理者のみ）
type AuditLogHandler struct {
	uc *usecase.AuditLogUsecase
}

func NewAuditLogHandler(uc *usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{uc: uc}
}

func (h *AuditLogHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	e.GET("/audit-logs", h.list, middleware.AuthJWT(cfg), middleware.AdminRoleGuard(userRepo))
}

func (h *AuditLogHandler) list(c echo.Context) error {
	f := repository.AuditLogFilter{
		ActorEmail: c.QueryParam("actorEmail"),
		ResourceID: c.QueryParam("resourceId"),
		Limit:      50,
	}

	if v := c.QueryParam("action"); v != "" {
		a := model.AuditAction(v)
		f.Action = &a
	}
	if v := c.QueryParam("resourceType"); v != "" {
		rt := model.AuditResourceType(v)
		f.ResourceType = &rt
	}

	// limit（default 50）
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil || l <= 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid limit"})
		}
		f.Limit = l
	}
	if v := c.QueryParam("offset"); v != "" {
		o, err := strconv.Atoi(v)
		if err != nil || o < 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid offset"})
		}
		f.Offset = o
	}

	// from/to は RFC3339
	if v := c.QueryParam("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid from"})
		}
		f.CreatedFrom = &t
	}
	if v := c.QueryParam("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid to"})
		}
		f.CreatedTo = &t
	}

	items, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
