package handler

import (
	"net/http"

	"goodwill/internal/config"
	"goodwill/internal/middleware"
	"goodwill/internal/repository"
	"goodwill/internal/usecase"

	"github.com/labstack/echo/v4"
)

type createCategoryRequest struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// /categories
type CategoryHandler struct {
	uc *usecase.CatalogUsecase
}

func NewCategoryHandler(uc *usecase.CatalogUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	e.GET("/categories", h.list)
	e.POST("/categories", h.create, middleware.AuthJWT(cfg), middleware.AdminRoleGuard(userRepo))
}

func (h *CategoryHandler) list(c echo.Context) error {
	items, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CategoryHandler) create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "name is required"})
	}

	cat, err := h.uc.CreateCategory(c.Request().Context(), usecase.CreateCategoryInput{
		ID:    req.ID,
		Name:  req.Name,
		Photo: req.Photo,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, cat)
}
