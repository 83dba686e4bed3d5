package handler

import (
	"errors"
	"net/http"

	"goodwill/internal/usecase"

	"github.com/labstack/echo/v4"
)

// GET /jwt
type AuthHandler struct {
	uc *usecase.AuthUsecase
}

// DI
func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/jwt", h.issueToken)
}

func (h *AuthHandler) issueToken(c echo.Context) error {
	out, err := h.uc.IssueToken(c.Request().Context(), c.QueryParam("email"))
	if errors.Is(err, usecase.ErrAuthFailure) {
		//未登録emailはトークンなしで403
		return c.JSON(http.StatusForbidden, usecase.IssueTokenOutput{AccessToken: ""})
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
