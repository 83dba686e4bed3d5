package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"goodwill/internal/middleware"
	"goodwill/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Message: he.Message})
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "unauthorized access"})
	case errors.Is(err, usecase.ErrForbidden), errors.Is(err, usecase.ErrAuthFailure):
		return c.JSON(http.StatusForbidden, ErrorResponse{Message: "forbidden access"})
	case errors.Is(err, usecase.ErrBookingNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "booking not found"})
	case errors.Is(err, usecase.ErrProcessor):
		logServerError(c, err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{Message: "payment processor error"})
	case errors.Is(err, usecase.ErrStore):
		logServerError(c, err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "db error"})
	}

	//500
	logServerError(c, err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal error"})
}

func logServerError(c echo.Context, err error) {
	slog.ErrorContext(c.Request().Context(), "request failed",
		"method", c.Request().Method,
		"path", c.Path(),
		"error", err,
	)
}

func badBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
}

//middleware.AuthJWT が c.Set("email", string) した値を取り出す

func getEmailFromContext(c echo.Context) (string, bool) {
	v := c.Get(middleware.CtxUserEmailKey)
	if v == nil {
		return "", false
	}

	email, ok := v.(string)
	if !ok || email == "" {
		return "", false
	}

	return email, true
}
