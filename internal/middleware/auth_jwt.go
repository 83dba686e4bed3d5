package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"goodwill/internal/config"
	"goodwill/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	CtxUserEmailKey = "email" // string
)

// bearerAuth用のJWT検証ミドルウェア。
// トークンなし => 401、不正・期限切れ => 403
func AuthJWT(cfg config.Config) echo.MiddlewareFunc {
	secret := []byte(cfg.JWTSecret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Authorizationヘッダを取得
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized access"))
			}

			//Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized access"))
			}

			claims, err := usecase.VerifyToken(strings.TrimSpace(parts[1]), secret, time.Now())
			if errors.Is(err, usecase.ErrUnauthenticated) {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized access"))
			}
			if err != nil {
				return c.JSON(http.StatusForbidden, errorJSON("forbidden access"))
			}

			//contextへ保存
			c.Set(CtxUserEmailKey, claims.Email)

			return next(c)
		}
	}
}

type errorResponse struct {
	Message string `json:"message"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Message: msg}
}
