package middleware

import (
	"net/http"

	"goodwill/internal/domain/model"
	"goodwill/internal/repository"

	"github.com/labstack/echo/v4"
)

//AuthJWTが入れたemailのユーザーがadminかどうかを確認します。
//roleはトークンに入れず毎回DBを見る

func AdminRoleGuard(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, ok := c.Get(CtxUserEmailKey).(string)
			if !ok || email == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized access"))
			}

			user, err := users.FindByEmail(c.Request().Context(), email)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, errorJSON("db error"))
			}

			//admin以外は拒否
			if user == nil || user.Role != model.RoleAdmin {
				return c.JSON(http.StatusForbidden, errorJSON("forbidden access"))
			}

			return next(c)
		}
	}
}
