package handler

import (
	"net/http"
	"strings"

	"goodwill/internal/config"
	"goodwill/internal/domain/model"
	"goodwill/internal/middleware"
	"goodwill/internal/repository"
	"goodwill/internal/usecase"

	"github.com/labstack/echo/v4"
)

// POST /users のリクエスト
type createUserRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PhotoURL     string `json:"photoURL"`
	UserCategory string `json:"userCategory"`
}

// PATCH /users/:id のリクエスト
type verifyRequest struct {
	Verify string `json:"verify"`
}

// /users と /wishlist
type UserHandler struct {
	uc *usecase.UserUsecase
}

// DI
func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	e.GET("/users", h.list)
	e.GET("/users/:id", h.detail)
	e.GET("/users/email/:email", h.byEmail)
	e.POST("/users", h.create)

	//role判定（未登録はfalse）
	e.GET("/users/admin/:email", h.roleCheck(model.RoleAdmin, "isAdmin"))
	e.GET("/users/buyer/:email", h.roleCheck(model.RoleBuyer, "isBuyer"))
	e.GET("/users/seller/:email", h.roleCheck(model.RoleSeller, "isSeller"))

	//管理者だけ
	adminOnly := []echo.MiddlewareFunc{middleware.AuthJWT(cfg), middleware.AdminRoleGuard(userRepo)}
	e.PATCH("/users/:id", h.setVerification, adminOnly...)
	e.DELETE("/users/:id", h.delete, adminOnly...)

	//お気に入り（トークンのemailを使う）
	wishlist := e.Group("/wishlist", middleware.AuthJWT(cfg))
	wishlist.GET("", h.wishlist)
	wishlist.PUT("/:productId", h.addToWishlist)
	wishlist.DELETE("/:productId", h.removeFromWishlist)
}

// userCategory は大文字小文字を区別しない（"Seller" も可）
func parseRole(v string) model.Role {
	return model.Role(strings.ToLower(strings.TrimSpace(v)))
}

func (h *UserHandler) list(c echo.Context) error {
	var role *model.Role
	if v := c.QueryParam("userCategory"); v != "" {
		r := parseRole(v)
		role = &r
	}

	users, err := h.uc.ListUsers(c.Request().Context(), role)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) detail(c echo.Context) error {
	user, err := h.uc.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	//見つからなければ null
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) byEmail(c echo.Context) error {
	user, err := h.uc.GetUserByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	user, err := h.uc.CreateUser(c.Request().Context(), usecase.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
		Role:     parseRole(req.UserCategory),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) setVerification(c echo.Context) error {
	var req verifyRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	actor, ok := getEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "unauthorized access"})
	}

	res, err := h.uc.SetVerification(c.Request().Context(), actor, c.Param("id"), model.VerificationStatus(req.Verify))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *UserHandler) delete(c echo.Context) error {
	actor, ok := getEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "unauthorized access"})
	}

	res, err := h.uc.DeleteUser(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *UserHandler) roleCheck(role model.Role, key string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ok, err := h.uc.RoleCheck(c.Request().Context(), c.Param("email"), role)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]bool{key: ok})
	}
}

func (h *UserHandler) wishlist(c echo.Context) error {
	email, ok := getEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "unauthorized access"})
	}

	items, err := h.uc.GetWishlist(c.Request().Context(), email)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *UserHandler) addToWishlist(c echo.Context) error {
	email, ok := getEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "unauthorized access"})
	}

	res, err := h.uc.AddToWishlist(c.Request().Context(), email, c.Param("productId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *UserHandler) removeFromWishlist(c echo.Context) error {
	email, ok := getEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "unauthorized access"})
	}

	res, err := h.uc.RemoveFromWishlist(c.Request().Context(), email, c.Param("productId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
