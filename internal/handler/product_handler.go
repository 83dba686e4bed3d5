package handler

import (
	"net/http"

	"goodwill/internal/config"
	"goodwill/internal/domain/model"
	"goodwill/internal/middleware"
	"goodwill/internal/repository"
	"goodwill/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// POST /products のリクエスト。status/advertiseEnable は受け取っても無視する
type createProductRequest struct {
	Name          string          `json:"name"`
	Image         string          `json:"image"`
	CreatedBy     string          `json:"createdBy"`
	CategoryID    string          `json:"categoryId"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	Condition     string          `json:"condition"`
	Location      string          `json:"location"`
	Phone         string          `json:"phone"`
	YearsOfUse    string          `json:"yearsOfUse"`
	Description   string          `json:"description"`
}

// PUT /products/:id のリクエスト
type soldStatusRequest struct {
	SoldStatus string `json:"soldStatus"`
}

// /products と /my-products
type ProductHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewProductHandler(uc *usecase.CatalogUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.GET("/products", h.list)
	e.GET("/products/advertise", h.advertised)
	e.GET("/products/category/:id", h.byCategory)
	e.GET("/products/:id", h.detail)
	e.POST("/products", h.create)
	e.PUT("/products/:id", h.markSold)

	e.GET("/my-products", h.mine)
	e.PUT("/my-products/:id", h.updateFlags)
	e.DELETE("/my-products/:id", h.delete, middleware.AuthJWT(cfg))
}

func (h *ProductHandler) list(c echo.Context) error {
	return h.listWith(c, repository.ProductFilter{})
}

func (h *ProductHandler) advertised(c echo.Context) error {
	return h.listWith(c, repository.ProductFilter{AdvertiseOnly: true})
}

// 出品者emailで絞り込む（emailなしは空配列）
func (h *ProductHandler) mine(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusOK, []model.Product{})
	}
	return h.listWith(c, repository.ProductFilter{CreatedBy: email})
}

func (h *ProductHandler) listWith(c echo.Context, f repository.ProductFilter) error {
	items, err := h.uc.ListProducts(c.Request().Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) byCategory(c echo.Context) error {
	items, err := h.uc.ListProductsByCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) detail(c echo.Context) error {
	p, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:          req.Name,
		Image:         req.Image,
		CreatedBy:     req.CreatedBy,
		CategoryID:    req.CategoryID,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Condition:     req.Condition,
		Location:      req.Location,
		Phone:         req.Phone,
		YearsOfUse:    req.YearsOfUse,
		Description:   req.Description,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// ?status=SOLD&advertiseEnable=true。渡されたものだけ更新する
func (h *ProductHandler) updateFlags(c echo.Context) error {
	qp := c.QueryParams()

	var in usecase.UpdateProductFlagsInput
	if qp.Has("status") {
		s := model.ProductStatus(qp.Get("status"))
		in.Status = &s
	}
	if qp.Has("advertiseEnable") {
		//"true" 以外はfalse
		on := qp.Get("advertiseEnable") == "true"
		in.AdvertiseEnable = &on
	}

	res, err := h.uc.UpdateProductFlags(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *ProductHandler) markSold(c echo.Context) error {
	var req soldStatusRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	res, err := h.uc.MarkSoldStatus(c.Request().Context(), c.Param("id"), req.SoldStatus)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *ProductHandler) delete(c echo.Context) error {
	actor, ok := getEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "unauthorized access"})
	}

	res, err := h.uc.DeleteProduct(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
