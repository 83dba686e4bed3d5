package handler

import (
	"net/http"

	"goodwill/internal/config"
	"goodwill/internal/middleware"
	"goodwill/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type createBookingRequest struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Email       string          `json:"email"`
	BuyerName   string          `json:"buyerName"`
	Phone       string          `json:"phone"`
	Location    string          `json:"location"`
	ItemPrice   decimal.Decimal `json:"itemPrice"`
}

// /bookings（すべてJWT必須）
type BookingHandler struct {
	uc *usecase.BookingUsecase
}

func NewBookingHandler(uc *usecase.BookingUsecase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/bookings", middleware.AuthJWT(cfg))
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.detail)
}

// 予約者はトークンのemail。省略時は補い、違えば403
func (h *BookingHandler) create(c echo.Context) error {
	decoded, ok := getEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "unauthorized access"})
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if req.Email == "" {
		req.Email = decoded
	}
	if req.Email != decoded {
		return c.JSON(http.StatusForbidden, ErrorResponse{Message: "forbidden access"})
	}

	b, err := h.uc.CreateBooking(c.Request().Context(), usecase.CreateBookingInput{
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Email:       req.Email,
		BuyerName:   req.BuyerName,
		Phone:       req.Phone,
		Location:    req.Location,
		ItemPrice:   req.ItemPrice,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// 他人の予約は見せない。emailを省略したらトークンのemail
func (h *BookingHandler) list(c echo.Context) error {
	decoded, ok := getEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "unauthorized access"})
	}

	email := c.QueryParam("email")
	if email == "" {
		email = decoded
	}
	if email != decoded {
		return c.JSON(http.StatusForbidden, ErrorResponse{Message: "forbidden access"})
	}

	items, err := h.uc.ListBookings(c.Request().Context(), email)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *BookingHandler) detail(c echo.Context) error {
	b, err := h.uc.GetBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}
