package handler

import (
	"net/http"

	"goodwill/internal/config"
	"goodwill/internal/middleware"
	"goodwill/internal/repository"
	"goodwill/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// 旧クライアントは price で送ってくる
type createIntentRequest struct {
	ItemPrice *decimal.Decimal `json:"itemPrice"`
	Price     *decimal.Decimal `json:"price"`
}

type confirmPaymentRequest struct {
	BookingID     string           `json:"bookingId"`
	TransactionID string           `json:"transactionId"`
	Amount        *decimal.Decimal `json:"amount"`
	Price         *decimal.Decimal `json:"price"`
	Email         string           `json:"email"`
}

// /create-payment-intent と /payments
type PaymentHandler struct {
	uc *usecase.PaymentUsecase
}

func NewPaymentHandler(uc *usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

func (h *PaymentHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	auth := middleware.AuthJWT(cfg)

	e.POST("/create-payment-intent", h.createIntent, auth)
	e.POST("/payments", h.confirm, auth)
	e.GET("/payments", h.list, auth, middleware.AdminRoleGuard(userRepo))
}

func (h *PaymentHandler) createIntent(c echo.Context) error {
	var req createIntentRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	price := req.ItemPrice
	if price == nil {
		price = req.Price
	}
	if price == nil || price.IsNegative() {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid itemPrice"})
	}

	out, err := h.uc.CreateIntent(c.Request().Context(), *price)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentHandler) confirm(c echo.Context) error {
	var req confirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if req.BookingID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "bookingId is required"})
	}

	amount := req.Amount
	if amount == nil {
		amount = req.Price
	}

	p, err := h.uc.ConfirmPayment(c.Request().Context(), usecase.ConfirmPaymentInput{
		BookingID:     req.BookingID,
		TransactionID: req.TransactionID,
		Amount:        amount,
		Email:         req.Email,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PaymentHandler) list(c echo.Context) error {
	items, err := h.uc.ListPayments(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
