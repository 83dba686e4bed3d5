package server

import (
	"log/slog"
	"net/http"

	"goodwill/internal/config"
	"goodwill/internal/handler"
	infraRepo "goodwill/internal/infra/repository"
	"goodwill/internal/repository"
	"goodwill/internal/usecase"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Handlers はルート登録に使うhandler一式
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Category *handler.CategoryHandler
	Product  *handler.ProductHandler
	Booking  *handler.BookingHandler
	Payment  *handler.PaymentHandler
	AuditLog *handler.AuditLogHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository, h Handlers) {
	//生存確認
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "goodwill store is running")
	})

	h.Auth.RegisterRoutes(e)
	h.User.RegisterRoutes(e, cfg, userRepo)
	h.Category.RegisterRoutes(e, cfg, userRepo)
	h.Product.RegisterRoutes(e, cfg)
	h.Booking.RegisterRoutes(e, cfg)
	h.Payment.RegisterRoutes(e, cfg, userRepo)
	h.AuditLog.RegisterRoutes(e, cfg, userRepo)
}

// Build はRepository→Usecase→Handlerを組み立て、ルート登録済みのechoを返す。
// processorがnilなら決済インテントは502になる
func Build(
	cfg config.Config,
	gormDB *gorm.DB,
	processor usecase.PaymentProcessor,
	idGen usecase.IDGenerator,
	clock usecase.Clock,
	log *slog.Logger,
) *echo.Echo {
	//Repository（GORM実装）
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	bookingRepo := infraRepo.NewBookingGormRepository(gormDB)
	paymentRepo := infraRepo.NewPaymentGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase
	authUC := usecase.NewAuthUsecase(userRepo, cfg.JWTSecret, cfg.TokenTTL, clock)
	userUC := usecase.NewUserUsecase(userRepo, productRepo, auditRepo, idGen, clock)
	catalogUC := usecase.NewCatalogUsecase(categoryRepo, productRepo, userRepo, auditRepo, idGen, clock, log)
	bookingUC := usecase.NewBookingUsecase(bookingRepo, idGen, clock)
	paymentUC := usecase.NewPaymentUsecase(txm, paymentRepo, processor, idGen, clock)
	auditUC := usecase.NewAuditLogUsecase(auditRepo)

	e := New(cfg, log)
	RegisterRoutes(e, cfg, userRepo, Handlers{
		Auth:     handler.NewAuthHandler(authUC),
		User:     handler.NewUserHandler(userUC),
		Category: handler.NewCategoryHandler(catalogUC),
		Product:  handler.NewProductHandler(catalogUC),
		Booking:  handler.NewBookingHandler(bookingUC),
		Payment:  handler.NewPaymentHandler(paymentUC),
		AuditLog: handler.NewAuditLogHandler(auditUC),
	})
	return e
}
