package usecase

import (
	"context"

	"goodwill/internal/domain/model"
	repo "goodwill/internal/repository"

	"github.com/shopspring/decimal"
)

type BookingUsecase struct {
	bookings repo.BookingRepository
	idGen    IDGenerator
	clock    Clock
}

func NewBookingUsecase(bookings repo.BookingRepository, idGen IDGenerator, clock Clock) *BookingUsecase {
	return &BookingUsecase{bookings: bookings, idGen: idGen, clock: clock}
}

type CreateBookingInput struct {
	ProductID   string
	ProductName string
	Email       string
	BuyerName   string
	Phone       string
	Location    string
	ItemPrice   decimal.Decimal
}

// 商品の状態はチェックしない。paidは支払い確定でのみtrueになる
func (u *BookingUsecase) CreateBooking(ctx context.Context, in CreateBookingInput) (model.Booking, error) {
	b := model.Booking{
		ID:            u.idGen.NewID(),
		ProductID:     in.ProductID,
		ProductName:   in.ProductName,
		Email:         in.Email,
		BuyerName:     in.BuyerName,
		Phone:         in.Phone,
		Location:      in.Location,
		ItemPrice:     in.ItemPrice,
		Paid:          false,
		TransactionID: nil,
		CreatedAt:     u.clock.Now(),
	}
	if err := u.bookings.Create(ctx, &b); err != nil {
		return model.Booking{}, storeErr(err)
	}
	return b, nil
}

func (u *BookingUsecase) ListBookings(ctx context.Context, buyerEmail string) ([]model.Booking, error) {
	items, err := u.bookings.ListByEmail(ctx, buyerEmail)
	if err != nil {
		return nil, storeErr(err)
	}
	return items, nil
}

// 見つからない場合は nil
func (u *BookingUsecase) GetBooking(ctx context.Context, id string) (*model.Booking, error) {
	b, err := u.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return b, nil
}
