package usecase_test

import (
	"context"
	"fmt"
	"time"

	"goodwill/internal/domain/model"
	repo "goodwill/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// 時刻・ID
// =====================

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type seqIDGen struct{ n int }

func (g *seqIDGen) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// =====================
// Repository モック
// =====================

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmails(ctx context.Context, emails []string) ([]model.User, error) {
	args := m.Called(ctx, emails)
	items, _ := args.Get(0).([]model.User)
	return items, args.Error(1)
}

func (m *UserRepoMock) List(ctx context.Context, role *model.Role) ([]model.User, error) {
	args := m.Called(ctx, role)
	items, _ := args.Get(0).([]model.User)
	return items, args.Error(1)
}

func (m *UserRepoMock) UpdateVerification(ctx context.Context, id string, status model.VerificationStatus) (repo.WriteResult, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(repo.WriteResult), args.Error(1)
}

func (m *UserRepoMock) UpdateWishlist(ctx context.Context, id string, wishlist []string) (repo.WriteResult, error) {
	args := m.Called(ctx, id, wishlist)
	return args.Get(0).(repo.WriteResult), args.Error(1)
}

func (m *UserRepoMock) Delete(ctx context.Context, id string) (repo.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(repo.DeleteResult), args.Error(1)
}

var _ repo.UserRepository = (*UserRepoMock)(nil)

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, f repo.ProductFilter) ([]model.Product, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) UpdateFlags(ctx context.Context, id string, u repo.ProductFlagsUpdate) (repo.WriteResult, error) {
	args := m.Called(ctx, id, u)
	return args.Get(0).(repo.WriteResult), args.Error(1)
}

func (m *ProductRepoMock) UpdateMessage(ctx context.Context, id string, message string, modifyAt time.Time) (repo.WriteResult, error) {
	args := m.Called(ctx, id, message, modifyAt)
	return args.Get(0).(repo.WriteResult), args.Error(1)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id string) (repo.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(repo.DeleteResult), args.Error(1)
}

var _ repo.ProductRepository = (*ProductRepoMock)(nil)

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Category)
	return items, args.Error(1)
}

func (m *CategoryRepoMock) Create(ctx context.Context, c *model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

var _ repo.CategoryRepository = (*CategoryRepoMock)(nil)

type BookingRepoMock struct{ mock.Mock }

func (m *BookingRepoMock) Create(ctx context.Context, b *model.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *BookingRepoMock) ListByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	args := m.Called(ctx, email)
	items, _ := args.Get(0).([]model.Booking)
	return items, args.Error(1)
}

func (m *BookingRepoMock) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*model.Booking)
	return b, args.Error(1)
}

func (m *BookingRepoMock) MarkPaid(ctx context.Context, id string, transactionID string) (repo.WriteResult, error) {
	args := m.Called(ctx, id, transactionID)
	return args.Get(0).(repo.WriteResult), args.Error(1)
}

var _ repo.BookingRepository = (*BookingRepoMock)(nil)

type PaymentRepoMock struct{ mock.Mock }

func (m *PaymentRepoMock) Create(ctx context.Context, p *model.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PaymentRepoMock) List(ctx context.Context) ([]model.Payment, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Payment)
	return items, args.Error(1)
}

func (m *PaymentRepoMock) FindByBookingAndTransaction(ctx context.Context, bookingID string, transactionID string) (*model.Payment, error) {
	args := m.Called(ctx, bookingID, transactionID)
	p, _ := args.Get(0).(*model.Payment)
	return p, args.Error(1)
}

var _ repo.PaymentRepository = (*PaymentRepoMock)(nil)

type AuditRepoMock struct{ mock.Mock }

func (m *AuditRepoMock) Create(ctx context.Context, log model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *AuditRepoMock) List(ctx context.Context, filter repo.AuditLogFilter) ([]model.AuditLog, error) {
	args := m.Called(ctx, filter)
	items, _ := args.Get(0).([]model.AuditLog)
	return items, args.Error(1)
}

var _ repo.AuditLogRepository = (*AuditRepoMock)(nil)

// =====================
// Tx（fnをそのまま実行。エラーならrollback扱い）
// =====================

type fakeTxRepos struct {
	bookings *BookingRepoMock
	payments *PaymentRepoMock
}

func (r fakeTxRepos) Bookings() repo.BookingRepository { return r.bookings }
func (r fakeTxRepos) Payments() repo.PaymentRepository { return r.payments }

type fakeTxManager struct {
	repos      fakeTxRepos
	calls      int
	rolledBack bool
}

func (m *fakeTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.calls++
	if err := fn(m.repos); err != nil {
		m.rolledBack = true
		return err
	}
	return nil
}

// =====================
// 決済サービス
// =====================

type ProcessorMock struct{ mock.Mock }

func (m *ProcessorMock) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	args := m.Called(ctx, amount, currency)
	return args.String(0), args.Error(1)
}
