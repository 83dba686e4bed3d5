package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"goodwill/internal/domain/model"
	"goodwill/internal/infra/db"
	infraRepo "goodwill/internal/infra/repository"
	repo "goodwill/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// テストごとに空のインメモリDBを作る
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	//:memory: は接続ごとに別DBになるので1本に固定
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))
	return gdb
}

var base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// =====================
// User
// =====================

func TestUserGormRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	users := infraRepo.NewUserGormRepository(newTestDB(t))

	u := &model.User{ID: "u1", Name: "A", Email: "a@x.com", Role: model.RoleSeller, Verify: model.VerificationPending, Wishlist: []string{}, CreatedAt: base}
	require.NoError(t, users.Create(ctx, u))

	got, err := users.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, model.RoleSeller, got.Role)

	missing, err := users.FindByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserGormRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	users := infraRepo.NewUserGormRepository(newTestDB(t))

	require.NoError(t, users.Create(ctx, &model.User{ID: "u1", Email: "a@x.com", Role: model.RoleBuyer, CreatedAt: base}))
	err := users.Create(ctx, &model.User{ID: "u2", Email: "a@x.com", Role: model.RoleBuyer, CreatedAt: base})
	assert.ErrorIs(t, err, repo.ErrDuplicateEmail)
}

func TestUserGormRepository_ListByRole(t *testing.T) {
	ctx := context.Background()
	users := infraRepo.NewUserGormRepository(newTestDB(t))

	require.NoError(t, users.Create(ctx, &model.User{ID: "u1", Email: "s@x.com", Role: model.RoleSeller, CreatedAt: base}))
	require.NoError(t, users.Create(ctx, &model.User{ID: "u2", Email: "b@x.com", Role: model.RoleBuyer, CreatedAt: base.Add(time.Minute)}))

	all, err := users.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	seller := model.RoleSeller
	sellers, err := users.List(ctx, &seller)
	require.NoError(t, err)
	require.Len(t, sellers, 1)
	assert.Equal(t, "u1", sellers[0].ID)

	admin := model.RoleAdmin
	none, err := users.List(ctx, &admin)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestUserGormRepository_UpdateVerificationAndDelete(t *testing.T) {
	ctx := context.Background()
	users := infraRepo.NewUserGormRepository(newTestDB(t))

	require.NoError(t, users.Create(ctx, &model.User{ID: "u1", Email: "s@x.com", Role: model.RoleSeller, Verify: model.VerificationPending, CreatedAt: base}))

	res, err := users.UpdateVerification(ctx, "u1", model.VerificationVerified)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)

	got, err := users.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, model.VerificationVerified, got.Verify)

	res, err = users.UpdateVerification(ctx, "nope", model.VerificationVerified)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.MatchedCount)

	del, err := users.Delete(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)

	del, err = users.Delete(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), del.DeletedCount)
}

func TestUserGormRepository_WishlistRoundTrip(t *testing.T) {
	ctx := context.Background()
	users := infraRepo.NewUserGormRepository(newTestDB(t))

	require.NoError(t, users.Create(ctx, &model.User{ID: "u1", Email: "b@x.com", Role: model.RoleBuyer, Wishlist: []string{}, CreatedAt: base}))

	_, err := users.UpdateWishlist(ctx, "u1", []string{"p2", "p1"})
	require.NoError(t, err)

	got, err := users.FindByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"p2", "p1"}, got.Wishlist)

	_, err = users.UpdateWishlist(ctx, "u1", []string{})
	require.NoError(t, err)

	got, err = users.FindByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Empty(t, got.Wishlist)
}

func TestUserGormRepository_FindByEmails(t *testing.T) {
	ctx := context.Background()
	users := infraRepo.NewUserGormRepository(newTestDB(t))

	require.NoError(t, users.Create(ctx, &model.User{ID: "u1", Email: "a@x.com", Role: model.RoleSeller, CreatedAt: base}))
	require.NoError(t, users.Create(ctx, &model.User{ID: "u2", Email: "b@x.com", Role: model.RoleSeller, CreatedAt: base}))

	got, err := users.FindByEmails(ctx, []string{"a@x.com", "ghost@x.com"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "u1", got[0].ID)

	empty, err := users.FindByEmails(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// =====================
// Product
// =====================

func seedProduct(t *testing.T, products *infraRepo.ProductGormRepository, p model.Product) {
	t.Helper()
	require.NoError(t, products.Create(context.Background(), &p))
}

func TestProductGormRepository_ListFilters(t *testing.T) {
	ctx := context.Background()
	products := infraRepo.NewProductGormRepository(newTestDB(t))

	seedProduct(t, products, model.Product{ID: "p1", CreatedBy: "s@x.com", CategoryID: "c1", Price: decimal.NewFromInt(10), CreatedAt: base, ModifyAt: base})
	seedProduct(t, products, model.Product{ID: "p2", CreatedBy: "s@x.com", CategoryID: "c2", AdvertiseEnable: true, CreatedAt: base.Add(time.Minute), ModifyAt: base})
	seedProduct(t, products, model.Product{ID: "p3", CreatedBy: "o@x.com", CategoryID: "c1", AdvertiseEnable: true, Status: model.ProductStatusSold, CreatedAt: base.Add(2 * time.Minute), ModifyAt: base})

	all, err := products.List(ctx, repo.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "p3", all[0].ID)

	byCat, err := products.List(ctx, repo.ProductFilter{CategoryID: "c1"})
	require.NoError(t, err)
	assert.Len(t, byCat, 2)

	mine, err := products.List(ctx, repo.ProductFilter{CreatedBy: "s@x.com"})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	//SOLDは広告に出ない
	ads, err := products.List(ctx, repo.ProductFilter{AdvertiseOnly: true})
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "p2", ads[0].ID)
}

func TestProductGormRepository_PriceRoundTrip(t *testing.T) {
	ctx := context.Background()
	products := infraRepo.NewProductGormRepository(newTestDB(t))

	seedProduct(t, products, model.Product{ID: "p1", CreatedBy: "s@x.com", CategoryID: "c1", Price: decimal.RequireFromString("120.5"), OriginalPrice: decimal.NewFromInt(200), CreatedAt: base, ModifyAt: base})

	got, err := products.FindByID(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("120.5")))
	assert.True(t, got.OriginalPrice.Equal(decimal.NewFromInt(200)))
}

func TestProductGormRepository_UpdateFlags(t *testing.T) {
	ctx := context.Background()
	products := infraRepo.NewProductGormRepository(newTestDB(t))

	seedProduct(t, products, model.Product{ID: "p1", CreatedBy: "s@x.com", CategoryID: "c1", CreatedAt: base, ModifyAt: base})

	on := true
	later := base.Add(time.Hour)
	res, err := products.UpdateFlags(ctx, "p1", repo.ProductFlagsUpdate{AdvertiseEnable: &on, ModifyAt: later})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)

	got, err := products.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, got.AdvertiseEnable)
	assert.Equal(t, model.ProductStatusActive, got.Status)
	assert.True(t, got.ModifyAt.Equal(later))

	res, err = products.UpdateFlags(ctx, "nope", repo.ProductFlagsUpdate{ModifyAt: later})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.MatchedCount)
}

func TestProductGormRepository_UpdateMessageKeepsStatus(t *testing.T) {
	ctx := context.Background()
	products := infraRepo.NewProductGormRepository(newTestDB(t))

	seedProduct(t, products, model.Product{ID: "p1", CreatedBy: "s@x.com", CategoryID: "c1", CreatedAt: base, ModifyAt: base})

	_, err := products.UpdateMessage(ctx, "p1", "sold", base.Add(time.Hour))
	require.NoError(t, err)

	got, err := products.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "sold", got.Message)
	assert.Equal(t, model.ProductStatusActive, got.Status)
}

func TestProductGormRepository_FindByIDsAndDelete(t *testing.T) {
	ctx := context.Background()
	products := infraRepo.NewProductGormRepository(newTestDB(t))

	seedProduct(t, products, model.Product{ID: "p1", CreatedBy: "s@x.com", CategoryID: "c1", CreatedAt: base, ModifyAt: base})
	seedProduct(t, products, model.Product{ID: "p2", CreatedBy: "s@x.com", CategoryID: "c1", CreatedAt: base, ModifyAt: base})

	got, err := products.FindByIDs(ctx, []string{"p1", "p2", "gone"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	del, err := products.Delete(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)

	missing, err := products.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

// =====================
// Category
// =====================

func TestCategoryGormRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	categories := infraRepo.NewCategoryGormRepository(newTestDB(t))

	require.NoError(t, categories.Create(ctx, &model.Category{ID: "c2", Name: "Phones"}))
	require.NoError(t, categories.Create(ctx, &model.Category{ID: "c1", Name: "Laptops"}))

	got, err := categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Laptops", got[0].Name)
}

// =====================
// Booking / Payment / Tx
// =====================

func TestBookingGormRepository_MarkPaid(t *testing.T) {
	ctx := context.Background()
	bookings := infraRepo.NewBookingGormRepository(newTestDB(t))

	require.NoError(t, bookings.Create(ctx, &model.Booking{ID: "b1", ProductID: "p1", Email: "b@x.com", ItemPrice: decimal.NewFromInt(40), CreatedAt: base}))

	res, err := bookings.MarkPaid(ctx, "b1", "tx_1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)

	//2回目も同じ結果
	_, err = bookings.MarkPaid(ctx, "b1", "tx_1")
	require.NoError(t, err)

	got, err := bookings.FindByID(ctx, "b1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Paid)
	require.NotNil(t, got.TransactionID)
	assert.Equal(t, "tx_1", *got.TransactionID)

	list, err := bookings.ListByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestPaymentGormRepository_FindByBookingAndTransaction(t *testing.T) {
	ctx := context.Background()
	payments := infraRepo.NewPaymentGormRepository(newTestDB(t))

	require.NoError(t, payments.Create(ctx, &model.Payment{ID: "pay1", BookingID: "b1", TransactionID: "tx_1", Amount: decimal.NewFromInt(40), CreatedAt: base}))

	got, err := payments.FindByBookingAndTransaction(ctx, "b1", "tx_1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "pay1", got.ID)

	missing, err := payments.FindByBookingAndTransaction(ctx, "b1", "tx_2")
	require.NoError(t, err)
	assert.Nil(t, missing)

	//同じtransactionIdでも別の予約なら該当なし
	other, err := payments.FindByBookingAndTransaction(ctx, "b2", "tx_1")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestTxManagerGorm_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	txm := infraRepo.NewTxManagerGorm(gdb)
	payments := infraRepo.NewPaymentGormRepository(gdb)

	boom := errors.New("boom")
	err := txm.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Payments().Create(ctx, &model.Payment{ID: "pay1", BookingID: "b1", TransactionID: "tx_1", CreatedAt: base}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := payments.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTxManagerGorm_Commit(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	txm := infraRepo.NewTxManagerGorm(gdb)
	bookings := infraRepo.NewBookingGormRepository(gdb)
	payments := infraRepo.NewPaymentGormRepository(gdb)

	require.NoError(t, bookings.Create(ctx, &model.Booking{ID: "b1", Email: "b@x.com", CreatedAt: base}))

	err := txm.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Payments().Create(ctx, &model.Payment{ID: "pay1", BookingID: "b1", TransactionID: "tx_1", CreatedAt: base}); err != nil {
			return err
		}
		_, err := r.Bookings().MarkPaid(ctx, "b1", "tx_1")
		return err
	})
	require.NoError(t, err)

	list, err := payments.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	b, err := bookings.FindByID(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, b.Paid)
}

// =====================
// AuditLog
// =====================

func TestAuditLogGormRepository_Filter(t *testing.T) {
	ctx := context.Background()
	audit := infraRepo.NewAuditLogGormRepository(newTestDB(t))

	require.NoError(t, audit.Create(ctx, model.AuditLog{ActorEmail: "admin@x.com", Action: model.AuditActionDeleteUser, ResourceType: model.AuditResourceUser, ResourceID: "u1", CreatedAt: base}))
	require.NoError(t, audit.Create(ctx, model.AuditLog{ActorEmail: "admin@x.com", Action: model.AuditActionDeleteProduct, ResourceType: model.AuditResourceProduct, ResourceID: "p1", CreatedAt: base.Add(time.Minute)}))
	require.NoError(t, audit.Create(ctx, model.AuditLog{ActorEmail: "s@x.com", Action: model.AuditActionDeleteProduct, ResourceType: model.AuditResourceProduct, ResourceID: "p2", CreatedAt: base.Add(2 * time.Minute)}))

	all, err := audit.List(ctx, repo.AuditLogFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "p2", all[0].ResourceID)

	action := model.AuditActionDeleteProduct
	byAction, err := audit.List(ctx, repo.AuditLogFilter{Action: &action, ActorEmail: "admin@x.com"})
	require.NoError(t, err)
	require.Len(t, byAction, 1)
	assert.Equal(t, "p1", byAction[0].ResourceID)

	paged, err := audit.List(ctx, repo.AuditLogFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, "p1", paged[0].ResourceID)

	//上限で切り詰めない
	wide, err := audit.List(ctx, repo.AuditLogFilter{Limit: 500})
	require.NoError(t, err)
	assert.Len(t, wide, 3)

	none, err := audit.List(ctx, repo.AuditLogFilter{ResourceID: "zzz"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
