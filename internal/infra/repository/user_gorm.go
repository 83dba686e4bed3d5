package repository

import (
	"context"
	"errors"

	"goodwill/internal/domain/model"
	domainrepo "goodwill/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// postgresのunique_violation
const pgUniqueViolation = "23505"

type userGormRepository struct {
	db *gorm.DB
}

// DI
// main.goでこれをnewしてusecaseに注入します。
func NewUserGormRepository(db *gorm.DB) domainrepo.UserRepository {
	return &userGormRepository{db: db}
}

// Create はユーザーを新規作成
func (r *userGormRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return domainrepo.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// emailでユーザーを1件取得
func (r *userGormRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &u, nil
}

// IDでユーザーを1件取得
func (r *userGormRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &u, nil
}

func (r *userGormRepository) FindByEmails(ctx context.Context, emails []string) ([]model.User, error) {
	users := []model.User{}
	if len(emails) == 0 {
		return users, nil
	}
	if err := r.db.WithContext(ctx).Where("email IN ?", emails).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userGormRepository) List(ctx context.Context, role *model.Role) ([]model.User, error) {
	q := r.db.WithContext(ctx).Model(&model.User{})
	if role != nil {
		q = q.Where("role = ?", *role)
	}

	users := []model.User{}
	if err := q.Order("created_at asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// 認証状態を上書き
func (r *userGormRepository) UpdateVerification(ctx context.Context, id string, status model.VerificationStatus) (domainrepo.WriteResult, error) {
	res := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("verify", status)
	if res.Error != nil {
		return domainrepo.WriteResult{}, res.Error
	}
	return writeResult(res.RowsAffected), nil
}

func (r *userGormRepository) UpdateWishlist(ctx context.Context, id string, wishlist []string) (domainrepo.WriteResult, error) {
	// serializer:json を通すためstructで更新する
	res := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Select("wishlist").
		Updates(&model.User{Wishlist: wishlist})
	if res.Error != nil {
		return domainrepo.WriteResult{}, res.Error
	}
	return writeResult(res.RowsAffected), nil
}

// 物理削除
func (r *userGormRepository) Delete(ctx context.Context, id string) (domainrepo.DeleteResult, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{})
	if res.Error != nil {
		return domainrepo.DeleteResult{}, res.Error
	}
	return domainrepo.DeleteResult{DeletedCount: res.RowsAffected}, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func writeResult(n int64) domainrepo.WriteResult {
	return domainrepo.WriteResult{MatchedCount: n, ModifiedCount: n}
}
