package repository

import (
	"context"
	"errors"

	"goodwill/internal/domain/model"
)

// email重複（unique違反）
var ErrDuplicateEmail = errors.New("duplicate email")

// 保存・取得を約束
// 見つからない場合は (nil, nil) を返す。
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, id string) (*model.User, error)
	//メールからユーザーを一件取得する。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	//複数メールでまとめて取得（商品一覧の出品者情報用）
	FindByEmails(ctx context.Context, emails []string) ([]model.User, error)
	//一覧。roleがnilなら全件
	List(ctx context.Context, role *model.Role) ([]model.User, error)
	UpdateVerification(ctx context.Context, id string, status model.VerificationStatus) (WriteResult, error)
	UpdateWishlist(ctx context.Context, id string, wishlist []string) (WriteResult, error)
	Delete(ctx context.Context, id string) (DeleteResult, error)
}
