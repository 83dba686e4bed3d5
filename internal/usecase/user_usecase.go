package usecase

import (
	"context"
	"errors"
	"net/http"

	"goodwill/internal/domain/model"
	repo "goodwill/internal/repository"
)

type UserUsecase struct {
	users     repo.UserRepository
	products  repo.ProductRepository
	auditRepo repo.AuditLogRepository
	idGen     IDGenerator
	clock     Clock
}

// DI
func NewUserUsecase(
	users repo.UserRepository,
	products repo.ProductRepository,
	auditRepo repo.AuditLogRepository,
	idGen IDGenerator,
	clock Clock,
) *UserUsecase {
	return &UserUsecase{
		users:     users,
		products:  products,
		auditRepo: auditRepo,
		idGen:     idGen,
		clock:     clock,
	}
}

// POST /users の入力
type CreateUserInput struct {
	Name     string
	Email    string
	PhotoURL string
	Role     model.Role
}

// CreateUser はemailが未登録のときだけ作る。
// 登録済みなら既存のレコードをそのまま返す。
func (u *UserUsecase) CreateUser(ctx context.Context, in CreateUserInput) (model.User, error) {
	existing, err := u.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return model.User{}, storeErr(err)
	}
	if existing != nil {
		return *existing, nil
	}

	user := &model.User{
		ID:        u.idGen.NewID(),
		Name:      in.Name,
		Email:     in.Email,
		PhotoURL:  in.PhotoURL,
		Role:      in.Role,
		Verify:    model.VerificationPending,
		Wishlist:  []string{},
		CreatedAt: u.clock.Now(),
	}

	if err := u.users.Create(ctx, user); err != nil {
		//同時登録で負けた場合は勝った方を返す
		if errors.Is(err, repo.ErrDuplicateEmail) {
			winner, ferr := u.users.FindByEmail(ctx, in.Email)
			if ferr == nil && winner != nil {
				return *winner, nil
			}
		}
		return model.User{}, storeErr(err)
	}

	return *user, nil
}

// 見つからない場合は nil（エラーではない）
func (u *UserUsecase) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return user, nil
}

// 見つからない場合は nil
func (u *UserUsecase) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, storeErr(err)
	}
	return user, nil
}

func (u *UserUsecase) ListUsers(ctx context.Context, role *model.Role) ([]model.User, error) {
	users, err := u.users.List(ctx, role)
	if err != nil {
		return nil, storeErr(err)
	}
	return users, nil
}

// 認証状態の上書き（管理者操作）
func (u *UserUsecase) SetVerification(ctx context.Context, actorEmail string, id string, status model.VerificationStatus) (repo.WriteResult, error) {
	switch status {
	case model.VerificationPending, model.VerificationVerified, model.VerificationRejected:
	default:
		return repo.WriteResult{}, NewHTTPError(http.StatusBadRequest, "invalid verify")
	}

	//変更前（before）
	before, err := u.users.FindByID(ctx, id)
	if err != nil {
		return repo.WriteResult{}, storeErr(err)
	}
	if before == nil {
		return repo.WriteResult{}, nil
	}

	res, err := u.users.UpdateVerification(ctx, id, status)
	if err != nil {
		return repo.WriteResult{}, storeErr(err)
	}

	if err := writeAudit(ctx, u.auditRepo, u.clock, actorEmail,
		model.AuditActionUpdateVerification, model.AuditResourceUser, id,
		map[string]string{"verify": string(before.Verify)},
		map[string]string{"verify": string(status)},
	); err != nil {
		return repo.WriteResult{}, err
	}

	return res, nil
}

// ユーザー削除（管理者操作）
func (u *UserUsecase) DeleteUser(ctx context.Context, actorEmail string, id string) (repo.DeleteResult, error) {
	before, err := u.users.FindByID(ctx, id)
	if err != nil {
		return repo.DeleteResult{}, storeErr(err)
	}
	if before == nil {
		return repo.DeleteResult{}, nil
	}

	res, err := u.users.Delete(ctx, id)
	if err != nil {
		return repo.DeleteResult{}, storeErr(err)
	}

	if err := writeAudit(ctx, u.auditRepo, u.clock, actorEmail,
		model.AuditActionDeleteUser, model.AuditResourceUser, id,
		before, nil,
	); err != nil {
		return repo.DeleteResult{}, err
	}

	return res, nil
}

// userCategoryがroleと一致するか。未登録ならfalse
func (u *UserUsecase) RoleCheck(ctx context.Context, email string, role model.Role) (bool, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return false, storeErr(err)
	}
	if user == nil {
		return false, nil
	}
	return user.Role == role, nil
}

// お気に入りの商品一覧（登録順。削除済み商品は出さない）
func (u *UserUsecase) GetWishlist(ctx context.Context, email string) ([]model.Product, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, storeErr(err)
	}
	if user == nil || len(user.Wishlist) == 0 {
		return []model.Product{}, nil
	}

	products, err := u.products.FindByIDs(ctx, user.Wishlist)
	if err != nil {
		return nil, storeErr(err)
	}

	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	out := make([]model.Product, 0, len(products))
	for _, id := range user.Wishlist {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// お気に入りに追加（既にあれば何もしない）
func (u *UserUsecase) AddToWishlist(ctx context.Context, email string, productID string) (repo.WriteResult, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return repo.WriteResult{}, storeErr(err)
	}
	if user == nil {
		return repo.WriteResult{}, nil
	}

	for _, id := range user.Wishlist {
		if id == productID {
			return repo.WriteResult{MatchedCount: 1}, nil
		}
	}

	next := append(append([]string{}, user.Wishlist...), productID)
	res, err := u.users.UpdateWishlist(ctx, user.ID, next)
	if err != nil {
		return repo.WriteResult{}, storeErr(err)
	}
	return res, nil
}

// お気に入りから外す（なければ何もしない）
func (u *UserUsecase) RemoveFromWishlist(ctx context.Context, email string, productID string) (repo.WriteResult, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return repo.WriteResult{}, storeErr(err)
	}
	if user == nil {
		return repo.WriteResult{}, nil
	}

	next := make([]string, 0, len(user.Wishlist))
	for _, id := range user.Wishlist {
		if id != productID {
			next = append(next, id)
		}
	}
	if len(next) == len(user.Wishlist) {
		return repo.WriteResult{MatchedCount: 1}, nil
	}

	res, err := u.users.UpdateWishlist(ctx, user.ID, next)
	if err != nil {
		return repo.WriteResult{}, storeErr(err)
	}
	return res, nil
}
