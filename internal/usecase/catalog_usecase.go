package usecase

import (
	"context"
	"log/slog"

	"goodwill/internal/domain/model"
	repo "goodwill/internal/repository"

	"github.com/shopspring/decimal"
)

// カテゴリと商品
type CatalogUsecase struct {
	categories repo.CategoryRepository
	products   repo.ProductRepository
	users      repo.UserRepository
	auditRepo  repo.AuditLogRepository
	idGen      IDGenerator
	clock      Clock
	log        *slog.Logger
}

// DI
func NewCatalogUsecase(
	categories repo.CategoryRepository,
	products repo.ProductRepository,
	users repo.UserRepository,
	auditRepo repo.AuditLogRepository,
	idGen IDGenerator,
	clock Clock,
	log *slog.Logger,
) *CatalogUsecase {
	return &CatalogUsecase{
		categories: categories,
		products:   products,
		users:      users,
		auditRepo:  auditRepo,
		idGen:      idGen,
		clock:      clock,
		log:        log,
	}
}

func (u *CatalogUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	items, err := u.categories.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return items, nil
}

type CreateCategoryInput struct {
	ID    string
	Name  string
	Photo string
}

// IDが指定されていなければ採番する
func (u *CatalogUsecase) CreateCategory(ctx context.Context, in CreateCategoryInput) (model.Category, error) {
	c := model.Category{
		ID:    in.ID,
		Name:  in.Name,
		Photo: in.Photo,
	}
	if c.ID == "" {
		c.ID = u.idGen.NewID()
	}
	if err := u.categories.Create(ctx, &c); err != nil {
		return model.Category{}, storeErr(err)
	}
	return c, nil
}

func (u *CatalogUsecase) ListProducts(ctx context.Context, f repo.ProductFilter) ([]model.Product, error) {
	items, err := u.products.List(ctx, f)
	if err != nil {
		return nil, storeErr(err)
	}
	return items, nil
}

// カテゴリ別一覧 + 出品者情報
type ProductWithSeller struct {
	model.Product
	UserInfo []model.User `json:"user_info"`
}

// 出品者の取得に失敗しても商品は返す（user_infoは空）
func (u *CatalogUsecase) ListProductsByCategory(ctx context.Context, categoryID string) ([]ProductWithSeller, error) {
	products, err := u.products.List(ctx, repo.ProductFilter{CategoryID: categoryID})
	if err != nil {
		return nil, storeErr(err)
	}

	emails := make([]string, 0, len(products))
	seen := map[string]struct{}{}
	for _, p := range products {
		if _, ok := seen[p.CreatedBy]; ok {
			continue
		}
		seen[p.CreatedBy] = struct{}{}
		emails = append(emails, p.CreatedBy)
	}

	owners := map[string]model.User{}
	users, err := u.users.FindByEmails(ctx, emails)
	if err != nil {
		u.log.Warn("seller lookup failed", "category_id", categoryID, "error", err)
	}
	for _, usr := range users {
		owners[usr.Email] = usr
	}

	out := make([]ProductWithSeller, 0, len(products))
	for _, p := range products {
		info := []model.User{}
		if owner, ok := owners[p.CreatedBy]; ok {
			info = append(info, owner)
		}
		out = append(out, ProductWithSeller{Product: p, UserInfo: info})
	}
	return out, nil
}

// 見つからない場合は nil
func (u *CatalogUsecase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := u.products.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return p, nil
}

// POST /products の入力。status/advertiseEnable は受け取らない
type CreateProductInput struct {
	Name          string
	Image         string
	CreatedBy     string
	CategoryID    string
	Price         decimal.Decimal
	OriginalPrice decimal.Decimal
	Condition     string
	Location      string
	Phone         string
	YearsOfUse    string
	Description   string
}

// 新規出品は必ず「販売中・広告なし」
func (u *CatalogUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (model.Product, error) {
	now := u.clock.Now()
	p := model.Product{
		ID:              u.idGen.NewID(),
		Name:            in.Name,
		Image:           in.Image,
		CreatedBy:       in.CreatedBy,
		CategoryID:      in.CategoryID,
		Price:           in.Price,
		OriginalPrice:   in.OriginalPrice,
		Condition:       in.Condition,
		Location:        in.Location,
		Phone:           in.Phone,
		YearsOfUse:      in.YearsOfUse,
		Description:     in.Description,
		Status:          model.ProductStatusActive,
		AdvertiseEnable: false,
		CreatedAt:       now,
		ModifyAt:        now,
	}

	if err := u.products.Create(ctx, &p); err != nil {
		return model.Product{}, storeErr(err)
	}
	return p, nil
}

// PUT /my-products/:id の入力。nilは変更しない
type UpdateProductFlagsInput struct {
	Status          *model.ProductStatus
	AdvertiseEnable *bool
}

// SOLDにするときはadvertiseEnableを必ずfalseにする
func (u *CatalogUsecase) UpdateProductFlags(ctx context.Context, id string, in UpdateProductFlagsInput) (repo.WriteResult, error) {
	upd := repo.ProductFlagsUpdate{
		Status:          in.Status,
		AdvertiseEnable: in.AdvertiseEnable,
		ModifyAt:        u.clock.Now(),
	}
	if in.Status != nil && *in.Status == model.ProductStatusSold {
		off := false
		upd.AdvertiseEnable = &off
	}

	res, err := u.products.UpdateFlags(ctx, id, upd)
	if err != nil {
		return repo.WriteResult{}, storeErr(err)
	}
	return res, nil
}

// 売約メッセージだけ更新（statusは変えない）
func (u *CatalogUsecase) MarkSoldStatus(ctx context.Context, id string, message string) (repo.WriteResult, error) {
	res, err := u.products.UpdateMessage(ctx, id, message, u.clock.Now())
	if err != nil {
		return repo.WriteResult{}, storeErr(err)
	}
	return res, nil
}

// 出品者本人か管理者だけ削除できる
func (u *CatalogUsecase) DeleteProduct(ctx context.Context, actorEmail string, id string) (repo.DeleteResult, error) {
	p, err := u.products.FindByID(ctx, id)
	if err != nil {
		return repo.DeleteResult{}, storeErr(err)
	}
	if p == nil {
		return repo.DeleteResult{}, nil
	}

	if p.CreatedBy != actorEmail {
		actor, err := u.users.FindByEmail(ctx, actorEmail)
		if err != nil {
			return repo.DeleteResult{}, storeErr(err)
		}
		if actor == nil || actor.Role != model.RoleAdmin {
			return repo.DeleteResult{}, ErrForbidden
		}
	}

	res, err := u.products.Delete(ctx, id)
	if err != nil {
		return repo.DeleteResult{}, storeErr(err)
	}

	if err := writeAudit(ctx, u.auditRepo, u.clock, actorEmail,
		model.AuditActionDeleteProduct, model.AuditResourceProduct, id,
		p, nil,
	); err != nil {
		return repo.DeleteResult{}, err
	}

	return res, nil
}
