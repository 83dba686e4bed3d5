package usecase

import (
	"context"
	"time"

	"goodwill/internal/repository"
)

type IssueTokenOutput struct {
	AccessToken string `json:"accessToken"`
}

// /jwt のトークン発行
type AuthUsecase struct {
	users  repository.UserRepository
	secret []byte
	ttl    time.Duration
	clock  Clock
}

func NewAuthUsecase(users repository.UserRepository, secret string, ttl time.Duration, clock Clock) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clock,
	}
}

// 登録済みemailにだけトークンを出す
func (u *AuthUsecase) IssueToken(ctx context.Context, email string) (IssueTokenOutput, error) {
	if email == "" {
		return IssueTokenOutput{}, ErrAuthFailure
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return IssueTokenOutput{}, storeErr(err)
	}
	if user == nil {
		return IssueTokenOutput{}, ErrAuthFailure
	}

	token, _, err := SignToken(user.Email, u.secret, u.clock.Now(), u.ttl)
	if err != nil {
		return IssueTokenOutput{}, err
	}
	return IssueTokenOutput{AccessToken: token}, nil
}
