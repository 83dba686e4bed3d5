package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// アクセストークンのclaims（emailだけを持つ）
type TokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SignToken はemailを入れたHS256のJWTを作る
func SignToken(email string, secret []byte, now time.Time, ttl time.Duration) (string, time.Time, error) {
	expiresAt := now.Add(ttl)

	claims := TokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// VerifyToken は署名と期限を確認する。時刻は引数で受け取る。
// 空 => ErrUnauthenticated、それ以外の失敗 => ErrForbidden
func VerifyToken(raw string, secret []byte, now time.Time) (TokenClaims, error) {
	if strings.TrimSpace(raw) == "" {
		return TokenClaims{}, ErrUnauthenticated
	}

	//期限はnowで自前チェックする
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	var claims TokenClaims
	_, err := parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %v", ErrForbidden, err)
	}

	if !claims.VerifyExpiresAt(now, true) {
		return TokenClaims{}, fmt.Errorf("%w: token expired", ErrForbidden)
	}
	if claims.Email == "" {
		return TokenClaims{}, fmt.Errorf("%w: email claim missing", ErrForbidden)
	}

	return claims, nil
}
