package usecase

import (
	"errors"
	"fmt"
)

var (
	//401 トークンなし
	ErrUnauthenticated = errors.New("unauthorized access")
	//403 トークン不正・期限切れ、権限なし
	ErrForbidden = errors.New("forbidden access")
	//403 未登録emailへのトークン発行
	ErrAuthFailure = errors.New("auth failure")
	//404 支払い対象の予約がない
	ErrBookingNotFound = errors.New("booking not found")
	//502 決済サービスの失敗
	ErrProcessor = errors.New("payment processor error")
	//500
	ErrStore = errors.New("db error")
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// DBエラーはErrStoreで包む（原因は残す）
func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStore, err)
}
