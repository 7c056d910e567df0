package domain

import "errors"

// 查無資料類錯誤，Adapter 會將其轉為 404
var ErrNotFound = errors.New("not found")

var (
	ErrWalletNotFound  = notFound("wallet not found")
	ErrCouponNotFound  = notFound("coupon not found")
	ErrProjectNotFound = notFound("project not found")
)

// 業務規則錯誤
var (
	ErrCouponNotOwned       = errors.New("coupon does not belong to user")
	ErrCouponUsed           = errors.New("coupon already used")
	ErrCouponExpired        = errors.New("coupon expired")
	ErrInvalidAmount        = errors.New("amount must be greater than 0")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrProjectNotOpen       = errors.New("project is not open for investment")
	ErrBelowMinInvestment   = errors.New("amount is below the project's minimum investment")
	ErrCouponBelowMinAmount = errors.New("amount is below the coupon's minimum amount")
)

type notFoundError struct{ msg string }

func notFound(msg string) error { return &notFoundError{msg: msg} }

func (e *notFoundError) Error() string { return e.msg }

func (e *notFoundError) Is(target error) bool { return target == ErrNotFound }
