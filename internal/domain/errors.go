package domain

import "errors"

var (
	ErrEmptyRequest   = errors.New("empty request")
	ErrRequestTooLong = errors.New("request too long")
)

var (
	ErrAssetNotFound  = errors.New("asset not found")
	ErrInvalidDecimal = errors.New("invalid decimal")
)
