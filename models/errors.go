package models

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrVariantNotFound = errors.New("product variant not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrPriceMismatch   = errors.New("input price and product price do not match")
	ErrInvalidStatus   = errors.New("unrecognized status value")
)
