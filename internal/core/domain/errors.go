package domain

import "errors"

// Validation failures are sentinel errors so handlers can map each
// kind to a client-facing status with errors.Is.
var (
	ErrMalformedRequest      = errors.New("malformed request")
	ErrInvalidDateRange      = errors.New("valid_until earlier than quote_date")
	ErrProductNotFound       = errors.New("product not found")
	ErrContainerNotFound     = errors.New("container not found")
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrBankNotFound          = errors.New("bank not found")
	ErrInvalidIncoterm       = errors.New("unsupported incoterm")
	ErrInvalidCurrency       = errors.New("unsupported currency")
	ErrBelowMinOrder         = errors.New("quantity below minimum order")
	ErrPriceOutOfRange       = errors.New("unit price outside suggested range")
)
