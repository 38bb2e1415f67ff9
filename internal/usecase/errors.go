package usecase

import "errors"

var (
	// ErrEmptyCart rejects a checkout or preview with no items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidItem rejects a malformed cart entry (missing price id or
	// non-positive quantity).
	ErrInvalidItem = errors.New("invalid cart item")

	// ErrGateway wraps provider-side session failures. Handlers map it to a
	// generic 500; the underlying detail stays in the server log.
	ErrGateway = errors.New("checkout provider unavailable")
)
