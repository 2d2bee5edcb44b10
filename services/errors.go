package services

import "errors"

// domain errors the controllers map onto HTTP statuses
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrProductUnavail   = errors.New("product is not available")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrAddressNotFound  = errors.New("address not found")
	ErrForbidden        = errors.New("forbidden")

	ErrEmptyOrder       = errors.New("order has no items")
	ErrTotalMismatch    = errors.New("submitted total does not match computed total")
	ErrOrderNumberTaken = errors.New("order number already taken")

	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrOrderNotCancellable = errors.New("order cannot be cancelled at this stage")
	ErrAlreadyPaid         = errors.New("order already paid")

	ErrRegistrationClosed = errors.New("registration is currently disabled")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// PromoRejectedMessage is the only promo failure text shown to clients,
// regardless of which constraint failed.
const PromoRejectedMessage = "Invalid or expired promo code"

// promo rejection reasons — internal, for logs and tests
var (
	ErrPromoNotFound     = errors.New("promo code not found")
	ErrPromoInactive     = errors.New("promo code inactive")
	ErrPromoExpired      = errors.New("promo code expired")
	ErrPromoExhausted    = errors.New("promo usage limit reached")
	ErrPromoBelowMinimum = errors.New("subtotal below promo minimum")
)

// IsPromoRejection reports whether err is any promo eligibility failure.
func IsPromoRejection(err error) bool {
	return errors.Is(err, ErrPromoNotFound) ||
		errors.Is(err, ErrPromoInactive) ||
		errors.Is(err, ErrPromoExpired) ||
		errors.Is(err, ErrPromoExhausted) ||
		errors.Is(err, ErrPromoBelowMinimum)
}
