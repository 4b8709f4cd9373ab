package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// User repository sentinels.
	ErrUserNotFound    = errors.New("user not found")
	ErrUserEmailExists = errors.New("user email already exists")

	// Role repository sentinels.
	ErrRoleNotFound = errors.New("role not found")

	// Address repository sentinels.
	ErrAddressNotFound = errors.New("address not found")

	// Category repository sentinels.
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryNameExists = errors.New("category name already exists")

	// Product repository sentinels.
	ErrProductNotFound    = errors.New("product not found")
	ErrInsufficientStock  = errors.New("insufficient stock")

	// Cart repository sentinels.
	ErrCartItemNotFound = errors.New("cart item not found")

	// Order repository sentinels.
	ErrOrderNotFound = errors.New("order not found")
)
