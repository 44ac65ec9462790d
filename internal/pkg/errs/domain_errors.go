package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Cart mutation rejections
	ErrOutOfStock       = errors.New("item is out of stock")
	ErrStockLimit       = errors.New("stock limit reached")
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrLineIDConflict   = errors.New("line id already used by another product")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrStorageOperationFailed = errors.New("storage operation failed")
	ErrSnapshotUnreadable     = errors.New("cart snapshot unreadable")
)
