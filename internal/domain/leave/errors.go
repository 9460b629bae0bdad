package leave

import "errors"

var (
	ErrRequestNotFound     = errors.New("leave: request not found")
	ErrRequestNotPending   = errors.New("leave: request already resolved")
	ErrInsufficientBalance = errors.New("leave: not enough vacation days available")
	ErrOverlappingRequest  = errors.New("leave: dates overlap an existing request")
)
