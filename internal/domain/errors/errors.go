package errors

import "errors"

var (
	ErrAlreadyExists            = errors.New("already exists")
	ErrNotFound                 = errors.New("not found")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrInvalidAmount            = errors.New("invalid amount")
	ErrInvalidOrderNumber       = errors.New("invalid order number")
	ErrInvalidStatus            = errors.New("invalid order status")
	ErrIncompleteRecord         = errors.New("incomplete record")
	ErrNothingToCollect         = errors.New("nothing to collect")
	ErrMissingNotificationField = errors.New("missing notification field")
	ErrConflict                 = errors.New("order modified concurrently")
)
