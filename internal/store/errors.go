package store

import "errors"

var (
	ErrNotFound          = errors.New("record not found")
	ErrInvalidID         = errors.New("invalid id")
	ErrDuplicateUsername = errors.New("username already taken")
)
