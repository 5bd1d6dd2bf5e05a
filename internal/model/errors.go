package model

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrInvalidToken    = errors.New("token is invalid")
	ErrTokenRevoked    = errors.New("refresh token revoked")
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
)
