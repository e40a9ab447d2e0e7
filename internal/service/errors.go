package service

import "errors"

// ErrInvalidInput marks request parameters the service rejects
var ErrInvalidInput = errors.New("invalid input")
