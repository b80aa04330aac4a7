package todo

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("todo not found")
	ErrInvalidData = errors.New("invalid todo data")
	ErrNameTooLong = fmt.Errorf("%w: name too long", ErrInvalidData)
)
