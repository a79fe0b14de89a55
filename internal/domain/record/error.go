package record

import (
	"errors"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrConflict     = errors.New("record id already exists")
	ErrInvalidInput = errors.New("invalid record data")
)
