package domain

import "errors"

var (
	ErrLessonNotFound = errors.New("lesson not found")
)

var (
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidFormat = errors.New("invalid field format")
	ErrInvalidItem   = errors.New("invalid order item")
)

var (
	ErrEmptyUpdate  = errors.New("update contains no fields")
	ErrInvalidField = errors.New("invalid field value")
)

var (
	ErrBadPattern = errors.New("invalid search pattern")
)
