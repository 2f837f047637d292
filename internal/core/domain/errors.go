package domain

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrClientNotFound = errors.New("client not found")
	ErrDuplicateID    = errors.New("client id already exists")
	ErrBedTaken       = errors.New("bed already assigned")
	ErrUnknownBed     = errors.New("unknown bed")
	ErrInvalidTime    = errors.New("invalid time of day")
)
