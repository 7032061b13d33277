package console

import "errors"

var (
	ErrEmptyUtterance = errors.New("nothing to ask")
	ErrUnknownFormat  = errors.New("unknown batch format")
)
