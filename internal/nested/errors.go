package nested

import "errors"

var (
	ErrSectionOutOfRange = errors.New("section out of range")
	ErrItemOutOfRange    = errors.New("item out of range")
	ErrDuplicateIndex    = errors.New("duplicate index")
	ErrCountMismatch     = errors.New("data source count does not match update")
)
