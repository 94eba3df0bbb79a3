package segmented

import "errors"

var (
	// ErrInvalidArgument is returned when titles or appearance values are unusable.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfRange is returned when selecting an index with no item.
	ErrIndexOutOfRange = errors.New("index out of range")
)
