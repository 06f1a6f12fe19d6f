package heap

import "errors"

var (
	// ErrBadSize indicates a zero or negative allocation size.
	ErrBadSize = errors.New("heap: size must be positive")

	// ErrNoSpace indicates that no free block was large enough and the
	// region could not grow to satisfy the request.
	ErrNoSpace = errors.New("heap: out of space")

	// ErrBadOptions indicates an invalid Options value, such as a size
	// override below the default adjusted size or a misaligned chunk size.
	ErrBadOptions = errors.New("heap: invalid options")

	// ErrBadRegion indicates the region handed to New does not start on a
	// double-word boundary.
	ErrBadRegion = errors.New("heap: region start is not double-word aligned")
)
