package decode

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is the root of all decode errors; every error returned
	// by Decode wraps it.
	ErrFormat = errors.New("bad patch")

	ErrSize      = fmt.Errorf("%w: input too short", ErrFormat)
	ErrHeader    = fmt.Errorf("%w: no PATCH header", ErrFormat)
	ErrFooter    = fmt.Errorf("%w: no EOF footer", ErrFormat)
	ErrTruncated = fmt.Errorf("%w: truncated record", ErrFormat)
)
