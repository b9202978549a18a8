package encode

import (
	"errors"
	"fmt"
)

var (
	// ErrEncode is the root of all encode errors.
	ErrEncode = errors.New("unencodable record")

	ErrDataSize    = fmt.Errorf("%w: literal data must be 1..65535 bytes", ErrEncode)
	ErrOffsetRange = fmt.Errorf("%w: offset exceeds 24 bits", ErrEncode)
)
