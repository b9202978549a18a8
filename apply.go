package ribs

import (
	"errors"
	"fmt"

	"github.com/mdpcardoso/ribs/debug"
	"github.com/mdpcardoso/ribs/record"
)

// ErrOutOfRange reports a record that ends beyond the target while the
// strict bounds policy is in effect.
var ErrOutOfRange = errors.New("record out of range")

// ApplyConfig collects the options of [Apply].
type ApplyConfig struct {
	Extend bool
	Trace  func(pos int, r record.Record)
}

// ApplyOpt is an option to [Apply].
type ApplyOpt func(*ApplyConfig)

// ApplyExtend sets whether records may reach past the end of the target.
// When set, the buffer is zero-extended to fit instead of failing with
// [ErrOutOfRange].
func ApplyExtend(v bool) ApplyOpt {
	return func(c *ApplyConfig) {
		c.Extend = v
	}
}

// ApplyTrace registers fn as a sink called with each record and its
// 1-based position in the patch, in apply order.
func ApplyTrace(fn func(pos int, r record.Record)) ApplyOpt {
	return func(c *ApplyConfig) {
		c.Trace = fn
	}
}

// Validate reports whether every record of p fits a target of the given
// size.  The first record reaching past size yields an [ErrOutOfRange]
// error naming it.  Records writing zero bytes always fit.
func Validate(size int, p record.Patch) error {
	for i, r := range p {
		if r.Len() == 0 {
			continue
		}
		if end := record.End(r); end > size {
			return fmt.Errorf("%w: record %d (%s) ends at 0x%X, target is 0x%X bytes",
				ErrOutOfRange, i+1, r, end, size)
		}
	}
	return nil
}

// Apply replays p onto base in order and returns the patched buffer.
// Later records overwrite earlier ones where their ranges overlap.
//
// Under the default strict policy every record is validated against
// len(base) before anything is written, so a failed Apply leaves base
// unchanged.  With [ApplyExtend] the buffer grows to fit instead, and the
// returned slice may be a reallocated copy of base.
func Apply(base []byte, p record.Patch, opts ...ApplyOpt) ([]byte, error) {
	cfg := &ApplyConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if !cfg.Extend {
		if err := Validate(len(base), p); err != nil {
			return nil, err
		}
	}
	for i, r := range p {
		if cfg.Trace != nil {
			cfg.Trace(i+1, r)
		}
		if debug.Apply() {
			debug.Logf("apply: record %d: %s\n", i+1, r)
		}
		if r.Len() == 0 {
			continue
		}
		if end := record.End(r); end > len(base) {
			base = append(base, make([]byte, end-len(base))...)
		}
		r.Apply(base)
	}
	return base, nil
}
