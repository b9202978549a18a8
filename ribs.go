// Package ribs applies IPS binary patches to byte buffers.
//
// An IPS patch is a sequence of edit records, each writing a byte range
// into a target at a fixed offset.  The wire format is parsed by
// [github.com/mdpcardoso/ribs/decode] into a [record.Patch]; [Apply]
// replays the records onto a target buffer.  [Patch] composes the two for
// the one-shot case:
//
//	out, err := ribs.Patch(rom, patchBytes)
package ribs

import (
	"github.com/mdpcardoso/ribs/decode"
)

// Patch decodes patch and applies it to base.  See [Apply] for the bounds
// policy and the meaning of opts.
func Patch(base, patch []byte, opts ...ApplyOpt) ([]byte, error) {
	p, err := decode.Decode(patch)
	if err != nil {
		return nil, err
	}
	return Apply(base, p, opts...)
}
