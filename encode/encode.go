// Package encode serializes record sequences back to IPS patch bytes.
//
// Encode is the inverse of decode.Decode: any patch it produces decodes to
// the same record sequence.
package encode

import (
	"encoding/binary"
	"fmt"

	"github.com/mdpcardoso/ribs/record"
)

const (
	header = "PATCH"
	footer = "EOF"

	maxOrg  = 1<<24 - 1
	maxData = 1<<16 - 1
)

// Size returns the number of patch bytes Encode produces for p.
func Size(p record.Patch) int {
	n := len(header) + len(footer)
	for _, r := range p {
		n += 3 + 2
		if r.Kind() == record.KindFill {
			n += 3
		} else {
			n += r.Len()
		}
	}
	return n
}

// Encode serializes p with the standard framing, records in order.  A
// literal with empty data has no wire form, a zero size selects the fill
// variant, and fails with [ErrDataSize], as does data beyond 65535 bytes.
// An offset beyond 24 bits fails with [ErrOffsetRange].
func Encode(p record.Patch) ([]byte, error) {
	out := make([]byte, 0, Size(p))
	out = append(out, header...)
	for i, r := range p {
		if r.Org() > maxOrg {
			return nil, fmt.Errorf("%w: record %d at 0x%X", ErrOffsetRange, i+1, r.Org())
		}
		out = append(out, byte(r.Org()>>16), byte(r.Org()>>8), byte(r.Org()))
		switch x := r.(type) {
		case *record.Fill:
			out = binary.BigEndian.AppendUint16(out, 0)
			out = binary.BigEndian.AppendUint16(out, x.Count())
			out = append(out, x.Value())
		case *record.Literal:
			n := len(x.Data())
			if n == 0 || n > maxData {
				return nil, fmt.Errorf("%w: record %d has %d bytes", ErrDataSize, i+1, n)
			}
			out = binary.BigEndian.AppendUint16(out, uint16(n))
			out = append(out, x.Data()...)
		default:
			return nil, fmt.Errorf("%w: record %d has kind %s", ErrEncode, i+1, r.Kind())
		}
	}
	return append(out, footer...), nil
}
