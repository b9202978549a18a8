// Package decode turns IPS patch bytes into record sequences.
//
// The wire format is framed by the ASCII markers "PATCH" and "EOF":
//
//	offset 0    5 bytes  "PATCH"
//	offset 5    ...      records, back to back
//	last 3      3 bytes  "EOF"
//
// Each record opens with a 3-byte big-endian offset and a 2-byte big-endian
// size.  A non-zero size is followed by that many data bytes; a zero size
// selects the run-length variant, a 2-byte count and a single value byte.
// Framing is positional: the decoder stops when only the footer remains, so
// an offset whose bytes happen to spell "EOF" is data, not a terminator.
package decode

import (
	"encoding/binary"
	"fmt"

	"github.com/mdpcardoso/ribs/debug"
	"github.com/mdpcardoso/ribs/record"
)

const (
	header = "PATCH"
	footer = "EOF"

	// minInput is the smallest patch holding a record: header, 3-byte
	// offset, 2-byte size, one data byte, footer.
	minInput = len(header) + 3 + 2 + 1 + len(footer)
)

// Decode validates the framing of d and returns its records in wire order.
// Decoding is all or nothing: on error the returned patch is nil.
//
// The empty patch, header immediately followed by footer, is valid and
// decodes to zero records.  Any other input shorter than minInput bytes
// fails with [ErrSize].
func Decode(d []byte) (record.Patch, error) {
	if len(d) < minInput && len(d) != len(header)+len(footer) {
		return nil, fmt.Errorf("%w: %d bytes", ErrSize, len(d))
	}
	if string(d[:len(header)]) != header {
		return nil, ErrHeader
	}
	if string(d[len(d)-len(footer):]) != footer {
		return nil, ErrFooter
	}
	s := &scanner{d: d, pos: len(header), end: len(d) - len(footer)}
	var p record.Patch
	for s.pos < s.end {
		r, err := s.record()
		if err != nil {
			return nil, err
		}
		if debug.Decode() {
			debug.Logf("decode: record %d: %s\n", len(p)+1, r)
		}
		p = append(p, r)
	}
	return p, nil
}

// scanner walks the record region of a patch.  end excludes the footer, so
// every read is checked against the region, never the whole input.
type scanner struct {
	d        []byte
	pos, end int
}

func (s *scanner) need(n int) error {
	if s.end-s.pos < n {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d before footer",
			ErrTruncated, n, s.pos, s.end-s.pos)
	}
	return nil
}

func (s *scanner) uint24() (uint32, error) {
	if err := s.need(3); err != nil {
		return 0, err
	}
	v := uint32(s.d[s.pos])<<16 | uint32(s.d[s.pos+1])<<8 | uint32(s.d[s.pos+2])
	s.pos += 3
	return v, nil
}

func (s *scanner) uint16() (uint16, error) {
	if err := s.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(s.d[s.pos:])
	s.pos += 2
	return v, nil
}

func (s *scanner) uint8() (byte, error) {
	if err := s.need(1); err != nil {
		return 0, err
	}
	v := s.d[s.pos]
	s.pos++
	return v, nil
}

// data copies n bytes out of the input so records never alias the caller's
// buffer.
func (s *scanner) data(n int) ([]byte, error) {
	if err := s.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, s.d[s.pos:s.pos+n])
	s.pos += n
	return out, nil
}

func (s *scanner) record() (record.Record, error) {
	org, err := s.uint24()
	if err != nil {
		return nil, err
	}
	size, err := s.uint16()
	if err != nil {
		return nil, err
	}
	if size == 0 {
		count, err := s.uint16()
		if err != nil {
			return nil, err
		}
		value, err := s.uint8()
		if err != nil {
			return nil, err
		}
		return record.NewFill(org, count, value), nil
	}
	d, err := s.data(int(size))
	if err != nil {
		return nil, err
	}
	return record.NewLiteral(org, d), nil
}
