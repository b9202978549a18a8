// Package record defines the edit records found in an IPS patch.
//
// A [Record] describes one byte-range write into a target buffer. The two
// variants, [Literal] and [Fill], differ only in how the bytes they write are
// obtained: a literal carries them verbatim, a fill repeats a single byte.
// Records carry no validation of their own; the decoder guarantees the
// invariants of records it constructs, and the applier owns bounds policy.
package record

import "fmt"

// Record is one edit in a patch. Org is the start offset in the target,
// Len the number of bytes written there. Apply writes the record into dst;
// the caller must ensure dst reaches End(r) first.
type Record interface {
	Org() int
	Len() int
	Kind() Kind
	Apply(dst []byte)
	String() string
}

// End returns the offset one past the last byte r writes.
func End(r Record) int {
	return r.Org() + r.Len()
}

// Literal writes its data verbatim at its offset. The decoder never
// constructs a literal with empty data: a zero size on the wire selects the
// fill variant instead.
type Literal struct {
	off  uint32
	data []byte
}

// NewLiteral returns a literal record. The record takes ownership of data;
// callers that reuse their slice should pass a copy.
func NewLiteral(off uint32, data []byte) *Literal {
	return &Literal{off: off, data: data}
}

func (l *Literal) Org() int   { return int(l.off) }
func (l *Literal) Len() int   { return len(l.data) }
func (l *Literal) Kind() Kind { return KindLiteral }

// Data returns the bytes the record writes. The slice is a read-only view
// into the record; callers must not modify it.
func (l *Literal) Data() []byte { return l.data }

func (l *Literal) Apply(dst []byte) {
	copy(dst[l.off:], l.data)
}

func (l *Literal) String() string {
	return fmt.Sprintf("literal %d bytes at 0x%06X", len(l.data), l.off)
}

// Fill writes its value repeated count times at its offset. A zero count is
// legal on the wire and applies as a no-op.
type Fill struct {
	off   uint32
	count uint16
	value byte
}

func NewFill(off uint32, count uint16, value byte) *Fill {
	return &Fill{off: off, count: count, value: value}
}

func (f *Fill) Org() int      { return int(f.off) }
func (f *Fill) Len() int      { return int(f.count) }
func (f *Fill) Kind() Kind    { return KindFill }
func (f *Fill) Count() uint16 { return f.count }
func (f *Fill) Value() byte   { return f.value }

func (f *Fill) Apply(dst []byte) {
	end := int(f.off) + int(f.count)
	for i := int(f.off); i < end; i++ {
		dst[i] = f.value
	}
}

func (f *Fill) String() string {
	return fmt.Sprintf("fill 0x%02X x%d at 0x%06X", f.value, f.count, f.off)
}

// Patch is an ordered sequence of records. Order is the decode order; the
// applier replays it as-is, so later records win on overlap.
type Patch []Record

// Extent returns the lowest offset written and the highest end offset over
// all records. A patch with no effective writes returns (0, 0).
func (p Patch) Extent() (lo, hi int) {
	first := true
	for _, r := range p {
		if r.Len() == 0 {
			continue
		}
		if first || r.Org() < lo {
			lo = r.Org()
		}
		if first || End(r) > hi {
			hi = End(r)
		}
		first = false
	}
	if first {
		return 0, 0
	}
	return lo, hi
}

// Payload returns the total number of bytes the patch writes, counting
// overlapping ranges once per record.
func (p Patch) Payload() int {
	n := 0
	for _, r := range p {
		n += r.Len()
	}
	return n
}

// Count returns the number of records of kind k.
func (p Patch) Count(k Kind) int {
	n := 0
	for _, r := range p {
		if r.Kind() == k {
			n++
		}
	}
	return n
}
