package ribs

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mdpcardoso/ribs/decode"
	"github.com/mdpcardoso/ribs/record"
)

type applyTest struct {
	name string
	base string
	p    record.Patch
	opts []ApplyOpt
	want string
}

var applyTests = []applyTest{
	{
		name: "literal mid buffer",
		base: "XXXXX",
		p:    record.Patch{record.NewLiteral(1, []byte("abc"))},
		want: "XabcX",
	},
	{
		name: "fill from zero",
		base: "\x00\x00\x00\x00\x00\x00",
		p:    record.Patch{record.NewFill(0, 4, 0x2A)},
		want: "\x2a\x2a\x2a\x2a\x00\x00",
	},
	{
		name: "later record wins overlap",
		base: "........",
		p: record.Patch{
			record.NewLiteral(0, []byte("abcd")),
			record.NewFill(2, 4, 'z'),
		},
		want: "abzzzz..",
	},
	{
		name: "zero length fill is a no-op",
		base: "hello",
		p:    record.Patch{record.NewFill(100, 0, 7)},
		want: "hello",
	},
	{
		name: "extend grows with zeros",
		base: "ab",
		p:    record.Patch{record.NewLiteral(4, []byte("cd"))},
		opts: []ApplyOpt{ApplyExtend(true)},
		want: "ab\x00\x00cd",
	},
	{
		name: "extend from empty base",
		base: "",
		p:    record.Patch{record.NewFill(2, 2, 1)},
		opts: []ApplyOpt{ApplyExtend(true)},
		want: "\x00\x00\x01\x01",
	},
}

func TestApply(t *testing.T) {
	for _, tc := range applyTests {
		got, err := Apply([]byte(tc.base), tc.p, tc.opts...)
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if string(got) != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestApplyStrictLeavesBase(t *testing.T) {
	base := []byte("XXXXX")
	p := record.Patch{
		record.NewLiteral(0, []byte("ab")),
		record.NewLiteral(4, []byte("cd")),
	}
	out, err := Apply(base, p)
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("got %v, want ErrOutOfRange", err)
	}
	if out != nil {
		t.Errorf("got %q, want nil output on error", out)
	}
	if !bytes.Equal(base, []byte("XXXXX")) {
		t.Errorf("base modified by failed apply: %q", base)
	}
}

func TestApplyTrace(t *testing.T) {
	var pos []int
	var got []string
	p := record.Patch{
		record.NewLiteral(0, []byte("ab")),
		record.NewFill(2, 2, 'z'),
	}
	_, err := Apply(make([]byte, 4), p, ApplyTrace(func(i int, r record.Record) {
		pos = append(pos, i)
		got = append(got, r.String())
	}))
	if err != nil {
		t.Fatal(err)
	}
	if len(pos) != 2 || pos[0] != 1 || pos[1] != 2 {
		t.Fatalf("trace positions %v, want [1 2]", pos)
	}
	if got[0] != "literal 2 bytes at 0x000000" {
		t.Errorf("trace record 1: %q", got[0])
	}
	if got[1] != "fill 0x7A x2 at 0x000002" {
		t.Errorf("trace record 2: %q", got[1])
	}
}

type validateTest struct {
	name string
	size int
	p    record.Patch
	err  error
}

var validateTests = []validateTest{
	{
		name: "fits exactly",
		size: 5,
		p:    record.Patch{record.NewFill(4, 1, 0)},
	},
	{
		name: "one past the end",
		size: 5,
		p:    record.Patch{record.NewFill(5, 1, 0)},
		err:  ErrOutOfRange,
	},
	{
		name: "literal overrun",
		size: 5,
		p:    record.Patch{record.NewLiteral(3, []byte("abc"))},
		err:  ErrOutOfRange,
	},
	{
		name: "zero length fill anywhere",
		size: 0,
		p:    record.Patch{record.NewFill(10, 0, 1)},
	},
}

func TestValidate(t *testing.T) {
	for _, tc := range validateTests {
		err := Validate(tc.size, tc.p)
		if tc.err == nil && err != nil {
			t.Errorf("%s: %v", tc.name, err)
		}
		if tc.err != nil && !errors.Is(err, tc.err) {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.err)
		}
	}
}

func TestPatch(t *testing.T) {
	out, err := Patch([]byte("XXXXX"),
		[]byte("PATCH"+"\x00\x00\x01"+"\x00\x03"+"abc"+"EOF"))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "XabcX" {
		t.Errorf("got %q, want %q", out, "XabcX")
	}
}

func TestPatchBadInput(t *testing.T) {
	_, err := Patch([]byte("XXXXX"), []byte("PATCH"))
	if !errors.Is(err, decode.ErrFormat) {
		t.Errorf("got %v, want a decode error", err)
	}
}
