package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mdpcardoso/ribs/record"
)

type recordLineTest struct {
	name string
	pos  int
	r    record.Record
	want string
}

var recordLineTests = []recordLineTest{
	{
		name: "literal",
		pos:  3,
		r:    record.NewLiteral(0x10, []byte("hi")),
		want: "   3  0x000010  literal  2 bytes\n",
	},
	{
		name: "fill",
		pos:  1,
		r:    record.NewFill(0, 4, 0x2A),
		want: "   1  0x000000  fill     0x2A x4\n",
	},
}

func TestRecordLine(t *testing.T) {
	for _, tc := range recordLineTests {
		var buf bytes.Buffer
		New(&buf, ModeNever).Record(tc.pos, tc.r)
		if buf.String() != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, buf.String(), tc.want)
		}
	}
}

func TestSummary(t *testing.T) {
	p := record.Patch{
		record.NewLiteral(2, []byte("abc")),
		record.NewFill(8, 2, 0xFF),
	}
	var buf bytes.Buffer
	New(&buf, ModeNever).Summary(p)
	want := "records:  2 (1 literal, 1 fill)\n" +
		"payload:  5 bytes\n" +
		"extent:   0x000002..0x00000A\n" +
		"requires: 10 bytes\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, ModeNever).Summary(nil)
	want := "records:  0 (0 literal, 0 fill)\n" +
		"payload:  0 bytes\n" +
		"extent:   none\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestAlwaysColors(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, ModeAlways).Record(1, record.NewFill(0, 1, 0))
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("no escape sequences in %q", buf.String())
	}
}

type modeTextTest struct {
	text string
	mode Mode
}

var modeTextTests = []modeTextTest{
	{"auto", ModeAuto},
	{"always", ModeAlways},
	{"never", ModeNever},
}

func TestModeText(t *testing.T) {
	for _, tc := range modeTextTests {
		m, err := ParseMode(tc.text)
		if err != nil {
			t.Errorf("%s: %v", tc.text, err)
			continue
		}
		if m != tc.mode {
			t.Errorf("%s: got %v, want %v", tc.text, m, tc.mode)
		}
		if m.String() != tc.text {
			t.Errorf("%v: String %q, want %q", tc.mode, m.String(), tc.text)
		}
	}
	if _, err := ParseMode("sometimes"); err == nil {
		t.Errorf("expected error for unknown mode")
	}
}
