package report

import (
	"errors"
	"fmt"
)

// Mode says when render output is colored.
type Mode int

const (
	// ModeAuto colors output only when it goes to a terminal.
	ModeAuto Mode = iota
	ModeAlways
	ModeNever
)

var ErrBadMode = errors.New("bad color mode")

func ParseMode(v string) (Mode, error) {
	m, ok := map[string]Mode{
		"auto":   ModeAuto,
		"always": ModeAlways,
		"never":  ModeNever,
	}[v]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadMode, v)
	}
	return m, nil
}

func (m Mode) String() string {
	s, ok := map[Mode]string{
		ModeAuto:   "auto",
		ModeAlways: "always",
		ModeNever:  "never",
	}[m]
	if ok {
		return s
	}
	return "<unknown mode>"
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(d []byte) error {
	mm, err := ParseMode(string(d))
	if err != nil {
		return err
	}
	*m = mm
	return nil
}

func Modes() []Mode {
	return []Mode{ModeAuto, ModeAlways, ModeNever}
}
