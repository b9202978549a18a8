package config

import (
	"errors"
	"fmt"
)

// Policy is the bounds policy the applier runs under.
type Policy int

const (
	// PolicyStrict rejects records reaching past the end of the target.
	PolicyStrict Policy = iota
	// PolicyExtend zero-extends the target to fit.
	PolicyExtend
)

var ErrBadPolicy = errors.New("bad policy")

func ParsePolicy(v string) (Policy, error) {
	p, ok := map[string]Policy{
		"strict": PolicyStrict,
		"extend": PolicyExtend,
	}[v]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadPolicy, v)
	}
	return p, nil
}

func (p Policy) String() string {
	s, ok := map[Policy]string{
		PolicyStrict: "strict",
		PolicyExtend: "extend",
	}[p]
	if ok {
		return s
	}
	return "<unknown policy>"
}

func (p Policy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Policy) UnmarshalText(d []byte) error {
	pp, err := ParsePolicy(string(d))
	if err != nil {
		return err
	}
	*p = pp
	return nil
}

func Policies() []Policy {
	return []Policy{PolicyStrict, PolicyExtend}
}
