package record

import "fmt"

type Kind int

const (
	KindLiteral Kind = iota
	KindFill
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindLiteral: "literal",
		KindFill:    "fill",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"literal": KindLiteral,
		"fill":    KindFill,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized record kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{KindLiteral, KindFill}
}
