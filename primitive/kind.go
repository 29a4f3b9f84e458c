package primitive

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is a category of FHIR primitive value.
type Kind int

const (
	StringKind Kind = iota + 1
	BooleanKind
	IntegerKind
	DecimalKind
	DateTimeKind
	Integer64Kind
)

var ErrBadKind = errors.New("bad kind")

var kindNames = map[Kind]string{
	StringKind:    "string",
	BooleanKind:   "boolean",
	IntegerKind:   "integer",
	DecimalKind:   "decimal",
	DateTimeKind:  "dateTime",
	Integer64Kind: "integer64",
}

func ParseKind(v string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(v, kindNames[k]) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadKind, v)
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("<err: %d is not a kind>", int(k))
}

// Kinds returns all kinds in declaration order.
func Kinds() []Kind {
	return []Kind{StringKind, BooleanKind, IntegerKind, DecimalKind, DateTimeKind, Integer64Kind}
}
