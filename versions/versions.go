// Package versions selects the primitive handler of a FHIR version by tag.
package versions

import (
	"fmt"

	"github.com/signadot/go-fhir/datatype"
	"github.com/signadot/go-fhir/primitive"
	"github.com/signadot/go-fhir/r4"
	"github.com/signadot/go-fhir/r5"
	"github.com/signadot/go-fhir/stu3"
	"github.com/signadot/go-fhir/version"
	"github.com/signadot/go-fhir/wrapper"
)

type entry struct {
	handler  func() primitive.Handler
	wrappers func() *wrapper.Registry
}

var entries = map[version.Version]entry{
	version.STU3: {stu3.PrimitiveHandler, stu3.Wrappers},
	version.R4:   {r4.PrimitiveHandler, r4.Wrappers},
	version.R5:   {r5.PrimitiveHandler, r5.Wrappers},
}

func lookup(v version.Version) (entry, error) {
	e, ok := entries[v]
	if !ok {
		return entry{}, fmt.Errorf("%w: %d", version.ErrBadVersion, int(v))
	}
	return e, nil
}

// Handler returns the primitive handler of v.
func Handler(v version.Version) (primitive.Handler, error) {
	e, err := lookup(v)
	if err != nil {
		return nil, err
	}
	return e.handler(), nil
}

// Wrappers returns the wrapper registry of v.
func Wrappers(v version.Version) (*wrapper.Registry, error) {
	e, err := lookup(v)
	if err != nil {
		return nil, err
	}
	return e.wrappers(), nil
}

// Handlers returns the handlers of all versions in release order.
func Handlers() []primitive.Handler {
	res := make([]primitive.Handler, 0, len(entries))
	for _, v := range version.All() {
		if e, ok := entries[v]; ok {
			res = append(res, e.handler())
		}
	}
	return res
}

// New returns a new instance of kind k in version v without a value. The
// five kinds of the handler contract are created through the handler.
func New(v version.Version, k primitive.Kind) (datatype.Message, error) {
	h, err := Handler(v)
	if err != nil {
		return nil, err
	}
	var m datatype.Message
	switch k {
	case primitive.StringKind:
		m = h.NewString("")
	case primitive.BooleanKind:
		m = h.NewBoolean(false)
	case primitive.IntegerKind:
		m = h.NewInteger(0)
	case primitive.DecimalKind:
		m = h.NewDecimal("")
	case primitive.DateTimeKind:
		m = h.NewDateTime(datatype.Moment{})
	case primitive.Integer64Kind:
		if v != version.R5 {
			return nil, fmt.Errorf("%w: %s has no %s", primitive.ErrUnsupportedKind, v, k)
		}
		return &r5.Integer64{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", primitive.ErrUnsupportedKind, k)
	}
	m.(interface{ ClearValue() }).ClearValue()
	return m, nil
}
