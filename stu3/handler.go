package stu3

import (
	"github.com/signadot/go-fhir/primitive"
	"github.com/signadot/go-fhir/version"
	"github.com/signadot/go-fhir/wrapper"
)

var (
	wrappers *wrapper.Registry
	handler  *primitive.Binding
)

func init() {
	wrappers = wrapper.MustRegistry(version.STU3,
		wrapper.Entry{Descriptor: stringDesc, Wrapper: wrapper.String()},
		wrapper.Entry{Descriptor: booleanDesc, Wrapper: wrapper.Boolean()},
		wrapper.Entry{Descriptor: integerDesc, Wrapper: wrapper.Integer()},
		wrapper.Entry{Descriptor: decimalDesc, Wrapper: wrapper.Decimal()},
		wrapper.Entry{Descriptor: dateTimeDesc, Wrapper: wrapper.DateTime()},
	)
	handler = primitive.MustBind[Extension, String, Boolean, Integer, Decimal, DateTime](wrappers)
}

// PrimitiveHandler returns the STU3 handler. It is shared and safe for
// concurrent use.
func PrimitiveHandler() primitive.Handler { return handler }

// Wrappers returns the registry of STU3 primitive wrappers.
func Wrappers() *wrapper.Registry { return wrappers }
