package primitive

import (
	"time"

	"github.com/signadot/go-fhir/datatype"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// Wrapper owns the JSON format and validation rules of one primitive type.
// Wrappers are called by a Handler only after the version check succeeds.
type Wrapper interface {
	Kind() Kind
	Parse(data []byte, loc *time.Location, target datatype.Message) error
	Wrap(src datatype.Message) (JSONPrimitive, error)
	Validate(src datatype.Message) error
}

// WrapperFactory resolves the Wrapper for a type descriptor.
type WrapperFactory interface {
	Wrapper(d protoreflect.MessageDescriptor) (Wrapper, error)
}

type WrapperFactoryFunc func(d protoreflect.MessageDescriptor) (Wrapper, error)

func (f WrapperFactoryFunc) Wrapper(d protoreflect.MessageDescriptor) (Wrapper, error) {
	return f(d)
}
