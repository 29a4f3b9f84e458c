package datatype

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/signadot/go-fhir/version"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// Message is implemented by every concrete FHIR type of every version.
type Message interface {
	Descriptor() protoreflect.MessageDescriptor
}

var ErrNoDescriptor = errors.New("no descriptor")

// VersionOf returns the FHIR version declaring the type described by d.
func VersionOf(d protoreflect.Descriptor) (version.Version, error) {
	if d == nil {
		return 0, ErrNoDescriptor
	}
	f := d.ParentFile()
	if f == nil {
		return 0, fmt.Errorf("%w: %s has no parent file", ErrNoDescriptor, d.FullName())
	}
	return version.FromProtoPackage(string(f.Package()))
}

// FullName returns the full name of m's type, or "<nil>".
func FullName(m Message) protoreflect.FullName {
	if IsNil(m) {
		return "<nil>"
	}
	return m.Descriptor().FullName()
}

// IsNil reports whether m is nil or a typed nil pointer.
func IsNil(m Message) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
