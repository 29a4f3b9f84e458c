package primitive

import (
	"errors"
	"fmt"

	"github.com/signadot/go-fhir/version"

	"google.golang.org/protobuf/reflect/protoreflect"
)

var (
	ErrVersionMismatch = errors.New("version mismatch")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrParse           = errors.New("parse error")
	ErrValidation      = errors.New("validation error")
	ErrUnsupportedKind = errors.New("unsupported kind")
	ErrSerialization   = errors.New("serialization error")
)

// VersionMismatchError reports an instance whose type belongs to another
// FHIR version than the handler's.
type VersionMismatchError struct {
	Type protoreflect.FullName
	Want version.Version
	// Got is zero when the type declares no known version.
	Got version.Version
}

func (e *VersionMismatchError) Error() string {
	got := "no known version"
	if e.Got.IsValid() {
		got = e.Got.String()
	}
	return fmt.Sprintf("%s: %s belongs to %s, handler is bound to %s", ErrVersionMismatch, e.Type, got, e.Want)
}

func (e *VersionMismatchError) Is(target error) bool { return target == ErrVersionMismatch }

// TypeMismatchError reports an instance which is not the representation
// expected for a kind.
type TypeMismatchError struct {
	Expected protoreflect.FullName
	Actual   protoreflect.FullName
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: tried to get %s value, but message was of type %s", ErrTypeMismatch, e.Expected, e.Actual)
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// ParseError reports JSON text that does not encode a value of Kind.
type ParseError struct {
	Kind Kind
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	text := e.Text
	if len(text) > 64 {
		text = text[:61] + "..."
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: invalid %s %q", ErrParse, e.Kind, text)
	}
	return fmt.Sprintf("%s: invalid %s %q: %v", ErrParse, e.Kind, text, e.Err)
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }
func (e *ParseError) Unwrap() error        { return e.Err }

// ValidationError reports the first rule a primitive violates.
type ValidationError struct {
	Kind Kind
	Type protoreflect.FullName
	Rule string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Type, e.Rule)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// UnsupportedKindError reports a type for which the version has no wrapper.
type UnsupportedKindError struct {
	Type    protoreflect.FullName
	Version version.Version
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("%s: no primitive wrapper for %s in %s", ErrUnsupportedKind, e.Type, e.Version)
}

func (e *UnsupportedKindError) Is(target error) bool { return target == ErrUnsupportedKind }

// SerializationError reports an instance that could not be rendered.
type SerializationError struct {
	Type protoreflect.FullName
	Err  error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrSerialization, e.Type, e.Err)
}

func (e *SerializationError) Is(target error) bool { return target == ErrSerialization }
func (e *SerializationError) Unwrap() error        { return e.Err }

// IsCallerError reports whether err is a defect of the caller or of the
// binding (wrong version, wrong type, unsupported kind) rather than a
// problem with the data.
func IsCallerError(err error) bool {
	return errors.Is(err, ErrVersionMismatch) ||
		errors.Is(err, ErrTypeMismatch) ||
		errors.Is(err, ErrUnsupportedKind)
}
