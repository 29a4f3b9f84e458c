package primitive

import (
	"github.com/signadot/go-fhir/datatype"
	"github.com/signadot/go-fhir/version"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// Handler creates, reads, validates and converts the primitives of one
// FHIR version.
type Handler interface {
	// Version returns the FHIR version the handler is bound to.
	Version() version.Version

	// ParseInto parses the JSON text of a primitive value into target,
	// which must be a primitive of the handler's version. JSON null clears
	// the value. On failure target is left unchanged.
	ParseInto(data []byte, target datatype.Message, opts ...ParseOption) error

	// WrapPrimitive renders m as JSON text plus its id and extensions.
	WrapPrimitive(m datatype.Message) (JSONPrimitive, error)

	// ValidatePrimitive checks m against the rules of its kind.
	ValidatePrimitive(m datatype.Message) error

	GetStringValue(m datatype.Message) (string, error)
	NewString(v string) datatype.Message
	StringDescriptor() protoreflect.MessageDescriptor

	GetBooleanValue(m datatype.Message) (bool, error)
	NewBoolean(v bool) datatype.Message
	BooleanDescriptor() protoreflect.MessageDescriptor

	GetIntegerValue(m datatype.Message) (int32, error)
	NewInteger(v int32) datatype.Message
	IntegerDescriptor() protoreflect.MessageDescriptor

	GetDecimalValue(m datatype.Message) (string, error)
	NewDecimal(v string) datatype.Message
	DecimalDescriptor() protoreflect.MessageDescriptor

	GetDateTimeValue(m datatype.Message) (datatype.Moment, error)
	NewDateTime(v datatype.Moment) datatype.Message
	DateTimeDescriptor() protoreflect.MessageDescriptor

	// CheckVersion returns a *VersionMismatchError unless m's type belongs
	// to the handler's version.
	CheckVersion(m datatype.Message) error
	// CheckDescriptorVersion is CheckVersion for a type descriptor.
	CheckDescriptorVersion(d protoreflect.Descriptor) error
}

// JSONPrimitive is the JSON form of a primitive: the text of its value and
// the element carrying its id and extensions, if any.
type JSONPrimitive struct {
	// Value is JSON text, "null" when the primitive has no value.
	Value string
	// Element is nil when the primitive has no id or extensions. Otherwise
	// it is an instance of the version's Element type owned by the caller.
	Element datatype.Message
}

func (p JSONPrimitive) IsNonNull() bool {
	return p.Value != "null"
}
