package r4

import (
	"github.com/signadot/go-fhir/datatype"
	"github.com/signadot/go-fhir/version"

	"google.golang.org/protobuf/reflect/protoreflect"
)

var file = datatype.MustBuildFile(version.R4, datatype.PrimitiveDefs()...)

var (
	extensionDesc = datatype.MustMessage(file, "Extension")
	elementDesc   = datatype.MustMessage(file, "Element")
	stringDesc    = datatype.MustMessage(file, "String")
	booleanDesc   = datatype.MustMessage(file, "Boolean")
	integerDesc   = datatype.MustMessage(file, "Integer")
	decimalDesc   = datatype.MustMessage(file, "Decimal")
	dateTimeDesc  = datatype.MustMessage(file, "DateTime")
)

// File returns the R4 datatypes file.
func File() protoreflect.FileDescriptor { return file }

type Extension struct {
	datatype.ExtensionFields[Extension]
}

func (*Extension) Descriptor() protoreflect.MessageDescriptor { return extensionDesc }

// Element holds the id and extensions of a primitive.
type Element struct {
	datatype.ElementFields[Extension]
}

func (*Element) Descriptor() protoreflect.MessageDescriptor { return elementDesc }

func (e *Element) PrimitiveElement() (datatype.Message, error) {
	if e.IsEmpty() {
		return nil, nil
	}
	c, err := e.Clone()
	if err != nil {
		return nil, err
	}
	return &Element{ElementFields: c}, nil
}

func (e *Element) MergeElementJSON(data []byte) error {
	return e.MergeJSON(data)
}

type String struct {
	Element
	datatype.Scalar[string]
}

func (*String) Descriptor() protoreflect.MessageDescriptor { return stringDesc }

type Boolean struct {
	Element
	datatype.Scalar[bool]
}

func (*Boolean) Descriptor() protoreflect.MessageDescriptor { return booleanDesc }

type Integer struct {
	Element
	datatype.Scalar[int32]
}

func (*Integer) Descriptor() protoreflect.MessageDescriptor { return integerDesc }

// Decimal keeps its value as decimal text so no precision is lost.
type Decimal struct {
	Element
	datatype.Scalar[string]
}

func (*Decimal) Descriptor() protoreflect.MessageDescriptor { return decimalDesc }

type DateTime struct {
	Element
	datatype.Scalar[datatype.Moment]
}

func (*DateTime) Descriptor() protoreflect.MessageDescriptor { return dateTimeDesc }
