package datatype

import (
	"fmt"

	"github.com/signadot/go-fhir/version"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

type FieldDef struct {
	Name   string
	Number int32
	Type   descriptorpb.FieldDescriptorProto_Type
	// Message names a message declared in the same file, for TYPE_MESSAGE.
	Message  string
	Repeated bool
}

type MessageDef struct {
	Name   string
	Fields []FieldDef
}

// BuildFile builds the datatypes file of version v declaring defs.
func BuildFile(v version.Version, defs ...MessageDef) (protoreflect.FileDescriptor, error) {
	if !v.IsValid() {
		return nil, fmt.Errorf("%w: %d", version.ErrBadVersion, int(v))
	}
	pkg := v.ProtoPackage()
	fdp := &descriptorpb.FileDescriptorProto{
		Name:    proto.String(fmt.Sprintf("google/fhir/%s/datatypes.proto", v)),
		Package: proto.String(pkg),
		Syntax:  proto.String("proto3"),
	}
	for _, md := range defs {
		dp := &descriptorpb.DescriptorProto{Name: proto.String(md.Name)}
		for _, fd := range md.Fields {
			label := descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL
			if fd.Repeated {
				label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED
			}
			field := &descriptorpb.FieldDescriptorProto{
				Name:   proto.String(fd.Name),
				Number: proto.Int32(fd.Number),
				Label:  label.Enum(),
				Type:   fd.Type.Enum(),
			}
			if fd.Message != "" {
				field.TypeName = proto.String("." + pkg + "." + fd.Message)
			}
			dp.Field = append(dp.Field, field)
		}
		fdp.MessageType = append(fdp.MessageType, dp)
	}
	fd, err := protodesc.NewFile(fdp, new(protoregistry.Files))
	if err != nil {
		return nil, fmt.Errorf("building %s datatypes: %w", v, err)
	}
	return fd, nil
}

func MustBuildFile(v version.Version, defs ...MessageDef) protoreflect.FileDescriptor {
	fd, err := BuildFile(v, defs...)
	if err != nil {
		panic(err)
	}
	return fd
}

// MustMessage returns the message named name declared in fd.
func MustMessage(fd protoreflect.FileDescriptor, name string) protoreflect.MessageDescriptor {
	md := fd.Messages().ByName(protoreflect.Name(name))
	if md == nil {
		panic(fmt.Sprintf("datatype: %s declares no message %q", fd.Path(), name))
	}
	return md
}

const (
	tString  = descriptorpb.FieldDescriptorProto_TYPE_STRING
	tBool    = descriptorpb.FieldDescriptorProto_TYPE_BOOL
	tSint32  = descriptorpb.FieldDescriptorProto_TYPE_SINT32
	tSint64  = descriptorpb.FieldDescriptorProto_TYPE_SINT64
	tInt32   = descriptorpb.FieldDescriptorProto_TYPE_INT32
	tBytes   = descriptorpb.FieldDescriptorProto_TYPE_BYTES
	tMessage = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE
)

// PrimitiveDef declares a primitive message with the common id and
// extension fields followed by value fields numbered from 3.
func PrimitiveDef(name string, value ...FieldDef) MessageDef {
	fields := []FieldDef{
		{Name: "id", Number: 1, Type: tString},
		{Name: "extension", Number: 2, Type: tMessage, Message: "Extension", Repeated: true},
	}
	for i, f := range value {
		f.Number = int32(3 + i)
		fields = append(fields, f)
	}
	return MessageDef{Name: name, Fields: fields}
}

// PrimitiveDefs returns the definitions every version declares.
func PrimitiveDefs() []MessageDef {
	return []MessageDef{
		{Name: "Extension", Fields: []FieldDef{
			{Name: "id", Number: 1, Type: tString},
			{Name: "extension", Number: 2, Type: tMessage, Message: "Extension", Repeated: true},
			{Name: "url", Number: 3, Type: tString},
			{Name: "value", Number: 4, Type: tBytes},
		}},
		PrimitiveDef("Element"),
		PrimitiveDef("String", FieldDef{Name: "value", Type: tString}),
		PrimitiveDef("Boolean", FieldDef{Name: "value", Type: tBool}),
		PrimitiveDef("Integer", FieldDef{Name: "value", Type: tSint32}),
		PrimitiveDef("Decimal", FieldDef{Name: "value", Type: tString}),
		PrimitiveDef("DateTime",
			FieldDef{Name: "value_us", Type: tSint64},
			FieldDef{Name: "timezone", Type: tString},
			FieldDef{Name: "precision", Type: tInt32},
		),
	}
}

// Integer64Def declares the 64 bit integer primitive introduced in R5.
func Integer64Def() MessageDef {
	return PrimitiveDef("Integer64", FieldDef{Name: "value", Type: tSint64})
}
