// Package datatype holds the typed value containers shared by every FHIR
// version: the Message contract, schema reflection metadata, and the
// generic building blocks that each version's concrete primitive types are
// assembled from.
//
// # Messages and Descriptors
//
// Every concrete FHIR type implements Message, which exposes the type's
// protobuf reflection descriptor. Descriptors are built once per version
// from a descriptorpb.FileDescriptorProto (see BuildFile), so two versions
// may both declare a type named "String" while remaining distinct:
//
//	google.fhir.r4.core.String
//	google.fhir.stu3.proto.String
//
// Type checks throughout the module compare descriptors by identity, never
// by structure. The Schema Version of a type is read from the package of
// the file declaring it (VersionOf).
//
// # Primitives
//
// A version's primitive types embed two things:
//
//   - the version's Element, carrying the FHIR id and extensions (the
//     "side artifact" of a serialized primitive), built on ElementFields;
//   - a Scalar[V] holding the single semantic value, where a nil Value
//     means the primitive has no value.
//
// For example, the R4 string type is declared as
//
//	type String struct {
//	    Element
//	    datatype.Scalar[string]
//	}
//
// and satisfies Primitive[string] and ElementCarrier.
//
// # Extensions
//
// ExtensionFields keeps the FHIR value[x] entries of an extension as raw
// JSON keyed by their JSON name ("valueString", "valueCoding", ...). The
// contents are passed through unmodified.
//
// # Thread Safety
//
// Descriptors are immutable and safe to share. Values are not
// synchronized; callers own the instances they hold.
package datatype
