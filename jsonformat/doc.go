// Package jsonformat reads and writes primitive fields of FHIR JSON
// objects using only a primitive.Handler, so the same code serves every
// FHIR version.
//
// In FHIR JSON a primitive field "name" carries its value, and the sibling
// field "_name" carries its id and extensions:
//
//	{"birthDate": "1970-03", "_birthDate": {"id": "b1"}}
//
// SetField writes both fields with an RFC 7386 merge patch, so the rest of
// the object is preserved. GetField reads them back into an instance.
package jsonformat
