// Package r4 declares the FHIR R4 (4.0.1) primitive types and their
// primitive.Handler.
//
// Each type reports a descriptor from the R4 datatypes file, so R4
// instances are rejected by the handlers of other versions even where the
// type names coincide.
package r4
