// Package r5 declares the FHIR R5 (5.0.0) primitive types and their
// primitive.Handler.
//
// Each type reports a descriptor from the R5 datatypes file, so R5
// instances are rejected by the handlers of other versions even where the
// type names coincide.
package r5
