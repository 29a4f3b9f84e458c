// Package stu3 declares the FHIR STU3 (3.0.2) primitive types and their
// primitive.Handler.
//
// Each type reports a descriptor from the STU3 datatypes file, so STU3
// instances are rejected by the handlers of other versions even where the
// type names coincide.
package stu3
