// Package primitive abstracts direct interaction with FHIR primitives so
// that parsers, validators and format converters can be written without
// depending on any specific FHIR version.
//
// # Handlers
//
// A Handler is bound to exactly one FHIR version. It creates primitives of
// a given kind, extracts values from them, validates them, and converts
// them to and from their JSON representation:
//
//	h := r4.PrimitiveHandler()
//	s := h.NewString("hello")          // caller owns s
//	v, err := h.GetStringValue(s)      // "hello", nil
//	_, err = h.GetIntegerValue(s)      // TypeMismatchError
//
//	d := h.NewDecimal("0")
//	if err := h.ParseInto([]byte(`1.50`), d); err != nil {
//	    // *ParseError for text that is not a decimal
//	}
//	jp, err := h.WrapPrimitive(d)      // jp.Value == "1.50"
//
// Handlers hold no mutable state. One instance per version is created at
// package initialization and may be shared by any number of goroutines.
//
// # Version Safety
//
// Every operation that receives an instance first checks, by descriptor
// identity, that the instance's type belongs to the handler's version.
// An instance of another version fails with a VersionMismatchError before
// anything else happens, even when both versions declare a type with the
// same name. Kind getters additionally check that the instance is exactly
// the kind's representation and fail with a TypeMismatchError otherwise.
//
// # Bindings
//
// Bind instantiates the contract for one version from that version's
// Extension type and one representation type per kind:
//
//	var handler = primitive.MustBind[Extension, String, Boolean, Integer, Decimal, DateTime](wrappers)
//
// The version is read from the Extension type's descriptor, so a binding
// cannot be constructed with a mismatched version tag.
//
// # Wrappers
//
// Parsing, serialization and validation rules are owned by Wrappers, which
// a WrapperFactory resolves per concrete type. The handler only routes an
// instance to the wrapper for its type after the version check succeeds.
//
// # Errors
//
// Failures are returned as structured errors that match a sentinel with
// errors.Is:
//
//   - ErrVersionMismatch, ErrTypeMismatch, ErrUnsupportedKind: the caller
//     passed the wrong instance or the binding is misconfigured. These are
//     never retried; see IsCallerError.
//   - ErrParse, ErrValidation: the data is bad. These are routine on
//     untrusted input.
//   - ErrSerialization: an instance could not be rendered as JSON.
//
// # Ownership
//
// Instances returned by NewString and friends, and the Element of a
// JSONPrimitive, are freshly allocated and never retained by the handler.
// Instances passed in are only read, except by ParseInto, which mutates its
// target and requires exclusive access to it for the duration of the call.
package primitive
