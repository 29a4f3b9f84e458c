// Package wrapper provides the Primitive Wrappers that own the JSON
// format and validation rules of each primitive kind, and Registry, the
// per-version WrapperFactory a primitive.Handler routes instances through.
//
// Wrappers are stateless once constructed. Validation rules are compiled
// expr programs evaluated against an Env derived from the value.
package wrapper
