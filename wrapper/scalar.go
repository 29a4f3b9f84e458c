package wrapper

import (
	"bytes"
	"fmt"
	"time"

	"github.com/signadot/go-fhir/datatype"
	"github.com/signadot/go-fhir/primitive"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// scalar is the wrapper of a primitive kind whose value has type V.
type scalar[V any] struct {
	kind   primitive.Kind
	parse  func(data []byte, loc *time.Location) (V, error)
	format func(v V) (string, error)
	env    func(v V) Env
	rules  []Rule
}

var _ primitive.Wrapper = (*scalar[string])(nil)

func (w *scalar[V]) Kind() primitive.Kind { return w.kind }

func (w *scalar[V]) holder(m datatype.Message) (datatype.Primitive[V], error) {
	if datatype.IsNil(m) {
		return nil, &primitive.TypeMismatchError{Expected: protoreflect.FullName(w.kind.String()), Actual: "<nil>"}
	}
	p, ok := m.(datatype.Primitive[V])
	if !ok {
		return nil, &primitive.TypeMismatchError{Expected: protoreflect.FullName(w.kind.String()), Actual: datatype.FullName(m)}
	}
	return p, nil
}

func (w *scalar[V]) Parse(data []byte, loc *time.Location, target datatype.Message) error {
	p, err := w.holder(target)
	if err != nil {
		return err
	}
	text := bytes.TrimSpace(data)
	if string(text) == "null" {
		p.ClearValue()
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}
	v, err := w.parse(text, loc)
	if err != nil {
		return &primitive.ParseError{Kind: w.kind, Text: string(data), Err: err}
	}
	p.SetValue(v)
	return nil
}

func (w *scalar[V]) Wrap(src datatype.Message) (primitive.JSONPrimitive, error) {
	p, err := w.holder(src)
	if err != nil {
		return primitive.JSONPrimitive{}, err
	}
	res := primitive.JSONPrimitive{Value: "null"}
	if p.HasValue() {
		text, err := w.format(p.GetValue())
		if err != nil {
			return primitive.JSONPrimitive{}, &primitive.SerializationError{Type: src.Descriptor().FullName(), Err: err}
		}
		res.Value = text
	}
	el, err := element(src)
	if err != nil {
		return primitive.JSONPrimitive{}, &primitive.SerializationError{Type: src.Descriptor().FullName(), Err: err}
	}
	res.Element = el
	return res, nil
}

func (w *scalar[V]) Validate(src datatype.Message) error {
	p, err := w.holder(src)
	if err != nil {
		return err
	}
	if !p.HasValue() {
		el, err := element(src)
		if err != nil {
			return err
		}
		if el == nil {
			return &primitive.ValidationError{
				Kind: w.kind,
				Type: src.Descriptor().FullName(),
				Rule: "primitive must have a value or an id or extensions",
			}
		}
		return nil
	}
	if len(w.rules) == 0 {
		return nil
	}
	env := w.env(p.GetValue())
	for _, r := range w.rules {
		ok, err := r.Eval(env)
		if err != nil {
			return fmt.Errorf("%w: %w", primitive.ErrValidation, err)
		}
		if !ok {
			return &primitive.ValidationError{Kind: w.kind, Type: src.Descriptor().FullName(), Rule: r.Description}
		}
	}
	return nil
}

func element(m datatype.Message) (datatype.Message, error) {
	ec, ok := m.(datatype.ElementCarrier)
	if !ok {
		return nil, nil
	}
	return ec.PrimitiveElement()
}
