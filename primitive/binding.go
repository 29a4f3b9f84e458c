package primitive

import (
	"errors"
	"fmt"

	"github.com/signadot/go-fhir/datatype"
	"github.com/signadot/go-fhir/debug"
	"github.com/signadot/go-fhir/version"

	"google.golang.org/protobuf/reflect/protoreflect"
)

var ErrBadBinding = errors.New("bad binding")

// messagePtr constrains a type parameter to *R where *R is a Message.
type messagePtr[R any] interface {
	*R
	datatype.Message
}

// representation constrains a type parameter to *R where *R is a primitive
// holding values of type V.
type representation[R any, V any] interface {
	*R
	datatype.Primitive[V]
}

type kindOps[V any] interface {
	kind() Kind
	descriptor() protoreflect.MessageDescriptor
	make(v V) datatype.Message
	get(m datatype.Message) (V, error)
}

type kindOf[R any, V any, PR representation[R, V]] struct {
	k    Kind
	desc protoreflect.MessageDescriptor
}

func newKind[R any, V any, PR representation[R, V]](k Kind) *kindOf[R, V, PR] {
	return &kindOf[R, V, PR]{k: k, desc: PR(new(R)).Descriptor()}
}

func (k *kindOf[R, V, PR]) kind() Kind                                 { return k.k }
func (k *kindOf[R, V, PR]) descriptor() protoreflect.MessageDescriptor { return k.desc }

func (k *kindOf[R, V, PR]) make(v V) datatype.Message {
	p := PR(new(R))
	p.SetValue(v)
	return p
}

func (k *kindOf[R, V, PR]) get(m datatype.Message) (V, error) {
	var zero V
	mismatch := &TypeMismatchError{Expected: k.desc.FullName(), Actual: datatype.FullName(m)}
	if m.Descriptor() != k.desc {
		return zero, mismatch
	}
	p, ok := m.(PR)
	if !ok {
		return zero, mismatch
	}
	return p.GetValue(), nil
}

// Binding implements Handler for one FHIR version. It is immutable once
// constructed by Bind.
type Binding struct {
	version  version.Version
	wrappers WrapperFactory

	str      kindOps[string]
	boolean  kindOps[bool]
	integer  kindOps[int32]
	decimal  kindOps[string]
	dateTime kindOps[datatype.Moment]
}

var _ Handler = (*Binding)(nil)

// Bind builds the handler of the version declaring X, the version's
// Extension type. S, B, I, D and T are the version's representations of
// string, boolean, integer, decimal and dateTime. The pointer type
// parameters are inferred:
//
//	h, err := primitive.Bind[Extension, String, Boolean, Integer, Decimal, DateTime](wrappers)
//
// Bind fails if a representation belongs to another version than X, if
// two kinds share a representation, or if wrappers has no wrapper of the
// right kind for one of them.
func Bind[X, S, B, I, D, T any,
	PX messagePtr[X],
	PS representation[S, string],
	PB representation[B, bool],
	PI representation[I, int32],
	PD representation[D, string],
	PT representation[T, datatype.Moment],
](wrappers WrapperFactory) (*Binding, error) {
	if wrappers == nil {
		return nil, fmt.Errorf("%w: nil wrapper factory", ErrBadBinding)
	}
	xd := PX(new(X)).Descriptor()
	v, err := datatype.VersionOf(xd)
	if err != nil {
		return nil, fmt.Errorf("%w: extension type %s: %w", ErrBadBinding, xd.FullName(), err)
	}
	b := &Binding{
		version:  v,
		wrappers: wrappers,
		str:      newKind[S, string, PS](StringKind),
		boolean:  newKind[B, bool, PB](BooleanKind),
		integer:  newKind[I, int32, PI](IntegerKind),
		decimal:  newKind[D, string, PD](DecimalKind),
		dateTime: newKind[T, datatype.Moment, PT](DateTimeKind),
	}
	seen := map[protoreflect.FullName]Kind{xd.FullName(): 0}
	for _, k := range b.kinds() {
		d := k.descriptor()
		if prev, ok := seen[d.FullName()]; ok {
			if prev == 0 {
				return nil, fmt.Errorf("%w: %s represents both the extension and %s", ErrBadBinding, d.FullName(), k.kind())
			}
			return nil, fmt.Errorf("%w: %s represents both %s and %s", ErrBadBinding, d.FullName(), prev, k.kind())
		}
		seen[d.FullName()] = k.kind()
		if err := b.CheckDescriptorVersion(d); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrBadBinding, k.kind(), err)
		}
		w, err := wrappers.Wrapper(d)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrBadBinding, k.kind(), err)
		}
		if w.Kind() != k.kind() {
			return nil, fmt.Errorf("%w: wrapper for %s handles %s, not %s", ErrBadBinding, d.FullName(), w.Kind(), k.kind())
		}
	}
	return b, nil
}

// MustBind is Bind which panics on error.
func MustBind[X, S, B, I, D, T any,
	PX messagePtr[X],
	PS representation[S, string],
	PB representation[B, bool],
	PI representation[I, int32],
	PD representation[D, string],
	PT representation[T, datatype.Moment],
](wrappers WrapperFactory) *Binding {
	b, err := Bind[X, S, B, I, D, T, PX, PS, PB, PI, PD, PT](wrappers)
	if err != nil {
		panic(err)
	}
	return b
}

type kindInfo interface {
	kind() Kind
	descriptor() protoreflect.MessageDescriptor
}

func (b *Binding) kinds() []kindInfo {
	return []kindInfo{b.str, b.boolean, b.integer, b.decimal, b.dateTime}
}

func (b *Binding) Version() version.Version { return b.version }

func (b *Binding) CheckVersion(m datatype.Message) error {
	if datatype.IsNil(m) {
		err := &VersionMismatchError{Type: datatype.FullName(m), Want: b.version}
		if debug.Check() {
			debug.Logf("check %s: %v\n", b.version, err)
		}
		return err
	}
	return b.CheckDescriptorVersion(m.Descriptor())
}

func (b *Binding) CheckDescriptorVersion(d protoreflect.Descriptor) error {
	if d == nil {
		return &VersionMismatchError{Type: "<nil>", Want: b.version}
	}
	got, err := datatype.VersionOf(d)
	if err == nil && got == b.version {
		return nil
	}
	mismatch := &VersionMismatchError{Type: d.FullName(), Want: b.version}
	if err == nil {
		mismatch.Got = got
	}
	if debug.Check() {
		debug.Logf("check %s: %v\n", b.version, mismatch)
	}
	return mismatch
}

// wrapper resolves the wrapper for m after checking its version.
func (b *Binding) wrapper(m datatype.Message) (Wrapper, error) {
	if err := b.CheckVersion(m); err != nil {
		return nil, err
	}
	return b.wrappers.Wrapper(m.Descriptor())
}

func (b *Binding) ParseInto(data []byte, target datatype.Message, opts ...ParseOption) error {
	w, err := b.wrapper(target)
	if err != nil {
		return err
	}
	loc := LocationFromOpts(opts...)
	if debug.Parse() {
		debug.Logf("parse %s %s in %s: %q\n", b.version, target.Descriptor().FullName(), loc, data)
	}
	return w.Parse(data, loc, target)
}

func (b *Binding) WrapPrimitive(m datatype.Message) (JSONPrimitive, error) {
	w, err := b.wrapper(m)
	if err != nil {
		return JSONPrimitive{}, err
	}
	res, err := w.Wrap(m)
	if debug.Wrap() {
		debug.Logf("wrap %s %s: %q (element %t) %v\n", b.version, m.Descriptor().FullName(), res.Value, res.Element != nil, err)
	}
	return res, err
}

func (b *Binding) ValidatePrimitive(m datatype.Message) error {
	w, err := b.wrapper(m)
	if err != nil {
		return err
	}
	err = w.Validate(m)
	if debug.Validate() {
		debug.Logf("validate %s %s: %v\n", b.version, m.Descriptor().FullName(), err)
	}
	return err
}

// getValue checks m's version and then its type against ops.
func getValue[V any](b *Binding, ops kindOps[V], m datatype.Message) (V, error) {
	if err := b.CheckVersion(m); err != nil {
		var zero V
		return zero, err
	}
	v, err := ops.get(m)
	if err != nil && debug.Check() {
		debug.Logf("check %s: %v\n", b.version, err)
	}
	return v, err
}

func (b *Binding) GetStringValue(m datatype.Message) (string, error) {
	return getValue(b, b.str, m)
}
func (b *Binding) NewString(v string) datatype.Message { return b.str.make(v) }
func (b *Binding) StringDescriptor() protoreflect.MessageDescriptor {
	return b.str.descriptor()
}

func (b *Binding) GetBooleanValue(m datatype.Message) (bool, error) {
	return getValue(b, b.boolean, m)
}
func (b *Binding) NewBoolean(v bool) datatype.Message { return b.boolean.make(v) }
func (b *Binding) BooleanDescriptor() protoreflect.MessageDescriptor {
	return b.boolean.descriptor()
}

func (b *Binding) GetIntegerValue(m datatype.Message) (int32, error) {
	return getValue(b, b.integer, m)
}
func (b *Binding) NewInteger(v int32) datatype.Message { return b.integer.make(v) }
func (b *Binding) IntegerDescriptor() protoreflect.MessageDescriptor {
	return b.integer.descriptor()
}

func (b *Binding) GetDecimalValue(m datatype.Message) (string, error) {
	return getValue(b, b.decimal, m)
}
func (b *Binding) NewDecimal(v string) datatype.Message { return b.decimal.make(v) }
func (b *Binding) DecimalDescriptor() protoreflect.MessageDescriptor {
	return b.decimal.descriptor()
}

func (b *Binding) GetDateTimeValue(m datatype.Message) (datatype.Moment, error) {
	return getValue(b, b.dateTime, m)
}
func (b *Binding) NewDateTime(v datatype.Moment) datatype.Message { return b.dateTime.make(v) }
func (b *Binding) DateTimeDescriptor() protoreflect.MessageDescriptor {
	return b.dateTime.descriptor()
}
