package datatype

// Primitive is the capability set shared by all primitive representations
// whose semantic value has type V.
type Primitive[V any] interface {
	Message
	GetValue() V
	SetValue(V)
	HasValue() bool
	ClearValue()
}

// Scalar holds the value of a primitive. A nil Value means no value is set,
// which is distinct from a present zero value.
type Scalar[V any] struct {
	Value *V
}

func (s *Scalar[V]) GetValue() V {
	if s.Value == nil {
		var zero V
		return zero
	}
	return *s.Value
}

func (s *Scalar[V]) SetValue(v V) {
	s.Value = &v
}

func (s *Scalar[V]) HasValue() bool {
	return s.Value != nil
}

func (s *Scalar[V]) ClearValue() {
	s.Value = nil
}
