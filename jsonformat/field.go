package jsonformat

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/signadot/go-fhir/datatype"
	"github.com/signadot/go-fhir/primitive"

	jsonpatch "github.com/evanphx/json-patch"
)

var (
	ErrNotObject = errors.New("not a JSON object")
	ErrNoElement = errors.New("primitive cannot carry an element")
)

var null = json.RawMessage("null")

// ElementName returns the name of the field carrying the element of the
// primitive field name.
func ElementName(name string) string {
	return "_" + name
}

// SetField wraps m with h and merges it into doc as the field name. A
// primitive without value is written as its element alone.
func SetField(h primitive.Handler, doc []byte, name string, m datatype.Message) ([]byte, error) {
	p, err := h.WrapPrimitive(m)
	if err != nil {
		return nil, err
	}
	return MergeField(doc, name, p)
}

// MergeField merges p into doc as the field name. Any previous value and
// element of the field are removed first.
func MergeField(doc []byte, name string, p primitive.JSONPrimitive) ([]byte, error) {
	doc = bytes.TrimSpace(doc)
	if len(doc) == 0 {
		doc = []byte("{}")
	}
	if _, err := object(doc); err != nil {
		return nil, err
	}
	reset, err := json.Marshal(map[string]json.RawMessage{name: null, ElementName(name): null})
	if err != nil {
		return nil, err
	}
	doc, err = jsonpatch.MergePatch(doc, reset)
	if err != nil {
		return nil, err
	}
	patch := map[string]json.RawMessage{}
	if p.IsNonNull() {
		if !json.Valid([]byte(p.Value)) {
			return nil, fmt.Errorf("field %s: invalid JSON value %q", name, p.Value)
		}
		patch[name] = json.RawMessage(p.Value)
	}
	if p.Element != nil {
		el, err := json.Marshal(p.Element)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", ElementName(name), err)
		}
		patch[ElementName(name)] = el
	}
	if len(patch) == 0 {
		return doc, nil
	}
	pd, err := json.Marshal(patch)
	if err != nil {
		return nil, err
	}
	return jsonpatch.MergePatch(doc, pd)
}

// GetField reads the field name and its element from doc into target.
// Absent fields leave target as it is. On error target is unchanged.
func GetField(h primitive.Handler, doc []byte, name string, target datatype.Message, opts ...primitive.ParseOption) error {
	if err := h.CheckVersion(target); err != nil {
		return err
	}
	obj, err := object(doc)
	if err != nil {
		return err
	}
	el, hasEl := obj[ElementName(name)]
	var ec datatype.ElementCarrier
	if hasEl {
		var ok bool
		if ec, ok = target.(datatype.ElementCarrier); !ok {
			return fmt.Errorf("%w: %s", ErrNoElement, target.Descriptor().FullName())
		}
		if err := datatype.CheckElementJSON(el); err != nil {
			return fmt.Errorf("field %s: %w", ElementName(name), err)
		}
	}
	if raw, ok := obj[name]; ok {
		if err := h.ParseInto(raw, target, opts...); err != nil {
			return fmt.Errorf("field %s: %w", name, err)
		}
	}
	if !hasEl {
		return nil
	}
	if err := ec.MergeElementJSON(el); err != nil {
		return fmt.Errorf("field %s: %w", ElementName(name), err)
	}
	return nil
}

func object(doc []byte) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(doc, &obj); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotObject, err)
	}
	if obj == nil {
		return nil, ErrNotObject
	}
	return obj, nil
}
