package datatype

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ElementCarrier is implemented by primitives that can carry an id and
// extensions alongside their value.
type ElementCarrier interface {
	// PrimitiveElement returns a detached copy of the id and extensions as
	// the version's Element type, or nil if there are none. The caller owns
	// the result.
	PrimitiveElement() (Message, error)
	// MergeElementJSON merges a FHIR JSON element object (the "_field"
	// companion of a primitive field) into the primitive.
	MergeElementJSON(data []byte) error
}

var ErrBadElement = errors.New("bad element")

// ElementFields is embedded by each version's Element type. X is the
// version's Extension type.
type ElementFields[X any] struct {
	ID        string `json:"id,omitempty"`
	Extension []*X   `json:"extension,omitempty"`
}

func (e *ElementFields[X]) IsEmpty() bool {
	return e.ID == "" && len(e.Extension) == 0
}

// Clone returns a deep copy sharing no extensions with e.
func (e *ElementFields[X]) Clone() (ElementFields[X], error) {
	res := ElementFields[X]{ID: e.ID}
	if len(e.Extension) == 0 {
		return res, nil
	}
	d, err := json.Marshal(e.Extension)
	if err != nil {
		return ElementFields[X]{}, badElement(err)
	}
	if err := json.Unmarshal(d, &res.Extension); err != nil {
		return ElementFields[X]{}, badElement(err)
	}
	return res, nil
}

func badElement(err error) error {
	if errors.Is(err, ErrBadElement) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrBadElement, err)
}

type anyExtension struct {
	ExtensionFields[anyExtension]
}

// CheckElementJSON returns the error MergeJSON would return for data,
// without merging it anywhere.
func CheckElementJSON(data []byte) error {
	var e ElementFields[anyExtension]
	return e.MergeJSON(data)
}

// MergeJSON decodes a FHIR JSON element object and merges it into e. A
// non-empty id replaces the current one; extensions are appended.
func (e *ElementFields[X]) MergeJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrBadElement, err)
	}
	var in ElementFields[X]
	for k, v := range raw {
		switch k {
		case "id":
			if err := json.Unmarshal(v, &in.ID); err != nil {
				return fmt.Errorf("%w: id: %w", ErrBadElement, err)
			}
		case "extension":
			if err := json.Unmarshal(v, &in.Extension); err != nil {
				return fmt.Errorf("%w: extension: %w", ErrBadElement, err)
			}
		default:
			return fmt.Errorf("%w: unknown field %q", ErrBadElement, k)
		}
	}
	if in.ID != "" {
		e.ID = in.ID
	}
	e.Extension = append(e.Extension, in.Extension...)
	return nil
}

// ExtensionFields is embedded by each version's Extension type. Value holds
// the value[x] entries keyed by JSON name, e.g. "valueString".
type ExtensionFields[X any] struct {
	ID        string
	URL       string
	Value     map[string]json.RawMessage
	Extension []*X
}

func (e ExtensionFields[X]) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(e.Value)+3)
	for k, v := range e.Value {
		if !strings.HasPrefix(k, "value") {
			return nil, fmt.Errorf("%w: %q is not a value[x] key", ErrBadElement, k)
		}
		out[k] = v
	}
	url, err := json.Marshal(e.URL)
	if err != nil {
		return nil, err
	}
	out["url"] = url
	if e.ID != "" {
		id, err := json.Marshal(e.ID)
		if err != nil {
			return nil, err
		}
		out["id"] = id
	}
	if len(e.Extension) != 0 {
		ext, err := json.Marshal(e.Extension)
		if err != nil {
			return nil, err
		}
		out["extension"] = ext
	}
	return json.Marshal(out)
}

func (e *ExtensionFields[X]) UnmarshalJSON(d []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(d, &raw); err != nil {
		return err
	}
	res := ExtensionFields[X]{}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := raw[k]
		switch {
		case k == "id":
			if err := json.Unmarshal(v, &res.ID); err != nil {
				return fmt.Errorf("%w: extension id: %w", ErrBadElement, err)
			}
		case k == "url":
			if err := json.Unmarshal(v, &res.URL); err != nil {
				return fmt.Errorf("%w: extension url: %w", ErrBadElement, err)
			}
		case k == "extension":
			if err := json.Unmarshal(v, &res.Extension); err != nil {
				return err
			}
		case strings.HasPrefix(k, "value"):
			if res.Value == nil {
				res.Value = map[string]json.RawMessage{}
			}
			res.Value[k] = append(json.RawMessage(nil), v...)
		default:
			return fmt.Errorf("%w: unknown extension field %q", ErrBadElement, k)
		}
	}
	if res.URL == "" {
		return fmt.Errorf("%w: extension url is required", ErrBadElement)
	}
	if len(res.Value) > 1 {
		return fmt.Errorf("%w: extension %s has %d values", ErrBadElement, res.URL, len(res.Value))
	}
	*e = res
	return nil
}
