package versions

import (
	"errors"
	"testing"

	"github.com/signadot/go-fhir/primitive"
	"github.com/signadot/go-fhir/version"
)

func TestHandler(t *testing.T) {
	for _, v := range version.All() {
		h, err := Handler(v)
		if err != nil {
			t.Fatal(err)
		}
		if h.Version() != v {
			t.Errorf("got %s, want %s", h.Version(), v)
		}
	}
	if _, err := Handler(version.Version(9)); !errors.Is(err, version.ErrBadVersion) {
		t.Errorf("got %v", err)
	}
	if got := len(Handlers()); got != len(version.All()) {
		t.Errorf("%d handlers", got)
	}
}

func TestNew(t *testing.T) {
	for _, v := range version.All() {
		h, _ := Handler(v)
		for _, k := range primitive.Kinds() {
			m, err := New(v, k)
			if k == primitive.Integer64Kind && v != version.R5 {
				if !errors.Is(err, primitive.ErrUnsupportedKind) {
					t.Errorf("%s %s: got %v", v, k, err)
				}
				continue
			}
			if err != nil {
				t.Fatalf("%s %s: %v", v, k, err)
			}
			if err := h.CheckVersion(m); err != nil {
				t.Errorf("%s %s: %v", v, k, err)
			}
			jp, err := h.WrapPrimitive(m)
			if err != nil {
				t.Fatalf("%s %s: %v", v, k, err)
			}
			if jp.IsNonNull() {
				t.Errorf("%s %s: new instance has value %s", v, k, jp.Value)
			}
		}
	}
}
