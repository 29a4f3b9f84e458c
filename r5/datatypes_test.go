package r5

import (
	"testing"

	"github.com/signadot/go-fhir/primitive"
)

func TestInteger64Registered(t *testing.T) {
	w, err := Wrappers().Wrapper((&Integer64{}).Descriptor())
	if err != nil {
		t.Fatal(err)
	}
	if w.Kind() != primitive.Integer64Kind {
		t.Errorf("got %s", w.Kind())
	}
	if got := string((&Integer64{}).Descriptor().FullName()); got != "google.fhir.r5.core.Integer64" {
		t.Errorf("got %s", got)
	}
}
