package stu3

import (
	"testing"

	"github.com/signadot/go-fhir/version"
)

func TestHandlerBinding(t *testing.T) {
	h := PrimitiveHandler()
	if h.Version() != version.STU3 {
		t.Errorf("got %s", h.Version())
	}
	if got := string(h.StringDescriptor().FullName()); got != "google.fhir.stu3.proto.String" {
		t.Errorf("got %s", got)
	}
	if _, ok := h.NewBoolean(true).(*Boolean); !ok {
		t.Error("NewBoolean does not return an STU3 Boolean")
	}
}
