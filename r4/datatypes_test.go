package r4

import (
	"testing"

	"github.com/signadot/go-fhir/datatype"
	"github.com/signadot/go-fhir/version"
)

func TestFile(t *testing.T) {
	v, err := datatype.VersionOf(File())
	if err != nil {
		t.Fatal(err)
	}
	if v != version.R4 {
		t.Errorf("got %s", v)
	}
	if (&String{}).Descriptor().ParentFile() != File() {
		t.Error("String not declared in the R4 file")
	}
}

func TestPrimitiveElement(t *testing.T) {
	s := &String{}
	el, err := s.PrimitiveElement()
	if err != nil {
		t.Fatal(err)
	}
	if el != nil {
		t.Fatalf("empty primitive has element %v", el)
	}
	s.ID = "x"
	el, err = s.PrimitiveElement()
	if err != nil {
		t.Fatal(err)
	}
	e, ok := el.(*Element)
	if !ok || e.ID != "x" {
		t.Fatalf("got %#v", el)
	}
	e.ID = "y"
	if s.ID != "x" {
		t.Error("element is not detached")
	}
}

func TestHandlerBinding(t *testing.T) {
	h := PrimitiveHandler()
	if h.Version() != version.R4 {
		t.Errorf("got %s", h.Version())
	}
	if h.StringDescriptor() != (&String{}).Descriptor() {
		t.Error("string descriptor")
	}
	if h.DecimalDescriptor() == h.StringDescriptor() {
		t.Error("decimal and string share a descriptor")
	}
}
