package primitive_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/go-fhir/primitive"
	"github.com/signadot/go-fhir/r4"
	"github.com/signadot/go-fhir/stu3"
	"github.com/signadot/go-fhir/version"
	"github.com/signadot/go-fhir/wrapper"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// foreignExtension is described by a type outside every FHIR version.
type foreignExtension struct{}

func (*foreignExtension) Descriptor() protoreflect.MessageDescriptor {
	return (&descriptorpb.DescriptorProto{}).ProtoReflect().Descriptor()
}

func TestBind(t *testing.T) {
	h, err := primitive.Bind[r4.Extension, r4.String, r4.Boolean, r4.Integer, r4.Decimal, r4.DateTime](
		primitive.WrapperFactoryFunc(r4.Wrappers().Wrapper))
	if err != nil {
		t.Fatal(err)
	}
	if h.Version() != version.R4 {
		t.Errorf("got %s", h.Version())
	}
	if v, err := h.GetIntegerValue(h.NewInteger(7)); err != nil || v != 7 {
		t.Errorf("got %d %v", v, err)
	}
}

func TestBindErrors(t *testing.T) {
	r4Wrappers := r4.Wrappers()
	decimalOnly := primitive.WrapperFactoryFunc(func(protoreflect.MessageDescriptor) (primitive.Wrapper, error) {
		return wrapper.Decimal(), nil
	})
	noWrappers := primitive.WrapperFactoryFunc(func(d protoreflect.MessageDescriptor) (primitive.Wrapper, error) {
		return nil, &primitive.UnsupportedKindError{Type: d.FullName(), Version: version.R4}
	})
	tests := []struct {
		name string
		bind func() error
		want string
	}{
		{
			name: "nil factory",
			bind: func() error {
				_, err := primitive.Bind[r4.Extension, r4.String, r4.Boolean, r4.Integer, r4.Decimal, r4.DateTime](nil)
				return err
			},
			want: "nil wrapper factory",
		},
		{
			name: "extension of no version",
			bind: func() error {
				_, err := primitive.Bind[foreignExtension, r4.String, r4.Boolean, r4.Integer, r4.Decimal, r4.DateTime](r4Wrappers)
				return err
			},
			want: "extension type google.protobuf.DescriptorProto",
		},
		{
			name: "representation of another version",
			bind: func() error {
				_, err := primitive.Bind[r4.Extension, stu3.String, r4.Boolean, r4.Integer, r4.Decimal, r4.DateTime](r4Wrappers)
				return err
			},
			want: "google.fhir.stu3.proto.String",
		},
		{
			name: "shared representation",
			bind: func() error {
				_, err := primitive.Bind[r4.Extension, r4.Decimal, r4.Boolean, r4.Integer, r4.Decimal, r4.DateTime](r4Wrappers)
				return err
			},
			want: "represents both string and decimal",
		},
		{
			name: "wrapper of the wrong kind",
			bind: func() error {
				_, err := primitive.Bind[r4.Extension, r4.String, r4.Boolean, r4.Integer, r4.Decimal, r4.DateTime](decimalOnly)
				return err
			},
			want: "handles decimal, not string",
		},
		{
			name: "missing wrapper",
			bind: func() error {
				_, err := primitive.Bind[r4.Extension, r4.String, r4.Boolean, r4.Integer, r4.Decimal, r4.DateTime](noWrappers)
				if !errors.Is(err, primitive.ErrUnsupportedKind) {
					t.Errorf("missing wrapper: got %v", err)
				}
				return err
			},
			want: "string",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bind()
			if !errors.Is(err, primitive.ErrBadBinding) {
				t.Fatalf("got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("%q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestMustBindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic")
		}
	}()
	primitive.MustBind[r4.Extension, r4.String, r4.Boolean, r4.Integer, r4.Decimal, r4.DateTime](nil)
}
