package wrapper_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/signadot/go-fhir/datatype"
	"github.com/signadot/go-fhir/primitive"
	"github.com/signadot/go-fhir/r4"
	"github.com/signadot/go-fhir/r5"
	"github.com/signadot/go-fhir/version"
	"github.com/signadot/go-fhir/wrapper"
)

func TestParseAndWrap(t *testing.T) {
	tests := []struct {
		name    string
		w       primitive.Wrapper
		m       datatype.Message
		in      string
		want    string
		wantErr bool
	}{
		{name: "string", w: wrapper.String(), m: &r4.String{}, in: `"a<b>"`, want: `"a<b>"`},
		{name: "string escape", w: wrapper.String(), m: &r4.String{}, in: `"line\u000a"`, want: `"line\n"`},
		{name: "string not string", w: wrapper.String(), m: &r4.String{}, in: `12`, wantErr: true},
		{name: "string bad utf8", w: wrapper.String(), m: &r4.String{}, in: "\"a\xff\"", wantErr: true},
		{name: "dateTime bad utf8", w: wrapper.DateTime(), m: &r4.DateTime{}, in: "\"2020\xc3\"", wantErr: true},
		{name: "boolean", w: wrapper.Boolean(), m: &r4.Boolean{}, in: ` false `, want: `false`},
		{name: "boolean string", w: wrapper.Boolean(), m: &r4.Boolean{}, in: `"true"`, wantErr: true},
		{name: "integer", w: wrapper.Integer(), m: &r4.Integer{}, in: `-2147483648`, want: `-2147483648`},
		{name: "integer overflow", w: wrapper.Integer(), m: &r4.Integer{}, in: `2147483648`, wantErr: true},
		{name: "integer fraction", w: wrapper.Integer(), m: &r4.Integer{}, in: `1.0`, wantErr: true},
		{name: "integer exponent", w: wrapper.Integer(), m: &r4.Integer{}, in: `1e2`, wantErr: true},
		{name: "decimal", w: wrapper.Decimal(), m: &r4.Decimal{}, in: `1.50`, want: `1.50`},
		{name: "decimal exponent", w: wrapper.Decimal(), m: &r4.Decimal{}, in: `-1.5E+3`, want: `-1.5E+3`},
		{name: "decimal two points", w: wrapper.Decimal(), m: &r4.Decimal{}, in: `12.3.4`, wantErr: true},
		{name: "decimal trailing", w: wrapper.Decimal(), m: &r4.Decimal{}, in: `1 2`, wantErr: true},
		{name: "integer64", w: wrapper.Integer64(), m: &r5.Integer64{}, in: `"9223372036854775807"`, want: `"9223372036854775807"`},
		{name: "integer64 number", w: wrapper.Integer64(), m: &r5.Integer64{}, in: `12`, wantErr: true},
		{name: "integer64 negative", w: wrapper.Integer64(), m: &r5.Integer64{}, in: `"-12"`, want: `"-12"`},
		{name: "integer64 leading zero", w: wrapper.Integer64(), m: &r5.Integer64{}, in: `"007"`, wantErr: true},
		{name: "integer64 plus", w: wrapper.Integer64(), m: &r5.Integer64{}, in: `"+5"`, wantErr: true},
		{name: "integer64 negative zero", w: wrapper.Integer64(), m: &r5.Integer64{}, in: `"-0"`, wantErr: true},
		{name: "year", w: wrapper.DateTime(), m: &r4.DateTime{}, in: `"2021"`, want: `"2021"`},
		{name: "month", w: wrapper.DateTime(), m: &r4.DateTime{}, in: `"2021-03"`, want: `"2021-03"`},
		{name: "day", w: wrapper.DateTime(), m: &r4.DateTime{}, in: `"2021-03-04"`, want: `"2021-03-04"`},
		{name: "second", w: wrapper.DateTime(), m: &r4.DateTime{}, in: `"2021-03-04T05:06:07Z"`, want: `"2021-03-04T05:06:07Z"`},
		{name: "millis", w: wrapper.DateTime(), m: &r4.DateTime{}, in: `"2021-03-04T05:06:07.5+05:30"`, want: `"2021-03-04T05:06:07.500+05:30"`},
		{name: "micros", w: wrapper.DateTime(), m: &r4.DateTime{}, in: `"2021-03-04T05:06:07.1234-08:00"`, want: `"2021-03-04T05:06:07.123400-08:00"`},
		{name: "nanos", w: wrapper.DateTime(), m: &r4.DateTime{}, in: `"2021-03-04T05:06:07.1234567Z"`, wantErr: true},
		{name: "no zone", w: wrapper.DateTime(), m: &r4.DateTime{}, in: `"2021-03-04T05:06:07"`, wantErr: true},
		{name: "bad day", w: wrapper.DateTime(), m: &r4.DateTime{}, in: `"2021-02-30"`, wantErr: true},
		{name: "bad month", w: wrapper.DateTime(), m: &r4.DateTime{}, in: `"2021-13"`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.w.Parse([]byte(tt.in), time.UTC, tt.m)
			if tt.wantErr {
				if !errors.Is(err, primitive.ErrParse) {
					t.Fatalf("expected parse error, got %v", err)
				}
				var pe *primitive.ParseError
				if !errors.As(err, &pe) || pe.Kind != tt.w.Kind() || pe.Text != tt.in {
					t.Errorf("bad parse error %#v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			jp, err := tt.w.Wrap(tt.m)
			if err != nil {
				t.Fatal(err)
			}
			if jp.Value != tt.want {
				t.Errorf("got %s, want %s", jp.Value, tt.want)
			}
			if jp.Element != nil {
				t.Errorf("unexpected element %v", jp.Element)
			}
		})
	}
}

func TestParseFailureKeepsValue(t *testing.T) {
	s := &r4.Integer{}
	s.SetValue(7)
	if err := wrapper.Integer().Parse([]byte(`"x"`), time.UTC, s); err == nil {
		t.Fatal("expected error")
	}
	if !s.HasValue() || s.GetValue() != 7 {
		t.Errorf("value changed on failure: %v", s.Value)
	}
	if err := wrapper.Integer().Parse([]byte(`null`), time.UTC, s); err != nil {
		t.Fatal(err)
	}
	if s.HasValue() {
		t.Error("null did not clear the value")
	}
}

func TestPartialDateLocation(t *testing.T) {
	loc := time.FixedZone("+09:00", 9*3600)
	d := &r4.DateTime{}
	if err := wrapper.DateTime().Parse([]byte(`"2020-06-01"`), loc, d); err != nil {
		t.Fatal(err)
	}
	got := d.GetValue()
	want := time.Date(2020, 6, 1, 0, 0, 0, 0, loc)
	if !got.Time.Equal(want) || got.Precision != datatype.PrecisionDay {
		t.Errorf("got %v %s, want %v", got.Time, got.Precision, want)
	}
	if got.Time.Location() != loc {
		t.Errorf("location %s", got.Time.Location())
	}
}

func TestWrapNull(t *testing.T) {
	b := &r4.Boolean{}
	jp, err := wrapper.Boolean().Wrap(b)
	if err != nil {
		t.Fatal(err)
	}
	if jp.Value != "null" || jp.IsNonNull() {
		t.Errorf("got %q", jp.Value)
	}
	b.SetValue(false)
	jp, err = wrapper.Boolean().Wrap(b)
	if err != nil {
		t.Fatal(err)
	}
	if jp.Value != "false" || !jp.IsNonNull() {
		t.Errorf("got %q", jp.Value)
	}
}

func TestWrapElement(t *testing.T) {
	s := &r4.String{}
	if err := s.MergeElementJSON([]byte(`{"id":"s1","extension":[{"url":"http://example.org/x","valueBoolean":true}]}`)); err != nil {
		t.Fatal(err)
	}
	jp, err := wrapper.String().Wrap(s)
	if err != nil {
		t.Fatal(err)
	}
	el, ok := jp.Element.(*r4.Element)
	if !ok {
		t.Fatalf("element is %T", jp.Element)
	}
	if el.ID != "s1" || len(el.Extension) != 1 {
		t.Fatalf("bad element %+v", el)
	}
	el.Extension[0].URL = "changed"
	if s.Extension[0].URL != "http://example.org/x" {
		t.Error("element shares state with the primitive")
	}
}

func TestWrapBadDecimal(t *testing.T) {
	for _, v := range []string{"1..2", "1.5 ", " 1.5", "1.5\n"} {
		d := &r4.Decimal{}
		d.SetValue(v)
		_, err := wrapper.Decimal().Wrap(d)
		if !errors.Is(err, primitive.ErrSerialization) {
			t.Errorf("%q: got %v", v, err)
		}
	}
}

func TestValidate(t *testing.T) {
	str := func(v string) datatype.Message {
		s := &r4.String{}
		s.SetValue(v)
		return s
	}
	dec := func(v string) datatype.Message {
		d := &r4.Decimal{}
		d.SetValue(v)
		return d
	}
	dt := func(y int, p datatype.Precision) datatype.Message {
		d := &r4.DateTime{}
		d.SetValue(datatype.Moment{Time: time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC), Precision: p})
		return d
	}
	withID := &r4.Boolean{}
	withID.ID = "only-id"

	tests := []struct {
		name  string
		w     primitive.Wrapper
		m     datatype.Message
		valid bool
	}{
		{name: "string", w: wrapper.String(), m: str("x"), valid: true},
		{name: "empty string", w: wrapper.String(), m: str("")},
		{name: "long string", w: wrapper.String(), m: str(strings.Repeat("a", 1<<20+1))},
		{name: "bad utf8", w: wrapper.String(), m: str("\xff")},
		{name: "decimal", w: wrapper.Decimal(), m: dec("-0.50e10"), valid: true},
		{name: "decimal leading zero", w: wrapper.Decimal(), m: dec("01")},
		{name: "decimal two points", w: wrapper.Decimal(), m: dec("12.3.4")},
		{name: "dateTime", w: wrapper.DateTime(), m: dt(2000, datatype.PrecisionYear), valid: true},
		{name: "dateTime year 0", w: wrapper.DateTime(), m: dt(0, datatype.PrecisionYear)},
		{name: "dateTime no precision", w: wrapper.DateTime(), m: dt(2000, 0)},
		{name: "no value", w: wrapper.Boolean(), m: &r4.Boolean{}},
		{name: "no value with id", w: wrapper.Boolean(), m: withID, valid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.w.Validate(tt.m)
			if tt.valid {
				if err != nil {
					t.Errorf("unexpected error %v", err)
				}
				return
			}
			var ve *primitive.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if ve.Kind != tt.w.Kind() || ve.Rule == "" {
				t.Errorf("bad validation error %+v", ve)
			}
		})
	}
}

func TestWrongRepresentation(t *testing.T) {
	err := wrapper.String().Parse([]byte(`"x"`), time.UTC, &r4.Integer{})
	if !errors.Is(err, primitive.ErrTypeMismatch) {
		t.Errorf("got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	reg := r4.Wrappers()
	if reg.Version() != version.R4 {
		t.Fatalf("version %s", reg.Version())
	}
	h := r4.PrimitiveHandler()
	w, err := reg.Wrapper(h.DecimalDescriptor())
	if err != nil {
		t.Fatal(err)
	}
	if w.Kind() != primitive.DecimalKind {
		t.Errorf("kind %s", w.Kind())
	}
	if got := len(reg.Entries()); got != 5 {
		t.Errorf("%d entries", got)
	}
	if got := len(r5.Wrappers().Entries()); got != 6 {
		t.Errorf("%d r5 entries", got)
	}

	// same name, other version
	_, err = reg.Wrapper(r5.PrimitiveHandler().DecimalDescriptor())
	if !errors.Is(err, primitive.ErrUnsupportedKind) {
		t.Errorf("got %v", err)
	}
	_, err = reg.Wrapper((&r4.Element{}).Descriptor())
	if !errors.Is(err, primitive.ErrUnsupportedKind) {
		t.Errorf("element: got %v", err)
	}

	fresh := wrapper.NewRegistry(version.R4)
	if err := fresh.Register(h.StringDescriptor(), wrapper.String()); err != nil {
		t.Fatal(err)
	}
	if err := fresh.Register(h.StringDescriptor(), wrapper.String()); err == nil {
		t.Error("duplicate registration accepted")
	}
	err = fresh.Register(r5.PrimitiveHandler().StringDescriptor(), wrapper.String())
	if !errors.Is(err, primitive.ErrVersionMismatch) {
		t.Errorf("other version: got %v", err)
	}
}

func TestRule(t *testing.T) {
	r, err := wrapper.NewRule("short", `Length < 3`)
	if err != nil {
		t.Fatal(err)
	}
	ok, err := r.Eval(wrapper.Env{Length: 2})
	if err != nil || !ok {
		t.Errorf("got %v %v", ok, err)
	}
	ok, err = r.Eval(wrapper.Env{Length: 3})
	if err != nil || ok {
		t.Errorf("got %v %v", ok, err)
	}
	if _, err := wrapper.NewRule("bad", `Length + "x"`); err == nil {
		t.Error("expected compile error")
	}
	if _, err := wrapper.NewRule("not bool", `Length`); err == nil {
		t.Error("expected non-bool rule to fail")
	}
}

func TestMoment(t *testing.T) {
	tests := []string{
		"1999",
		"1999-12",
		"1999-12-31",
		"1999-12-31T23:59:59Z",
		"1999-12-31T23:59:59.001-05:00",
		"1999-12-31T23:59:59.000001+14:00",
	}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			m, err := wrapper.ParseMoment(s, time.UTC)
			if err != nil {
				t.Fatal(err)
			}
			got, err := wrapper.FormatMoment(m)
			if err != nil {
				t.Fatal(err)
			}
			if got != s {
				t.Errorf("got %s", got)
			}
		})
	}
	if _, err := wrapper.ParseMoment("1999-12-31T23:59:59+15:00", time.UTC); err == nil {
		t.Error("zone beyond +14:00 accepted")
	}
}
