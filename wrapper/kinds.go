package wrapper

import (
	"strconv"
	"unicode/utf8"

	"github.com/signadot/go-fhir/datatype"
	"github.com/signadot/go-fhir/primitive"
)

func String() primitive.Wrapper {
	return &scalar[string]{
		kind:   primitive.StringKind,
		parse:  parseString,
		format: formatString,
		env: func(v string) Env {
			return Env{Text: v, Length: len(v), ValidUTF8: utf8.ValidString(v)}
		},
		rules: stringRules,
	}
}

func Boolean() primitive.Wrapper {
	return &scalar[bool]{
		kind:  primitive.BooleanKind,
		parse: parseBoolean,
		format: func(v bool) (string, error) {
			return strconv.FormatBool(v), nil
		},
	}
}

func Integer() primitive.Wrapper {
	return &scalar[int32]{
		kind:  primitive.IntegerKind,
		parse: parseInteger,
		format: func(v int32) (string, error) {
			return strconv.FormatInt(int64(v), 10), nil
		},
	}
}

func Decimal() primitive.Wrapper {
	return &scalar[string]{
		kind:   primitive.DecimalKind,
		parse:  parseDecimal,
		format: formatDecimal,
		env: func(v string) Env {
			return Env{Text: v, Length: len(v), ValidUTF8: utf8.ValidString(v)}
		},
		rules: decimalRules,
	}
}

func DateTime() primitive.Wrapper {
	return &scalar[datatype.Moment]{
		kind:   primitive.DateTimeKind,
		parse:  parseDateTime,
		format: formatDateTime,
		env: func(v datatype.Moment) Env {
			return Env{Year: v.Time.Year(), Precision: int(v.Precision)}
		},
		rules: dateTimeRules,
	}
}

// Integer64 is the wrapper of the R5 integer64 kind, written in JSON as a
// string.
func Integer64() primitive.Wrapper {
	return &scalar[int64]{
		kind:  primitive.Integer64Kind,
		parse: parseInteger64,
		format: func(v int64) (string, error) {
			return formatString(strconv.FormatInt(v, 10))
		},
	}
}
