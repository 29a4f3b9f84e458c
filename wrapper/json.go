package wrapper

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	errTrailing = errors.New("trailing data after value")
	errEncoding = errors.New("input is not valid UTF-8")
)

// decodeValue decodes a single JSON value, keeping numbers as json.Number.
// Input which is not valid UTF-8 is rejected rather than decoded with
// replacement characters.
func decodeValue(data []byte) (any, error) {
	if !utf8.Valid(data) {
		return nil, errEncoding
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errTrailing
	}
	return v, nil
}

func decodeAs[T any](data []byte, what string) (T, error) {
	var zero T
	v, err := decodeValue(data)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("expected a JSON %s, got %T", what, v)
	}
	return t, nil
}

func parseString(data []byte, _ *time.Location) (string, error) {
	return decodeAs[string](data, "string")
}

func formatString(v string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

func parseBoolean(data []byte, _ *time.Location) (bool, error) {
	return decodeAs[bool](data, "boolean")
}

func parseInteger(data []byte, _ *time.Location) (int32, error) {
	n, err := decodeAs[json.Number](data, "number")
	if err != nil {
		return 0, err
	}
	i, err := strconv.ParseInt(n.String(), 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(i), nil
}

func parseDecimal(data []byte, _ *time.Location) (string, error) {
	n, err := decodeAs[json.Number](data, "number")
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

func formatDecimal(v string) (string, error) {
	if v == "" || v != strings.TrimSpace(v) || !(v[0] == '-' || (v[0] >= '0' && v[0] <= '9')) || !json.Valid([]byte(v)) {
		return "", fmt.Errorf("%q is not a JSON number", v)
	}
	return v, nil
}

func parseInteger64(data []byte, _ *time.Location) (int64, error) {
	s, err := decodeAs[string](data, "string")
	if err != nil {
		return 0, err
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	// no sign, leading zeros or "-0"
	if strconv.FormatInt(i, 10) != s {
		return 0, fmt.Errorf("%q is not a canonical integer64", s)
	}
	return i, nil
}
