package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Check    bool
	Parse    bool
	Wrap     bool
	Validate bool
}

var d *debug

func init() {
	d = &debug{}
	d.Check = boolEnv("FHIR_DEBUG_CHECK")
	d.Parse = boolEnv("FHIR_DEBUG_PARSE")
	d.Wrap = boolEnv("FHIR_DEBUG_WRAP")
	d.Validate = boolEnv("FHIR_DEBUG_VALIDATE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Check reports whether version and type check failures are traced.
func Check() bool {
	return d.Check
}
func Parse() bool {
	return d.Parse
}
func Wrap() bool {
	return d.Wrap
}
func Validate() bool {
	return d.Validate
}

// Logf writes a trace line to stderr. Maps, slices and json.Number
// arguments are rendered as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, json.Number, json.RawMessage:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
