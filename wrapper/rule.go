package wrapper

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is the environment rules are evaluated against.
type Env struct {
	// Text is the value of a string or decimal.
	Text string
	// Length is the length of Text in bytes.
	Length    int
	ValidUTF8 bool
	// Year and Precision describe a dateTime.
	Year      int
	Precision int
}

// Rule is a compiled boolean expression over Env which a valid value
// satisfies.
type Rule struct {
	Description string
	Source      string

	program *vm.Program
}

func NewRule(desc, src string) (Rule, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: %w", desc, err)
	}
	return Rule{Description: desc, Source: src, program: prg}, nil
}

func MustRule(desc, src string) Rule {
	r, err := NewRule(desc, src)
	if err != nil {
		panic(err)
	}
	return r
}

// Eval reports whether env satisfies the rule.
func (r Rule) Eval(env Env) (bool, error) {
	res, err := expr.Run(r.program, env)
	if err != nil {
		return false, fmt.Errorf("rule %q: %w", r.Description, err)
	}
	ok, isBool := res.(bool)
	if !isBool {
		return false, fmt.Errorf("rule %q: result %T is not a bool", r.Description, res)
	}
	return ok, nil
}

const maxStringBytes = 1 << 20

var (
	stringRules = []Rule{
		MustRule("string value must not be empty", `Length > 0`),
		MustRule("string value must be at most 1MiB", fmt.Sprintf(`Length <= %d`, maxStringBytes)),
		MustRule("string value must be valid UTF-8", `ValidUTF8`),
	}
	decimalRules = []Rule{
		MustRule("decimal value must be a decimal number",
			`Text matches "^-?(0|[1-9][0-9]*)([.][0-9]+)?([eE][+-]?[0-9]+)?$"`),
	}
	dateTimeRules = []Rule{
		MustRule("dateTime year must be between 1 and 9999", `Year >= 1 && Year <= 9999`),
		MustRule("dateTime precision must be set", `Precision >= 1 && Precision <= 6`),
	}
)
