/*
File    : minilang/eval/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/akashmaji946/minilang/values"
)

// registerBuiltins builds the fixed built-in table of spec.md §4.5: len,
// type, str, int, float, abs, min, max, push, pop, range, sqrt, floor,
// ceil, input. Grounded on the teacher's std.Builtin{Name, Callback}
// registration shape, narrowed from the teacher's much larger builtin
// surface (HTTP, crypto, JSON, regex, time, file handles — all out of
// scope here) down to these fifteen names. `input` closes over the
// evaluator so it can read from e.In and write an optional prompt to e.Out.
func registerBuiltins(e *Evaluator) map[string]*values.Builtin {
	table := []*values.Builtin{
		{Name: "len", Arity: 1, Fn: builtinLen},
		{Name: "type", Arity: 1, Fn: builtinType},
		{Name: "str", Arity: 1, Fn: builtinStr},
		{Name: "int", Arity: 1, Fn: builtinInt},
		{Name: "float", Arity: 1, Fn: builtinFloat},
		{Name: "abs", Arity: 1, Fn: builtinAbs},
		{Name: "min", Arity: -1, Fn: builtinMin},
		{Name: "max", Arity: -1, Fn: builtinMax},
		{Name: "push", Arity: 2, Fn: builtinPush},
		{Name: "pop", Arity: 1, Fn: builtinPop},
		{Name: "range", Arity: -1, Fn: builtinRange},
		{Name: "sqrt", Arity: 1, Fn: builtinSqrt},
		{Name: "floor", Arity: 1, Fn: builtinFloor},
		{Name: "ceil", Arity: 1, Fn: builtinCeil},
		{Name: "input", Arity: -1, Fn: e.builtinInput},
	}
	lookup := make(map[string]*values.Builtin, len(table))
	for _, b := range table {
		lookup[b.Name] = b
	}
	return lookup
}

func builtinLen(args []values.Value) values.Value {
	switch v := args[0].(type) {
	case *values.String:
		return &values.Integer{Value: int64(len(v.Value))}
	case *values.Array:
		return &values.Integer{Value: int64(len(v.Elements))}
	default:
		return values.NewError(0, 0, "len: expected string or array, got %s", v.Type())
	}
}

func builtinType(args []values.Value) values.Value {
	switch args[0].(type) {
	case *values.Null:
		return &values.String{Value: "null"}
	case *values.Boolean:
		return &values.String{Value: "boolean"}
	case *values.Integer:
		return &values.String{Value: "integer"}
	case *values.Float:
		return &values.String{Value: "float"}
	case *values.String:
		return &values.String{Value: "string"}
	case *values.Array:
		return &values.String{Value: "array"}
	case *values.Function:
		return &values.String{Value: "function"}
	case *values.Builtin:
		return &values.String{Value: "function"}
	default:
		return &values.String{Value: "unknown"}
	}
}

func builtinStr(args []values.Value) values.Value {
	return &values.String{Value: stringify(args[0])}
}

// parseNumericString implements `int`/`float`'s shared string-parsing
// step: parse through float (so "3" and "3.5" both work), failing with an
// error that names the offending text.
func parseNumericString(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func builtinInt(args []values.Value) values.Value {
	switch v := args[0].(type) {
	case *values.Integer:
		return v
	case *values.Float:
		return &values.Integer{Value: int64(v.Value)}
	case *values.Boolean:
		if v.Value {
			return &values.Integer{Value: 1}
		}
		return &values.Integer{Value: 0}
	case *values.String:
		f, err := parseNumericString(v.Value)
		if err != nil {
			return values.NewError(0, 0, "int: cannot parse %q as a number", v.Value)
		}
		return &values.Integer{Value: int64(f)}
	default:
		return values.NewError(0, 0, "int: cannot convert %s", v.Type())
	}
}

func builtinFloat(args []values.Value) values.Value {
	switch v := args[0].(type) {
	case *values.Float:
		return v
	case *values.Integer:
		return &values.Float{Value: float64(v.Value)}
	case *values.Boolean:
		if v.Value {
			return &values.Float{Value: 1}
		}
		return &values.Float{Value: 0}
	case *values.String:
		f, err := parseNumericString(v.Value)
		if err != nil {
			return values.NewError(0, 0, "float: cannot parse %q as a number", v.Value)
		}
		return &values.Float{Value: f}
	default:
		return values.NewError(0, 0, "float: cannot convert %s", v.Type())
	}
}

func builtinAbs(args []values.Value) values.Value {
	switch v := args[0].(type) {
	case *values.Integer:
		if v.Value < 0 {
			return &values.Integer{Value: -v.Value}
		}
		return v
	case *values.Float:
		return &values.Float{Value: math.Abs(v.Value)}
	default:
		return values.NewError(0, 0, "abs: expected a number, got %s", v.Type())
	}
}

func builtinMin(args []values.Value) values.Value {
	return minMax(args, false)
}

func builtinMax(args []values.Value) values.Value {
	return minMax(args, true)
}

func minMax(args []values.Value, wantMax bool) values.Value {
	if len(args) == 0 {
		return values.NewError(0, 0, "min/max: expected at least one argument")
	}
	best := args[0]
	if !isNumeric(best) {
		return values.NewError(0, 0, "min/max: expected a number, got %s", best.Type())
	}
	for _, v := range args[1:] {
		if !isNumeric(v) {
			return values.NewError(0, 0, "min/max: expected a number, got %s", v.Type())
		}
		better := toFloat(v) < toFloat(best)
		if wantMax {
			better = toFloat(v) > toFloat(best)
		}
		if better {
			best = v
		}
	}
	return best
}

func builtinPush(args []values.Value) values.Value {
	arr, ok := args[0].(*values.Array)
	if !ok {
		return values.NewError(0, 0, "push: expected an array, got %s", args[0].Type())
	}
	arr.Elements = append(arr.Elements, args[1])
	return arr
}

func builtinPop(args []values.Value) values.Value {
	arr, ok := args[0].(*values.Array)
	if !ok {
		return values.NewError(0, 0, "pop: expected an array, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return values.NewError(0, 0, "pop: array is empty")
	}
	last := arr.Elements[len(arr.Elements)-1]
	arr.Elements = arr.Elements[:len(arr.Elements)-1]
	return last
}

// builtinRange implements `range(stop)`, `range(start, stop)`, and
// `range(start, stop, step)`, per spec.md §4.5. Arity greater than three
// silently ignores the extra arguments, preserving the source's behavior
// (see DESIGN.md's Open Question decisions).
func builtinRange(args []values.Value) values.Value {
	if len(args) == 0 {
		return values.NewError(0, 0, "range: expected at least one argument")
	}
	ints := make([]int64, len(args))
	for i, a := range args {
		n, ok := a.(*values.Integer)
		if !ok {
			return values.NewError(0, 0, "range: expected integer arguments, got %s", a.Type())
		}
		ints[i] = n.Value
	}

	var start, stop, step int64 = 0, ints[0], 1
	switch {
	case len(args) == 1:
		start, stop = 0, ints[0]
	case len(args) >= 2:
		start, stop = ints[0], ints[1]
	}
	if len(args) >= 3 {
		step = ints[2]
	}
	if step == 0 {
		return values.NewError(0, 0, "range: step must not be zero")
	}

	elements := make([]values.Value, 0)
	if step > 0 {
		for i := start; i < stop; i += step {
			elements = append(elements, &values.Integer{Value: i})
		}
	} else {
		for i := start; i > stop; i += step {
			elements = append(elements, &values.Integer{Value: i})
		}
	}
	return &values.Array{Elements: elements}
}

func builtinSqrt(args []values.Value) values.Value {
	if !isNumeric(args[0]) {
		return values.NewError(0, 0, "sqrt: expected a number, got %s", args[0].Type())
	}
	return &values.Float{Value: math.Sqrt(toFloat(args[0]))}
}

func builtinFloor(args []values.Value) values.Value {
	if !isNumeric(args[0]) {
		return values.NewError(0, 0, "floor: expected a number, got %s", args[0].Type())
	}
	return &values.Integer{Value: int64(math.Floor(toFloat(args[0])))}
}

func builtinCeil(args []values.Value) values.Value {
	if !isNumeric(args[0]) {
		return values.NewError(0, 0, "ceil: expected a number, got %s", args[0].Type())
	}
	return &values.Integer{Value: int64(math.Ceil(toFloat(args[0])))}
}

// builtinInput reads a single line from e.In, writing an optional string
// prompt to e.Out first; EOF on stdin yields "" rather than an error, per
// spec.md §4.5.
func (e *Evaluator) builtinInput(args []values.Value) values.Value {
	if len(args) > 1 {
		return values.NewError(0, 0, "input expects 0 or 1 argument(s), got %d", len(args))
	}
	if len(args) == 1 {
		prompt, ok := args[0].(*values.String)
		if !ok {
			return values.NewError(0, 0, "input: expected a string prompt, got %s", args[0].Type())
		}
		fmt.Fprint(e.Out, prompt.Value)
	}
	line, err := e.In.ReadString('\n')
	if err != nil && line == "" {
		return &values.String{Value: ""}
	}
	return &values.String{Value: strings.TrimRight(line, "\r\n")}
}
