// Package filter compiles user-supplied expressions into predicates over
// Netatmo station modules, using the expr language.
//
// Expressions see one module at a time as flattened fields, e.g.
//
//	BatteryPercent >= 0 && BatteryPercent < 20
//	Type == "NAModule1" && !Reachable
//	LastSeen < daysAgo(2)
//
// Sensor readings the module does not provide evaluate as NaN, so
// comparisons against them never match.
package filter

import (
	"math"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/nsenaud/netatmo-go/netatmo"
)

// ModuleFilter is a compiled filter ready for evaluation.
type ModuleFilter struct {
	program    *vm.Program
	expression string
}

// Compile parses and compiles a filter expression.
func Compile(expression string) (*ModuleFilter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, &CompilationError{Expression: expression, Reason: err.Error(), Err: err}
	}

	return &ModuleFilter{program: program, expression: expression}, nil
}

// Expression returns the original filter expression.
func (f *ModuleFilter) Expression() string {
	return f.expression
}

// Matches evaluates the filter against one module.
func (f *ModuleFilter) Matches(module netatmo.ModuleInfo) (bool, error) {
	output, err := expr.Run(f.program, environment(module))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Module:     module.ModuleName,
			Reason:     err.Error(),
			Err:        err,
		}
	}

	matched, ok := output.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			Module:     module.ModuleName,
			Reason:     "expression did not evaluate to a boolean",
		}
	}
	return matched, nil
}

// Apply returns the modules matching the filter. A nil filter matches
// everything.
func Apply(f *ModuleFilter, modules []netatmo.ModuleInfo) ([]netatmo.ModuleInfo, error) {
	if f == nil {
		return modules, nil
	}

	var matched []netatmo.ModuleInfo
	for _, module := range modules {
		ok, err := f.Matches(module)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, module)
		}
	}
	return matched, nil
}

// helperFunctions are the static functions available in expressions.
func helperFunctions() map[string]any {
	return map[string]any{
		"now": time.Now,
		"hoursAgo": func(hours int) time.Time {
			return time.Now().Add(-time.Duration(hours) * time.Hour)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}

// environment flattens one module into the evaluation environment.
func environment(m netatmo.ModuleInfo) map[string]any {
	env := helperFunctions()
	env["Station"] = m.StationName
	env["Module"] = m.ModuleName
	env["ID"] = m.ID
	env["Type"] = m.Type
	env["Reachable"] = m.Reachable
	env["BatteryPercent"] = m.BatteryPercent
	env["RFStatus"] = m.RFStatus
	env["WifiStatus"] = m.WifiStatus
	env["LastSeen"] = m.LastSeen
	env["Temperature"] = floatReading(m.Temperature)
	env["Humidity"] = intReading(m.Humidity)
	env["CO2"] = intReading(m.CO2)
	env["Pressure"] = floatReading(m.Pressure)
	env["Noise"] = intReading(m.Noise)
	env["Rain"] = floatReading(m.Rain)
	env["WindStrength"] = intReading(m.WindStrength)
	return env
}

func floatReading(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

func intReading(v *int) float64 {
	if v == nil {
		return math.NaN()
	}
	return float64(*v)
}
