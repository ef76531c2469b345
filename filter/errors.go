package filter

import "fmt"

// CompilationError indicates a filter expression could not be compiled.
type CompilationError struct {
	Expression string
	Reason     string
	Err        error
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("compilation error in '%s': %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

// EvaluationError indicates a compiled filter could not be evaluated
// against a module.
type EvaluationError struct {
	Expression string
	Module     string
	Reason     string
	Err        error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation error for '%s' on module '%s': %s", e.Expression, e.Module, e.Reason)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
