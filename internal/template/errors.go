package template

import "errors"

// Sentinel errors for template operations.
var (
	// ErrSyntax is returned when the template source cannot be parsed.
	ErrSyntax = errors.New("template syntax error")

	// ErrRender is returned when rendering fails, including helper failures.
	ErrRender = errors.New("template render error")

	// ErrDivisionByZero is raised by the div and mod helpers.
	ErrDivisionByZero = errors.New("division by zero")
)
