// Package template compiles and renders the Handlebars document read by
// hbsubst.
//
// A template is compiled once and carries its own helpers, so nothing is
// registered in raymond's global helper table.
//
// Example usage:
//
//	tpl, err := template.Compile("{{env.USER}} has {{mul cpu.logical 2}} threads", logger)
//	if err != nil {
//	    return err // wraps template.ErrSyntax
//	}
//	out, err := tpl.Render(snap.Data())
//	if err != nil {
//	    return err // wraps template.ErrRender
//	}
//
// Helpers, each taking two signed 64-bit integers:
//   - add - a + b
//   - sub - a - b
//   - mul - a * b
//   - div - a / b, truncated toward zero
//   - mod - a % b, sign of the dividend
//
// Arguments may be integer literals, subexpressions, or context values
// holding base-10 integers:
//
//	{{add 2 3}}                 # "5"
//	{{div mem.total 1048576}}   # total memory in MiB
//	{{add (mul 2 3) 1}}         # "7"
//
// Number literals go through float64 in raymond, so literals of magnitude
// 2^53 or more must be quoted: {{add "9223372036854775807" 1}}.
//
// Calling a helper that is neither one of these nor a raymond built-in fails
// Compile. Division or modulo by zero fails the whole render. A missing field
// renders as the empty string.
package template
