package template

import (
	"fmt"

	"github.com/aymerick/raymond/ast"
	"github.com/aymerick/raymond/parser"
)

// builtins are the helpers raymond provides itself
var builtins = map[string]bool{
	"if":     true,
	"unless": true,
	"each":   true,
	"with":   true,
	"lookup": true,
	"log":    true,
	"equal":  true,
}

// checkHelpers rejects helper calls to names that are neither ours nor
// raymond's. raymond renders such calls as empty text.
func checkHelpers(source string) error {
	program, err := parser.Parse(source)
	if err != nil {
		return err
	}
	return checkNode(program)
}

func checkNode(node ast.Node) error {
	switch n := node.(type) {
	case *ast.Program:
		if n == nil {
			return nil
		}
		for _, stmt := range n.Body {
			if err := checkNode(stmt); err != nil {
				return err
			}
		}
	case *ast.MustacheStatement:
		return checkExpression(n.Expression)
	case *ast.BlockStatement:
		if err := checkExpression(n.Expression); err != nil {
			return err
		}
		if n.Program != nil {
			if err := checkNode(n.Program); err != nil {
				return err
			}
		}
		if n.Inverse != nil {
			return checkNode(n.Inverse)
		}
	case *ast.PartialStatement:
		for _, param := range n.Params {
			if err := checkNode(param); err != nil {
				return err
			}
		}
		return checkHash(n.Hash)
	case *ast.SubExpression:
		return checkExpression(n.Expression)
	}
	return nil
}

func checkExpression(expr *ast.Expression) error {
	if expr == nil {
		return nil
	}

	if len(expr.Params) > 0 || expr.Hash != nil {
		name := expr.HelperName()
		if _, ok := ops[name]; !ok && !builtins[name] {
			if name == "" {
				name = fmt.Sprint(expr.Path)
			}
			return fmt.Errorf("helper not defined: %q", name)
		}
	}

	for _, param := range expr.Params {
		if err := checkNode(param); err != nil {
			return err
		}
	}
	return checkHash(expr.Hash)
}

func checkHash(hash *ast.Hash) error {
	if hash == nil {
		return nil
	}
	for _, pair := range hash.Pairs {
		if err := checkNode(pair.Val); err != nil {
			return err
		}
	}
	return nil
}
