package template

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aymerick/raymond"
)

// binaryOp is a pure function over two signed 64-bit integers
type binaryOp func(a, b int64) (int64, error)

var ops = map[string]binaryOp{
	"add": func(a, b int64) (int64, error) { return a + b, nil },
	"sub": func(a, b int64) (int64, error) { return a - b, nil },
	"mul": func(a, b int64) (int64, error) { return a * b, nil },
	"div": func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	},
	"mod": func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a % b, nil
	},
}

// helpers returns the raymond helper table for ops.
//
// raymond helpers return a single value, so failures are raised by panicking
// with an error, which Template.Exec recovers into its returned error.
func helpers() map[string]interface{} {
	out := make(map[string]interface{}, len(ops))
	for name, op := range ops {
		out[name] = bind(name, op)
	}
	return out
}

func bind(name string, op binaryOp) func(a, b interface{}) int64 {
	return func(a, b interface{}) int64 {
		// raymond passes its options as the last argument when one
		// parameter is missing
		if _, ok := b.(*raymond.Options); ok {
			panic(fmt.Errorf("helper %s: expected 2 arguments, got 1", name))
		}

		x, err := toInt64(a)
		if err != nil {
			panic(fmt.Errorf("helper %s: argument 1: %w", name, err))
		}
		y, err := toInt64(b)
		if err != nil {
			panic(fmt.Errorf("helper %s: argument 2: %w", name, err))
		}

		result, err := op(x, y)
		if err != nil {
			panic(fmt.Errorf("helper %s: %w", name, err))
		}
		return result
	}
}

// maxExactLiteral bounds integer literals: raymond parses them through
// float64, so larger ones arrive already rounded
const maxExactLiteral = 1 << 53

// toInt64 coerces a helper argument to int64
func toInt64(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int:
		// Only literals arrive as int; helper results are int64
		if int64(n) >= maxExactLiteral || int64(n) <= -maxExactLiteral {
			return 0, fmt.Errorf("integer literal %d is not exact, quote it", n)
		}
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows int64", n)
		}
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows int64", n)
		}
		return int64(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		if n >= maxExactLiteral || n <= -maxExactLiteral {
			return 0, fmt.Errorf("number %v is not exact, quote it", n)
		}
		return int64(n), nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer", n)
		}
		return i, nil
	case nil:
		return 0, fmt.Errorf("missing value")
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}
