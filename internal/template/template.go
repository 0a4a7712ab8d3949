package template

import (
	"fmt"

	"github.com/aymerick/raymond"
	"go.uber.org/zap"
)

// Template is a compiled Handlebars template with its helpers registered
type Template struct {
	inner  *raymond.Template
	logger *zap.Logger
}

// Compile parses source and registers the arithmetic helpers on it
func Compile(source string, logger *zap.Logger) (*Template, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	inner, err := raymond.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if err := checkHelpers(source); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	inner.RegisterHelpers(helpers())

	logger.Debug("template compiled", zap.Int("source_bytes", len(source)))

	return &Template{
		inner:  inner,
		logger: logger,
	}, nil
}

// Render executes the template against data. On error no output is returned.
func (t *Template) Render(data interface{}) (string, error) {
	result, err := t.inner.Exec(data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRender, err)
	}

	t.logger.Debug("template rendered", zap.Int("output_bytes", len(result)))

	return result, nil
}
