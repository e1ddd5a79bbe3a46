package twcss

import "fmt"

// PostProcessor transforms emitted CSS (autoprefixing, minification). The
// compiler never calls one itself.
type PostProcessor interface {
	Process(css string) (string, error)
}

// PostProcessFunc adapts a function to PostProcessor.
type PostProcessFunc func(css string) (string, error)

// Process implements PostProcessor.
func (f PostProcessFunc) Process(css string) (string, error) { return f(css) }

// PostProcess runs css through each processor in order.
func PostProcess(css string, processors ...PostProcessor) (string, error) {
	for i, p := range processors {
		out, err := p.Process(css)
		if err != nil {
			return "", fmt.Errorf("post-processor %d: %w", i, err)
		}
		css = out
	}
	return css, nil
}
